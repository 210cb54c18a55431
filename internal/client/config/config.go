// Package config loads runtime settings for the CampusKart CLI from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

// Credential policy names accepted in configuration.
const (
	PolicyPlain  = "plain"
	PolicyArgon2 = "argon2"
)

// Config holds runtime settings for the CampusKart CLI.
//
// Fields:
//   - DatabaseDSN: path of the local SQLite store.
//   - CredentialPolicy: "plain" (baseline) or "argon2".
//   - DisableSeed: skip writing the example catalog into an empty store.
type Config struct {
	DatabaseDSN      string
	CredentialPolicy string
	DisableSeed      bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "campuskart.db"
	c.CredentialPolicy = PolicyPlain
	c.DisableSeed = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
