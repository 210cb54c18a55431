package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/campuskart/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer fields
// distinguish "absent" from zero values so the JSON file only overrides what
// it actually sets.
type JsonConfig struct {
	DatabaseDSN      *string `json:"database_dsn"`
	CredentialPolicy *string `json:"credential_policy"`
	DisableSeed      *bool   `json:"disable_seed"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// The file path comes from the -c or -config flags via
// flagx.JsonConfigFlags(); when neither is given, no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired).
//
// Intended usage is: defaults -> parseJson -> parseFlags, where later stages
// override earlier ones.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.CredentialPolicy != nil {
		cfg.CredentialPolicy = *jc.CredentialPolicy
	}
	if jc.DisableSeed != nil {
		cfg.DisableSeed = *jc.DisableSeed
	}
}
