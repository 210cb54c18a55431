package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/campuskart/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-p string   credential policy, "plain" or "argon2"
//	-no-seed    do not write the example catalog into an empty store
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-p", "-no-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.CredentialPolicy, "p", cfg.CredentialPolicy, "credential policy (plain or argon2)")
	fs.BoolVar(&cfg.DisableSeed, "no-seed", cfg.DisableSeed, "skip the example catalog on first run")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
