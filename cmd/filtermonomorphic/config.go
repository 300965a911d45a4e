package main

import (
	"flag"
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Tidy      string `toml:"tidy"`
	Strata    string `toml:"strata"`
	Out       string `toml:"out"`
	Delimiter string `toml:"delimiter"`
	Verbose   bool   `toml:"verbose"`
}

// ParseConfig reads flags, and if -config names a TOML file, its values.
// Flags given explicitly on the command line win over the file.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{}
	configPath := ""

	fs.StringVar(&configPath, "config", "", "Optional TOML file with any of the settings below. Flags given on the command line take precedence.")
	fs.StringVar(&cfg.Tidy, "tidy", "", "Path to the tidy genotype table (or VCF). May be compressed, and may be a gs:// path.")
	fs.StringVar(&cfg.Strata, "strata", "", "Optional tab-delimited file with INDIVIDUALS and STRATA columns. Individuals not listed are dropped.")
	fs.StringVar(&cfg.Out, "out", "", "Prefix for the output files.")
	fs.StringVar(&cfg.Delimiter, "delim", "", "Delimiter of the input table ('tab', 'comma', or a single character). Detected if blank.")
	fs.BoolVar(&cfg.Verbose, "verbose", false, "Log marker counts.")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if configPath != "" {
		if _, err := toml.DecodeFile(configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("%s: %w", configPath, err)
		}

		// Reapply the command line on top of the file
		if err := fs.Parse(args); err != nil {
			return cfg, err
		}
	}

	if cfg.Tidy == "" || cfg.Out == "" {
		return cfg, fmt.Errorf("both a tidy table and an output prefix are required")
	}

	return cfg, nil
}
