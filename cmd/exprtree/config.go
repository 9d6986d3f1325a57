package main

import (
	"flag"
	"os"

	"github.com/ghodss/yaml"
)

// config holds the command settings. Every field can be set in the config
// file and overridden by the flag of the same name.
type config struct {
	// Fmt is the fmt verb used to print results.
	Fmt string `json:"fmt"`
	// Echo prints each tree before its result.
	Echo bool `json:"echo"`
	// Trace writes the postfix conversion of each expression to stderr.
	Trace bool `json:"trace"`
	// Strict rejects runes outside the expression grammar.
	Strict bool `json:"strict"`
}

func defaults() config {
	return config{Fmt: "%g"}
}

// load reads a YAML config file over cfg. An empty name leaves cfg unchanged.
func load(cfg config, name string) (config, error) {
	if name == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// override applies the flags that were set explicitly on the command line.
func (cfg config) override(fs *flag.FlagSet, flags config) config {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "fmt":
			cfg.Fmt = flags.Fmt
		case "echo":
			cfg.Echo = flags.Echo
		case "trace":
			cfg.Trace = flags.Trace
		case "strict":
			cfg.Strict = flags.Strict
		}
	})
	return cfg
}
