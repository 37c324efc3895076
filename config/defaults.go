package config

import (
	_ "embed"
	"sync"
)

//go:embed defaults.yaml
var defaultsYAML []byte

var parseDefaults = sync.OnceValues(func() (*Config, error) {
	return Parse(defaultsYAML, FormatYAML, EnvProduction)
})

// Defaults returns the built-in config with the codestan and serhatcodes
// variants. The embedded file is parsed once; each call returns a copy.
func Defaults() *Config {
	cfg, err := parseDefaults()
	if err != nil {
		panic(err)
	}
	return cfg.Clone()
}
