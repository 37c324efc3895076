package config

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/4lbatr0s/sitemeta/config/variant"
	"github.com/rs/zerolog/log"
)

const (
	ENV_PREFIX = "SITEMETA"
)

var (
	ConfigEnv      = ENV_PREFIX + "_CONFIG"
	EnvironmentEnv = ENV_PREFIX + "_ENV"
	VariantEnv     = ENV_PREFIX + "_VARIANT"
	LogConfigEnv   = ENV_PREFIX + "_LOG_CONFIG"
)

// Config holds every site variant. It is built once by Load and only read
// afterwards; Lookup hands out copies.
type Config struct {
	Env      Environment
	Default  string
	Variants map[string]variant.Variant
}

// Load reads, decodes and validates the config file at path. The codec is
// chosen by the file extension. Every failure is a *ParseError.
func Load(path string) (*Config, error) {
	log.Logger.Debug().Str("path", path).Msg("Configuration loading start")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	env, err := LoadEnvironment()
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	cfg, err := parse(data, format, env)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	log.Logger.Info().Str("path", path).Msg("Configuration loaded")
	return cfg, nil
}

// Parse runs the same pipeline as Load on in-memory data.
func Parse(data []byte, format Format, env Environment) (*Config, error) {
	cfg, err := parse(data, format, env)
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	return cfg, nil
}

func parse(data []byte, format Format, env Environment) (*Config, error) {
	cfg, err := Unmarshal(data, format)
	if err != nil {
		return nil, err
	}
	cfg.Env = env

	if err := cfg.TransformBeforeValidation(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.TransformAfterValidation(); err != nil {
		return nil, err
	}

	writeOutVariantInfo(cfg)
	return cfg, nil
}

// Clone returns a copy that shares no mutable state with c.
func (c *Config) Clone() *Config {
	out := &Config{
		Env:      c.Env,
		Default:  c.Default,
		Variants: make(map[string]variant.Variant, len(c.Variants)),
	}
	for name, v := range c.Variants {
		out.Variants[name] = v.Clone()
	}
	return out
}

// Names returns the variant names in sorted order.
func (c *Config) Names() []string {
	return slices.Sorted(maps.Keys(c.Variants))
}

// DefaultName resolves the variant used when none is requested: the
// configured default, or the only variant when there is exactly one.
func (c *Config) DefaultName() string {
	if c.Default != "" {
		return c.Default
	}
	if len(c.Variants) == 1 {
		return c.Names()[0]
	}
	return ""
}

// Lookup returns a copy of the named variant. An empty name selects the
// default one.
func (c *Config) Lookup(name string) (variant.Variant, error) {
	if name == "" {
		name = c.DefaultName()
	}
	v, ok := c.Variants[name]
	if !ok {
		return variant.Variant{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownVariant, name, c.Names())
	}
	return v.Clone(), nil
}
