package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/4lbatr0s/sitemeta/config/logo"
	"github.com/4lbatr0s/sitemeta/config/site"
	"github.com/4lbatr0s/sitemeta/config/social"
	"github.com/4lbatr0s/sitemeta/config/variant"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// DefaultVariantName names the variant built from top-level
// site/logoImage/socials keys.
const DefaultVariantName = "default"

// document is the on-disk layout. A file either lists named variants or
// carries a single variant at the top level.
type document struct {
	Default   string                     `yaml:"default,omitempty" json:"default,omitempty" toml:"default,omitempty"`
	Variants  map[string]variant.Variant `yaml:"variants,omitempty" json:"variants,omitempty" toml:"variants,omitempty"`
	Site      *site.SiteConfig           `yaml:"site,omitempty" json:"site,omitempty" toml:"site,omitempty"`
	LogoImage *logo.LogoConfig           `yaml:"logoImage,omitempty" json:"logoImage,omitempty" toml:"logoImage,omitempty"`
	Socials   social.Socials             `yaml:"socials,omitempty" json:"socials,omitempty" toml:"socials,omitempty"`
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", fmt.Errorf("%w: %s has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}

// Unmarshal decodes data without validating it. Unknown keys are errors.
func Unmarshal(data []byte, format Format) (*Config, error) {
	var doc document

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("could not parse yaml: %w", err)
			}
		} else if err := dec.Decode(new(yaml.Node)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not parse yaml: %w", trailing(err))
		}
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&doc); err != nil {
			if !errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("could not parse json: %w", err)
			}
		} else if err := dec.Decode(new(json.RawMessage)); !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not parse json: %w", trailing(err))
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &doc)
		if err != nil {
			return nil, fmt.Errorf("could not parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("could not parse toml: unknown keys %v", undecoded)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}

	return doc.config()
}

// trailing reports content found after the first document. A nil err means
// a second document decoded cleanly.
func trailing(err error) error {
	if err == nil {
		return errors.New("unexpected content after the first document")
	}
	return err
}

// Marshal encodes the variants of cfg. Derived fields and the environment
// are not written.
func Marshal(cfg *Config, format Format) ([]byte, error) {
	doc := document{
		Default:  cfg.Default,
		Variants: cfg.Variants,
	}

	var buf bytes.Buffer
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	case FormatJSON:
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return buf.Bytes(), nil
}

func (d document) config() (*Config, error) {
	cfg := &Config{
		Default:  d.Default,
		Variants: d.Variants,
	}
	if cfg.Variants == nil {
		cfg.Variants = map[string]variant.Variant{}
	}

	if d.Site == nil && d.LogoImage == nil && d.Socials == nil {
		return cfg, nil
	}
	if _, ok := cfg.Variants[DefaultVariantName]; ok {
		return nil, fmt.Errorf("%w: %q", ErrVariantConflict, DefaultVariantName)
	}
	inline := variant.Variant{Socials: d.Socials}
	if d.Site != nil {
		inline.Site = *d.Site
	}
	if d.LogoImage != nil {
		inline.LogoImage = *d.LogoImage
	}
	cfg.Variants[DefaultVariantName] = inline
	if cfg.Default == "" {
		cfg.Default = DefaultVariantName
	}
	return cfg, nil
}
