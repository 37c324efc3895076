package config

import (
	"fmt"

	"github.com/4lbatr0s/sitemeta/config/validate"
)

func (c *Config) Validate() error {
	var verr validate.ValidationErrors

	c.validateVariants(&verr, "variants")

	if verr.HasErrors() {
		return &verr
	}
	return nil
}

func (c *Config) validateVariants(v *validate.ValidationErrors, path string) {
	if len(c.Variants) == 0 {
		err := fmt.Errorf("%s: %w", path, ErrNoVariants)
		validate.LogConfigError(path, nil, err)
		v.Add(err)
		return
	}

	names := c.Names()
	if c.Default != "" {
		validate.RequireOneOf(v, "default", c.Default, names)
	}

	production := c.Env == EnvProduction
	for _, name := range names {
		base := path + "/" + name
		if !validate.RequireString(v, base, name) {
			continue
		}
		c.Variants[name].Validate(v, base, production)
	}
}
