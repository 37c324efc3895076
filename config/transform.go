package config

import "strings"

func (c *Config) TransformBeforeValidation() error {
	c.Default = strings.TrimSpace(c.Default)
	for name, v := range c.Variants {
		if err := v.TransformBeforeValidation(); err != nil {
			return err
		}
		c.Variants[name] = v
	}
	return nil
}

func (c *Config) TransformAfterValidation() error {
	for name, v := range c.Variants {
		if err := v.TransformAfterValidation(); err != nil {
			return err
		}
		c.Variants[name] = v
	}
	return nil
}
