package config

import "github.com/rs/zerolog/log"

func writeOutVariantInfo(c *Config) {
	def := c.DefaultName()
	for _, name := range c.Names() {
		v := c.Variants[name]
		log.Logger.Info().
			Str("variant", name).
			Bool("default", name == def).
			Str("title", v.Site.Title).
			Int("active_socials", len(v.Socials.Active())).
			Msg("Variant ready")
	}
}
