package variant

import (
	"github.com/4lbatr0s/sitemeta/config/logo"
	"github.com/4lbatr0s/sitemeta/config/site"
	"github.com/4lbatr0s/sitemeta/config/social"
	"github.com/rs/zerolog"
)

// Variant is one deployment target of the site: the SITE, LOGO_IMAGE and
// SOCIALS values the build layer reads.
type Variant struct {
	Site      site.SiteConfig `yaml:"site" json:"site" toml:"site"`
	LogoImage logo.LogoConfig `yaml:"logoImage" json:"logoImage" toml:"logoImage"`
	Socials   social.Socials  `yaml:"socials" json:"socials" toml:"socials"`
}

// Export is the shape the page build imports, keyed like the constants it
// expects.
type Export struct {
	Site      site.SiteConfig `json:"SITE"`
	LogoImage logo.LogoConfig `json:"LOGO_IMAGE"`
	Socials   social.Socials  `json:"SOCIALS"`
}

// Clone returns a copy that shares no mutable state with v.
func (v Variant) Clone() Variant {
	out := v
	out.Socials = v.Socials.Clone()
	if v.Site.WebsiteURL != nil {
		u := *v.Site.WebsiteURL
		out.Site.WebsiteURL = &u
	}
	return out
}

func (v Variant) Export() Export {
	socials := v.Socials.Clone()
	if socials == nil {
		socials = social.Socials{}
	}
	return Export{
		Site:      v.Site,
		LogoImage: v.LogoImage,
		Socials:   socials,
	}
}

// MarshalZerologObjectWithLevel logs the full variant at debug level and a
// summary otherwise.
func (v Variant) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	e.Str("title", v.Site.Title).
		Str("website", v.Site.Website).
		Int("socials", len(v.Socials)).
		Int("active_socials", len(v.Socials.Active()))
	if level <= zerolog.DebugLevel {
		e.Object("site", v.Site).
			Object("logoImage", v.LogoImage).
			Array("links", v.Socials)
	}
}
