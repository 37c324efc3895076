package site

import (
	"net/url"

	"github.com/rs/zerolog"
)

// SiteConfig is the site-wide metadata block (SITE) handed to the page
// build: branding, SEO description and pagination size.
type SiteConfig struct {
	Website          string `yaml:"website" json:"website" toml:"website" validate:"required,website"`
	Author           string `yaml:"author" json:"author" toml:"author"`
	Desc             string `yaml:"desc" json:"desc" toml:"desc"`
	Title            string `yaml:"title" json:"title" toml:"title"`
	OGImage          string `yaml:"ogImage" json:"ogImage" toml:"ogImage"`
	LightAndDarkMode bool   `yaml:"lightAndDarkMode" json:"lightAndDarkMode" toml:"lightAndDarkMode"`
	PostPerPage      int    `yaml:"postPerPage" json:"postPerPage" toml:"postPerPage" validate:"gt=0"`

	WebsiteURL *url.URL `yaml:"-" json:"-" toml:"-" validate:"-"`
}

// OGImageURL returns the social preview image as an absolute URL. A
// relative ogImage is resolved against the website origin.
func (s SiteConfig) OGImageURL() string {
	if s.OGImage == "" {
		return ""
	}
	img, err := url.Parse(s.OGImage)
	if err != nil {
		return s.OGImage
	}
	if img.IsAbs() {
		return img.String()
	}
	base := s.WebsiteURL
	if base == nil {
		if base, err = url.Parse(s.Website); err != nil {
			return s.OGImage
		}
	}
	return base.ResolveReference(img).String()
}

func (s SiteConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Str("website", s.Website).
		Str("author", s.Author).
		Str("title", s.Title).
		Str("desc", s.Desc).
		Str("ogImage", s.OGImage).
		Bool("lightAndDarkMode", s.LightAndDarkMode).
		Int("postPerPage", s.PostPerPage)
}
