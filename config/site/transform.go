package site

import (
	"net/url"
	"strings"
)

func (s *SiteConfig) TransformBeforeValidation() error {
	s.Website = strings.TrimSpace(s.Website)
	s.Author = strings.TrimSpace(s.Author)
	s.Desc = strings.TrimSpace(s.Desc)
	s.Title = strings.TrimSpace(s.Title)
	s.OGImage = strings.TrimSpace(s.OGImage)
	return nil
}

func (s *SiteConfig) TransformAfterValidation() error {
	u, err := url.Parse(s.Website)
	if err != nil {
		return err
	}
	s.WebsiteURL = u
	return nil
}
