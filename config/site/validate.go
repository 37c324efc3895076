package site

import (
	"net/url"
	"strings"

	"github.com/4lbatr0s/sitemeta/config/validate"
)

// Validate checks the page size and the website URL. Blank text fields and,
// in production, a plain http website are only warned about.
func (s SiteConfig) Validate(v *validate.ValidationErrors, path string, production bool) {
	if !validate.Struct(v, path, s) {
		return
	}
	if strings.TrimSpace(s.Title) == "" {
		validate.LogConfigWarn(path+"/title", s.Title, "site title is empty")
	}
	if strings.TrimSpace(s.Author) == "" {
		validate.LogConfigWarn(path+"/author", s.Author, "site author is empty")
	}
	if production {
		if u, err := url.Parse(s.Website); err == nil && u.Scheme != "https" {
			validate.LogConfigWarn(path+"/website", s.Website, "website is not served over https")
		}
	}
}
