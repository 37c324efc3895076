package social

import (
	"fmt"

	"github.com/4lbatr0s/sitemeta/config/validate"
)

func (s Socials) Validate(v *validate.ValidationErrors, path string) {
	if len(s) == 0 {
		validate.LogConfigWarn(path, nil, "no social links defined")
		return
	}

	seen := map[string]struct{}{}

	for i, l := range s {
		base := fmt.Sprintf("%s[%d]", path, i)
		l.validate(v, base)
		if l.Name == "" {
			continue
		}
		if _, ok := seen[l.Name]; ok {
			validate.LogConfigWarn(base+"/name", l.Name, "duplicate social link name")
		}
		seen[l.Name] = struct{}{}
	}
}

func (l SocialLink) validate(v *validate.ValidationErrors, path string) {
	if !validate.Struct(v, path, l) {
		return
	}
	if l.Active {
		validate.Var(v, path+"/href", l.Href, "href")
		return
	}
	if !validate.IsHref(l.Href) {
		validate.LogConfigWarn(path+"/href", l.Href, "inactive social link has a malformed href")
	}
}
