package social

import "strings"

func (s Socials) TransformBeforeValidation() error {
	for i := range s {
		s[i].Name = strings.TrimSpace(s[i].Name)
		s[i].Href = strings.TrimSpace(s[i].Href)
		s[i].LinkTitle = strings.TrimSpace(s[i].LinkTitle)
	}
	return nil
}
