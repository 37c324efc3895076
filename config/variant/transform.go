package variant

import "github.com/4lbatr0s/sitemeta/config/social"

func (v *Variant) TransformBeforeValidation() error {
	if err := v.Site.TransformBeforeValidation(); err != nil {
		return err
	}
	if v.Socials == nil {
		v.Socials = social.Socials{}
	}
	return v.Socials.TransformBeforeValidation()
}

func (v *Variant) TransformAfterValidation() error {
	return v.Site.TransformAfterValidation()
}
