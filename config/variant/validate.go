package variant

import "github.com/4lbatr0s/sitemeta/config/validate"

func (v Variant) Validate(verr *validate.ValidationErrors, path string, production bool) {
	v.Site.Validate(verr, path+"/site", production)
	v.LogoImage.Validate(verr, path+"/logoImage")
	v.Socials.Validate(verr, path+"/socials")
}
