package logo

import "github.com/4lbatr0s/sitemeta/config/validate"

func (l LogoConfig) Validate(v *validate.ValidationErrors, path string) {
	if !validate.Struct(v, path, l) {
		return
	}
	// dimensions only matter once the image is shown
	if l.Enable {
		validate.RequireIntMin(v, path+"/width", l.Width, 1)
		validate.RequireIntMin(v, path+"/height", l.Height, 1)
	}
}
