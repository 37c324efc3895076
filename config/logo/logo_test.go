package logo

import (
	"testing"

	"github.com/4lbatr0s/sitemeta/config/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		logo     LogoConfig
		wantErrs []string
	}{
		{
			name: "disabled with dimensions",
			logo: LogoConfig{Enable: false, SVG: true, Width: 216, Height: 46},
		},
		{
			name: "disabled without dimensions",
			logo: LogoConfig{},
		},
		{
			name: "enabled",
			logo: LogoConfig{Enable: true, SVG: true, Width: 216, Height: 46},
		},
		{
			name:     "enabled without height",
			logo:     LogoConfig{Enable: true, Width: 216},
			wantErrs: []string{"logoImage/height must be at least 1 (got 0)"},
		},
		{
			name:     "negative width",
			logo:     LogoConfig{Width: -1},
			wantErrs: []string{"logoImage/width must be at least 0"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v validate.ValidationErrors
			tc.logo.Validate(&v, "logoImage")

			errs := v.Errors()
			require.Len(t, errs, len(tc.wantErrs))
			for i, want := range tc.wantErrs {
				assert.Contains(t, errs[i].Error(), want)
			}
		})
	}
}
