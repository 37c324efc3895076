package social

import (
	"testing"

	"github.com/4lbatr0s/sitemeta/config/validate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func links() Socials {
	return Socials{
		{Name: "Github", Href: "https://github.com/4lbatr0s", LinkTitle: "Reach on Github", Active: true},
		{Name: "LinkedIn", Href: "https://www.linkedin.com/in/serhat-oner/", LinkTitle: "Reach on LinkedIn", Active: true},
		{Name: "Mail", Href: "mailto:serhatoner@proton.com", LinkTitle: "Send an email to me", Active: false},
	}
}

func TestActiveKeepsOrder(t *testing.T) {
	s := links()

	active := s.Active()

	require.Len(t, active, 2)
	assert.Equal(t, "Github", active[0].Name)
	assert.Equal(t, "LinkedIn", active[1].Name)
}

func TestActiveDoesNotShareStorage(t *testing.T) {
	s := links()

	active := s.Active()
	active[0].Name = "changed"

	assert.Equal(t, "Github", s[0].Name)
}

func TestByName(t *testing.T) {
	l, ok := links().ByName("Mail")
	require.True(t, ok)
	assert.Equal(t, "mailto:serhatoner@proton.com", l.Href)

	_, ok = links().ByName("Mastodon")
	assert.False(t, ok)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		socials  Socials
		wantErrs []string
	}{
		{
			name:    "valid",
			socials: links(),
		},
		{
			name:    "empty list",
			socials: Socials{},
		},
		{
			name:     "missing name and href",
			socials:  Socials{{LinkTitle: "?", Active: true}},
			wantErrs: []string{"socials[0]/name is required", "socials[0]/href is required"},
		},
		{
			name:     "active with malformed href",
			socials:  Socials{{Name: "Github", Href: "github.com/4lbatr0s", Active: true}},
			wantErrs: []string{"socials[0]/href must be an absolute http(s) URL or mailto: URI"},
		},
		{
			name:    "inactive with malformed href only warns",
			socials: Socials{{Name: "Mail", Href: "serhat at proton", Active: false}},
		},
		{
			name: "duplicate names only warn",
			socials: Socials{
				{Name: "Github", Href: "https://github.com/a", Active: true},
				{Name: "Github", Href: "https://github.com/b", Active: true},
			},
		},
		{
			name:     "inactive still needs href",
			socials:  Socials{{Name: "Mail"}},
			wantErrs: []string{"socials[0]/href is required"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var v validate.ValidationErrors
			tc.socials.Validate(&v, "socials")

			errs := v.Errors()
			require.Len(t, errs, len(tc.wantErrs))
			for i, want := range tc.wantErrs {
				assert.Contains(t, errs[i].Error(), want)
			}
		})
	}
}

func TestTransformTrims(t *testing.T) {
	s := Socials{{Name: " Github ", Href: " https://github.com/4lbatr0s\n", LinkTitle: " Reach "}}

	require.NoError(t, s.TransformBeforeValidation())

	assert.Equal(t, SocialLink{Name: "Github", Href: "https://github.com/4lbatr0s", LinkTitle: "Reach"}, s[0])
}
