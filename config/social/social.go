package social

import (
	"github.com/rs/zerolog"
)

// SocialLink is one outbound link of SOCIALS. Inactive links stay in the
// list but are not rendered.
type SocialLink struct {
	Name      string `yaml:"name" json:"name" toml:"name" validate:"required"`
	Href      string `yaml:"href" json:"href" toml:"href" validate:"required"`
	LinkTitle string `yaml:"linkTitle" json:"linkTitle" toml:"linkTitle"`
	Active    bool   `yaml:"active" json:"active" toml:"active"`
}

// Socials keeps display order.
type Socials []SocialLink

// Active returns the links to render, in display order. The result never
// shares storage with s.
func (s Socials) Active() Socials {
	out := make(Socials, 0, len(s))
	for _, l := range s {
		if l.Active {
			out = append(out, l)
		}
	}
	return out
}

// ByName returns the first link with the given name.
func (s Socials) ByName(name string) (SocialLink, bool) {
	for _, l := range s {
		if l.Name == name {
			return l, true
		}
	}
	return SocialLink{}, false
}

// Clone returns a copy that does not share storage with s.
func (s Socials) Clone() Socials {
	if s == nil {
		return nil
	}
	return append(Socials(nil), s...)
}

func (l SocialLink) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", l.Name).
		Str("href", l.Href).
		Str("linkTitle", l.LinkTitle).
		Bool("active", l.Active)
}

func (s Socials) MarshalZerologArray(a *zerolog.Array) {
	for _, l := range s {
		a.Object(l)
	}
}
