package logo

import "github.com/rs/zerolog"

// LogoConfig (LOGO_IMAGE) decides whether a logo image replaces the text
// title in the header. The asset itself lives with the build layer.
type LogoConfig struct {
	Enable bool `yaml:"enable" json:"enable" toml:"enable"`
	SVG    bool `yaml:"svg" json:"svg" toml:"svg"`
	Width  int  `yaml:"width" json:"width" toml:"width" validate:"gte=0"`
	Height int  `yaml:"height" json:"height" toml:"height" validate:"gte=0"`
}

func (l LogoConfig) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("enable", l.Enable).
		Bool("svg", l.SVG).
		Int("width", l.Width).
		Int("height", l.Height)
}
