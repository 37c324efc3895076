package config

import (
	"errors"
	"fmt"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrNoVariants        = errors.New("at least one variant must be defined")
	ErrUnknownVariant    = errors.New("unknown variant")
	ErrVariantConflict   = errors.New("top-level variant conflicts with a named variant")
)

// ParseError is returned for every failure to turn a config source into a
// usable Config: unreadable file, malformed content, unknown keys or failed
// validation. Callers treat it as fatal.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
