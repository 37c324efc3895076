package validate

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	plain = validator.New()
	rules = newRules()
)

func newRules() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields under the same names the config files use
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("href", func(fl validator.FieldLevel) bool {
		return IsHref(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("website", func(fl validator.FieldLevel) bool {
		return IsWebURL(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// IsWebURL reports whether s is an absolute http or https URL with a host.
func IsWebURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHref reports whether s is a usable link target: an absolute web URL or
// a mailto: URI whose recipients are all valid addresses.
func IsHref(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	if strings.EqualFold(u.Scheme, "mailto") {
		if u.Opaque == "" {
			return false
		}
		for _, addr := range strings.Split(u.Opaque, ",") {
			if plain.Var(addr, "required,email") != nil {
				return false
			}
		}
		return true
	}
	return IsWebURL(s)
}

// Struct runs the struct tag rules of s and records every failing field
// under path. It returns true when s passed.
func Struct(v *ValidationErrors, path string, s any) bool {
	err := rules.Struct(s)
	if err == nil {
		LogConfigOK(path, s)
		return true
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		LogConfigError(path, s, err)
		v.Add(fmt.Errorf("%s: %w", path, err))
		return false
	}
	for _, fe := range fieldErrs {
		fieldPath := path + "/" + fieldName(fe.Namespace())
		ferr := fmt.Errorf("%s %s", fieldPath, describe(fe))
		LogConfigError(fieldPath, fe.Value(), ferr)
		v.Add(ferr)
	}
	return false
}

// Var checks a single value against a tag expression, e.g. "required,href".
func Var(v *ValidationErrors, path string, value any, tag string) bool {
	err := rules.Var(value, tag)
	if err == nil {
		LogConfigOK(path, value)
		return true
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		err = fmt.Errorf("%s %s", path, describe(fieldErrs[0]))
	} else {
		err = fmt.Errorf("%s: %w", path, err)
	}
	LogConfigError(path, value, err)
	v.Add(err)
	return false
}

// fieldName drops the root struct name from a validator namespace and
// turns it into a config path.
func fieldName(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return strings.ReplaceAll(ns, ".", "/")
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return fmt.Sprintf("must be greater than %s (got %v)", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must be at least %s (got %v)", fe.Param(), fe.Value())
	case "website":
		return fmt.Sprintf("must be an absolute http(s) URL (got %q)", fe.Value())
	case "href":
		return fmt.Sprintf("must be an absolute http(s) URL or mailto: URI (got %q)", fe.Value())
	default:
		return fmt.Sprintf("failed the %q rule (got %v)", fe.Tag(), fe.Value())
	}
}
