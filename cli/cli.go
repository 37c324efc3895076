package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/jessevdk/go-flags"
)

// Options are shared by every command.
type Options struct {
	Config   string `short:"c" long:"config" env:"SITEMETA_CONFIG" default:"config.yaml" description:"config file (.yaml, .yml, .json or .toml)"`
	Defaults bool   `long:"defaults" description:"use the built-in config instead of a file"`
	Variant  string `short:"V" long:"variant" env:"SITEMETA_VARIANT" description:"variant to use (default: the configured default)"`
}

type app struct {
	opts Options
	out  io.Writer
}

// Run parses args and executes the selected command. Without a command the
// configuration is only checked.
func Run(args []string, out io.Writer) error {
	a := &app{out: out}

	parser := flags.NewNamedParser("sitemeta", flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	if _, err := parser.AddGroup("Global options", "", &a.opts); err != nil {
		return err
	}

	check := &checkCmd{app: a}
	commands := []struct {
		name, short, long string
		data              any
	}{
		{"check", "Validate the configuration", "Load and validate the configuration, reporting every problem.", check},
		{"show", "Log a variant", "Log the selected variant as a structured object.", &showCmd{app: a}},
		{"socials", "List social links", "Print the social links of the selected variant in display order.", &socialsCmd{app: a}},
		{"export", "Export a variant for the page build", "Write SITE, LOGO_IMAGE and SOCIALS of the selected variant as JSON.", &exportCmd{app: a}},
		{"convert", "Re-encode the configuration", "Write the whole configuration in another format.", &convertCmd{app: a}},
		{"variants", "List variants", "Print every variant name, marking the default one.", &variantsCmd{app: a}},
		{"watch", "Re-validate on change", "Watch the config file and re-validate it whenever it changes.", &watchCmd{app: a}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			return err
		}
	}

	_, err := parser.ParseArgs(args)
	var ferr *flags.Error
	if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
		fmt.Fprintln(out, ferr.Message)
		return nil
	}
	if err != nil {
		return err
	}
	if parser.Active == nil {
		return check.Execute(nil)
	}
	return nil
}

// load reads the configuration selected by the global options.
func (a *app) load() (*config.Config, error) {
	if a.opts.Defaults {
		return config.Defaults(), nil
	}
	return config.Load(a.opts.Config)
}

func (a *app) output(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return a.out, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
