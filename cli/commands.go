package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/4lbatr0s/sitemeta/config"
	"github.com/4lbatr0s/sitemeta/logging"
	"github.com/4lbatr0s/sitemeta/watcher"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type checkCmd struct {
	app *app
}

func (c *checkCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	fmt.Fprintf(c.app.out, "configuration valid: %d variant(s), default %q\n", len(cfg.Variants), cfg.DefaultName())
	return nil
}

type showCmd struct {
	app  *app
	Full bool `long:"full" description:"include every field regardless of log level"`
}

func (c *showCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	v, err := cfg.Lookup(c.app.opts.Variant)
	if err != nil {
		return err
	}

	level := log.Logger.GetLevel()
	if c.Full {
		level = zerolog.DebugLevel
	}
	e := log.Logger.Info().Str("variant", variantName(cfg, c.app.opts.Variant))
	logging.ObjectIf(e, "config", logging.WithLevel(level, v), true)
	e.Msg("Variant")
	return nil
}

type socialsCmd struct {
	app *app
	All bool `short:"a" long:"all" description:"include inactive links"`
}

func (c *socialsCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	v, err := cfg.Lookup(c.app.opts.Variant)
	if err != nil {
		return err
	}

	links := v.Socials.Active()
	if c.All {
		links = v.Socials
	}
	tw := tabwriter.NewWriter(c.app.out, 0, 4, 2, ' ', 0)
	for _, l := range links {
		if c.All {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n", l.Name, l.Href, l.LinkTitle, l.Active)
		} else {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", l.Name, l.Href, l.LinkTitle)
		}
	}
	return tw.Flush()
}

type exportCmd struct {
	app *app
	Out string `short:"o" long:"out" description:"output file (default: stdout)"`
}

func (c *exportCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	v, err := cfg.Lookup(c.app.opts.Variant)
	if err != nil {
		return err
	}

	w, closeFn, err := c.app.output(c.Out)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v.Export()); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

type convertCmd struct {
	app *app
	To  string `short:"t" long:"to" required:"true" choice:"yaml" choice:"json" choice:"toml" description:"target format"`
	Out string `short:"o" long:"out" description:"output file (default: stdout)"`
}

func (c *convertCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	format, err := config.ParseFormat(c.To)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg, format)
	if err != nil {
		return err
	}

	w, closeFn, err := c.app.output(c.Out)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}

type variantsCmd struct {
	app *app
}

func (c *variantsCmd) Execute(args []string) error {
	cfg, err := c.app.load()
	if err != nil {
		return err
	}
	def := cfg.DefaultName()
	for _, name := range cfg.Names() {
		marker := " "
		if name == def {
			marker = "*"
		}
		fmt.Fprintf(c.app.out, "%s %s\n", marker, name)
	}
	return nil
}

type watchCmd struct {
	app *app
}

func (c *watchCmd) Execute(args []string) error {
	if c.app.opts.Defaults {
		return fmt.Errorf("watch needs a config file, not --defaults")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watcher.Watch(ctx, c.app.opts.Config, func(cfg *config.Config, err error) {
		if err != nil {
			log.Logger.Error().Err(err).Msg("configuration rejected")
			return
		}
		log.Logger.Info().
			Int("variants", len(cfg.Variants)).
			Str("default", cfg.DefaultName()).
			Msg("configuration reloaded")
	})
}

func variantName(cfg *config.Config, requested string) string {
	if requested != "" {
		return requested
	}
	return cfg.DefaultName()
}
