package main

import (
	"fmt"
	"io"
	"os"

	"github.com/jorge-barreto/notes/internal/catalog"
	"github.com/jorge-barreto/notes/internal/config"
	"github.com/jorge-barreto/notes/internal/render"
	"github.com/jorge-barreto/notes/internal/ux"
	cli "github.com/urfave/cli/v3"
)

const bundledName = "(bundled notes)"

// session is the resolved config, catalog and renderer for one invocation.
// Flags override the config file.
type session struct {
	cat        *catalog.Catalog
	configPath string
	sourceName string
	format     string
	color      bool
	renderer   render.Renderer
}

func openSession(cmd *cli.Command) (*session, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.Resolve(cmd.String("config"), wd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	s := &session{format: cfg.Format, configPath: cfg.Path(), sourceName: bundledName}

	source := cfg.Source
	if cmd.IsSet("source") {
		source = cmd.String("source")
	}
	if source == "" {
		s.cat, err = catalog.Default()
	} else {
		s.cat, err = catalog.LoadFile(source)
		s.sourceName = source
	}
	if err != nil {
		return nil, fmt.Errorf("loading notes: %w", err)
	}

	if cmd.IsSet("format") {
		s.format = cmd.String("format")
	}

	s.color = ux.ColorEnabled(colorMode(cmd, cfg), cmd.Root().Writer)

	s.renderer, err = render.ForFormat(s.format, render.Options{Color: s.color && s.format == render.FormatText})
	if err != nil {
		return nil, err
	}
	return s, nil
}

// colorMode picks the color mode: --no-color and --color first, then the
// config file, then auto. cfg may be nil when no config could be loaded.
func colorMode(cmd *cli.Command, cfg *config.Config) string {
	switch {
	case cmd.Bool("no-color"):
		return ux.ColorNever
	case cmd.Bool("color"):
		return ux.ColorAlways
	case cfg != nil:
		return cfg.Color
	}
	return ux.ColorAuto
}

// errorColor reports whether a top-level error should be colored on w. It
// runs after the command tree has parsed its flags, and falls back to auto
// when the config itself is what failed to load.
func errorColor(app *cli.Command, w io.Writer) bool {
	var cfg *config.Config
	if wd, err := os.Getwd(); err == nil {
		if c, err := config.Resolve(app.String("config"), wd); err == nil {
			cfg = c
		}
	}
	return ux.ColorEnabled(colorMode(app, cfg), w)
}
