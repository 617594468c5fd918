package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/jorge-barreto/notes/internal/catalog"
	"github.com/jorge-barreto/notes/internal/config"
	"github.com/jorge-barreto/notes/internal/docs"
	"github.com/jorge-barreto/notes/internal/export"
	"github.com/jorge-barreto/notes/internal/index"
	"github.com/jorge-barreto/notes/internal/render"
	"github.com/jorge-barreto/notes/internal/ux"
	cli "github.com/urfave/cli/v3"
)

func main() {
	os.Exit(run(context.Background(), os.Args, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	app := newApp(stdout, stderr)
	if err := app.Run(ctx, args); err != nil {
		ux.Error(stderr, err, errorColor(app, stderr))
		return 1
	}
	return 0
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:        "notes",
		Usage:       "Browse language fundamentals notes",
		ArgsUsage:   "[topic]",
		Description: "Without a topic, prints every note. Run 'notes list' for the topic index.",
		Writer:      stdout,
		ErrWriter:   stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "Config file (default: nearest " + config.FileName + ")"},
			&cli.StringFlag{Name: "source", Aliases: []string{"s"}, Usage: "Notes file to read instead of the bundled notes"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Usage: "Output format: " + strings.Join(render.Formats(), ", ")},
			&cli.BoolFlag{Name: "color", Usage: "Force colored output"},
			&cli.BoolFlag{Name: "no-color", Usage: "Disable colored output"},
		},
		Commands: []*cli.Command{
			listCmd(),
			searchCmd(),
			exportCmd(),
			checkCmd(),
			docsCmd(),
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer

			topic := strings.Join(cmd.Args().Slice(), " ")
			if topic == "" {
				fmt.Fprint(w, render.Catalog(s.renderer, s.cat))
				return nil
			}
			e, err := s.cat.Find(topic)
			if err != nil {
				return err
			}
			fmt.Fprint(w, s.renderer.Render(e))
			return nil
		},
	}
}

func listCmd() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List available topics",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.Root().Writer, render.Listing(s.cat, s.color))
			return nil
		},
	}
}

func searchCmd() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Show topics matching a keyword",
		ArgsUsage: "<keyword>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			keyword := strings.Join(cmd.Args().Slice(), " ")
			if strings.TrimSpace(keyword) == "" {
				return fmt.Errorf("keyword argument is required")
			}
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			w := cmd.Root().Writer

			matches := slices.Collect(index.New(s.cat).Search(keyword))
			if len(matches) == 0 {
				fmt.Fprintf(w, "No topics match %q.\n", keyword)
				return nil
			}
			fmt.Fprint(w, render.Entries(s.renderer, matches))
			return nil
		},
	}
}

func exportCmd() *cli.Command {
	return &cli.Command{
		Name:  "export",
		Usage: "Write the rendered notes to a file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Destination file", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out := cmd.String("output")
			s, err := openSession(cmd)
			if err != nil {
				return err
			}
			format := s.format
			inferred := formatForPath(out)
			switch {
			case !cmd.IsSet("format") && inferred != "":
				format = inferred
			case cmd.IsSet("format") && inferred != "" && inferred != format:
				ux.Warn(cmd.Root().ErrWriter, fmt.Sprintf("writing %s output to %s, whose extension suggests %s", format, out, inferred), s.color)
			}
			r, err := render.ForFormat(format, render.Options{})
			if err != nil {
				return err
			}
			n, err := export.File(out, r, s.cat)
			if err != nil {
				return err
			}
			ux.Success(cmd.Root().Writer, fmt.Sprintf("Wrote %d topics (%d bytes) to %s", s.cat.Len(), n, out), s.color)
			return nil
		},
	}
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "Validate a notes file",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			var (
				cat        *catalog.Catalog
				configPath string
				err        error
			)
			if path != "" {
				cat, err = catalog.LoadFile(path)
			} else {
				var s *session
				s, err = openSession(cmd)
				if s != nil {
					cat, path, configPath = s.cat, s.sourceName, s.configPath
				}
			}
			if err != nil {
				return err
			}
			w := cmd.Root().Writer
			fmt.Fprintf(w, "%s: %d topics, checksum %s\n", path, cat.Len(), cat.Checksum())
			if configPath != "" {
				fmt.Fprintf(w, "config: %s\n", configPath)
			}
			return nil
		},
	}
}

func docsCmd() *cli.Command {
	return &cli.Command{
		Name:      "docs",
		Usage:     "Show documentation for the notes tool",
		ArgsUsage: "[topic]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer
			name := cmd.Args().First()
			if name == "" {
				fmt.Fprint(w, "\nAvailable topics:\n\n")
				for _, t := range docs.All() {
					fmt.Fprintf(w, "  %-10s %s\n", t.Name, t.Summary)
				}
				fmt.Fprintln(w, "\nRun 'notes docs <topic>' to read a topic.")
				return nil
			}
			t, err := docs.Get(name)
			if err != nil {
				return err
			}
			fmt.Fprint(w, t.Content)
			return nil
		},
	}
}

// formatForPath infers an export format from a file extension.
func formatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return render.FormatHTML
	case ".md", ".markdown":
		return render.FormatMarkdown
	case ".json":
		return render.FormatJSON
	case ".txt":
		return render.FormatText
	}
	return ""
}
