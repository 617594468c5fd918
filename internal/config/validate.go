package config

import (
	"fmt"
	"os"
	"strings"
)

var validFormats = map[string]bool{
	"text":     true,
	"markdown": true,
	"html":     true,
	"json":     true,
}

var validColors = map[string]bool{
	"auto":   true,
	"always": true,
	"never":  true,
}

func setDefaults(cfg *Config) {
	if cfg.Format == "" {
		cfg.Format = "text"
	}
	if cfg.Color == "" {
		cfg.Color = "auto"
	}
}

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	setDefaults(cfg)

	cfg.Format = strings.ToLower(cfg.Format)
	if !validFormats[cfg.Format] {
		return fmt.Errorf("config: unknown format %q (must be text, markdown, html, or json)", cfg.Format)
	}
	cfg.Color = strings.ToLower(cfg.Color)
	if !validColors[cfg.Color] {
		return fmt.Errorf("config: unknown color mode %q (must be auto, always, or never)", cfg.Color)
	}

	if cfg.Source != "" {
		fi, err := os.Stat(cfg.Source)
		if err != nil {
			return fmt.Errorf("config: source file %q not found", cfg.Source)
		}
		if fi.IsDir() {
			return fmt.Errorf("config: source %q is a directory", cfg.Source)
		}
	}
	return nil
}
