package ux

import (
	"fmt"
	"io"
	"os"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// Color modes accepted by config and flags.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled resolves a color mode for the given output. In auto mode
// color is on only for a character device and when NO_COLOR is unset.
func ColorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// Error prints a top-level error message.
func Error(w io.Writer, err error, color bool) {
	if color {
		fmt.Fprintf(w, "%serror:%s %v\n", Red, Reset, err)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}

// Warn prints a non-fatal notice.
func Warn(w io.Writer, msg string, color bool) {
	if color {
		fmt.Fprintf(w, "%swarning:%s %s\n", Yellow, Reset, msg)
		return
	}
	fmt.Fprintf(w, "warning: %s\n", msg)
}

// Success prints a confirmation line.
func Success(w io.Writer, msg string, color bool) {
	if color {
		fmt.Fprintf(w, "%s✓ %s%s\n", Green, msg, Reset)
		return
	}
	fmt.Fprintf(w, "✓ %s\n", msg)
}
