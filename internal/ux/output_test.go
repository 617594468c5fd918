package ux

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestColorEnabled_Modes(t *testing.T) {
	var buf bytes.Buffer
	if !ColorEnabled(ColorAlways, &buf) {
		t.Fatal("always should enable color")
	}
	if ColorEnabled(ColorNever, &buf) {
		t.Fatal("never should disable color")
	}
	if ColorEnabled(ColorAuto, &buf) {
		t.Fatal("auto should disable color for a non-terminal writer")
	}
}

func TestColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if ColorEnabled(ColorAuto, nil) {
		t.Fatal("NO_COLOR should disable color in auto mode")
	}
}

func TestError_Plain(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"), false)
	if buf.String() != "error: boom\n" {
		t.Fatalf("got %q", buf.String())
	}
}

func TestError_Color(t *testing.T) {
	var buf bytes.Buffer
	Error(&buf, errors.New("boom"), true)
	if !strings.HasPrefix(buf.String(), Red) || !strings.Contains(buf.String(), "boom") {
		t.Fatalf("got %q", buf.String())
	}
}

func TestWarn_Plain(t *testing.T) {
	var buf bytes.Buffer
	Warn(&buf, "careful", false)
	if buf.String() != "warning: careful\n" {
		t.Fatalf("got %q", buf.String())
	}
}
