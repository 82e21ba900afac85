package log

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"warning": LevelWarn,
		"Error":   LevelError,
		"off":     LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Fatalf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelWarn)
	l.Debugf("d")
	l.Infof("i")
	l.Warnf("w %d", 1)
	l.Errorf("e")
	out := buf.String()
	if strings.Contains(out, "DEBUG") || strings.Contains(out, "INFO") {
		t.Fatalf("low-level lines leaked: %q", out)
	}
	if !strings.Contains(out, "WARN: w 1") || !strings.Contains(out, "ERROR: e") {
		t.Fatalf("missing lines: %q", out)
	}
}

func TestWithSharesLevelAndTags(t *testing.T) {
	var buf bytes.Buffer
	root := New(&buf, LevelError)
	child := root.With("round")
	child.Infof("hidden")
	root.SetLevel(LevelDebug)
	child.Debugf("tile %d", 3)
	if got := buf.String(); got != "DEBUG: [ROUND] tile 3\n" {
		t.Fatalf("output = %q", got)
	}
	if child.Level() != LevelDebug {
		t.Fatalf("child level = %v", child.Level())
	}
}
