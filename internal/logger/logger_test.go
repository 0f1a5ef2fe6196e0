package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestLinkActivatedWritesTarget(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithLevel(&buf, log.DebugLevel)
	l.LinkActivated("https://example.com")
	out := buf.String()
	if !strings.Contains(out, "link activated") || !strings.Contains(out, "https://example.com") {
		t.Fatalf("expected link event in output, got %q", out)
	}
}

func TestDebugEventsFilteredAtInfo(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf)
	l.RaggedRow(1, 2, 3)
	if buf.Len() != 0 {
		t.Fatalf("expected debug event to be filtered, got %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	if lvl, err := ParseLevel(""); err != nil || lvl != log.InfoLevel {
		t.Fatalf("expected info default, got %v %v", lvl, err)
	}
	if lvl, err := ParseLevel(" DEBUG "); err != nil || lvl != log.DebugLevel {
		t.Fatalf("expected debug, got %v %v", lvl, err)
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
