package export

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteTXT(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTXT(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	want := "1. h*c = 1.989×10^-25\n2. sqrt(16); 2 = 4\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

func TestWriteTXT_Padding(t *testing.T) {
	entries := sampleEntries()
	for len(entries) < 10 {
		entries = append(entries, entries[0])
	}

	var buf bytes.Buffer
	if err := WriteTXT(&buf, entries); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("got %d lines, want 10", len(lines))
	}
	if !strings.HasPrefix(lines[0], " 1. ") {
		t.Errorf("line 1 = %q, want right-aligned number", lines[0])
	}
	if !strings.HasPrefix(lines[9], "10. ") {
		t.Errorf("line 10 = %q", lines[9])
	}
}

func TestWriteTXT_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTXT(&buf, nil); err != nil {
		t.Fatalf("WriteTXT() error: %v", err)
	}
	if buf.String() != "(no history)\n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestWriteTXT_WriterError(t *testing.T) {
	if err := WriteTXT(failingWriter{}, sampleEntries()); err == nil {
		t.Error("WriteTXT() error = nil, want error")
	}
}
