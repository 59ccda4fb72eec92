package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"physcalc/internal/model"
)

func sampleEntries() []model.HistoryEntry {
	return []model.HistoryEntry{
		{
			ID:         uuid.MustParse("6f1c2b0e-8d4a-4c1e-9b3f-2a7d5e9c1f00"),
			Expression: "h*c",
			Result:     "1.989×10^-25",
			Value:      1.989e-25,
			CreatedAt:  time.Date(2026, 2, 13, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:         uuid.MustParse("0b8e6d2c-1f3a-4d5b-8c7e-9a0f1e2d3c4b"),
			Expression: "sqrt(16); 2",
			Result:     "4",
			Value:      4,
			CreatedAt:  time.Date(2026, 2, 13, 12, 1, 30, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleEntries()); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	r := csv.NewReader(strings.NewReader(buf.String()))
	r.Comma = ';'
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("got %d records, want 3 (header + 2 rows)", len(records))
	}

	header := records[0]
	if len(header) != len(csvHeaders) {
		t.Fatalf("header has %d columns, want %d", len(header), len(csvHeaders))
	}
	if header[3] != "expression" {
		t.Errorf("header[3] = %q, want expression", header[3])
	}

	row := records[1]
	if row[0] != "13.02.2026" {
		t.Errorf("date = %q, want 13.02.2026", row[0])
	}
	if row[1] != "12:00:00" {
		t.Errorf("time = %q, want 12:00:00", row[1])
	}
	if row[2] != "6f1c2b0e-8d4a-4c1e-9b3f-2a7d5e9c1f00" {
		t.Errorf("id = %q", row[2])
	}
	if row[4] != "1.989×10^-25" {
		t.Errorf("result = %q, want 1.989×10^-25", row[4])
	}
	if row[5] != "1.989e-25" {
		t.Errorf("value = %q, want 1.989e-25", row[5])
	}

	// Separator inside an expression survives quoting.
	if records[2][3] != "sqrt(16); 2" {
		t.Errorf("expression = %q, want %q", records[2][3], "sqrt(16); 2")
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}
	want := strings.Join(csvHeaders, ";") + "\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteCSV_WriterError(t *testing.T) {
	if err := WriteCSV(failingWriter{}, sampleEntries()); err == nil {
		t.Error("WriteCSV() error = nil, want error")
	}
}
