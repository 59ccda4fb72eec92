package export

import (
	"fmt"
	"io"
	"strings"

	"physcalc/internal/model"
)

// WriteTXT writes history entries as numbered "expr = result" lines.
func WriteTXT(w io.Writer, entries []model.HistoryEntry) error {
	var b strings.Builder
	if len(entries) == 0 {
		b.WriteString("(no history)\n")
	}
	width := len(fmt.Sprint(len(entries)))
	for i, e := range entries {
		fmt.Fprintf(&b, "%*d. %s\n", width, i+1, e.Line())
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}
