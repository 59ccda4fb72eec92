package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"physcalc/internal/model"
)

var csvHeaders = []string{
	"date",
	"time",
	"id",
	"expression",
	"result",
	"value",
}

// WriteCSV writes history entries as semicolon-separated rows with a header
// line. Value is written in full precision so it can be pasted back into the
// calculator.
func WriteCSV(w io.Writer, entries []model.HistoryEntry) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	if err := cw.Write(csvHeaders); err != nil {
		return fmt.Errorf("write csv headers: %w", err)
	}

	for _, e := range entries {
		row := []string{
			e.CreatedAt.Format("02.01.2006"),
			e.CreatedAt.Format("15:04:05"),
			e.ID.String(),
			e.Expression,
			e.Result,
			strconv.FormatFloat(e.Value, 'g', -1, 64),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
