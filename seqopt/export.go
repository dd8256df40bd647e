// Package seqopt - CSV emission of solved result tables.
//
// The reporting layer downstream consumes the optimizer's two output
// tables as plain CSV: a header row of capability names, then one row per
// mission in solved order. Shapes mirror roadmap's own exporters so the
// files sit side by side.
package seqopt

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCostCSV writes the per-step cost table to w, row-labeled by
// mission in solved order and column-labeled by capability.
//
// Errors: only those surfaced by the underlying writer.
//
// Complexity: O(N·C).
func (r Result) WriteCostCSV(w io.Writer) error {
	return writeTableCSV(w, r.Missions, r.Capabilities, r.Cost)
}

// WriteReadinessCSV writes the accumulated readiness-progression table to
// w, in the same shape as WriteCostCSV.
func (r Result) WriteReadinessCSV(w io.Writer) error {
	return writeTableCSV(w, r.Missions, r.Capabilities, r.Readiness)
}

// writeTableCSV emits one labeled table: ("", cols...), then per row
// (rowLabel, values...).
func writeTableCSV(w io.Writer, rows, cols []string, table [][]float64) error {
	var (
		cw     = csv.NewWriter(w)
		record = make([]string, 1+len(cols))
		i      int
		j      int
	)

	record[0] = ""
	copy(record[1:], cols)
	if err := cw.Write(record); err != nil {
		return err
	}

	for i = 0; i < len(rows) && i < len(table); i++ {
		record[0] = rows[i]
		for j = 0; j < len(cols) && j < len(table[i]); j++ {
			record[1+j] = strconv.FormatFloat(table[i][j], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
