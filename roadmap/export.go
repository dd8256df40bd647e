// Package roadmap - CSV emission of a (possibly reordered) roadmap.
//
// The optimizer's consumers want the solved sequence back in the same shape
// the roadmap arrives in: one row per mission, one column per capability,
// header row of capability names. These writers produce exactly that, for
// either side of the Entry pair. Parsing/cleaning of upstream source files
// is out of scope here — this package only writes what it already holds.
package roadmap

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteReadinessCSV writes the readiness side of the matrix to w:
// a header row ("", capabilities...) followed by one row per mission in
// the matrix's current order. Combine with Reorder to export a solved
// sequence.
//
// Errors: only those surfaced by the underlying writer.
//
// Complexity: O(M·C).
func (rm *Matrix) WriteReadinessCSV(w io.Writer) error {
	return rm.writeCSV(w, func(e Entry) float64 { return e.Readiness })
}

// WriteDependencyCSV writes the dependency side of the matrix to w, in the
// same shape as WriteReadinessCSV.
func (rm *Matrix) WriteDependencyCSV(w io.Writer) error {
	return rm.writeCSV(w, func(e Entry) float64 { return e.Dependency })
}

// writeCSV emits the table with one Entry field selected by pick.
func (rm *Matrix) writeCSV(w io.Writer, pick func(Entry) float64) error {
	var (
		cw     = csv.NewWriter(w)
		record = make([]string, 1+len(rm.capabilities))
		m      int
		c      int
	)

	// Header: empty corner cell, then capability names.
	record[0] = ""
	copy(record[1:], rm.capabilities)
	if err := cw.Write(record); err != nil {
		return err
	}

	for m = 0; m < len(rm.rows); m++ {
		record[0] = rm.missions[m]
		for c = 0; c < len(rm.capabilities); c++ {
			record[1+c] = strconv.FormatFloat(pick(rm.rows[m][c]), 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}
