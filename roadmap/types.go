// Package roadmap - sentinel errors and core value types.
//
// This file defines ONLY the package-level sentinels and the Entry/Matrix
// types. Constructors and methods live in matrix.go; derived analysis lives
// in analysis.go. All operations return these sentinels and tests match
// them via errors.Is; nothing in this package panics on user input.
package roadmap

import "errors"

var (
	// ErrShapeMismatch indicates that the row grid does not agree with the
	// mission and capability name lists (wrong row count or a ragged row).
	ErrShapeMismatch = errors.New("roadmap: rows do not match mission/capability counts")

	// ErrEmptyName indicates an empty mission or capability name.
	ErrEmptyName = errors.New("roadmap: empty mission or capability name")

	// ErrDuplicateName indicates a repeated mission or capability name.
	ErrDuplicateName = errors.New("roadmap: duplicate mission or capability name")

	// ErrBadValue indicates an out-of-domain cell: dependency outside [0,1],
	// negative readiness, or a NaN/±Inf in either field.
	ErrBadValue = errors.New("roadmap: dependency must lie in [0,1] and readiness must be finite and non-negative")

	// ErrBadPermutation indicates that Reorder was given a slice that is not
	// a permutation of the mission indices 0..N-1.
	ErrBadPermutation = errors.New("roadmap: order is not a permutation of mission indices")
)

// Entry is one (mission, capability) cell of the roadmap.
//
// The zero value is meaningful: Dependency 0 reads "the mission does not
// depend on this capability" and Readiness 0 reads "nothing achieved yet".
// Upstream sources with blank or non-numeric cells map them to the zero
// Entry by design, so missing data never forces an error path.
type Entry struct {
	// Readiness is the capability's maturity for this mission,
	// conventionally on a 0–13 ordinal scale (9 = operational).
	Readiness float64

	// Dependency is how critical the capability is to this mission, in [0,1]
	// (1 = mission critical, 0 = unused).
	Dependency float64
}

// Matrix is the immutable mission-major roadmap table.
//
// rows[m][c] holds the Entry for mission index m and capability index c,
// where m/c follow the order of the name lists passed to New. Construct via
// New only; the zero Matrix behaves as an empty roadmap.
type Matrix struct {
	missions     []string  // mission names; index order is the permutation domain
	capabilities []string  // capability names; shared column order
	rows         [][]Entry // rows[mission][capability], rectangular
}
