// Package roadmap - Matrix construction and read access.
//
// Design principles:
//   - Validate once, on construction; every later read is infallible.
//   - Deep-copy on the way in and on the way out: callers can never alias
//     internal storage, so a built Matrix is safe for concurrent readers.
//   - Out-of-range reads yield the zero Entry (zero-fill policy), never an
//     error; shape irregularities are absorbed, not propagated.
package roadmap

import "math"

// New builds a validated Matrix from mission names, capability names and a
// mission-major grid of entries (rows[m][c] pairs with missions[m] and
// capabilities[c]).
//
// Contracts:
//   - len(rows) == len(missions); every row has len(capabilities) entries.
//   - Names are non-empty and unique within their list.
//   - Each Entry satisfies 0 ≤ Dependency ≤ 1 and 0 ≤ Readiness < +Inf.
//
// Errors: ErrShapeMismatch, ErrEmptyName, ErrDuplicateName, ErrBadValue.
//
// Complexity: O(M·C) time and space (defensive copy of the grid).
func New(missions, capabilities []string, rows [][]Entry) (*Matrix, error) {
	// Stage 1: shape.
	if len(rows) != len(missions) {
		return nil, ErrShapeMismatch
	}

	// Stage 2: name hygiene.
	if err := validateNames(missions); err != nil {
		return nil, err
	}
	if err := validateNames(capabilities); err != nil {
		return nil, err
	}

	// Stage 3: per-row shape and per-cell domains, copying as we go.
	var (
		m    = len(missions)
		c    = len(capabilities)
		grid = make([][]Entry, m)
		i    int
		j    int
		e    Entry
	)
	for i = 0; i < m; i++ {
		if len(rows[i]) != c {
			return nil, ErrShapeMismatch
		}
		grid[i] = make([]Entry, c)
		for j = 0; j < c; j++ {
			e = rows[i][j]
			if math.IsNaN(e.Dependency) || e.Dependency < 0 || e.Dependency > 1 {
				return nil, ErrBadValue
			}
			if math.IsNaN(e.Readiness) || math.IsInf(e.Readiness, 0) || e.Readiness < 0 {
				return nil, ErrBadValue
			}
			grid[i][j] = e
		}
	}

	return &Matrix{
		missions:     append([]string(nil), missions...),
		capabilities: append([]string(nil), capabilities...),
		rows:         grid,
	}, nil
}

// validateNames enforces non-empty, unique names.
//
// Complexity: O(n) time, O(n) extra space.
func validateNames(names []string) error {
	seen := make(map[string]struct{}, len(names))

	var (
		name string
		ok   bool
	)
	for _, name = range names {
		if name == "" {
			return ErrEmptyName
		}
		if _, ok = seen[name]; ok {
			return ErrDuplicateName
		}
		seen[name] = struct{}{}
	}

	return nil
}

// NumMissions returns the number of missions (the permutation length N).
func (rm *Matrix) NumMissions() int { return len(rm.missions) }

// NumCapabilities returns the number of capabilities (columns per row).
func (rm *Matrix) NumCapabilities() int { return len(rm.capabilities) }

// Missions returns a copy of the mission name list in index order.
func (rm *Matrix) Missions() []string {
	return append([]string(nil), rm.missions...)
}

// Capabilities returns a copy of the capability name list in column order.
func (rm *Matrix) Capabilities() []string {
	return append([]string(nil), rm.capabilities...)
}

// At returns the Entry for mission index m and capability index c.
// Out-of-range indices yield the zero Entry: a pair the roadmap does not
// cover is "not dependent, not ready" by definition, never an error.
//
// Complexity: O(1).
func (rm *Matrix) At(m, c int) Entry {
	if m < 0 || m >= len(rm.rows) {
		return Entry{}
	}
	if c < 0 || c >= len(rm.capabilities) {
		return Entry{}
	}

	return rm.rows[m][c]
}

// Row returns a copy of mission m's full capability row. Out-of-range m
// yields a zero-filled row of capability length (zero-fill policy).
//
// Complexity: O(C).
func (rm *Matrix) Row(m int) []Entry {
	if m < 0 || m >= len(rm.rows) {
		return make([]Entry, len(rm.capabilities))
	}

	return append([]Entry(nil), rm.rows[m]...)
}

// Reorder returns a new Matrix whose missions follow the given execution
// order: row i of the result is the row of mission order[i]. Capability
// columns are untouched. Used to materialize a solved sequence as a
// roadmap again (e.g. for export side by side with the cost tables).
//
// Contracts:
//   - order must be a permutation of 0..NumMissions()-1.
//
// Errors: ErrBadPermutation.
//
// Complexity: O(M·C) time and space.
func (rm *Matrix) Reorder(order []int) (*Matrix, error) {
	var n = len(rm.missions)
	if len(order) != n {
		return nil, ErrBadPermutation
	}

	// Each index must appear exactly once.
	var (
		seen = make([]bool, n)
		idx  int
	)
	for _, idx = range order {
		if idx < 0 || idx >= n || seen[idx] {
			return nil, ErrBadPermutation
		}
		seen[idx] = true
	}

	var (
		missions = make([]string, n)
		grid     = make([][]Entry, n)
		i        int
	)
	for i = 0; i < n; i++ {
		missions[i] = rm.missions[order[i]]
		grid[i] = append([]Entry(nil), rm.rows[order[i]]...)
	}

	return &Matrix{
		missions:     missions,
		capabilities: append([]string(nil), rm.capabilities...),
		rows:         grid,
	}, nil
}
