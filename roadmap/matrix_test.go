package roadmap_test

import (
	"testing"

	"github.com/katalvlaran/roadseq/roadmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSmall returns a 2-mission × 2-capability matrix used across tests.
func buildSmall(t *testing.T) *roadmap.Matrix {
	t.Helper()
	rm, err := roadmap.New(
		[]string{"Alpha", "Beta"},
		[]string{"Comms", "Nav"},
		[][]roadmap.Entry{
			{{Readiness: 3, Dependency: 1}, {Readiness: 5, Dependency: 0.2}},
			{{Readiness: 7, Dependency: 0.5}, {Readiness: 0, Dependency: 0}},
		},
	)
	require.NoError(t, err, "valid fixture must construct")
	return rm
}

// TestNew_ShapeMismatch verifies ErrShapeMismatch on row-count and ragged-row
// violations.
func TestNew_ShapeMismatch(t *testing.T) {
	// Too few rows for the mission list.
	_, err := roadmap.New(
		[]string{"A", "B"},
		[]string{"C1"},
		[][]roadmap.Entry{{{}}},
	)
	assert.ErrorIs(t, err, roadmap.ErrShapeMismatch, "missing mission row must error")

	// Ragged row: second row is short one capability.
	_, err = roadmap.New(
		[]string{"A", "B"},
		[]string{"C1", "C2"},
		[][]roadmap.Entry{{{}, {}}, {{}}},
	)
	assert.ErrorIs(t, err, roadmap.ErrShapeMismatch, "ragged row must error")
}

// TestNew_NameValidation verifies empty and duplicate name rejection for
// both name lists.
func TestNew_NameValidation(t *testing.T) {
	rows := [][]roadmap.Entry{{{}}, {{}}}

	_, err := roadmap.New([]string{"A", ""}, []string{"C1"}, rows)
	assert.ErrorIs(t, err, roadmap.ErrEmptyName, "empty mission name must error")

	_, err = roadmap.New([]string{"A", "A"}, []string{"C1"}, rows)
	assert.ErrorIs(t, err, roadmap.ErrDuplicateName, "duplicate mission name must error")

	_, err = roadmap.New([]string{"A", "B"}, []string{"C1", "C1"}, [][]roadmap.Entry{{{}, {}}, {{}, {}}})
	assert.ErrorIs(t, err, roadmap.ErrDuplicateName, "duplicate capability name must error")
}

// TestNew_BadValue covers the per-cell domain checks.
func TestNew_BadValue(t *testing.T) {
	cases := []struct {
		name string
		e    roadmap.Entry
	}{
		{"dependency above one", roadmap.Entry{Readiness: 0, Dependency: 1.5}},
		{"negative dependency", roadmap.Entry{Readiness: 0, Dependency: -0.1}},
		{"negative readiness", roadmap.Entry{Readiness: -1, Dependency: 0}},
		{"NaN readiness", roadmap.Entry{Readiness: nan(), Dependency: 0}},
		{"NaN dependency", roadmap.Entry{Readiness: 0, Dependency: nan()}},
		{"infinite readiness", roadmap.Entry{Readiness: inf(), Dependency: 0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := roadmap.New([]string{"A"}, []string{"C1"}, [][]roadmap.Entry{{tc.e}})
			assert.ErrorIs(t, err, roadmap.ErrBadValue)
		})
	}
}

// TestMatrix_AtZeroFill verifies the zero-fill policy for out-of-range
// lookups: absent pairs read as "not dependent, not ready", never an error.
func TestMatrix_AtZeroFill(t *testing.T) {
	rm := buildSmall(t)

	assert.Equal(t, roadmap.Entry{Readiness: 3, Dependency: 1}, rm.At(0, 0), "in-range lookup")
	assert.Equal(t, roadmap.Entry{}, rm.At(-1, 0), "negative mission index zero-fills")
	assert.Equal(t, roadmap.Entry{}, rm.At(0, 99), "capability overflow zero-fills")
	assert.Equal(t, roadmap.Entry{}, rm.At(99, 99), "both overflow zero-fills")
}

// TestMatrix_AccessorsCopy ensures callers cannot alias internal storage
// through any accessor.
func TestMatrix_AccessorsCopy(t *testing.T) {
	rm := buildSmall(t)

	names := rm.Missions()
	names[0] = "mutated"
	assert.Equal(t, "Alpha", rm.Missions()[0], "Missions must return a copy")

	row := rm.Row(0)
	row[0] = roadmap.Entry{Readiness: 99, Dependency: 1}
	assert.Equal(t, 3.0, rm.At(0, 0).Readiness, "Row must return a copy")

	// Out-of-range Row zero-fills to capability length.
	assert.Len(t, rm.Row(-5), 2, "out-of-range Row keeps column arity")
}

// TestMatrix_Reorder verifies both the happy path and every malformed-order
// shape.
func TestMatrix_Reorder(t *testing.T) {
	rm := buildSmall(t)

	got, err := rm.Reorder([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"Beta", "Alpha"}, got.Missions(), "rows follow the order")
	assert.Equal(t, rm.At(1, 0), got.At(0, 0), "row content moves with the mission")
	assert.Equal(t, []string{"Alpha", "Beta"}, rm.Missions(), "source matrix untouched")

	for _, bad := range [][]int{
		{0},        // short
		{0, 1, 1},  // long
		{0, 0},     // repeated index
		{0, 2},     // out of range
		{-1, 0},    // negative
		nil,        // nil
	} {
		_, err = rm.Reorder(bad)
		assert.ErrorIs(t, err, roadmap.ErrBadPermutation, "order %v must be rejected", bad)
	}
}
