package seqopt_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadseq/roadmap"
	"github.com/katalvlaran/roadseq/seqopt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// twoMissionOneCap is the canonical forcing scenario: mission A is fully
// dependent on the single capability (readiness 0), mission B does not
// depend on it at all.
func twoMissionOneCap(t *testing.T) *roadmap.Matrix {
	t.Helper()
	return mustMatrix(t,
		[]string{"A", "B"},
		[]string{"Cap"},
		[][]roadmap.Entry{
			{{Readiness: 0, Dependency: 1.0}},
			{{Readiness: 0, Dependency: 0.0}},
		},
	)
}

// TestEvaluate_ForcedUpgradeScenario pins the literal arithmetic of the
// model with τ=0.9 and floor 9, order [A,B]:
//
//	step A: forced to 9 ⇒ upgrade 9, penalty 0, cost 9
//	step B: accumulated 9 kept ⇒ upgrade 0; the previous upgrade triggers
//	        the carry, but the carried value is the previous *penalty*,
//	        which was 0 ⇒ penalty 0, cost 0
//
// Expected total: exactly 9.
func TestEvaluate_ForcedUpgradeScenario(t *testing.T) {
	rm := twoMissionOneCap(t)
	opts := seqopt.DefaultOptions()

	ev, err := seqopt.Evaluate(rm, []int{0, 1}, opts)
	require.NoError(t, err)

	assert.Equal(t, 9.0, ev.Total, "total is the single forced climb")
	assert.Equal(t, [][]float64{{9}, {9}}, ev.Readiness)
	assert.Equal(t, [][]float64{{9}, {0}}, ev.Upgrade)
	assert.Equal(t, [][]float64{{0}, {0}}, ev.Penalty, "the carried value is the prior penalty, still zero")
	assert.Equal(t, [][]float64{{9}, {0}}, ev.Cost)
}

// TestEvaluate_OrderingComparison evaluates the reversed order [B,A] of the
// same scenario. The model's totals telescope per capability, so the
// reversed order settles at the same 9 — the comparison the model
// guarantees is ≥, with the penalty echo carrying a zero magnitude.
func TestEvaluate_OrderingComparison(t *testing.T) {
	rm := twoMissionOneCap(t)
	opts := seqopt.DefaultOptions()

	ab, err := seqopt.Evaluate(rm, []int{0, 1}, opts)
	require.NoError(t, err)
	ba, err := seqopt.Evaluate(rm, []int{1, 0}, opts)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, ba.Total, ab.Total)
	// In [B,A] the forced climb simply moves to the second step.
	assert.Equal(t, [][]float64{{0}, {9}}, ba.Upgrade)
}

// TestEvaluate_ZeroDependencyInvariance removes the forcing rule entirely:
// with every dependency below τ, cost reduces to organic growth — per
// capability, the telescoping sum of positive baseline climbs, i.e. the
// maximum baseline across missions.
func TestEvaluate_ZeroDependencyInvariance(t *testing.T) {
	rm := mustMatrix(t,
		[]string{"M0", "M1", "M2"},
		[]string{"C0", "C1"},
		[][]roadmap.Entry{
			{{Readiness: 2, Dependency: 0.1}, {Readiness: 7, Dependency: 0.0}},
			{{Readiness: 5, Dependency: 0.3}, {Readiness: 4, Dependency: 0.2}},
			{{Readiness: 3, Dependency: 0.0}, {Readiness: 9, Dependency: 0.4}},
		},
	)
	opts := seqopt.DefaultOptions() // τ=0.9 clears every dependency above

	ev, err := seqopt.Evaluate(rm, []int{0, 1, 2}, opts)
	require.NoError(t, err)

	// C0 grows 0→2→5→5, C1 grows 0→7→7→9: totals 5 and 9.
	assert.Equal(t, 14.0, ev.Total)
	assert.Equal(t, [][]float64{{2, 7}, {5, 7}, {5, 9}}, ev.Readiness)
	assert.Equal(t, [][]float64{{0, 0}, {0, 0}, {0, 0}}, ev.Penalty)
}

// TestEvaluate_MonotonicReadiness asserts, over random matrices and random
// permutations, that accumulated readiness never decreases down a column
// and that every cost cell (and the total) is non-negative.
func TestEvaluate_MonotonicReadiness(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	opts := seqopt.DefaultOptions()

	for trial := 0; trial < 25; trial++ {
		m := 2 + rng.Intn(6)
		c := 1 + rng.Intn(5)
		rm := randomMatrix(t, rng, m, c)

		order := rng.Perm(m)
		ev, err := seqopt.Evaluate(rm, order, opts)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, ev.Total, 0.0)
		for col := 0; col < c; col++ {
			for step := 1; step < m; step++ {
				assert.GreaterOrEqual(t, ev.Readiness[step][col], ev.Readiness[step-1][col],
					"readiness regressed at step %d col %d (order %v)", step, col, order)
			}
			for step := 0; step < m; step++ {
				assert.GreaterOrEqual(t, ev.Cost[step][col], 0.0)
			}
		}
	}
}

// TestEvaluate_ThresholdBoundary pins the ≥ comparison: a dependency
// exactly at τ forces the floor; just below does not.
func TestEvaluate_ThresholdBoundary(t *testing.T) {
	opts := seqopt.DefaultOptions() // τ=0.9, floor 9

	atCut := mustMatrix(t, []string{"A"}, []string{"Cap"},
		[][]roadmap.Entry{{{Readiness: 0, Dependency: 0.9}}})
	ev, err := seqopt.Evaluate(atCut, []int{0}, opts)
	require.NoError(t, err)
	assert.Equal(t, 9.0, ev.Total, "dependency at the threshold forces the floor")

	below := mustMatrix(t, []string{"A"}, []string{"Cap"},
		[][]roadmap.Entry{{{Readiness: 0, Dependency: 0.8999}}})
	ev, err = seqopt.Evaluate(below, []int{0}, opts)
	require.NoError(t, err)
	assert.Equal(t, 0.0, ev.Total, "dependency below the threshold forces nothing")
}

// TestEvaluate_Validation exercises the fatal class: nil matrix, malformed
// orders, malformed cost-model options.
func TestEvaluate_Validation(t *testing.T) {
	rm := twoMissionOneCap(t)
	good := seqopt.DefaultOptions()

	_, err := seqopt.Evaluate(nil, []int{0}, good)
	assert.ErrorIs(t, err, seqopt.ErrNilRoadmap)

	for _, bad := range [][]int{{0}, {0, 0}, {0, 2}, {1, -1}, nil} {
		_, err = seqopt.Evaluate(rm, bad, good)
		assert.ErrorIs(t, err, seqopt.ErrBadPermutation, "order %v", bad)
	}

	opts := good
	opts.Threshold = 0
	_, err = seqopt.Evaluate(rm, []int{0, 1}, opts)
	assert.ErrorIs(t, err, seqopt.ErrBadThreshold)

	opts = good
	opts.Threshold = 1.5
	_, err = seqopt.Evaluate(rm, []int{0, 1}, opts)
	assert.ErrorIs(t, err, seqopt.ErrBadThreshold)

	opts = good
	opts.Floor = -1
	_, err = seqopt.Evaluate(rm, []int{0, 1}, opts)
	assert.ErrorIs(t, err, seqopt.ErrBadFloor)
}
