// Package seqopt - the sequential-execution cost evaluator.
//
// One evaluation simulates executing the missions of a permutation in
// order, carrying per-capability accumulated readiness forward and charging
// for every forced climb. The evaluator is a pure function of (matrix,
// order, options): no shared mutable state, no I/O, safe to call from
// concurrent goroutines against the same Matrix.
//
// Design:
//   - The full Evaluation record (readiness / upgrade / penalty / cost
//     tables) is produced on every call; the search driver reads Total and
//     drops the rest, so there is no recording flag to thread through.
//   - Progression state exists only inside one call; it is rebuilt from
//     scratch for every permutation.
//   - Totals are stabilized to 1e-9 to keep cross-platform FP noise out of
//     comparisons (same policy as cost stabilization elsewhere in this
//     author's libraries).
package seqopt

import (
	"math"

	"github.com/katalvlaran/roadseq/roadmap"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// round1e9 rounds x to 9 decimal places to absorb FP drift.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// evaluator is the pre-validated execution engine shared by Evaluate and
// the search driver. It carries only immutable inputs; run allocates its
// own state so a single evaluator may be used from multiple goroutines.
type evaluator struct {
	rm        *roadmap.Matrix
	threshold float64 // dependency forcing threshold τ
	floor     float64 // operational readiness floor R*
	steps     int     // number of missions N
	caps      int     // number of capabilities C
}

// newEvaluator binds a matrix and the cost-model options. Callers must
// have validated opts (see validateCostModel) and rm != nil.
func newEvaluator(rm *roadmap.Matrix, opts Options) *evaluator {
	return &evaluator{
		rm:        rm,
		threshold: opts.Threshold,
		floor:     opts.Floor,
		steps:     rm.NumMissions(),
		caps:      rm.NumCapabilities(),
	}
}

// run walks the missions of order sequentially and fills the Evaluation.
// order must be a valid permutation of 0..N-1 (checked by callers).
//
// Per capability, independently:
//
//	required = max(accumulated, baseline)            when dependency < τ
//	required = max(accumulated, baseline, floor)     when dependency ≥ τ
//	upgrade  = max(0, required − accumulated)
//	penalty  = previous penalty value, carried iff the previous step had a
//	           positive penalty or a positive upgrade; 0 at the first step
//	cost     = upgrade + penalty
//
// and accumulated advances to required. Accumulated readiness is therefore
// non-decreasing down every column, and every cost cell is non-negative.
//
// Complexity: O(N·C) time, O(N·C) space (the returned tables).
func (e *evaluator) run(order []int) Evaluation {
	var (
		ev = Evaluation{
			Readiness: makeTable(e.steps, e.caps),
			Upgrade:   makeTable(e.steps, e.caps),
			Penalty:   makeTable(e.steps, e.caps),
			Cost:      makeTable(e.steps, e.caps),
		}
		total float64

		idx int           // step position in the sequence
		c   int           // capability column
		ent roadmap.Entry // current (mission, capability) cell

		lastR float64 // previous step's accumulated readiness
		lastU float64 // previous step's upgrade cost
		lastP float64 // previous step's penalty value

		required float64
		upgrade  float64
		penalty  float64
	)

	for idx = 0; idx < e.steps; idx++ {
		for c = 0; c < e.caps; c++ {
			ent = e.rm.At(order[idx], c)

			// Before the first step nothing is ready and nothing is owed.
			if idx > 0 {
				lastR = ev.Readiness[idx-1][c]
				lastU = ev.Upgrade[idx-1][c]
				lastP = ev.Penalty[idx-1][c]
			} else {
				lastR, lastU, lastP = 0, 0, 0
			}

			// Forcing rule: a dependency at/above τ pulls the capability up
			// to at least the operational floor.
			required = math.Max(lastR, ent.Readiness)
			if ent.Dependency >= e.threshold {
				required = math.Max(required, e.floor)
			}

			upgrade = math.Max(0, required-lastR)

			// One-step-delayed echo: carry the previous penalty *value*
			// whenever the previous step upgraded or was itself penalized.
			penalty = 0
			if lastP > 0 || lastU > 0 {
				penalty = lastP
			}

			ev.Readiness[idx][c] = required
			ev.Upgrade[idx][c] = upgrade
			ev.Penalty[idx][c] = penalty
			ev.Cost[idx][c] = upgrade + penalty
			total += upgrade + penalty
		}
	}

	ev.Total = round1e9(total)

	return ev
}

// total is the search-driver entry: same walk, same arithmetic, but the
// tables are still produced and discarded by the caller reading one field.
// Kept as a thin alias so the hot loop reads as intent, not mechanism.
func (e *evaluator) total(order []int) float64 {
	return e.run(order).Total
}

// makeTable allocates a zeroed steps×caps table backed by one slab.
func makeTable(steps, caps int) [][]float64 {
	var (
		backing = make([]float64, steps*caps)
		t       = make([][]float64, steps)
		i       int
	)
	for i = 0; i < steps; i++ {
		t[i] = backing[i*caps : (i+1)*caps]
	}

	return t
}

// Evaluate simulates executing the roadmap's missions in the given order
// and returns the full per-step record. This is the public, validated
// surface of the evaluator; Solve uses the same engine internally.
//
// Contracts:
//   - rm must be non-nil.
//   - order must be a permutation of 0..rm.NumMissions()-1.
//   - opts.Threshold/Floor must be valid; driver fields are not consulted.
//
// Errors: ErrNilRoadmap, ErrBadPermutation, ErrBadThreshold, ErrBadFloor.
//
// Complexity: O(N·C).
func Evaluate(rm *roadmap.Matrix, order []int, opts Options) (Evaluation, error) {
	if rm == nil {
		return Evaluation{}, ErrNilRoadmap
	}
	if err := validateCostModel(opts); err != nil {
		return Evaluation{}, err
	}
	if err := validatePermutation(order, rm.NumMissions()); err != nil {
		return Evaluation{}, err
	}

	return newEvaluator(rm, opts).run(order), nil
}
