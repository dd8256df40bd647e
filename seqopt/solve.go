// Package seqopt - the solve orchestrator.
//
// Solve wires the pieces end to end: validate once, short-circuit
// degenerate spaces, run the DE driver against the rank-encoded cost
// objective, then replay the winning permutation through the evaluator to
// materialize the full result tables.
package seqopt

import "github.com/katalvlaran/roadseq/roadmap"

// Solve searches for the mission order minimizing total upgrade+penalty
// cost and returns the winning order together with its recorded per-step
// cost and readiness-progression tables and the driver's metadata.
//
// Contracts:
//   - rm must be non-nil; its contents are treated as read-only for the
//     duration of the search.
//   - opts must validate (the only fatal class; see types.go sentinels).
//
// Behavior:
//   - N ≤ 1 missions: the search space is degenerate — the trivial order
//     is materialized directly (Generations=0, Converged=true).
//   - Budget exhaustion is reported via Result.Converged=false; the best
//     candidate found is still returned.
//   - Reproducible: fixed opts.Seed ⇒ identical Result.
//
// Errors: ErrNilRoadmap and the Options sentinels.
//
// Complexity: O(MaxGenerations · PopSizeFactor · N · N·C) worst case.
func Solve(rm *roadmap.Matrix, opts Options) (Result, error) {
	if rm == nil {
		return Result{}, ErrNilRoadmap
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}

	var (
		n    = rm.NumMissions()
		eval = newEvaluator(rm, opts)
	)

	// Degenerate space: zero or one mission admits exactly one order.
	if n <= 1 {
		var order = make([]int, n)
		return materialize(rm, eval, order, 0, true), nil
	}

	// The continuous objective: rank-decode, then cost. Scratch buffers
	// are hoisted out of the closure; the driver is single-threaded.
	var (
		buf   = make([]float64, n)
		perm  = make([]int, n)
		score = func(x []float64) float64 {
			rankInto(buf, perm, x)
			return eval.total(perm)
		}
	)

	var out = runSearch(score, n, opts)

	// Decode the best vector into the final permutation.
	rankInto(buf, perm, out.best)

	return materialize(rm, eval, append([]int(nil), perm...), out.generations, out.converged), nil
}

// materialize replays order through the evaluator in full and assembles
// the caller-facing Result with mission labels in solved order.
func materialize(rm *roadmap.Matrix, eval *evaluator, order []int, generations int, converged bool) Result {
	var (
		ev       = eval.run(order)
		names    = rm.Missions()
		missions = make([]string, len(order))
		i        int
	)
	for i = 0; i < len(order); i++ {
		missions[i] = names[order[i]]
	}

	return Result{
		Order:        order,
		Missions:     missions,
		Capabilities: rm.Capabilities(),
		Total:        ev.Total,
		Cost:         ev.Cost,
		Readiness:    ev.Readiness,
		Generations:  generations,
		Converged:    converged,
	}
}
