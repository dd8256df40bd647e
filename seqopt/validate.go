// Package seqopt - validation utilities shared by Evaluate and Solve.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input — only sentinel errors from
//     types.go.
//   - Malformed configuration is the single fatal class in this package;
//     everything else (ragged data, non-convergence, degenerate spaces)
//     recovers locally.
package seqopt

import "math"

// validateOptions verifies the full Options surface before a search
// begins: the cost model first, then the driver knobs.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if err := validateCostModel(opts); err != nil {
		return err
	}

	return validateDriver(opts)
}

// validateCostModel checks the fields the evaluator consumes.
//
// Complexity: O(1).
func validateCostModel(opts Options) error {
	// τ=0 would force every capability everywhere; the threshold is a
	// strictly positive cut-off by contract.
	if math.IsNaN(opts.Threshold) || opts.Threshold <= 0 || opts.Threshold > 1 {
		return ErrBadThreshold
	}
	if math.IsNaN(opts.Floor) || math.IsInf(opts.Floor, 0) || opts.Floor < 0 {
		return ErrBadFloor
	}

	return nil
}

// validateDriver checks the search-driver knobs.
//
// Complexity: O(1).
func validateDriver(opts Options) error {
	if opts.PopSizeFactor < 1 {
		return ErrBadPopSize
	}
	// F ≥ 2 provably cannot contract differences; the usual DE domain is
	// [0,2), and min must not exceed max.
	if math.IsNaN(opts.MutationMin) || math.IsNaN(opts.MutationMax) ||
		opts.MutationMin < 0 || opts.MutationMax < opts.MutationMin || opts.MutationMax >= 2 {
		return ErrBadMutation
	}
	if math.IsNaN(opts.Recombination) || opts.Recombination < 0 || opts.Recombination > 1 {
		return ErrBadRecombination
	}
	if opts.MaxGenerations < 1 {
		return ErrBadGenerations
	}
	if math.IsNaN(opts.Tol) || math.IsInf(opts.Tol, 0) || opts.Tol < 0 {
		return ErrBadTol
	}

	switch opts.Strategy {
	case Best1Bin, Rand1Bin:
		// ok
	default:
		return ErrUnknownStrategy
	}

	return nil
}

// validatePermutation enforces that order is a permutation of 0..n-1:
// correct length, every index in range, each exactly once.
//
// Complexity: O(n) time, O(n) space.
func validatePermutation(order []int, n int) error {
	if len(order) != n {
		return ErrBadPermutation
	}

	var (
		seen = make([]bool, n)
		idx  int
	)
	for _, idx = range order {
		if idx < 0 || idx >= n || seen[idx] {
			return ErrBadPermutation
		}
		seen[idx] = true
	}

	return nil
}
