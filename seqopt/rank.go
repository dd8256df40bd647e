// Package seqopt - the continuous-to-discrete permutation encoder.
//
// Candidate solutions live in [0,1]^N; only the rank order of their
// components matters. Ranking (argsort) maps every NaN-free real vector to
// a valid permutation, and any two vectors with the same component ordering
// map to the identical permutation — which is exactly what lets a
// continuous optimizer walk a discrete permutation space.
package seqopt

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// RankPermutation returns the permutation of 0..len(x)-1 that sorts x
// ascending: out[i] is the index of the i-th smallest component. The input
// is not mutated.
//
// Contracts:
//   - x must be free of NaN (ranks are undefined under NaN); ±Inf is fine.
//   - Absolute magnitudes are irrelevant; equal rank order ⇒ equal output.
//
// Errors: ErrNaNInput.
//
// Complexity: O(n log n) time, O(n) space.
func RankPermutation(x []float64) ([]int, error) {
	var v float64
	for _, v = range x {
		if math.IsNaN(v) {
			return nil, ErrNaNInput
		}
	}

	var (
		buf  = make([]float64, len(x))
		inds = make([]int, len(x))
	)
	rankInto(buf, inds, x)

	return inds, nil
}

// rankInto is the allocation-free hot-path variant used by the search
// driver: buf and inds are caller-owned scratch of len(x). After the call,
// inds holds the argsort permutation of x. Inputs generated inside the
// driver are NaN-free by construction, so no guard is repeated here.
func rankInto(buf []float64, inds []int, x []float64) {
	copy(buf, x)
	floats.Argsort(buf, inds)
}
