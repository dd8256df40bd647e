// Package seqopt_test - shared fixtures for evaluator and driver tests.
package seqopt_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/roadseq/roadmap"
	"github.com/stretchr/testify/require"
)

// mustMatrix builds a Matrix or fails the test.
func mustMatrix(tb testing.TB, missions, capabilities []string, rows [][]roadmap.Entry) *roadmap.Matrix {
	tb.Helper()
	rm, err := roadmap.New(missions, capabilities, rows)
	require.NoError(tb, err, "fixture must construct")
	return rm
}

// randomMatrix builds an m×c matrix with readiness in [0,13] and
// dependency in [0,1], drawn from rng (deterministic under a fixed seed).
func randomMatrix(tb testing.TB, rng *rand.Rand, m, c int) *roadmap.Matrix {
	tb.Helper()

	missions := make([]string, m)
	capabilities := make([]string, c)
	rows := make([][]roadmap.Entry, m)
	for i := 0; i < m; i++ {
		missions[i] = fmt.Sprintf("M%02d", i)
		rows[i] = make([]roadmap.Entry, c)
		for j := 0; j < c; j++ {
			rows[i][j] = roadmap.Entry{
				Readiness:  float64(rng.Intn(14)),
				Dependency: rng.Float64(),
			}
		}
	}
	for j := 0; j < c; j++ {
		capabilities[j] = fmt.Sprintf("C%02d", j)
	}

	return mustMatrix(tb, missions, capabilities, rows)
}

// identity returns the identity permutation of length n.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
