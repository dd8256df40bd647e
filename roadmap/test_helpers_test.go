package roadmap_test

import "math"

// nan and inf keep fixture literals readable in table-driven tests.
func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }
