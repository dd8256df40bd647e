// Package seqopt - the differential-evolution search driver.
//
// A plain, deterministic DE over the unit hypercube [0,1]^dim:
//
//	mutant:    base + F·(r1 − r2)      base = incumbent best (Best1Bin)
//	                                   or a random member    (Rand1Bin)
//	crossover: binomial with probability CR, one forced column
//	selection: trial replaces parent when not worse
//
// F is re-drawn each generation from [MutationMin, MutationMax) (dithering)
// which softens the usual exploration/exploitation trade-off. Candidates
// are clamped back into [0,1] after mutation; since only component ranks
// carry signal downstream, clamping costs nothing semantically.
//
// The driver knows nothing about permutations or roadmaps — it minimizes
// an arbitrary objective over the hypercube. The rank encoder lives inside
// the objective closure handed in by Solve.
package seqopt

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// minPopulation is the smallest population that keeps donor selection
// well-defined (parent plus three distinct members).
const minPopulation = 4

// searchOutcome carries the driver's best candidate and run metadata.
// Non-convergence is metadata here, never an error: best/cost are the best
// found regardless of why the loop stopped.
type searchOutcome struct {
	best        []float64 // best vector found (length dim)
	cost        float64   // objective value of best
	generations int       // generations actually run
	converged   bool      // population spread met Tol before the budget
}

// runSearch minimizes objective over [0,1]^dim with the configured DE.
// Callers guarantee dim ≥ 2 (degenerate spaces short-circuit in Solve)
// and validated opts.
//
// Determinism: the user seed is split into two decorrelated streams — one
// for population initialization, one for evolution — so results depend
// only on (opts, dim, objective).
//
// Complexity: O(MaxGenerations · popSize · (dim + cost of objective)).
func runSearch(objective func([]float64) float64, dim int, opts Options) searchOutcome {
	var (
		base    = rngFromSeed(opts.Seed)
		initRNG = deriveRNG(base, 0) // population initialization stream
		evoRNG  = deriveRNG(base, 1) // mutation/crossover stream

		popSize = opts.PopSizeFactor * dim
	)
	if popSize < minPopulation {
		popSize = minPopulation
	}

	// Population laid out over one backing slab; costs evaluated up front.
	var (
		backing    = make([]float64, popSize*dim)
		population = make([][]float64, popSize)
		costs      = make([]float64, popSize)
		bestIdx    = 0
		i          int
		j          int
	)
	for i = 0; i < popSize; i++ {
		population[i] = backing[i*dim : (i+1)*dim]
		for j = 0; j < dim; j++ {
			population[i][j] = initRNG.Float64()
		}
		costs[i] = objective(population[i])
		if costs[i] < costs[bestIdx] {
			bestIdx = i
		}
	}

	var (
		best     = append([]float64(nil), population[bestIdx]...)
		bestCost = costs[bestIdx]
		trial    = make([]float64, dim)

		gen   int
		f     float64 // differential weight for this generation
		donor []float64
		r0    int
		r1    int
		r2    int
		jrand int
		c     float64
	)

	for gen = 1; gen <= opts.MaxGenerations; gen++ {
		// Dithered differential weight: one draw per generation.
		f = opts.MutationMin + evoRNG.Float64()*(opts.MutationMax-opts.MutationMin)

		for i = 0; i < popSize; i++ {
			r0, r1, r2 = pickDonors(evoRNG, popSize, i)
			if opts.Strategy == Best1Bin {
				donor = best
			} else {
				donor = population[r0]
			}

			// Binomial crossover with one guaranteed mutant column.
			jrand = evoRNG.Intn(dim)
			for j = 0; j < dim; j++ {
				if j == jrand || evoRNG.Float64() < opts.Recombination {
					trial[j] = clamp01(donor[j] + f*(population[r1][j]-population[r2][j]))
				} else {
					trial[j] = population[i][j]
				}
			}

			// Greedy selection; "not worse" lets the population drift across
			// cost plateaus, which rank-encoded permutation spaces are full of.
			c = objective(trial)
			if c <= costs[i] {
				copy(population[i], trial)
				costs[i] = c
				if c < bestCost {
					bestCost = c
					copy(best, trial)
				}
			}
		}

		if populationConverged(costs, opts.Tol) {
			return searchOutcome{best: best, cost: bestCost, generations: gen, converged: true}
		}
	}

	return searchOutcome{best: best, cost: bestCost, generations: opts.MaxGenerations, converged: false}
}

// pickDonors draws three distinct member indices, all different from i.
// Population size ≥ minPopulation keeps the rejection loops finite.
func pickDonors(rng *rand.Rand, popSize, i int) (r0, r1, r2 int) {
	r0, r1, r2 = i, i, i
	for r0 == i {
		r0 = rng.Intn(popSize)
	}
	for r1 == i || r1 == r0 {
		r1 = rng.Intn(popSize)
	}
	for r2 == i || r2 == r0 || r2 == r1 {
		r2 = rng.Intn(popSize)
	}

	return r0, r1, r2
}

// populationConverged reports whether the cost spread collapsed relative
// to its mean: std ≤ tol·|mean|. A fully flat population (std 0) always
// converges, including at mean 0.
func populationConverged(costs []float64, tol float64) bool {
	var (
		mean = stat.Mean(costs, nil)
		std  = stat.StdDev(costs, nil)
	)

	return std <= tol*math.Abs(mean)
}

// clamp01 clips v into the unit interval.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}

	return v
}
