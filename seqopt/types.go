// Package seqopt - sentinel errors, configuration and result types.
//
// This file defines ONLY the package-level sentinels, the Strategy enum,
// Options/DefaultOptions and the result carriers. Behavior lives in
// rank.go (encoder), cost.go (evaluator), de.go (search driver) and
// solve.go (orchestration). All exported operations return these
// sentinels; tests match them via errors.Is. No panics on user input.
package seqopt

import "errors"

var (
	// ErrNilRoadmap indicates that a nil *roadmap.Matrix was passed in.
	ErrNilRoadmap = errors.New("seqopt: roadmap matrix is nil")

	// ErrBadThreshold indicates a dependency threshold outside (0,1].
	ErrBadThreshold = errors.New("seqopt: Threshold must lie in (0,1]")

	// ErrBadFloor indicates a negative or non-finite operational floor.
	ErrBadFloor = errors.New("seqopt: Floor must be finite and non-negative")

	// ErrBadPopSize indicates a non-positive population size factor.
	ErrBadPopSize = errors.New("seqopt: PopSizeFactor must be at least 1")

	// ErrBadMutation indicates a mutation range violating 0 ≤ min ≤ max < 2.
	ErrBadMutation = errors.New("seqopt: mutation range must satisfy 0 ≤ MutationMin ≤ MutationMax < 2")

	// ErrBadRecombination indicates a crossover probability outside [0,1].
	ErrBadRecombination = errors.New("seqopt: Recombination must lie in [0,1]")

	// ErrBadGenerations indicates a non-positive generation budget.
	ErrBadGenerations = errors.New("seqopt: MaxGenerations must be at least 1")

	// ErrBadTol indicates a negative or non-finite convergence tolerance.
	ErrBadTol = errors.New("seqopt: Tol must be finite and non-negative")

	// ErrUnknownStrategy indicates an unrecognized recombination strategy.
	ErrUnknownStrategy = errors.New("seqopt: unknown search strategy")

	// ErrBadPermutation indicates that an order slice is not a permutation
	// of the roadmap's mission indices 0..N-1.
	ErrBadPermutation = errors.New("seqopt: order is not a permutation of mission indices")

	// ErrNaNInput indicates a NaN component in a candidate vector handed to
	// the rank encoder; ranks are undefined under NaN.
	ErrNaNInput = errors.New("seqopt: candidate vector contains NaN")
)

// Strategy selects how the differential-evolution driver builds mutant
// vectors.
//
// Best1Bin — perturb the current best member: best + F·(r1 − r2).
// Rand1Bin — perturb a random member:        r0   + F·(r1 − r2).
//
// Both recombine with the parent through binomial (per-component) crossover.
type Strategy int

const (
	// Best1Bin biases the search toward the incumbent optimum; fast
	// convergence, the conventional default.
	Best1Bin Strategy = iota

	// Rand1Bin explores more broadly at the price of slower convergence.
	Rand1Bin
)

// String returns the canonical lower-case strategy name.
func (s Strategy) String() string {
	switch s {
	case Best1Bin:
		return "best1bin"
	case Rand1Bin:
		return "rand1bin"
	default:
		return "unknown"
	}
}

// Options configures the cost model and the search driver.
//
// Cost model:
//   - Threshold — dependency level at/above which a capability is forced to
//     the operational floor; must lie in (0,1].
//   - Floor     — operational readiness floor R*; conventionally 9 on the
//     0–13 scale.
//
// Search driver:
//   - PopSizeFactor  — population = PopSizeFactor × N (clamped to a small
//     minimum so donor selection always has distinct members).
//   - MutationMin/Max — differential weight F is drawn uniformly from
//     [MutationMin, MutationMax) each generation (dithering); set both
//     equal for a fixed F.
//   - Recombination  — binomial crossover probability CR in [0,1].
//   - Strategy       — Best1Bin or Rand1Bin.
//   - MaxGenerations — hard iteration budget; exhaustion is reported via
//     Result.Converged, never as an error.
//   - Tol            — relative convergence tolerance: stop once
//     std(costs) ≤ Tol·|mean(costs)| across the population.
//   - Seed           — RNG seed; 0 selects the fixed internal default so
//     results stay reproducible by default.
type Options struct {
	Threshold      float64  // dependency forcing threshold τ ∈ (0,1]
	Floor          float64  // operational readiness floor R*
	PopSizeFactor  int      // population size multiplier
	MutationMin    float64  // lower bound of the dithered mutation factor
	MutationMax    float64  // upper bound of the dithered mutation factor
	Recombination  float64  // crossover probability CR
	Strategy       Strategy // mutant construction scheme
	MaxGenerations int      // generation budget
	Tol            float64  // relative population-spread stopping tolerance
	Seed           int64    // RNG seed (0 ⇒ fixed default stream)
}

// DefaultOptions returns the conventional configuration: critical-only
// forcing (τ=0.9) toward an operational floor of 9, and a best1bin search
// with a ×5 population, dithered mutation in [0.5,1.5), CR=0.7, up to 1000
// generations and a 1% relative stopping tolerance.
func DefaultOptions() Options {
	return Options{
		Threshold:      0.9,
		Floor:          9,
		PopSizeFactor:  5,
		MutationMin:    0.5,
		MutationMax:    1.5,
		Recombination:  0.7,
		Strategy:       Best1Bin,
		MaxGenerations: 1000,
		Tol:            0.01,
		Seed:           0,
	}
}

// Evaluation is the full record of one permutation's simulated execution.
// All tables are step-major: [step][capability], where step i is the i-th
// mission in the evaluated order. It is always fully populated — callers
// that only need Total simply ignore the rest.
type Evaluation struct {
	// Readiness holds the accumulated readiness reached by each step;
	// non-decreasing down every column.
	Readiness [][]float64

	// Upgrade holds max(0, required − previous accumulated) per cell.
	Upgrade [][]float64

	// Penalty holds the one-step-delayed carry value per cell.
	Penalty [][]float64

	// Cost holds Upgrade + Penalty per cell.
	Cost [][]float64

	// Total is the sum over all Cost cells, stabilized to 1e-9.
	Total float64
}

// Result is the outcome of a full solve: the winning order plus the
// recorded tables of its execution and the driver's search metadata.
type Result struct {
	// Order is the winning permutation of mission indices.
	Order []int

	// Missions lists mission names in solved (execution) order.
	Missions []string

	// Capabilities lists capability names in column order, labeling the
	// columns of Cost and Readiness.
	Capabilities []string

	// Total is the minimized total cost.
	Total float64

	// Cost is the per-step cost table, row-labeled by Missions.
	Cost [][]float64

	// Readiness is the per-step accumulated-readiness table.
	Readiness [][]float64

	// Generations is the number of generations the driver ran (0 when the
	// search space was degenerate and the driver never started).
	Generations int

	// Converged reports whether the population spread met Tol before the
	// generation budget ran out. False is metadata, not failure: Order is
	// still the best candidate found.
	Converged bool
}
