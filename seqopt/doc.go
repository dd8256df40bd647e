// Package seqopt searches for the mission execution order that minimizes
// the cumulative cost of capability upgrades and their schedule penalties,
// given a roadmap.Matrix of (readiness, dependency) pairs.
//
// # Cost model
//
// Missions execute in sequence. Each capability carries an accumulated
// readiness level, starting at 0, that never decreases. When a mission
// executes:
//
//  1. If the mission's dependency on a capability is at or above the
//     configured Threshold, the capability must reach at least the
//     operational Floor (default 9 on the 0–13 scale); otherwise only the
//     mission's own baseline readiness applies.
//  2. The required level is the max of the accumulated level, the mission's
//     baseline and (when forced) the Floor; the upgrade cost is the
//     non-negative climb from the accumulated level to the required level.
//  3. A penalty echoes one step behind upgrades: a step carries the
//     previous step's penalty value whenever the previous step had a
//     positive penalty or a positive upgrade. Because each chain is seeded
//     from a step whose penalty was still zero, the carried magnitude is
//     itself zero in ordinary traces; the rule is preserved verbatim as the
//     established cost model rather than reinterpreted.
//
// Total cost is the sum of upgrade+penalty over every (step, capability)
// pair. Deferring expensive forced upgrades to late steps is what a good
// order buys.
//
// # Search
//
// The discrete permutation space is searched by differential evolution
// over the continuous unit hypercube [0,1]^N. Only the rank order of a
// candidate vector's components carries signal: RankPermutation (argsort)
// maps any NaN-free vector to a valid permutation, so the optimizer needs
// no repair or rounding step. This continuous-to-discrete bridge is the
// load-bearing design idea of the package.
//
// Strategies: Best1Bin (default) perturbs the current best member,
// Rand1Bin a random one; both use binomial crossover with per-generation
// mutation dithering in [MutationMin, MutationMax). The search stops when
// the population's cost spread falls below Tol·|mean| or MaxGenerations is
// exhausted; either way the best candidate found is returned together with
// generation and convergence metadata — exhaustion is not an error.
//
// # Determinism
//
// Same seed ⇒ identical result, across runs and platforms. Seed 0 selects
// a fixed internal default; no time-based randomness exists anywhere.
//
// Errors:
//   - Malformed Options fail fast with sentinels (the only fatal class).
//   - Data irregularities never fail: pairs the roadmap does not cover
//     read as zero (not dependent, not ready).
//   - A degenerate space (N ≤ 1) short-circuits to the trivial order.
//
// Example usage:
//
//	opts := seqopt.DefaultOptions()
//	opts.Seed = 42
//	res, err := seqopt.Solve(rm, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Missions, res.Total)
package seqopt
