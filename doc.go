// Package roadseq turns a capability roadmap into an executable plan:
// given, for every (mission, capability) pair, how much the mission depends
// on the capability and how mature the capability currently is, it searches
// for the mission execution order that minimizes the cumulative cost of
// forced capability upgrades and their schedule penalties.
//
// 🚀 What is roadseq?
//
//	A small, deterministic scheduling-optimization library built from two parts:
//		• roadmap/ — the immutable (mission × capability) readiness/dependency matrix
//		• seqopt/  — the mission-sequencing optimizer: a greedy-accumulation cost
//		  model over permutations, searched by differential evolution through a
//		  rank-order (argsort) encoding of the continuous unit hypercube
//
// ✨ Why choose roadseq?
//
//   - Deterministic – fixed-seed policy everywhere; same inputs ⇒ same plan
//   - Rock-solid contracts – sentinel errors, zero-fill for ragged inputs,
//     validation up front, no panics on user data
//   - Pure Go – no cgo; gonum for the numeric plumbing, nothing heavier
//   - Transparent – every solve can replay the winning order and hand back
//     the full per-step cost and readiness-progression tables
//
// The key design idea is the continuous-to-discrete bridge: candidate
// solutions live in [0,1]^N, and only the *rank order* of a candidate's
// components carries signal. Any vector decodes to a valid permutation of
// missions, so a continuous population-based optimizer can search the
// discrete permutation space without repair steps.
//
// Quick sketch:
//
//	roadmap.Matrix ──► seqopt.Solve ──► Result{Order, Total, Cost, Readiness}
//
// Dive into seqopt/doc.go for the cost model and examples/ for runnable
// walkthroughs.
//
//	go get github.com/katalvlaran/roadseq
package roadseq
