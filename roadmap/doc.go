// Package roadmap models the finalized (mission × capability) table that
// feeds the sequencing optimizer: for every pair, a dependency level in
// [0,1] (how critical the capability is to the mission) and a readiness
// level (how mature the capability currently is, conventionally 0–13 with
// 9 meaning operational).
//
// The Matrix is built once, validated once, and then treated as read-only:
// the optimizer evaluates many permutations against the same Matrix and
// relies on it never changing mid-search. All accessors are safe for
// concurrent readers.
//
// Conventions:
//
//   - Mission order in the name list defines the internal indices 0..N-1
//     that permutations refer to.
//   - Capability order is shared by every mission row; rows are rectangular
//     by construction.
//   - A zero Entry means "not dependent, not ready". Upstream loaders that
//     meet blank or non-numeric cells are expected to collapse them to zero
//     before construction; lookups outside the matrix bounds also yield the
//     zero Entry rather than an error.
//
// Errors (sentinel):
//
//	– ErrShapeMismatch  if rows do not match the mission/capability counts.
//	– ErrEmptyName      if a mission or capability name is empty.
//	– ErrDuplicateName  if a mission or capability name repeats.
//	– ErrBadValue       if a dependency leaves [0,1] or a readiness is
//	                    negative, NaN or ±Inf.
//	– ErrBadPermutation if Reorder receives anything but a permutation of
//	                    the mission indices.
package roadmap
