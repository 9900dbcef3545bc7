// Package planner computes the execution plan for a target QID: the
// transitive dependency closure, linearized into a deterministic
// topological order, with cycle and missing-reference detection (spec.md
// §4.5). The algorithm — depth-first traversal with permanent/temporary
// marks — is the same shape the teacher repo's internal/dag package uses
// for its own cycle detection, generalized here from "detect a cycle
// anywhere in the graph" to "compute a target's closure in deterministic
// post-order, or reject it".
package planner
