// Package executor runs an execution plan sequentially, memoizing one
// result envelope per QID and delivering the final (target) envelope to the
// caller.
package executor
