// Package qid provides the qualified plugin-function identifier: a
// (plugin_id, function_id) pair that is the sole cross-component currency of
// the kernel. QIDs name dependencies, index results, and appear verbatim in
// diagnostics, so this package centralizes their validation, equality, and
// rendering rather than letting every component re-derive them from strings.
package qid
