// Package paramvalue implements the parameter-value variant described in
// spec.md §3 and §4.7: an opaque, immutable carrier for a single CLI
// parameter that the kernel moves around by name without ever interpreting.
//
// Values are backed by github.com/zclconf/go-cty, the same typed-value
// library the teacher repo uses for its runner input schema (internal/model,
// internal/builder). That gives the kernel the two required minimum kinds
// (text, boolean-or-numeric) plus number and path for free, along with
// well-tested conversion helpers, instead of hand-rolling a tagged union.
package paramvalue
