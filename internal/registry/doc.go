// Package registry provides the canonical in-memory index the kernel
// builds once from every loaded plugin's descriptor and never mutates
// afterward (spec.md §4.4). It answers the lookup, dependency, and
// parameter queries the planner and the CLI's `list` command need.
package registry
