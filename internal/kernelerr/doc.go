// Package kernelerr defines the fixed taxonomy of failure conditions the
// plugin kernel reports to its caller (spec §7). Each kind is its own
// exported type carrying the human-readable context the spec requires —
// paths, QIDs, and/or parameter names — so callers can both print a useful
// message and, via errors.As, branch on the kind when mapping to an exit
// code.
package kernelerr
