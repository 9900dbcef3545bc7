// Package loader discovers and dynamically loads plugin shared libraries
// from a single configured directory (spec.md §4.3). It is the only
// package in the kernel that touches the standard library's `plugin`
// package — see DESIGN.md for why that, rather than a third-party dynamic
// loader, is the correct tool for resolving a Go-typed symbol out of an
// independently compiled shared object.
package loader
