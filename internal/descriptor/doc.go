// Package descriptor defines the records a loaded plugin advertises: its
// plugin functions, their declared dependencies, and the user-parameter
// names they require (spec.md §3 "Plugin-function descriptor" and "Plugin
// descriptor"). These are pure data shapes; the loader populates them from
// a loaded shared library and the registry indexes them.
package descriptor
