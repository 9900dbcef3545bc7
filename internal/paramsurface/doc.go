// Package paramsurface assembles the run-scoped parameter map from the
// outer CLI's inputs: repeated key=value pairs and, optionally, a flat HCL
// file of parameter attributes. The kernel consumes the resulting map
// read-only for the duration of the run.
package paramsurface
