// Package kernel wires the plugin pipeline together: it loads plugins from
// the configured directory, builds the registry, and serves list and run
// requests by planning and executing against that registry. It owns the
// process-wide state the pipeline needs (logger, metrics, loaded
// libraries), initialized once per process.
package kernel
