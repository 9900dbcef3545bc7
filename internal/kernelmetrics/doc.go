// Package kernelmetrics instruments the kernel with Prometheus counters
// and histograms: plugin load outcomes, plan sizes, and per-function
// invocation latency. The metrics live on a private registry exposed via an
// optional HTTP endpoint alongside the health check.
package kernelmetrics
