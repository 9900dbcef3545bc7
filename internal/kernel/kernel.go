package kernel

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/SkanUJkod/SkanUJkod/internal/ctxlog"
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/executor"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelmetrics"
	"github.com/SkanUJkod/SkanUJkod/internal/loader"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/planner"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/registry"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

// Kernel is the assembled pipeline: an immutable registry built from one
// loader run, plus the logger and metrics shared by every subsequent List
// and Run call.
type Kernel struct {
	logger   *slog.Logger
	registry *registry.Registry
	report   *loader.Report
	metrics  *kernelmetrics.Metrics
	server   *kernelmetrics.Server
}

// New constructs a Kernel by scanning and loading cfg.PluginDir. A missing
// or unreadable directory is returned as *kernelerr.PluginDirectoryUnavailable;
// per-plugin failures do not fail construction and are available via
// LoadReport.
func New(logW io.Writer, cfg *Config) (*Kernel, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	report, err := loader.Load(ctx, cfg.PluginDir)
	if err != nil {
		return nil, err
	}

	k := newFromReport(ctx, logger, report)
	k.server = kernelmetrics.NewServer(k.metrics)
	k.server.Start(ctx, cfg.HealthcheckPort)
	return k, nil
}

// NewFromPlugins constructs a Kernel from already-built plugin descriptors,
// bypassing the filesystem loader entirely. Tests use it to exercise the
// full plan/execute pipeline without compiling shared libraries.
func NewFromPlugins(logW io.Writer, cfg *Config, plugins []*descriptor.Plugin) *Kernel {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	return newFromReport(ctx, logger, &loader.Report{Loaded: plugins})
}

func newFromReport(ctx context.Context, logger *slog.Logger, report *loader.Report) *Kernel {
	metrics := kernelmetrics.New()
	metrics.PluginsLoaded(len(report.Loaded))
	metrics.PluginsRejected(len(report.Rejected))

	reg := registry.New(report.Loaded)
	logger.Debug("Registry built.", "functions", reg.Len(), "plugins", len(report.Loaded))

	return &Kernel{
		logger:   logger,
		registry: reg,
		report:   report,
		metrics:  metrics,
	}
}

// Logger returns the kernel's configured logger, for the CLI to reuse.
func (k *Kernel) Logger() *slog.Logger { return k.logger }

// LoadReport returns the outcome of the loader run that built this kernel.
func (k *Kernel) LoadReport() *loader.Report { return k.report }

// List returns every registered QID in registry order.
func (k *Kernel) List() []qid.QID { return k.registry.Enumerate() }

// Describe returns the descriptor for q, for verbose listings.
func (k *Kernel) Describe(q qid.QID) (descriptor.Function, bool) {
	return k.registry.Lookup(q)
}

// Plan computes the execution plan for target and checks that params
// supplies every parameter key the plan requires. It performs no
// invocation; Run is Plan plus execution.
func (k *Kernel) Plan(target qid.QID, params paramvalue.Map) ([]qid.QID, error) {
	plan, err := planner.Plan(k.registry, target)
	if err != nil {
		return nil, err
	}

	paramKeys := make(map[string]struct{}, params.Len())
	for _, key := range params.Keys() {
		paramKeys[key] = struct{}{}
	}
	if err := planner.CheckParameters(k.registry, plan, paramKeys); err != nil {
		return nil, err
	}

	k.metrics.ObservePlan(len(plan))
	return plan, nil
}

// Run plans target against the supplied parameters and executes the plan,
// returning the target's result envelope. No plugin function is invoked if
// planning fails.
func (k *Kernel) Run(ctx context.Context, target qid.QID, params paramvalue.Map) (result.Envelope, error) {
	ctx = ctxlog.WithLogger(ctx, k.logger)

	plan, err := k.Plan(target, params)
	if err != nil {
		return result.Envelope{}, err
	}
	k.logger.Debug("Execution plan ready.", "target", target.String(), "plan_length", len(plan))

	observe := func(q qid.QID, elapsed time.Duration) {
		k.metrics.ObserveInvocation(q.String(), elapsed.Seconds())
	}

	outcome, err := executor.Execute(ctx, k.registry, plan, params, observe)
	if err != nil {
		return result.Envelope{}, err
	}
	return outcome.Final, nil
}

// Close releases the kernel's optional HTTP endpoint. Loaded plugin
// libraries stay mapped until process exit; there is nothing to release
// for them.
func (k *Kernel) Close(ctx context.Context) error {
	if k.server == nil {
		return nil
	}
	return k.server.Close(ctxlog.WithLogger(ctx, k.logger))
}
