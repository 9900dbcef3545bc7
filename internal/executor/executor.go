package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SkanUJkod/SkanUJkod/internal/ctxlog"
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

// Graph is the read-only view of the registry the executor needs to resolve
// each plan step back to its descriptor. A *registry.Registry satisfies it.
type Graph interface {
	Lookup(q qid.QID) (descriptor.Function, bool)
}

// Observer receives a callback after every successful plugin-function
// invocation, with the wall-clock duration the call took. It exists so the
// metrics layer can watch a run without the executor importing it; a nil
// Observer is silently ignored.
type Observer func(q qid.QID, elapsed time.Duration)

// Outcome is what a completed run hands back: the envelope produced by the
// plan's last step (the target) plus the full memoization table, which
// callers such as tests can inspect to confirm every step ran exactly once.
type Outcome struct {
	Final   result.Envelope
	Results map[qid.QID]result.Envelope
}

// Execute runs plan in order against g, threading params read-only into
// every invocation. Each step's dependency map is assembled from the
// memoization table; each step's envelope is stored back into it under the
// step's QID. The table grows monotonically and entries are never replaced.
//
// On the first plugin-function failure the run aborts: partial results are
// discarded and a *kernelerr.PluginFunctionFailed naming the step is
// returned.
func Execute(ctx context.Context, g Graph, plan []qid.QID, params paramvalue.Map, observe Observer) (*Outcome, error) {
	logger := ctxlog.FromContext(ctx).With("run_id", uuid.NewString())
	if len(plan) == 0 {
		return nil, fmt.Errorf("executor: empty plan")
	}
	logger.Debug("Execution started.", "plan_length", len(plan), "target", plan[len(plan)-1].String())

	table := make(map[qid.QID]result.Envelope, len(plan))

	for _, q := range plan {
		// The planner emits each QID at most once, but re-invocation must
		// stay impossible even if that ever changes.
		if _, done := table[q]; done {
			logger.Warn("Plan step already executed, skipping.", "qid", q.String())
			continue
		}

		fn, ok := g.Lookup(q)
		if !ok {
			return nil, fmt.Errorf("executor: plan step %s is not registered; the plan and registry disagree", q)
		}

		deps := make(descriptor.Dependencies, len(fn.Dependencies))
		for _, dep := range fn.Dependencies {
			env, present := table[dep]
			if !present {
				return nil, fmt.Errorf("executor: dependency %s of %s has no result yet; the plan is not topologically ordered", dep, q)
			}
			deps[dep] = env
		}

		logger.Debug("Invoking plugin function.", "qid", q.String(), "dependencies", len(deps))
		started := time.Now()
		env, err := fn.Handle(deps, params)
		if err != nil {
			logger.Error("Plugin function failed, aborting run.", "qid", q.String(), "error", err)
			return nil, &kernelerr.PluginFunctionFailed{Function: q, Message: err.Error()}
		}
		elapsed := time.Since(started)
		if observe != nil {
			observe(q, elapsed)
		}

		table[q] = env
		logger.Debug("Plugin function completed.", "qid", q.String(), "elapsed", elapsed)
	}

	logger.Debug("Execution finished.", "results", len(table))
	return &Outcome{Final: table[plan[len(plan)-1]], Results: table}, nil
}
