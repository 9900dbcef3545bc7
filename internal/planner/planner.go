package planner

import (
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
)

// Graph is the read-only view of the registry the planner needs. A
// *registry.Registry satisfies it without either package importing the
// other's concrete type, which keeps the planner trivially testable with a
// hand-built fixture.
type Graph interface {
	Lookup(q qid.QID) (descriptor.Function, bool)
	Dependencies(q qid.QID) []qid.QID
}

// Plan computes the execution plan for target: a depth-first traversal
// over Dependencies(), emitted in post-order so that every QID precedes
// every QID that lists it as a dependency (spec.md §4.5, §8). Among
// siblings, dependencies are visited in the declaration order the registry
// reports them in, which combined with the registry's own stable load
// order guarantees a deterministic plan for identical inputs.
func Plan(g Graph, target qid.QID) ([]qid.QID, error) {
	if _, ok := g.Lookup(target); !ok {
		return nil, &kernelerr.UnknownTarget{Target: target}
	}

	visited := make(map[qid.QID]bool)
	onStack := make(map[qid.QID]bool)
	var stack []qid.QID
	var order []qid.QID

	var visit func(q qid.QID, referrer qid.QID) error
	visit = func(q qid.QID, referrer qid.QID) error {
		if visited[q] {
			return nil
		}
		if onStack[q] {
			idx := indexOf(stack, q)
			participants := append([]qid.QID{}, stack[idx:]...)
			return &kernelerr.DependencyCycle{Participants: participants}
		}
		if _, ok := g.Lookup(q); !ok {
			// Only dependency edges can reach an unregistered QID here; the
			// target itself was already checked above.
			return &kernelerr.MissingDependency{Referrer: referrer, Missing: q}
		}

		onStack[q] = true
		stack = append(stack, q)

		for _, dep := range g.Dependencies(q) {
			if err := visit(dep, q); err != nil {
				return err
			}
		}

		stack = stack[:len(stack)-1]
		onStack[q] = false
		visited[q] = true
		order = append(order, q)
		return nil
	}

	if err := visit(target, qid.QID{}); err != nil {
		return nil, err
	}
	return order, nil
}

func indexOf(stack []qid.QID, q qid.QID) int {
	for i, s := range stack {
		if s.Equal(q) {
			return i
		}
	}
	return -1
}

// CheckParameters verifies that every parameter key required by any QID in
// plan is present in paramKeys (spec.md §4.5 "Parameter check"). It reports
// the first missing key it finds, scanning the plan in order and each
// function's parameters in declaration order, so the error is
// deterministic. Extra keys in paramKeys are never an error.
func CheckParameters(g Graph, plan []qid.QID, paramKeys map[string]struct{}) error {
	for _, q := range plan {
		fn, found := g.Lookup(q)
		if !found {
			continue
		}
		for _, key := range fn.Parameters {
			if _, present := paramKeys[key]; !present {
				return &kernelerr.MissingParameter{Function: q, Key: key}
			}
		}
	}
	return nil
}
