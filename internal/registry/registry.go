package registry

import (
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
)

// entry is the registry's internal record for one plugin function: its
// descriptor plus the load order of the plugin that advertised it, kept as
// provenance. Enumerate does not read it: registry order is the position in
// byQID, i.e. the order in which New received the plugins.
type entry struct {
	function  descriptor.Function
	loadOrder int
}

// Registry is the immutable, built-once index from QID to plugin function.
// Nothing in this package ever mutates a Registry after New returns it.
type Registry struct {
	byQID []qidEntry
	index map[qid.QID]int // QID -> position in byQID
}

type qidEntry struct {
	qid   qid.QID
	entry entry
}

// New builds a Registry from the union of loaded plugin descriptors, in the
// order the plugins themselves were loaded (spec.md §4.3's load order,
// carried through so enumerate() is deterministic for identical inputs).
// New assumes its caller (the loader) has already rejected cross-plugin
// duplicate QIDs; New panics if it finds one, since that would mean an
// invariant the loader is supposed to enforce was violated upstream.
func New(plugins []*descriptor.Plugin) *Registry {
	r := &Registry{index: make(map[qid.QID]int)}
	for _, p := range plugins {
		for _, fn := range p.Functions {
			if _, exists := r.index[fn.QID]; exists {
				panic("registry: duplicate QID " + fn.QID.String() + " reached registry construction; the loader must reject duplicates before this point")
			}
			r.index[fn.QID] = len(r.byQID)
			r.byQID = append(r.byQID, qidEntry{qid: fn.QID, entry: entry{function: fn, loadOrder: p.LoadOrder}})
		}
	}
	return r
}

// Lookup returns the plugin-function descriptor for q, or ok=false if q is
// not registered.
func (r *Registry) Lookup(q qid.QID) (descriptor.Function, bool) {
	i, ok := r.index[q]
	if !ok {
		return descriptor.Function{}, false
	}
	return r.byQID[i].entry.function, true
}

// Dependencies returns the ordered list of QIDs q depends on, or nil if q is
// not registered.
func (r *Registry) Dependencies(q qid.QID) []qid.QID {
	fn, ok := r.Lookup(q)
	if !ok {
		return nil
	}
	return fn.Dependencies
}

// Parameters returns the unordered set of parameter keys q requires, or nil
// if q is not registered.
func (r *Registry) Parameters(q qid.QID) map[string]struct{} {
	fn, ok := r.Lookup(q)
	if !ok {
		return nil
	}
	keys := make(map[string]struct{}, len(fn.Parameters))
	for _, k := range fn.Parameters {
		keys[k] = struct{}{}
	}
	return keys
}

// Enumerate returns every registered QID, in registry order (load order of
// the owning plugin, then declaration order within it).
func (r *Registry) Enumerate() []qid.QID {
	out := make([]qid.QID, len(r.byQID))
	for i, e := range r.byQID {
		out[i] = e.qid
	}
	return out
}

// Len returns the number of registered plugin functions.
func (r *Registry) Len() int { return len(r.byQID) }
