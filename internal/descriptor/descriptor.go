package descriptor

import (
	"fmt"

	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

// Dependencies is the per-invocation mapping from dependency QID to the
// envelope it produced, handed to a plugin function's Handle. It always
// contains exactly the keys the function declared in Function.Dependencies
// (spec.md §3 invariant 4, §6).
type Dependencies map[qid.QID]result.Envelope

// Handle is the uniform invocation contract every plugin function exposes
// (spec.md §6): given its declared dependency results and the run's full
// parameter map, produce a result envelope or fail with a message. A Handle
// must not retain references to either argument beyond its return.
type Handle func(deps Dependencies, params paramvalue.Map) (result.Envelope, error)

// Function is a single plugin function's descriptor: its QID, the ordered
// list of QIDs it depends on, the user-parameter keys it requires, and its
// invocable handle.
type Function struct {
	QID          qid.QID
	Dependencies []qid.QID
	Parameters   []string
	Handle       Handle
}

// Plugin is the set of plugin-function descriptors advertised by one loaded
// shared library, plus provenance.
type Plugin struct {
	ID          string
	Functions   []Function
	LibraryPath string
	LoadOrder   int
}

// Validate checks the structural invariants spec.md §4.3 requires of a
// single plugin descriptor, in isolation from the rest of the registry
// (cross-plugin duplicate-QID checking happens one level up, in the
// loader, since it needs to see every already-loaded plugin).
func (p *Plugin) Validate() error {
	if len(p.Functions) == 0 {
		return fmt.Errorf("plugin %q advertises no plugin functions", p.ID)
	}

	seen := make(map[qid.QID]struct{}, len(p.Functions))
	for _, fn := range p.Functions {
		if fn.QID.PluginID != p.ID {
			return fmt.Errorf("function %s has plugin_id %q, which does not match the plugin's own identifier %q", fn.QID, fn.QID.PluginID, p.ID)
		}
		if _, dup := seen[fn.QID]; dup {
			return fmt.Errorf("duplicate QID %s within plugin %q", fn.QID, p.ID)
		}
		seen[fn.QID] = struct{}{}
		if fn.Handle == nil {
			return fmt.Errorf("function %s has a nil handle", fn.QID)
		}
	}
	return nil
}

// QIDs returns the QIDs of every function this plugin advertises, in
// declaration order.
func (p *Plugin) QIDs() []qid.QID {
	out := make([]qid.QID, len(p.Functions))
	for i, fn := range p.Functions {
		out[i] = fn.QID
	}
	return out
}
