package kernelerr

import (
	"fmt"
	"strings"

	"github.com/SkanUJkod/SkanUJkod/internal/qid"
)

// PluginDirectoryUnavailable is fatal at load: the configured plugin
// directory is missing or unreadable.
type PluginDirectoryUnavailable struct {
	Path string
	Err  error
}

func (e *PluginDirectoryUnavailable) Error() string {
	return fmt.Sprintf("plugin directory %q is unavailable: %v", e.Path, e.Err)
}

func (e *PluginDirectoryUnavailable) Unwrap() error { return e.Err }

// PluginLoadFailed is non-fatal: a specific library could not be opened or
// lacked the entry symbol. Loading continues with the remaining candidates.
type PluginLoadFailed struct {
	Path string
	Err  error
}

func (e *PluginLoadFailed) Error() string {
	return fmt.Sprintf("failed to load plugin %q: %v", e.Path, e.Err)
}

func (e *PluginLoadFailed) Unwrap() error { return e.Err }

// PluginValidationFailed is non-fatal per plugin: the descriptor was
// malformed, declared a duplicate QID, or was self-inconsistent about its
// own plugin_id.
type PluginValidationFailed struct {
	Path   string
	Reason string
}

func (e *PluginValidationFailed) Error() string {
	return fmt.Sprintf("plugin %q failed validation: %s", e.Path, e.Reason)
}

// UnknownTarget is fatal before planning: the CLI-supplied target QID is not
// registered.
type UnknownTarget struct {
	Target qid.QID
}

func (e *UnknownTarget) Error() string {
	return fmt.Sprintf("unknown target: %s is not registered", e.Target)
}

// MissingDependency is fatal at planning: a referenced dependency QID is not
// registered.
type MissingDependency struct {
	Referrer qid.QID
	Missing  qid.QID
}

func (e *MissingDependency) Error() string {
	return fmt.Sprintf("%s depends on %s, which is not registered", e.Referrer, e.Missing)
}

// DependencyCycle is fatal at planning: the transitive closure of the target
// contains a cycle. Participants are listed in the order they appear on the
// DFS stack.
type DependencyCycle struct {
	Participants []qid.QID
}

func (e *DependencyCycle) Error() string {
	names := make([]string, len(e.Participants))
	for i, q := range e.Participants {
		names[i] = q.String()
	}
	return fmt.Sprintf("dependency cycle detected: %s", strings.Join(names, " -> "))
}

// MissingParameter is fatal at planning: a plugin function in the plan
// requires a parameter key not present in the parameter map.
type MissingParameter struct {
	Function qid.QID
	Key      string
}

func (e *MissingParameter) Error() string {
	return fmt.Sprintf("%s requires parameter %q, which was not supplied", e.Function, e.Key)
}

// PluginFunctionFailed is fatal: a plugin function signaled failure during
// execution and the run was aborted.
type PluginFunctionFailed struct {
	Function qid.QID
	Message  string
}

func (e *PluginFunctionFailed) Error() string {
	return fmt.Sprintf("%s failed: %s", e.Function, e.Message)
}
