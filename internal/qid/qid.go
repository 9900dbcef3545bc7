package qid

import (
	"fmt"
	"regexp"
	"strings"
)

// Separator is the textual rendering separator between the plugin half and
// the function half of a QID, as required by spec §4.1.
const Separator = "::"

// halfPattern matches a single label half: no whitespace, no path
// separators, non-empty.
var halfPattern = regexp.MustCompile(`^[^\s/\\]+$`)

// QID is a qualified plugin-function identifier: a pair of short textual
// labels. Two QIDs are equal iff both halves match byte-for-byte; QIDs are
// case-sensitive.
type QID struct {
	PluginID   string
	FunctionID string
}

// New validates and constructs a QID from its two halves.
func New(pluginID, functionID string) (QID, error) {
	if !halfPattern.MatchString(pluginID) {
		return QID{}, fmt.Errorf("qid: invalid plugin_id %q: must be non-empty with no whitespace or path separators", pluginID)
	}
	if !halfPattern.MatchString(functionID) {
		return QID{}, fmt.Errorf("qid: invalid function_id %q: must be non-empty with no whitespace or path separators", functionID)
	}
	return QID{PluginID: pluginID, FunctionID: functionID}, nil
}

// Parse is the inverse of String: it splits a "plugin_id::function_id"
// rendering back into a validated QID.
func Parse(s string) (QID, error) {
	pluginID, functionID, found := strings.Cut(s, Separator)
	if !found {
		return QID{}, fmt.Errorf("qid: %q is not of the form plugin_id%sfunction_id", s, Separator)
	}
	return New(pluginID, functionID)
}

// String renders the QID as "plugin_id::function_id".
func (q QID) String() string {
	return q.PluginID + Separator + q.FunctionID
}

// Equal reports whether two QIDs have byte-for-byte identical halves.
func (q QID) Equal(other QID) bool {
	return q.PluginID == other.PluginID && q.FunctionID == other.FunctionID
}

// IsZero reports whether q is the zero value (useful for "not found" returns).
func (q QID) IsZero() bool {
	return q.PluginID == "" && q.FunctionID == ""
}
