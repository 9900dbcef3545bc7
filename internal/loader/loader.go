package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"plugin"

	"github.com/SkanUJkod/SkanUJkod/internal/ctxlog"
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/fsutil"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
)

// EntrySymbol is the single well-known exported symbol every plugin shared
// library must provide (spec.md §6). It must resolve to a func() value
// matching EntryFunc.
const EntrySymbol = "SkanUJkodPlugin"

// EntryFunc is the signature the entry symbol must have: invoked with no
// arguments, it returns a plugin descriptor. The returned descriptor's ID
// and Functions are taken as authoritative; the loader fills in provenance
// (LibraryPath, LoadOrder) itself.
type EntryFunc func() *descriptor.Plugin

// Rejected records one candidate library the loader declined to load,
// alongside the reason, so a loader run can report a complete picture
// without aborting the rest of the scan (spec.md §4.3, §7 propagation
// policy).
type Rejected struct {
	Path string
	Err  error
}

// Report is the outcome of one loader run: every plugin that loaded
// successfully, plus every candidate that was rejected and why.
type Report struct {
	Loaded   []*descriptor.Plugin
	Rejected []Rejected
}

// Load scans dir (non-recursively) for candidate shared libraries, loads
// each in lexicographic order of basename, and validates the advertised
// descriptor against every plugin loaded so far in this run.
//
// A missing or unreadable directory is the one fatal condition this
// function returns as an error (*kernelerr.PluginDirectoryUnavailable);
// every other failure is recorded in the returned Report and loading
// continues with the remaining candidates.
func Load(ctx context.Context, dir string) (*Report, error) {
	logger := ctxlog.FromContext(ctx)
	suffix := fsutil.PluginSuffix()

	names, err := fsutil.ListFilesWithSuffix(dir, suffix)
	if err != nil {
		return nil, &kernelerr.PluginDirectoryUnavailable{Path: dir, Err: err}
	}
	logger.Debug("Loader found plugin candidates.", "dir", dir, "count", len(names))

	report := &Report{}
	state := newRegistrationState()

	for i, name := range names {
		path := filepath.Join(dir, name)
		pluginLogger := logger.With("path", path)

		pd, err := loadOne(path)
		if err != nil {
			loadErr := &kernelerr.PluginLoadFailed{Path: path, Err: err}
			pluginLogger.Warn("Plugin failed to load.", "error", loadErr)
			report.Rejected = append(report.Rejected, Rejected{Path: path, Err: loadErr})
			continue
		}
		pd.LibraryPath = path
		pd.LoadOrder = i

		if rejectErr := state.admit(pd); rejectErr != nil {
			pluginLogger.Warn("Plugin rejected.", "error", rejectErr)
			report.Rejected = append(report.Rejected, Rejected{Path: path, Err: rejectErr})
			continue
		}

		report.Loaded = append(report.Loaded, pd)
		pluginLogger.Debug("Plugin loaded successfully.", "plugin_id", pd.ID, "functions", len(pd.Functions))
	}

	logger.Info("Loader run complete.", "loaded", len(report.Loaded), "rejected", len(report.Rejected))
	return report, nil
}

// registrationState accumulates the cross-plugin facts a single loader run
// needs to enforce spec.md's uniqueness invariants: no two plugins may
// share a plugin_id, and no QID may be advertised twice across all loaded
// plugins.
type registrationState struct {
	qidOwners map[string]string // QID string -> owning plugin ID
	pluginIDs map[string]string // plugin ID -> library path that first claimed it
}

func newRegistrationState() *registrationState {
	return &registrationState{
		qidOwners: make(map[string]string),
		pluginIDs: make(map[string]string),
	}
}

// admit validates pd in isolation and against every plugin admitted so far.
// On success it records pd's plugin_id and QIDs and returns nil. On failure
// it returns the *kernelerr.PluginValidationFailed the caller should report,
// leaving its own state untouched.
func (s *registrationState) admit(pd *descriptor.Plugin) error {
	if err := pd.Validate(); err != nil {
		return &kernelerr.PluginValidationFailed{Path: pd.LibraryPath, Reason: err.Error()}
	}

	if firstPath, dup := s.pluginIDs[pd.ID]; dup {
		reason := fmt.Sprintf("plugin_id %q was already claimed by %q", pd.ID, firstPath)
		return &kernelerr.PluginValidationFailed{Path: pd.LibraryPath, Reason: reason}
	}

	if dupQID := s.firstDuplicate(pd); dupQID != "" {
		reason := fmt.Sprintf("QID %s is already registered by plugin %q", dupQID, s.qidOwners[dupQID])
		return &kernelerr.PluginValidationFailed{Path: pd.LibraryPath, Reason: reason}
	}

	for _, q := range pd.QIDs() {
		s.qidOwners[q.String()] = pd.ID
	}
	s.pluginIDs[pd.ID] = pd.LibraryPath
	return nil
}

// firstDuplicate returns the string form of the first QID in pd that is
// already owned by a previously admitted plugin, or "" if none collide.
func (s *registrationState) firstDuplicate(pd *descriptor.Plugin) string {
	for _, q := range pd.QIDs() {
		if _, exists := s.qidOwners[q.String()]; exists {
			return q.String()
		}
	}
	return ""
}

// loadOne opens a single candidate library, resolves its entry symbol, and
// invokes it to obtain the raw descriptor.
func loadOne(path string) (*descriptor.Plugin, error) {
	lib, err := plugin.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening shared library: %w", err)
	}

	sym, err := lib.Lookup(EntrySymbol)
	if err != nil {
		return nil, fmt.Errorf("looking up entry symbol %q: %w", EntrySymbol, err)
	}

	entry, ok := sym.(func() *descriptor.Plugin)
	if !ok {
		return nil, fmt.Errorf("entry symbol %q has the wrong type %T", EntrySymbol, sym)
	}

	pd := entry()
	if pd == nil {
		return nil, fmt.Errorf("entry symbol %q returned a nil descriptor", EntrySymbol)
	}
	return pd, nil
}
