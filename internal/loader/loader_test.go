package loader

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkanUJkod/SkanUJkod/internal/ctxlog"
	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

func testContext() context.Context {
	return ctxlog.WithLogger(context.Background(), slog.Default())
}

func noopHandle(descriptor.Dependencies, paramvalue.Map) (result.Envelope, error) {
	return result.New(nil, "", ""), nil
}

func mustFn(t *testing.T, plugin, fn string) descriptor.Function {
	t.Helper()
	q, err := qid.New(plugin, fn)
	require.NoError(t, err)
	return descriptor.Function{QID: q, Handle: noopHandle}
}

func TestLoad_MissingDirectoryIsFatal(t *testing.T) {
	_, err := Load(testContext(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
	var dirErr *kernelerr.PluginDirectoryUnavailable
	assert.ErrorAs(t, err, &dirErr)
}

func TestLoad_EmptyDirectoryYieldsEmptyReport(t *testing.T) {
	report, err := Load(testContext(), t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, report.Loaded)
	assert.Empty(t, report.Rejected)
}

func TestLoad_UnopenableLibraryIsRejectedAsLoadFailed(t *testing.T) {
	dir := t.TempDir()
	// Not a real shared library; plugin.Open must fail on it.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "garbage.so"), []byte("not an ELF"), 0o644))

	report, err := Load(testContext(), dir)
	require.NoError(t, err)
	assert.Empty(t, report.Loaded)
	require.Len(t, report.Rejected, 1)

	var loadErr *kernelerr.PluginLoadFailed
	require.ErrorAs(t, report.Rejected[0].Err, &loadErr)
	assert.Equal(t, filepath.Join(dir, "garbage.so"), loadErr.Path)
}

func TestRegistrationState_RejectsDuplicateQIDAcrossPlugins(t *testing.T) {
	state := newRegistrationState()

	first := &descriptor.Plugin{ID: "cfg", LibraryPath: "a.so", Functions: []descriptor.Function{mustFn(t, "cfg", "build")}}
	require.NoError(t, state.admit(first))

	second := &descriptor.Plugin{ID: "cfg2", LibraryPath: "b.so", Functions: []descriptor.Function{mustFn(t, "cfg2", "build")}}
	// Deliberately advertise the same QID as `first` by reusing its QID directly.
	second.Functions[0].QID = first.Functions[0].QID
	second.ID = second.Functions[0].QID.PluginID

	err := state.admit(second)
	require.Error(t, err)
	var validationErr *kernelerr.PluginValidationFailed
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegistrationState_RejectsDuplicatePluginID(t *testing.T) {
	state := newRegistrationState()

	first := &descriptor.Plugin{ID: "cfg", LibraryPath: "a.so", Functions: []descriptor.Function{mustFn(t, "cfg", "build")}}
	require.NoError(t, state.admit(first))

	second := &descriptor.Plugin{ID: "cfg", LibraryPath: "b.so", Functions: []descriptor.Function{mustFn(t, "cfg", "other")}}
	err := state.admit(second)
	require.Error(t, err)
	var validationErr *kernelerr.PluginValidationFailed
	assert.ErrorAs(t, err, &validationErr)
}

func TestRegistrationState_AdmitsDistinctPlugins(t *testing.T) {
	state := newRegistrationState()

	first := &descriptor.Plugin{ID: "parse", LibraryPath: "a.so", Functions: []descriptor.Function{mustFn(t, "parse", "project")}}
	second := &descriptor.Plugin{ID: "cfg", LibraryPath: "b.so", Functions: []descriptor.Function{mustFn(t, "cfg", "build")}}

	assert.NoError(t, state.admit(first))
	assert.NoError(t, state.admit(second))
}
