package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkanUJkod/SkanUJkod/internal/kernelerr"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
)

// execute runs the command tree with the given arguments and returns the
// captured output and error streams.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var outBuf, errBuf bytes.Buffer
	root := New(&outBuf, &errBuf)
	root.SetArgs(args)
	err := root.Execute()
	return outBuf.String(), errBuf.String(), err
}

func TestList_EmptyDirectorySucceedsAndEmitsNothing(t *testing.T) {
	out, _, err := execute(t, "list", "--plugin-dir", t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, 0, ExitCode(err))
}

func TestRun_UnknownTargetInEmptyDirectory(t *testing.T) {
	_, _, err := execute(t, "run", "hello::world", "--plugin-dir", t.TempDir(), "name=World")
	require.Error(t, err)

	var unknown *kernelerr.UnknownTarget
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, 2, ExitCode(err))
}

func TestRun_MissingPluginDirectoryIsExitCode3(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does-not-exist")
	_, _, err := execute(t, "run", "hello::world", "--plugin-dir", missing)
	require.Error(t, err)

	var dirErr *kernelerr.PluginDirectoryUnavailable
	require.ErrorAs(t, err, &dirErr)
	assert.Equal(t, 3, ExitCode(err))
}

func TestRun_MalformedTargetIsRejected(t *testing.T) {
	_, _, err := execute(t, "run", "notaqid", "--plugin-dir", t.TempDir())
	assert.Error(t, err)
}

func TestRun_MalformedParamPairIsRejected(t *testing.T) {
	_, _, err := execute(t, "run", "hello::world", "--plugin-dir", t.TempDir(), "--param", "no-separator")
	assert.Error(t, err)
}

func TestRun_InvalidLogFlagsAreRejected(t *testing.T) {
	_, _, err := execute(t, "list", "--plugin-dir", t.TempDir(), "--log-format", "yaml")
	assert.Error(t, err)

	_, _, err = execute(t, "list", "--plugin-dir", t.TempDir(), "--log-level", "loud")
	assert.Error(t, err)
}

func TestAnalysisCommandsAreRegistered(t *testing.T) {
	var outBuf, errBuf bytes.Buffer
	root := New(&outBuf, &errBuf)

	names := make(map[string]bool)
	for _, cmd := range root.Commands() {
		names[cmd.Name()] = true
	}
	for name := range analyses {
		assert.True(t, names[name], "analysis %q not registered", name)
	}
	assert.True(t, names["list"])
	assert.True(t, names["run"])
}

func TestExitCode_Mapping(t *testing.T) {
	mustQID := func(s string) qid.QID {
		q, err := qid.Parse(s)
		require.NoError(t, err)
		return q
	}

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"directory unavailable", &kernelerr.PluginDirectoryUnavailable{Path: "/p"}, 3},
		{"unknown target", &kernelerr.UnknownTarget{Target: mustQID("a::b")}, 2},
		{"missing dependency", &kernelerr.MissingDependency{Referrer: mustQID("a::b"), Missing: mustQID("c::d")}, 2},
		{"cycle", &kernelerr.DependencyCycle{Participants: []qid.QID{mustQID("a::b")}}, 2},
		{"missing parameter", &kernelerr.MissingParameter{Function: mustQID("a::b"), Key: "k"}, 2},
		{"plugin function failed", &kernelerr.PluginFunctionFailed{Function: mustQID("a::b"), Message: "boom"}, 1},
		{"load failed", &kernelerr.PluginLoadFailed{Path: "/p/x.so"}, 1},
		{"validation failed", &kernelerr.PluginValidationFailed{Path: "/p/x.so", Reason: "dup"}, 1},
		{"generic", errors.New("anything else"), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExitCode(tc.err))
		})
	}
}
