package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

func noopHandle(descriptor.Dependencies, paramvalue.Map) (result.Envelope, error) {
	return result.New(nil, "", ""), nil
}

func q(t *testing.T, plugin, fn string) qid.QID {
	t.Helper()
	out, err := qid.New(plugin, fn)
	require.NoError(t, err)
	return out
}

func TestRegistry_LookupDependenciesParameters(t *testing.T) {
	parseProject := q(t, "parse", "project")
	cfgBuild := q(t, "cfg", "build")

	plugins := []*descriptor.Plugin{
		{ID: "parse", LoadOrder: 0, Functions: []descriptor.Function{
			{QID: parseProject, Parameters: []string{"project_path"}, Handle: noopHandle},
		}},
		{ID: "cfg", LoadOrder: 1, Functions: []descriptor.Function{
			{QID: cfgBuild, Dependencies: []qid.QID{parseProject}, Parameters: []string{"project_path"}, Handle: noopHandle},
		}},
	}

	r := New(plugins)

	fn, ok := r.Lookup(cfgBuild)
	require.True(t, ok)
	assert.Equal(t, []qid.QID{parseProject}, fn.Dependencies)

	assert.Equal(t, []qid.QID{parseProject}, r.Dependencies(cfgBuild))
	assert.Equal(t, map[string]struct{}{"project_path": {}}, r.Parameters(cfgBuild))

	_, ok = r.Lookup(q(t, "nope", "nope"))
	assert.False(t, ok)
	assert.Nil(t, r.Dependencies(q(t, "nope", "nope")))
}

func TestRegistry_Enumerate_IsStableLoadOrder(t *testing.T) {
	a := q(t, "a", "f")
	b := q(t, "b", "f")

	plugins := []*descriptor.Plugin{
		{ID: "a", LoadOrder: 0, Functions: []descriptor.Function{{QID: a, Handle: noopHandle}}},
		{ID: "b", LoadOrder: 1, Functions: []descriptor.Function{{QID: b, Handle: noopHandle}}},
	}

	r1 := New(plugins)
	r2 := New(plugins)

	if diff := cmp.Diff(r1.Enumerate(), r2.Enumerate()); diff != "" {
		t.Errorf("Enumerate() not reproducible across builds:\n%s", diff)
	}
	assert.Equal(t, []qid.QID{a, b}, r1.Enumerate())
	assert.Equal(t, 2, r1.Len())
}

func TestRegistry_New_PanicsOnDuplicateQID(t *testing.T) {
	dup := q(t, "a", "f")
	plugins := []*descriptor.Plugin{
		{ID: "a", Functions: []descriptor.Function{{QID: dup, Handle: noopHandle}}},
		{ID: "a2", Functions: []descriptor.Function{{QID: dup, Handle: noopHandle}}},
	}
	assert.Panics(t, func() { New(plugins) })
}
