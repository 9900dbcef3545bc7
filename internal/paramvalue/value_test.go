package paramvalue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCLI_GuessesNarrowestKind(t *testing.T) {
	assert.Equal(t, KindBool, ParseCLI("true").Kind())
	assert.Equal(t, KindBool, ParseCLI("false").Kind())
	assert.Equal(t, KindNumber, ParseCLI("42").Kind())
	assert.Equal(t, KindNumber, ParseCLI("3.14").Kind())
	assert.Equal(t, KindText, ParseCLI("World").Kind())
	assert.Equal(t, KindText, ParseCLI("./relative/path").Kind())
}

func TestValue_Conversions(t *testing.T) {
	n, err := Number(42).AsFloat64()
	require.NoError(t, err)
	assert.Equal(t, 42.0, n)

	b, err := Bool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	s, err := Text("World").AsString()
	require.NoError(t, err)
	assert.Equal(t, "World", s)
}

func TestMap_LookupAndIsolation(t *testing.T) {
	src := map[string]Value{"name": Text("World")}
	m := NewMap(src)

	v, ok := m.Lookup("name")
	require.True(t, ok)
	s, _ := v.AsString()
	assert.Equal(t, "World", s)

	src["name"] = Text("mutated")
	v2, _ := m.Lookup("name")
	s2, _ := v2.AsString()
	assert.Equal(t, "World", s2, "Map must not observe mutations to the source map after construction")

	_, ok = m.Lookup("missing")
	assert.False(t, ok)
}
