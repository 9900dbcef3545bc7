package qid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Valid(t *testing.T) {
	q, err := New("hello", "world")
	require.NoError(t, err)
	assert.Equal(t, "hello::world", q.String())
}

func TestNew_RejectsWhitespaceAndSeparators(t *testing.T) {
	cases := []struct {
		plugin, fn string
	}{
		{"hel lo", "world"},
		{"hello", "wor/ld"},
		{"hel\tlo", "world"},
		{"", "world"},
		{"hello", ""},
	}
	for _, tc := range cases {
		_, err := New(tc.plugin, tc.fn)
		assert.Error(t, err)
	}
}

func TestParse_RoundTripsString(t *testing.T) {
	q, err := Parse("cfg::build")
	require.NoError(t, err)
	assert.Equal(t, "cfg", q.PluginID)
	assert.Equal(t, "build", q.FunctionID)
	assert.Equal(t, "cfg::build", q.String())
}

func TestParse_RejectsMalformedInput(t *testing.T) {
	for _, s := range []string{"noseparator", "::fn", "plugin::", "a b::fn"} {
		_, err := Parse(s)
		assert.Error(t, err, s)
	}
}

func TestQID_Equal_IsCaseSensitiveAndByteExact(t *testing.T) {
	a, _ := New("cfg", "build")
	b, _ := New("cfg", "build")
	c, _ := New("Cfg", "build")
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestQID_IsZero(t *testing.T) {
	var z QID
	assert.True(t, z.IsZero())
	q, _ := New("a", "b")
	assert.False(t, q.IsZero())
}
