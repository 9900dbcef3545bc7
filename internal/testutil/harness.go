// Package testutil provides shared fixtures for kernel tests: thread-safe
// log capture and compact builders for plugin descriptors, so tests can
// assemble a populated kernel without compiling shared libraries.
package testutil

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// QID builds a validated QID or fails the test.
func QID(t *testing.T, plugin, fn string) qid.QID {
	t.Helper()
	q, err := qid.New(plugin, fn)
	require.NoError(t, err)
	return q
}

// NoopHandle is a plugin-function handle that succeeds with an empty
// envelope.
func NoopHandle(descriptor.Dependencies, paramvalue.Map) (result.Envelope, error) {
	return result.New(nil, "", ""), nil
}

// EchoHandle returns a handle whose envelope displays the given text, for
// asserting which function's output reached the caller.
func EchoHandle(display string) descriptor.Handle {
	return func(descriptor.Dependencies, paramvalue.Map) (result.Envelope, error) {
		return result.New(display, display, ""), nil
	}
}

// Function builds a plugin-function descriptor with the NoopHandle.
func Function(t *testing.T, plugin, fn string, deps []qid.QID, params []string) descriptor.Function {
	t.Helper()
	return descriptor.Function{
		QID:          QID(t, plugin, fn),
		Dependencies: deps,
		Parameters:   params,
		Handle:       NoopHandle,
	}
}

// Plugin builds a plugin descriptor from its functions, deriving the plugin
// ID from the first function's QID.
func Plugin(t *testing.T, order int, functions ...descriptor.Function) *descriptor.Plugin {
	t.Helper()
	require.NotEmpty(t, functions)
	return &descriptor.Plugin{
		ID:        functions[0].QID.PluginID,
		Functions: functions,
		LoadOrder: order,
	}
}
