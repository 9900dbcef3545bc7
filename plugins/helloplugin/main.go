// Command helloplugin is a minimal SkanUJkod plugin, built with
//
//	go build -buildmode=plugin -o libhello.so ./plugins/helloplugin
//
// and dropped into the plugin directory. It advertises a single function,
// hello::world, which greets the user named by the "name" parameter.
package main

import (
	"fmt"

	"github.com/SkanUJkod/SkanUJkod/internal/descriptor"
	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
	"github.com/SkanUJkod/SkanUJkod/internal/qid"
	"github.com/SkanUJkod/SkanUJkod/internal/result"
)

// SkanUJkodPlugin is the well-known entry symbol the loader resolves.
func SkanUJkodPlugin() *descriptor.Plugin {
	helloWorld := qid.QID{PluginID: "hello", FunctionID: "world"}

	return &descriptor.Plugin{
		ID: "hello",
		Functions: []descriptor.Function{{
			QID:        helloWorld,
			Parameters: []string{"name"},
			Handle:     greet,
		}},
	}
}

func greet(_ descriptor.Dependencies, params paramvalue.Map) (result.Envelope, error) {
	v, ok := params.Lookup("name")
	if !ok {
		return result.Envelope{}, fmt.Errorf("parameter %q is required", "name")
	}
	name, err := v.AsString()
	if err != nil {
		return result.Envelope{}, fmt.Errorf("parameter %q must be text: %w", "name", err)
	}

	greeting := fmt.Sprintf("Hello, %s!", name)
	return result.New(greeting, greeting, "greeting"), nil
}

func main() {}
