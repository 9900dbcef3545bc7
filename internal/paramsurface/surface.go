package paramsurface

import (
	"fmt"
	"strings"

	"github.com/SkanUJkod/SkanUJkod/internal/paramvalue"
)

// Build assembles the parameter map for one run. fileValues come from an
// optional HCL params file (see LoadFile); pairs are the CLI's repeated
// "key=value" strings. Pairs are applied after the file, so a flag wins
// over a file entry under the same key. The returned Map is independent of
// both inputs and is never written to again.
func Build(fileValues map[string]paramvalue.Value, pairs []string) (paramvalue.Map, error) {
	merged := make(map[string]paramvalue.Value, len(fileValues)+len(pairs))
	for k, v := range fileValues {
		merged[k] = v
	}

	for _, pair := range pairs {
		key, value, err := splitPair(pair)
		if err != nil {
			return paramvalue.Map{}, err
		}
		merged[key] = paramvalue.ParseCLI(value)
	}

	return paramvalue.NewMap(merged), nil
}

// splitPair parses one "key=value" string. The value may itself contain
// '='; only the first one separates.
func splitPair(pair string) (string, string, error) {
	key, value, found := strings.Cut(pair, "=")
	if !found {
		return "", "", fmt.Errorf("parameter %q is not of the form key=value", pair)
	}
	if key == "" {
		return "", "", fmt.Errorf("parameter %q has an empty key", pair)
	}
	return key, value, nil
}
