// Package fsutil provides the file system scanning primitives the loader
// needs to discover plugin candidates.
package fsutil

import (
	"os"
	"runtime"
	"sort"
	"strings"
)

// PluginSuffix returns the host platform's shared-library filename suffix
// (spec.md §4.3, §6): ".so" everywhere except Windows and macOS, which have
// their own dynamic-linking conventions. Only files with the host's suffix
// are candidates, so on Linux a misplaced ".dll"/".dylib" is skipped rather
// than mistakenly attempted.
func PluginSuffix() string {
	switch runtime.GOOS {
	case "windows":
		return ".dll"
	case "darwin":
		return ".dylib"
	default:
		return ".so"
	}
}

// ListFilesWithSuffix scans exactly the immediate children of dir — no
// recursion, per spec.md §4.3 — and returns the basenames ending in suffix,
// in lexicographic order of basename. That ordering is what gives the
// loader its stable, reproducible load order (spec.md §4.3 "Ordering").
func ListFilesWithSuffix(dir, suffix string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), suffix) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}
