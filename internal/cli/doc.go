// Package cli builds the command tree for the skanujkod binary: a list
// command over every loaded plugin function, a generic run command taking a
// target QID, and one named subcommand per known analysis. It owns the
// mapping from kernel error kinds to process exit codes.
package cli
