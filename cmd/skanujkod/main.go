package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SkanUJkod/SkanUJkod/internal/cli"
)

// main is the entrypoint for the skanujkod binary.
func main() {
	// Use a minimal logger until the kernel configures the full one.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	root := cli.New(os.Stdout, os.Stderr)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
