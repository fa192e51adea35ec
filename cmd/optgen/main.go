// Package main provides the CLI entrypoint for optgen.
//
// optgen resolves option directives attached to Go structs (or declared in a
// YAML schema) and generates a Parse<Container> function per container:
//   - resolve: print the resolved containers as YAML
//   - check: report every directive error, exit non-zero on failure
//   - gen: write the generated *_optgen.go files
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
