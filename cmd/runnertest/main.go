package main

import (
	"context"
	"os"

	"github.com/psantana5/runnertest/cmd/runnertest/cmd"
	"github.com/psantana5/runnertest/internal/shutdown"
)

func main() {
	ctx, stop := shutdown.Context(context.Background(), os.Stderr)
	err := cmd.Execute(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
