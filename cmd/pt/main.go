package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"productivity-tracker/internal/cli"
	"productivity-tracker/internal/config"
)

func main() {
	// Interrupts reach the full-screen UI as key presses; SIGTERM cancels
	// whatever command is running.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(config.NewLoader())
	if err := root.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
