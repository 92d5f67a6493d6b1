package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vertextoedge/pixi-assistant/internal/cli"
)

// version is set via ldflags during release builds
var version = "0.1.0"

func main() {
	// Interrupts kill a hung info command instead of leaving it behind
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.DefaultDeps(version))
	stop()
	os.Exit(code)
}
