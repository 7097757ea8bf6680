// Package main provides the t3ui CLI for copying UI components into a project.
package main

import (
	"context"
	"os"
	"os/signal"

	tui "github.com/yacobolo/t3ui/internal/t3ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		tui.NewReporter(os.Stdout, os.Stderr, k.Bool("color"), false).Error(err)
		os.Exit(1)
	}
}
