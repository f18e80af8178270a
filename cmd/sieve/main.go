// Package main is the entry point for the sieve target resolver.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/sieve/cmd/sieve/commands"
	"go.trai.ch/sieve/internal/app"
	"go.trai.ch/sieve/internal/core/domain"
	_ "go.trai.ch/sieve/internal/wiring"
)

// Exit codes shared with the wider analysis toolchain.
const (
	exitOK                  = 0
	exitFatal               = 2
	exitUnsupportedLanguage = 8
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return exitFatal
	}
	defer func() { _ = components.Telemetry.Close() }()

	cli := commands.New(components.App, components.Logger, components.Telemetry)

	if err := cli.Execute(ctx); err != nil {
		components.Logger.Error(err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	if errors.Is(err, domain.ErrUnsupportedLanguage) {
		return exitUnsupportedLanguage
	}
	return exitFatal
}
