package main

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"github.com/capsulehq/capsulectl/internal"
	"github.com/capsulehq/capsulectl/internal/cli"
	"github.com/capsulehq/capsulectl/internal/provision"
)

// The entry point for the capsulectl bootstrap tool.
//
// Initializes logging, executes the root command, and maps provisioning
// errors to their exit code class so calling automation can branch on the
// outcome.
func main() {
	slog.SetDefault(logger())

	slog.Debug("build", "version", internal.VersionString())

	if err := cli.Execute(); err != nil {
		slog.Error(err.Error())
		os.Exit(provision.ExitCode(err))
	}
}

// Creates a logger seeded from build-time linker flags.
//
// The logger is reconfigured after flag parsing via cli.Execute.
func logger() *slog.Logger {
	return slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: logLevel(),
	}))
}

// Returns the log level derived from build-time linker flags.
func logLevel() slog.Level {
	if internal.IsDebug() {
		return slog.LevelDebug
	}
	if internal.IsQuiet() {
		return slog.LevelWarn
	}
	return slog.LevelInfo
}
