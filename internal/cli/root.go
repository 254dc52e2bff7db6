package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/capsulehq/capsulectl/internal"
	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/paths"
)

// Represents the root command for the bootstrap tool.
var RootCmd struct {
	Quiet     bool         `short:"q" help:"Suppress informational output."`
	Verbose   bool         `short:"v" help:"Enable verbose output."`
	Debug     bool         `short:"d" help:"Enable debug output."`
	Config    string       `short:"c" help:"Override the configuration file path." placeholder:"PATH"`
	Provision ProvisionCmd `cmd:"" help:"Provision the host for the daemon."`
	Plan      PlanCmd      `cmd:"" help:"Preview what provisioning would change."`
	Service   ServiceCmd   `cmd:"" help:"Start or stop the registered service."`
	Version   VersionCmd   `cmd:"" help:"Show version information."`
}

// Parses arguments, configures logging, and runs the selected subcommand.
func Execute() error {

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	kongCtx := kong.Parse(&RootCmd,
		kong.Name(internal.Name),
		kong.Description("Provisions a host to run the capsuled Gemini content server.\n\nCreates the content and certificate directories, generates a self-signed TLS pair, registers the systemd unit, and installs log routing and rotation rules. Safe to re-run."),
		kong.UsageOnError(),
		kong.Vars{
			"version": internal.VersionString(),
		},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	configureLogger()

	return kongCtx.Run()
}

// Configures the global logger based on CLI flags.
func configureLogger() {
	level := slog.LevelInfo
	if RootCmd.Debug || internal.IsDebug() {
		level = slog.LevelDebug
	} else if RootCmd.Quiet || internal.IsQuiet() {
		level = slog.LevelWarn
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:     level,
		AddSource: RootCmd.Verbose || internal.IsVerbose(),
		NoColor:   !isatty(os.Stderr),
	})))
}

// Loads the configuration, honoring the --config override.
func loadConfig() (config.Config, error) {
	path := RootCmd.Config
	if path == "" {
		path = paths.ConfigFile()
	}
	return config.Load(path)
}

// Whether the given file is an interactive terminal.
func isatty(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
