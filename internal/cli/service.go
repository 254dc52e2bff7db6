package cli

import (
	"context"

	"github.com/capsulehq/capsulectl/internal/sysmgr"
)

// Represents the 'capsulectl service' command group.
type ServiceCmd struct {
	Start StartCmd `cmd:"" help:"Start the daemon via the service manager."`
	Stop  StopCmd  `cmd:"" help:"Stop the daemon via the service manager."`
}

// Represents the 'capsulectl service start' command.
type StartCmd struct{}

// Executes the start command.
func (c *StartCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return sysmgr.NewSystemd(cfg.UnitDir).Start(ctx, cfg.UnitName())
}

// Represents the 'capsulectl service stop' command.
type StopCmd struct{}

// Executes the stop command.
func (c *StopCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return sysmgr.NewSystemd(cfg.UnitDir).Stop(ctx, cfg.UnitName())
}
