package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/capsulehq/capsulectl/internal/host"
	"github.com/capsulehq/capsulectl/internal/provision"
	"github.com/capsulehq/capsulectl/internal/sysmgr"
)

// Represents the 'capsulectl provision' command.
type ProvisionCmd struct {
	JSON bool `help:"Emit the provisioning report as JSON."`
}

// Executes the provision command.
//
// Discovers the host environment, runs the full provisioning plan, and
// prints the per-step report. The process exit code distinguishes preflight
// failures, permission drift, and partial provisioning failures.
func (c *ProvisionCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := host.Discover(cfg)
	if cfg.Domain == "" {
		cfg.Domain = env.Hostname
	}

	report, err := provision.Run(ctx, env, cfg, sysmgr.NewSystemd(cfg.UnitDir))
	printReport(report, c.JSON)
	return err
}

// Represents the 'capsulectl plan' command.
type PlanCmd struct {
	JSON bool `help:"Emit the preview report as JSON."`
}

// Executes the plan command.
//
// Evaluates every step's precondition without mutating the host and prints
// which artifacts are missing, satisfied, or drifted.
func (c *PlanCmd) Run(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	env := host.Discover(cfg)
	if cfg.Domain == "" {
		cfg.Domain = env.Hostname
	}

	report, err := provision.Preview(ctx, env, cfg, sysmgr.NewSystemd(cfg.UnitDir))
	printReport(report, c.JSON)
	return err
}

// Writes the report to stdout as a text table or JSON.
func printReport(report *provision.Report, asJSON bool) {
	if report == nil {
		return
	}

	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return
		}
		fmt.Println(string(data))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, s := range report.Steps {
		if s.Message != "" {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Outcome, s.Message)
		} else {
			fmt.Fprintf(w, "%s\t%s\t\n", s.Name, s.Outcome)
		}
	}
	w.Flush()

	for _, warning := range report.Warnings {
		fmt.Printf("warning: %s\n", warning)
	}
}
