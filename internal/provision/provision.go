package provision

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/host"
	"github.com/capsulehq/capsulectl/internal/sysmgr"
)

// Provisions the host described by the environment and configuration.
//
// Steps run strictly in order; each step's success is a precondition for
// the next. Preflight failures abort before any filesystem mutation. A
// fatal step failure marks the remaining steps skipped and returns the
// error alongside the partial report, so the operator sees exactly how far
// provisioning got. Optional step failures are recorded and execution
// continues. Nothing is retried: the operator fixes the reported condition
// and re-runs, relying on every step being idempotent.
func Run(ctx context.Context, env host.Environment, cfg config.Config, mgr sysmgr.Manager) (*Report, error) {
	report := &Report{}

	if err := preflight(env); err != nil {
		return report, err
	}
	checkHostname(env, cfg, report)

	plan, err := newPlan(cfg, env, mgr)
	if err != nil {
		return report, err
	}

	var failed error
	for _, s := range plan {
		if failed != nil {
			report.record(s.name, OutcomeSkipped, "not attempted")
			continue
		}
		if s.skip != "" {
			slog.Info("skipping step", "step", s.name, "reason", s.skip)
			report.record(s.name, OutcomeSkipped, s.skip)
			continue
		}

		satisfied, err := s.check(ctx)
		if err == nil && satisfied {
			slog.Debug("step already satisfied", "step", s.name)
			report.record(s.name, OutcomeAlreadySatisfied, "")
			continue
		}
		if err == nil {
			err = s.apply(ctx)
			if err == nil {
				slog.Info("created", "step", s.name)
				report.record(s.name, OutcomeCreated, "")
				continue
			}
		}

		report.record(s.name, OutcomeFailed, failureMessage(s, err))
		if s.optional {
			slog.Warn("optional step failed", "step", s.name, "error", err)
			report.warn(fmt.Sprintf("%s: %v (service functions without it)", s.name, err))
			continue
		}

		slog.Error("step failed", "step", s.name, "error", err)
		failed = fmt.Errorf("step %q: %w", s.name, err)
	}

	return report, failed
}

// Evaluates every step's precondition without mutating the host.
//
// Unsatisfied steps report [OutcomePending]; drifted or broken artifacts
// report [OutcomeFailed]. Unlike [Run], a failing check never aborts the
// preview — the operator wants the full picture before applying.
func Preview(ctx context.Context, env host.Environment, cfg config.Config, mgr sysmgr.Manager) (*Report, error) {
	report := &Report{}
	checkHostname(env, cfg, report)

	plan, err := newPlan(cfg, env, mgr)
	if err != nil {
		return report, err
	}

	for _, s := range plan {
		if s.skip != "" {
			report.record(s.name, OutcomeSkipped, s.skip)
			continue
		}

		satisfied, err := s.check(ctx)
		switch {
		case err != nil:
			report.record(s.name, OutcomeFailed, failureMessage(s, err))
		case satisfied:
			report.record(s.name, OutcomeAlreadySatisfied, "")
		default:
			report.record(s.name, OutcomePending, "")
		}
	}

	return report, nil
}

// Verifies privilege level and required tooling before any mutation.
func preflight(env host.Environment) error {
	if env.EUID != 0 {
		return fmt.Errorf("%w: provisioning writes to system directories and must run as root", ErrMissingPrivilege)
	}

	for _, tool := range host.RequiredTools {
		if !env.Tools[tool] {
			return fmt.Errorf("%w: %s not found in PATH", ErrMissingDependency, tool)
		}
	}

	if !env.HasSystemd {
		return fmt.Errorf("%w: host is not managed by systemd", ErrMissingDependency)
	}

	return nil
}

// Warns when the host name differs from the configured domain.
//
// Non-fatal: provisioning proceeds, but the certificate will be bound to
// the configured domain, which may not be what the operator expects.
func checkHostname(env host.Environment, cfg config.Config, report *Report) {
	if cfg.Domain == "" || env.Hostname == cfg.Domain {
		return
	}
	msg := fmt.Sprintf("host name %q does not match configured domain %q; the certificate will be issued for %q",
		env.Hostname, cfg.Domain, cfg.Domain)
	slog.Warn(msg)
	report.warn(msg)
}

// Formats a step failure for the report, appending the step's operator hint.
func failureMessage(s step, err error) string {
	if s.hint == "" {
		return err.Error()
	}
	return fmt.Sprintf("%v (%s)", err, s.hint)
}
