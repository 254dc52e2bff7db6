// Package provision brings a host from bare OS to a fully registered
// daemon installation, idempotently.
//
// The bootstrap is an ordered plan of steps, each pairing a precondition
// check with an apply action: content and certificate directories, the
// self-signed TLS pair, the systemd unit, and the rsyslog and logrotate
// rules. A satisfied step is a no-op, so re-running the bootstrap on a
// provisioned host changes nothing and reports every step as already
// satisfied. Existing artifacts are verified but never corrected; drifted
// modes, owners, or contents fail with [ErrPermissionDrift] and are left
// for the operator.
//
// The live filesystem and service manager are passed in as explicit
// collaborators (configuration paths and a [sysmgr.Manager]), so every
// step is testable against a temporary directory and a fake manager.
//
// Example usage:
//
//	env := host.Discover(cfg)
//	report, err := provision.Run(ctx, env, cfg, sysmgr.NewSystemd(cfg.UnitDir))
//	for _, s := range report.Steps {
//	    fmt.Printf("%-24s %s\n", s.Name, s.Outcome)
//	}
//	os.Exit(provision.ExitCode(err))
package provision
