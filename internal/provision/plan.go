package provision

import (
	"fmt"
	"os/user"
	"strconv"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/host"
	"github.com/capsulehq/capsulectl/internal/paths"
	"github.com/capsulehq/capsulectl/internal/sysmgr"
)

// Builds the ordered provisioning plan.
//
// Ordering is a correctness requirement: the certificate directory must
// exist before the pair is generated into it, and the unit references both
// directories. The two log-integration steps come last and are optional.
func newPlan(cfg config.Config, env host.Environment, mgr sysmgr.Manager) ([]step, error) {
	uid, gid, err := resolveOwner(cfg.Owner)
	if err != nil {
		return nil, err
	}

	unit, err := render("unit.service.tmpl", cfg)
	if err != nil {
		return nil, err
	}
	rsyslogRule, err := render("rsyslog.conf.tmpl", cfg)
	if err != nil {
		return nil, err
	}
	logrotateRule, err := render("logrotate.conf.tmpl", cfg)
	if err != nil {
		return nil, err
	}

	return []step{
		directoryStep("content root", cfg.ContentRoot, paths.DefaultDirMode, uid, gid),
		directoryStep("certificate directory", cfg.CertDir, paths.CertDirMode, uid, gid),
		credentialStep(cfg, uid, gid),
		unitStep(cfg, mgr, unit),
		rsyslogStep(cfg, env, rsyslogRule),
		logrotateStep(cfg, env, logrotateRule),
	}, nil
}

// Resolves the configured owner to numeric uid and gid.
func resolveOwner(name string) (uid, gid int, err error) {
	u, err := user.Lookup(name)
	if err != nil {
		return 0, 0, fmt.Errorf("resolving owner %q: %w", name, err)
	}

	uid, err = strconv.Atoi(u.Uid)
	if err != nil {
		return 0, 0, fmt.Errorf("owner %q has non-numeric uid %q", name, u.Uid)
	}
	gid, err = strconv.Atoi(u.Gid)
	if err != nil {
		return 0, 0, fmt.Errorf("owner %q has non-numeric gid %q", name, u.Gid)
	}

	return uid, gid, nil
}
