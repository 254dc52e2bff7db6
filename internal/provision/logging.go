package provision

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/host"
	"github.com/capsulehq/capsulectl/internal/paths"
)

// Returns a step installing the rsyslog rule routing the daemon's syslog
// output to its own log file.
//
// Log routing is optional: the service functions without it, so a host
// without rsyslog skips the step instead of failing.
func rsyslogStep(cfg config.Config, env host.Environment, rendered []byte) step {
	s := logArtifactStep("rsyslog rule",
		filepath.Join(cfg.RsyslogDir, cfg.Service+".conf"), rendered)
	if !env.HasRsyslog {
		s.skip = fmt.Sprintf("rsyslog rule directory %s does not exist", cfg.RsyslogDir)
	}
	return s
}

// Returns a step installing the logrotate rule for the daemon's log file.
func logrotateStep(cfg config.Config, env host.Environment, rendered []byte) step {
	s := logArtifactStep("logrotate rule",
		filepath.Join(cfg.LogrotateDir, cfg.Service), rendered)
	if !env.HasLogrotate {
		s.skip = fmt.Sprintf("logrotate rule directory %s does not exist", cfg.LogrotateDir)
	}
	return s
}

// Builds an optional step managing a log-integration config file.
//
// The file is created when missing and verified byte-for-byte when present.
// A differing file is operator-modified and left alone.
func logArtifactStep(name, path string, rendered []byte) step {
	return step{
		name:     name,
		optional: true,
		check: func(ctx context.Context) (bool, error) {
			existing, err := os.ReadFile(path)
			if err != nil {
				if os.IsNotExist(err) {
					return false, nil
				}
				return false, fmt.Errorf("%w: reading %s: %v", ErrLogIntegration, path, err)
			}
			if !bytes.Equal(existing, rendered) {
				return false, fmt.Errorf("%w: %s differs from the managed rule", ErrLogIntegration, path)
			}
			return true, nil
		},
		apply: func(ctx context.Context) error {
			if err := os.WriteFile(path, rendered, paths.DefaultFileMode); err != nil {
				return fmt.Errorf("%w: writing %s: %v", ErrLogIntegration, path, err)
			}
			return nil
		},
	}
}
