package sysmgr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/capsulehq/capsulectl/internal/paths"
)

// Operations the bootstrap needs from the host's service manager.
//
// The orchestrator only installs and reloads; starting and stopping the
// service is left to the operator (exposed as CLI passthrough commands).
type Manager interface {

	// Returns the installed unit definition. A missing unit reports
	// fs.ErrNotExist.
	ReadUnit(name string) ([]byte, error)

	// Installs a unit definition under the given name.
	InstallUnit(name string, contents []byte) error

	// Makes the service manager re-read its unit definitions.
	Reload(ctx context.Context) error

	// Starts the named unit.
	Start(ctx context.Context, name string) error

	// Stops the named unit.
	Stop(ctx context.Context, name string) error
}

// Manages units through systemd.
//
// Unit files are written directly into the unit directory; lifecycle
// operations shell out to systemctl.
type Systemd struct {
	unitDir string

	// Runs a systemctl invocation. Replaced in tests.
	run func(ctx context.Context, args ...string) error
}

// Creates a systemd manager installing units into unitDir.
func NewSystemd(unitDir string) *Systemd {
	return &Systemd{
		unitDir: unitDir,
		run:     runSystemctl,
	}
}

// Returns the path a unit is installed at.
func (s *Systemd) UnitPath(name string) string {
	return filepath.Join(s.unitDir, name)
}

// Returns the installed unit definition.
func (s *Systemd) ReadUnit(name string) ([]byte, error) {
	return os.ReadFile(s.UnitPath(name))
}

// Writes the unit definition into the unit directory.
func (s *Systemd) InstallUnit(name string, contents []byte) error {
	return os.WriteFile(s.UnitPath(name), contents, paths.DefaultFileMode)
}

// Runs "systemctl daemon-reload".
func (s *Systemd) Reload(ctx context.Context) error {
	return s.run(ctx, "daemon-reload")
}

// Runs "systemctl start <name>".
func (s *Systemd) Start(ctx context.Context, name string) error {
	return s.run(ctx, "start", name)
}

// Runs "systemctl stop <name>".
func (s *Systemd) Stop(ctx context.Context, name string) error {
	return s.run(ctx, "stop", name)
}

// Invokes systemctl, folding captured stderr into the returned error.
func runSystemctl(ctx context.Context, args ...string) error {
	cmd := exec.CommandContext(ctx, "systemctl", args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("systemctl %s: %s", args[0], msg)
		}
		return fmt.Errorf("systemctl %s: %w", args[0], err)
	}
	return nil
}
