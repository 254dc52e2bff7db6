package host

import (
	"os"
	"os/exec"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/paths"
)

// Tools that must be resolvable before provisioning mutates anything.
var RequiredTools = []string{"systemctl"}

// Read-only facts about the target host, gathered once per run.
type Environment struct {
	Hostname     string          // Configured host name.
	EUID         int             // Effective user ID of this process.
	Tools        map[string]bool // Presence of required executables by name.
	HasSystemd   bool            // Whether the host is managed by systemd.
	HasRsyslog   bool            // Whether the rsyslog rule directory exists.
	HasLogrotate bool            // Whether the logrotate rule directory exists.
}

// Gathers the host facts the provisioning plan depends on.
//
// Discovery never mutates the host. Probes that fail (unreadable hostname,
// missing directories) record absence rather than erroring; the orchestrator
// decides what absence means for each subsystem.
func Discover(cfg config.Config) Environment {
	hostname, _ := os.Hostname()

	tools := make(map[string]bool, len(RequiredTools))
	for _, tool := range RequiredTools {
		_, err := exec.LookPath(tool)
		tools[tool] = err == nil
	}

	return Environment{
		Hostname:     hostname,
		EUID:         os.Geteuid(),
		Tools:        tools,
		HasSystemd:   dirExists(paths.SystemdMarker),
		HasRsyslog:   dirExists(cfg.RsyslogDir),
		HasLogrotate: dirExists(cfg.LogrotateDir),
	}
}

// Whether path exists and is a directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
