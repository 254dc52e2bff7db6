package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (

	// Name used for directory and file naming.
	toolName = "capsulectl"

	// Default permission mode for directories.
	DefaultDirMode os.FileMode = 0755

	// Permission mode for the certificate directory. The daemon's group may
	// traverse it; other users get no access.
	CertDirMode os.FileMode = 0750

	// Default permission mode for files.
	DefaultFileMode os.FileMode = 0644

	// Permission mode for the TLS private key. Owner only.
	KeyFileMode os.FileMode = 0600
)

const (

	// Default content root served by the daemon.
	ContentRoot = "/var/gemini"

	// Default directory holding the TLS key pair.
	CertDir = "/etc/capsuled/certs"

	// Directory where systemd unit files are installed.
	UnitDir = "/etc/systemd/system"

	// Directory for rsyslog rule snippets.
	RsyslogDir = "/etc/rsyslog.d"

	// Directory for logrotate rule snippets.
	LogrotateDir = "/etc/logrotate.d"

	// Presence of this directory indicates a systemd-managed host.
	SystemdMarker = "/run/systemd/system"

	// System-wide configuration file for the bootstrap tool.
	SystemConfig = "/etc/capsuled/capsulectl.yaml"
)

// Path to the log file rsyslog routes the daemon's output to.
func LogFile(service string) string {
	return filepath.Join("/var/log", service+".log")
}

// Path to the configuration file, or "" when none exists.
//
// The system-wide file under /etc takes precedence. Regular users (plan
// previews, development) fall back to an XDG config file:
//
//	Linux:   ~/.config/capsulectl/capsulectl.yaml
//	macOS:   ~/Library/Application Support/capsulectl/capsulectl.yaml
func ConfigFile() string {
	if _, err := os.Stat(SystemConfig); err == nil {
		return SystemConfig
	}
	if p, err := xdg.SearchConfigFile(filepath.Join(toolName, toolName+".yaml")); err == nil {
		return p
	}
	return ""
}
