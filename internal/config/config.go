package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/capsulehq/capsulectl/internal/paths"
)

const (

	// Gemini listens on 1965 by convention.
	defaultPort = 1965

	// Certificate file name the daemon's certificate store expects.
	certFileName = "cert.pem"

	// Key file name the daemon's certificate store expects.
	keyFileName = "key.rsa"
)

// Describes the host layout and service identity to provision.
//
// Every field has a default; a configuration file only needs to override
// what differs on the target host. Domain is the one field operators almost
// always set: it names the public domain the self-signed certificate is
// bound to.
type Config struct {
	Domain       string `yaml:"domain"`        // Public domain for certificate generation. Empty falls back to the host name.
	Service      string `yaml:"service"`       // Service name, used for the unit, syslog tag, and log file.
	Owner        string `yaml:"owner"`         // User owning the provisioned artifacts.
	Port         int    `yaml:"port"`          // Listening port handed to the daemon.
	DaemonBin    string `yaml:"daemon_bin"`    // Path to the daemon executable for ExecStart.
	ContentRoot  string `yaml:"content_root"`  // Directory of operator-writable gemtext content.
	CertDir      string `yaml:"cert_dir"`      // Directory holding the TLS key pair.
	UnitDir      string `yaml:"unit_dir"`      // Directory where the systemd unit is installed.
	RsyslogDir   string `yaml:"rsyslog_dir"`   // Directory for the rsyslog routing rule.
	LogrotateDir string `yaml:"logrotate_dir"` // Directory for the logrotate rule.
}

// Returns the built-in configuration.
func Default() Config {
	return Config{
		Service:      "capsuled",
		Owner:        "root",
		Port:         defaultPort,
		DaemonBin:    "/usr/local/bin/capsuled",
		ContentRoot:  paths.ContentRoot,
		CertDir:      paths.CertDir,
		UnitDir:      paths.UnitDir,
		RsyslogDir:   paths.RsyslogDir,
		LogrotateDir: paths.LogrotateDir,
	}
}

// Loads the configuration file at path, overlaid on the defaults.
//
// An empty path returns the defaults unchanged, so a host without a
// configuration file is provisioned with the standard layout.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Returns the systemd unit name for the service.
func (c Config) UnitName() string {
	return c.Service + ".service"
}

// Returns the path of the certificate file.
func (c Config) CertFile() string {
	return filepath.Join(c.CertDir, certFileName)
}

// Returns the path of the private key file.
func (c Config) KeyFile() string {
	return filepath.Join(c.CertDir, keyFileName)
}

// Returns the path of the daemon's log file.
func (c Config) LogFile() string {
	return paths.LogFile(c.Service)
}
