package host

import (
	"os"
	"testing"

	"github.com/capsulehq/capsulectl/internal/config"
)

func TestDiscoverProbesRequiredTools(t *testing.T) {
	env := Discover(config.Default())

	for _, tool := range RequiredTools {
		if _, ok := env.Tools[tool]; !ok {
			t.Fatalf("tool %q missing from environment", tool)
		}
	}

	if env.EUID != os.Geteuid() {
		t.Fatalf("EUID = %d, want %d", env.EUID, os.Geteuid())
	}
}

func TestDiscoverUsesConfiguredLogDirs(t *testing.T) {
	cfg := config.Default()
	cfg.RsyslogDir = t.TempDir()
	cfg.LogrotateDir = "/nonexistent/logrotate.d"

	env := Discover(cfg)

	if !env.HasRsyslog {
		t.Fatal("HasRsyslog = false for an existing directory")
	}
	if env.HasLogrotate {
		t.Fatal("HasLogrotate = true for a missing directory")
	}
}
