package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Port != 1965 {
		t.Fatalf("port = %d, want 1965", cfg.Port)
	}
	if cfg.Service != "capsuled" {
		t.Fatalf("service = %q, want capsuled", cfg.Service)
	}
	if cfg.Domain != "" {
		t.Fatalf("domain = %q, want empty (resolved from host name)", cfg.Domain)
	}
	if cfg.ContentRoot == "" || cfg.CertDir == "" || cfg.UnitDir == "" {
		t.Fatal("default layout paths must not be empty")
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "capsulectl.yaml")
	data := "domain: example.org\ncontent_root: /srv/gemini\nport: 1966\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Domain != "example.org" {
		t.Fatalf("domain = %q, want example.org", cfg.Domain)
	}
	if cfg.ContentRoot != "/srv/gemini" {
		t.Fatalf("content_root = %q, want /srv/gemini", cfg.ContentRoot)
	}
	if cfg.Port != 1966 {
		t.Fatalf("port = %d, want 1966", cfg.Port)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Service != "capsuled" {
		t.Fatalf("service = %q, want default capsuled", cfg.Service)
	}
	if cfg.UnitDir != Default().UnitDir {
		t.Fatalf("unit_dir = %q, want default %q", cfg.UnitDir, Default().UnitDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("domain: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestDerivedPaths(t *testing.T) {
	cfg := Default()
	cfg.CertDir = "/etc/capsuled/certs"

	if got := cfg.CertFile(); got != "/etc/capsuled/certs/cert.pem" {
		t.Fatalf("CertFile = %q", got)
	}
	if got := cfg.KeyFile(); got != "/etc/capsuled/certs/key.rsa" {
		t.Fatalf("KeyFile = %q", got)
	}
	if got := cfg.UnitName(); got != "capsuled.service" {
		t.Fatalf("UnitName = %q", got)
	}
	if got := cfg.LogFile(); got != "/var/log/capsuled.log" {
		t.Fatalf("LogFile = %q", got)
	}
}
