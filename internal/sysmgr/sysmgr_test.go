package sysmgr

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"reflect"
	"testing"
)

func TestInstallAndReadUnit(t *testing.T) {
	s := NewSystemd(t.TempDir())
	contents := []byte("[Unit]\nDescription=test\n")

	if err := s.InstallUnit("test.service", contents); err != nil {
		t.Fatalf("InstallUnit error: %v", err)
	}

	got, err := s.ReadUnit("test.service")
	if err != nil {
		t.Fatalf("ReadUnit error: %v", err)
	}
	if string(got) != string(contents) {
		t.Fatalf("unit contents = %q, want %q", got, contents)
	}

	info, err := os.Stat(s.UnitPath("test.service"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0644 {
		t.Fatalf("unit mode = %o, want 0644", info.Mode().Perm())
	}
}

func TestReadUnitMissing(t *testing.T) {
	s := NewSystemd(t.TempDir())

	_, err := s.ReadUnit("absent.service")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("ReadUnit error = %v, want fs.ErrNotExist", err)
	}
}

func TestLifecycleInvocations(t *testing.T) {
	var calls [][]string
	s := NewSystemd(t.TempDir())
	s.run = func(ctx context.Context, args ...string) error {
		calls = append(calls, args)
		return nil
	}

	ctx := context.Background()
	if err := s.Reload(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Start(ctx, "capsuled.service"); err != nil {
		t.Fatal(err)
	}
	if err := s.Stop(ctx, "capsuled.service"); err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"daemon-reload"},
		{"start", "capsuled.service"},
		{"stop", "capsuled.service"},
	}
	if !reflect.DeepEqual(calls, want) {
		t.Fatalf("systemctl calls = %v, want %v", calls, want)
	}
}
