package provision

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/capsulehq/capsulectl/internal/paths"
)

// Returns a step ensuring a directory exists with the required mode and
// owner.
//
// An existing directory is verified, never corrected: drifted mode or
// ownership signals out-of-band operator modification and fails the step
// with [ErrPermissionDrift].
func directoryStep(name, path string, mode os.FileMode, uid, gid int) step {
	return step{
		name: name,
		hint: fmt.Sprintf("expected %s with mode %04o owned by uid %d", path, mode, uid),
		check: func(ctx context.Context) (bool, error) {
			return checkDir(path, mode, uid, gid)
		},
		apply: func(ctx context.Context) error {
			return createDir(path, mode, uid, gid)
		},
	}
}

// Verifies an existing directory against the required mode and owner.
//
// Reports (false, nil) when the directory does not exist yet.
func checkDir(path string, mode os.FileMode, uid, gid int) (bool, error) {
	info, err := os.Lstat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !info.IsDir() {
		return false, fmt.Errorf("%w: %s exists but is not a directory", ErrPermissionDrift, path)
	}
	if perm := info.Mode().Perm(); perm != mode {
		return false, fmt.Errorf("%w: %s has mode %04o, want %04o", ErrPermissionDrift, path, perm, mode)
	}

	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return false, err
	}
	if int(st.Uid) != uid || int(st.Gid) != gid {
		return false, fmt.Errorf("%w: %s is owned by %d:%d, want %d:%d",
			ErrPermissionDrift, path, st.Uid, st.Gid, uid, gid)
	}

	return true, nil
}

// Creates the directory with the required mode and owner. Missing parents
// are created with the default directory mode.
func createDir(path string, mode os.FileMode, uid, gid int) error {
	if err := os.MkdirAll(filepath.Dir(path), paths.DefaultDirMode); err != nil {
		return err
	}
	if err := os.Mkdir(path, mode); err != nil {
		return err
	}

	// Mkdir is subject to the umask; force the exact mode.
	if err := os.Chmod(path, mode); err != nil {
		return err
	}
	return os.Chown(path, uid, gid)
}

// Writes a file and forces the exact mode and owner.
func writeFileOwned(path string, data []byte, mode os.FileMode, uid, gid int) error {
	if err := os.WriteFile(path, data, mode); err != nil {
		return err
	}
	if err := os.Chmod(path, mode); err != nil {
		return err
	}
	return os.Chown(path, uid, gid)
}

// Whether path exists as a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
