package provision

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/capsulehq/capsulectl/internal/config"
	"github.com/capsulehq/capsulectl/internal/sysmgr"
)

// Returns a step ensuring the rendered unit definition is registered with
// the service manager.
//
// Installation is a file copy plus a reload notification; the service is
// never started here. An installed unit whose content differs from the
// managed definition is drift, not something to overwrite: the operator may
// have customized it.
func unitStep(cfg config.Config, mgr sysmgr.Manager, rendered []byte) step {
	name := cfg.UnitName()

	return step{
		name: "service unit",
		hint: fmt.Sprintf("unit %s is managed by this tool; remove it to reinstall", name),
		check: func(ctx context.Context) (bool, error) {
			existing, err := mgr.ReadUnit(name)
			if errors.Is(err, fs.ErrNotExist) {
				return false, nil
			}
			if err != nil {
				return false, fmt.Errorf("%w: reading unit %s: %v", ErrServiceRegistration, name, err)
			}
			if !bytes.Equal(existing, rendered) {
				return false, fmt.Errorf("%w: unit %s differs from the managed definition", ErrPermissionDrift, name)
			}
			return true, nil
		},
		apply: func(ctx context.Context) error {
			if err := mgr.InstallUnit(name, rendered); err != nil {
				return fmt.Errorf("%w: installing unit %s: %v", ErrServiceRegistration, name, err)
			}
			if err := mgr.Reload(ctx); err != nil {
				return fmt.Errorf("%w: reloading unit definitions: %v", ErrServiceRegistration, err)
			}
			return nil
		},
	}
}
