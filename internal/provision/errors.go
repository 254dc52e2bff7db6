package provision

import "errors"

var (
	ErrMissingPrivilege     = errors.New("insufficient privileges")
	ErrMissingDependency    = errors.New("missing dependency")
	ErrPermissionDrift      = errors.New("permission drift")
	ErrCredentialGeneration = errors.New("credential generation failed")
	ErrServiceRegistration  = errors.New("service registration failed")
	ErrLogIntegration       = errors.New("log integration failed")
)

// Exit codes for calling automation. Preflight failures, permission drift,
// and partial provisioning failures are distinguishable without parsing
// output.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitPreflight = 2
	ExitDrift     = 3
	ExitPartial   = 4
)

// Maps a provisioning error to its exit code class.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrMissingPrivilege), errors.Is(err, ErrMissingDependency):
		return ExitPreflight
	case errors.Is(err, ErrPermissionDrift):
		return ExitDrift
	case errors.Is(err, ErrCredentialGeneration),
		errors.Is(err, ErrServiceRegistration),
		errors.Is(err, ErrLogIntegration):
		return ExitPartial
	default:
		return ExitFailure
	}
}
