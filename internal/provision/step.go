package provision

import "context"

// A single idempotent provisioning step.
//
// check reports whether the step's artifact already exists in its required
// state. apply creates it. Re-applying a satisfied step never happens: the
// orchestrator only calls apply when check reported the artifact missing.
// An error from check means the artifact exists in an unexpected state
// (drift, broken pairs); it is never auto-corrected.
type step struct {
	name     string
	optional bool   // Failure is reported but does not abort the remaining plan.
	skip     string // Non-empty: the step is skipped with this reason.
	hint     string // Operator guidance appended to failure messages.
	check    func(ctx context.Context) (bool, error)
	apply    func(ctx context.Context) error
}
