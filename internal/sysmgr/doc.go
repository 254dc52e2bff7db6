// Wraps the host's service manager behind a narrow interface.
//
// The provisioning steps talk to a [Manager] rather than to systemd
// directly, so the orchestrator can be exercised against a fake without
// touching a live service manager. The systemd implementation writes unit
// files into the configured unit directory and shells out to systemctl for
// reload, start, and stop.
package sysmgr
