// Discovers read-only facts about the target host.
//
// The environment is gathered exactly once per run and handed to the
// provisioning orchestrator as plain data. Tests construct Environment
// literals instead of probing the machine they run on.
package host
