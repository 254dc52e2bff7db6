// Loads the bootstrap configuration.
//
// The configuration is a small YAML file describing the daemon's identity
// (domain, service name, port) and where its artifacts live on the host.
// All paths are configuration, not fixed: the defaults in the paths package
// apply when a field is omitted, and a missing file altogether provisions
// the standard layout.
package config
