// Provides the default host filesystem layout for the bootstrap tool.
//
// Every path here is a default, not a mandate: the configuration file can
// relocate any of them. Permission modes are fixed policy — the provisioning
// steps verify existing artifacts against these modes and refuse to alter
// artifacts that drifted.
package paths
