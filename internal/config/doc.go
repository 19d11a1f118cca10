// Package config loads application configuration from environment
// variables (prefix IPI) merged over an optional ipi-config.yaml next to
// the executable, and centralizes filesystem path resolution.
package config
