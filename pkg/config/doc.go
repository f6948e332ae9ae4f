// Package config handles configuration management for takonsole.
// It layers configuration from the embedded defaults, a TOML or YAML file,
// TAKONSOLE_* environment variables and command-line overrides, and turns
// the result into console and logging options.
package config
