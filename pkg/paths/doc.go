// Package paths provides the file locations takonsole reads and writes.
//
// It follows the XDG Base Directory specification:
//
//   - Config: $XDG_CONFIG_HOME/takonsole (config.toml or config.yaml)
//   - State:  $XDG_STATE_HOME/takonsole (takonsole.log)
//
// # Environment Variables
//
//   - TAKONSOLE_CONFIG_DIR: override the config directory
//   - TAKONSOLE_STATE_DIR: override the state directory
//   - XDG_STATE_HOME: honored directly when set
package paths
