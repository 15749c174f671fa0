// Package config handles loading and validation of runlog configuration.
//
// Configuration is read from ~/.config/runlog/config.toml with environment
// variable overrides.
//
// # Configuration Sources (highest priority first)
//
//   - RUNLOG_* environment variables
//   - RUNLOG_* entries in ~/.config/runlog/.env
//   - Config file settings
//   - Default values
//
// # Key Settings
//
//   - data_dir: Directory for the run database and log (must be absolute or ~/...)
//   - log_level: "debug", "info", "warn" or "error" (default: "info")
//   - [theme]: preset name, light/dark mode and per-color overrides
//
// # Path Validation
//
// Directory paths must be absolute or start with ~ (no relative paths like "."
// or "..") to avoid confusion about the working directory.
package config
