package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// ThemeConfig holds UI theme/color configuration
type ThemeConfig struct {
	Name     string `toml:"name"`     // preset family: "default", "dracula", "nord" or "none"
	Mode     string `toml:"mode"`     // "auto", "light", "dark"
	Primary  string `toml:"primary"`  // main accent color (borders, titles)
	Accent   string `toml:"accent"`   // highlight color (selected items)
	Success  string `toml:"success"`  // goal met, saved
	Error    string `toml:"error"`    // validation errors, missed days
	Muted    string `toml:"muted"`    // disabled/inactive text
	Normal   string `toml:"normal"`   // standard text
	Info     string `toml:"info"`     // informational text
	Warning  string `toml:"warning"`  // partial days
	Nerdfont bool   `toml:"nerdfont"` // use nerd font symbols
}

// Config holds the runlog configuration
type Config struct {
	DataDir  string      `toml:"data_dir"`  // where runs.db and runlog.log live
	LogLevel string      `toml:"log_level"` // debug, info, warn, error
	Theme    ThemeConfig `toml:"theme"`
}

// DefaultLogLevel is used when log_level is not configured
const DefaultLogLevel = "info"

// Environment variables that override config file values.
const (
	EnvDataDir   = "RUNLOG_DATA_DIR"
	EnvLogLevel  = "RUNLOG_LOG_LEVEL"
	EnvTheme     = "RUNLOG_THEME"
	EnvThemeMode = "RUNLOG_THEME_MODE"
)

// Default returns the default configuration
func Default() Config {
	return Config{
		LogLevel: DefaultLogLevel,
	}
}

// ValidatePath checks that the path is absolute or starts with ~
// Returns error if path is relative (like "." or "..")
func ValidatePath(path, fieldName string) error {
	if path == "" {
		return nil // Empty is allowed (means not configured)
	}
	if path[0] == '~' {
		return nil
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("%s must be absolute or start with ~, got: %q", fieldName, path)
	}
	return nil
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Dir returns ~/.config/runlog
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "runlog"), nil
}

// Path returns the path to the config file
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// rawConfig mirrors the file layout before validation and defaults
type rawConfig struct {
	DataDir  string      `toml:"data_dir"`
	LogLevel string      `toml:"log_level"`
	Theme    ThemeConfig `toml:"theme"`
}

// Load reads config from ~/.config/runlog/config.toml and applies
// environment overrides, including those from ~/.config/runlog/.env.
// Returns Default() if the file doesn't exist (no error).
func Load() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Default(), nil
	}

	cfg, err := LoadFile(filepath.Join(dir, "config.toml"))
	if err != nil {
		return Default(), err
	}

	dotenv, err := readDotenv(filepath.Join(dir, ".env"))
	if err != nil {
		return Default(), err
	}

	if err := applyEnvOverrides(&cfg, envLookup(dotenv)); err != nil {
		return Default(), err
	}

	return cfg, nil
}

// LoadFile reads and validates a single config file.
// A missing file yields Default().
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	var raw rawConfig
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg := Config(raw)
	if err := finalize(&cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// finalize validates cfg, expands ~ and fills defaults for empty values
func finalize(cfg *Config) error {
	if err := ValidatePath(cfg.DataDir, "data_dir"); err != nil {
		return err
	}
	if err := validateEnum(cfg.LogLevel, "log_level", ValidLogLevels); err != nil {
		return err
	}
	if err := validateEnum(cfg.Theme.Name, "theme.name", ValidThemeNames); err != nil {
		return err
	}
	if err := validateEnum(cfg.Theme.Mode, "theme.mode", ValidThemeModes); err != nil {
		return err
	}

	// Shell doesn't expand ~ in config files
	expanded, err := expandPath(cfg.DataDir)
	if err != nil {
		return fmt.Errorf("expand data_dir: %w", err)
	}
	cfg.DataDir = expanded

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	return nil
}

// readDotenv parses an optional .env file without touching the process environment.
func readDotenv(path string) (map[string]string, error) {
	vals, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return vals, nil
}

// envLookup prefers the real environment over values from a .env file.
// An exported but empty variable counts as unset.
func envLookup(dotenv map[string]string) func(string) string {
	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}
}

// applyEnvOverrides replaces config values with non-empty env values
func applyEnvOverrides(cfg *Config, getenv func(string) string) error {
	if v := getenv(EnvDataDir); v != "" {
		cfg.DataDir = v
	}
	if v := getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
	if v := getenv(EnvTheme); v != "" {
		cfg.Theme.Name = v
	}
	if v := getenv(EnvThemeMode); v != "" {
		cfg.Theme.Mode = v
	}
	return finalize(cfg)
}

const defaultConfig = `# runlog configuration

# Directory holding runs.db, runlog.log and exports.
# Must be an absolute path or start with ~ (no relative paths like "." or "..")
# Defaults to $XDG_DATA_HOME/runlog or ~/.local/share/runlog
# (~/Library/Application Support/runlog on macOS)
# data_dir = "~/Dropbox/runlog"

# Log verbosity for runlog.log: debug, info, warn or error
log_level = "info"

# Theme settings
# [theme]
# name = "default"   # none, default, dracula or nord
# mode = "auto"      # auto, light or dark
#
# Individual colors override the preset (ANSI number or hex)
# primary = "62"
# accent = "212"
# success = "82"    # goal met
# warning = "214"   # ran, but below the daily goal
# error = "196"     # no run
# muted = "240"
# normal = "252"
# info = "244"
#
# nerdfont = true    # use nerd font glyphs for day and streak symbols

# Environment overrides (also read from ~/.config/runlog/.env):
#   RUNLOG_DATA_DIR, RUNLOG_LOG_LEVEL, RUNLOG_THEME, RUNLOG_THEME_MODE
`

// DefaultConfig returns the commented default config file content
func DefaultConfig() string {
	return defaultConfig
}

// Init creates a default config file at ~/.config/runlog/config.toml
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}
	return path, writeDefault(path, force)
}

func writeDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return errors.New("config file already exists: " + path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(defaultConfig), 0644)
}
