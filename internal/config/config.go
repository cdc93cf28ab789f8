// Package config loads slotver configuration from JSONC files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/calvinalkan/slotkit/internal/fs"
)

// Number bases accepted for [Config.Base].
const (
	BaseDec = "dec"
	BaseHex = "hex"
)

// FileName is the project config file name.
const FileName = ".slotver.json"

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	Base        string  `json:"base,omitempty"`
	HistoryFile *string `json:"history_file,omitempty"`
	Workers     *int    `json:"workers,omitempty"`

	// Resolved (computed, not serialized)
	EffectiveCwd string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)

	// Sources tracks which config files were loaded (for diagnostics)
	Sources Sources `json:"-"`
}

// Sources tracks which config files were loaded.
type Sources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// Default returns the default configuration for the given environment.
func Default(env map[string]string) Config {
	history := defaultHistoryFile(env)

	return Config{
		Base:        BaseDec,
		HistoryFile: &history,
	}
}

// History returns the shell history path, or "" when history is disabled.
func (c Config) History() string {
	if c.HistoryFile == nil {
		return ""
	}

	return *c.HistoryFile
}

// WorkerCount returns the configured verify workers; 0 means GOMAXPROCS.
func (c Config) WorkerCount() int {
	if c.Workers == nil {
		return 0
	}

	return *c.Workers
}

// Errors returned by [Load].
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrInvalidBase        = errors.New("base must be \"dec\" or \"hex\"")
	ErrInvalidWorkers     = errors.New("workers cannot be negative")
)

// LoadInput holds the inputs for [Load].
type LoadInput struct {
	WorkDir      string            // resolved working directory (absolute)
	ConfigPath   string            // -c/--config flag value
	BaseOverride string            // --base flag value; empty means no override
	Env          map[string]string // environment variables
	FS           fs.FS             // filesystem; nil means the real one
}

// Load loads configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Global user config (~/.config/slotver/config.json or $XDG_CONFIG_HOME/slotver/config.json)
// 3. Project config file at default location (.slotver.json, if exists)
// 4. Explicit config file via ConfigPath (if non-empty)
// 5. CLI overrides.
func Load(input LoadInput) (Config, error) {
	fsys := input.FS
	if fsys == nil {
		fsys = fs.NewReal()
	}

	cfg := Default(input.Env)

	globalPath := globalConfigPath(input.Env)
	if globalPath != "" {
		globalCfg, loaded, err := loadFile(fsys, globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = merge(cfg, globalCfg)
		}
	}

	projectPath, mustExist := filepath.Join(input.WorkDir, FileName), false

	if input.ConfigPath != "" {
		projectPath = input.ConfigPath
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(input.WorkDir, projectPath)
		}

		mustExist = true

		exists, err := fsys.Exists(projectPath)
		if err != nil || !exists {
			return Config{}, fmt.Errorf("%w: %s", ErrConfigFileNotFound, input.ConfigPath)
		}
	}

	projectCfg, loaded, err := loadFile(fsys, projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = merge(cfg, projectCfg)
	}

	if input.BaseOverride != "" {
		cfg.Base = input.BaseOverride
	}

	err = validate(cfg)
	if err != nil {
		return Config{}, err
	}

	cfg.EffectiveCwd = input.WorkDir

	return cfg, nil
}

// globalConfigPath returns the path to the global config file.
// Uses $XDG_CONFIG_HOME/slotver/config.json if set, otherwise ~/.config/slotver/config.json.
// Returns empty string if home directory cannot be determined.
func globalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "slotver", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "slotver", "config.json")
	}

	return ""
}

func defaultHistoryFile(env map[string]string) string {
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".slotver_history")
	}

	return ""
}

// loadFile loads a config file. If mustExist is false, missing files return zero config.
// Returns the config, whether the file was loaded, and any error.
func loadFile(fsys fs.FS, path string, mustExist bool) (Config, bool, error) {
	exists, err := fsys.Exists(path)
	if err != nil || !exists {
		if mustExist {
			return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
		}

		return Config{}, false, nil
	}

	data, err := fsys.ReadFile(path)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileRead, path)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	err = validate(cfg)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	err = json.Unmarshal(standardized, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.Base != "" {
		base.Base = overlay.Base
	}

	// Presence matters, not emptiness: "" disables history and 0 restores
	// the GOMAXPROCS default.
	if overlay.HistoryFile != nil {
		base.HistoryFile = overlay.HistoryFile
	}

	if overlay.Workers != nil {
		base.Workers = overlay.Workers
	}

	return base
}

func validate(cfg Config) error {
	switch cfg.Base {
	case "", BaseDec, BaseHex:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBase, cfg.Base)
	}

	if n := cfg.WorkerCount(); n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, n)
	}

	return nil
}

// Format renders the resolved configuration as JSON.
func Format(cfg Config) (string, error) {
	out := struct {
		Base        string `json:"base"`
		HistoryFile string `json:"history_file"`
		Workers     int    `json:"workers"`
	}{
		Base:        cfg.Base,
		HistoryFile: cfg.History(),
		Workers:     cfg.WorkerCount(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("formatting config: %w", err)
	}

	return string(data), nil
}
