package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds the sleep timer settings.
type Config struct {
	Presets        []int // minutes
	WarningSeconds int
	LogFile        string
	Shutdown       ShutdownConfig
	Notify         NotifyConfig
}

// ShutdownConfig selects the commands run when the countdown ends.
type ShutdownConfig struct {
	Primary  []string
	Fallback []string
	DryRun   bool
}

// NotifyConfig controls how the low-time warning is delivered.
type NotifyConfig struct {
	Command string
	AppName string
	Timeout time.Duration
	Chime   bool
}

const (
	defaultConfigPath     = "~/.config/lullaby/config.toml"
	defaultLogFile        = "~/.local/state/lullaby/lullaby.log"
	defaultWarningSeconds = 180
	defaultNotifyCommand  = "notify-send"
	defaultAppName        = "TV sleep timer"
	defaultNotifyTimeout  = 10 * time.Second

	minPresetMinutes = 1
	maxPresetMinutes = 600
	maxPresets       = 8
)

var (
	defaultPresets  = []int{30, 60, 90, 120}
	defaultPrimary  = []string{"am", "start", "-a", "android.intent.action.ACTION_REQUEST_SHUTDOWN"}
	defaultFallback = []string{"reboot", "-p"}
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Presets:        append([]int(nil), defaultPresets...),
		WarningSeconds: defaultWarningSeconds,
		LogFile:        mustExpand(defaultLogFile),
		Shutdown: ShutdownConfig{
			Primary:  append([]string(nil), defaultPrimary...),
			Fallback: append([]string(nil), defaultFallback...),
		},
		Notify: NotifyConfig{
			Command: defaultNotifyCommand,
			AppName: defaultAppName,
			Timeout: defaultNotifyTimeout,
			Chime:   true,
		},
	}
}

// Load locates and parses the config file, falling back to defaults when it is
// missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Presets        []int  `toml:"presets"`
		WarningSeconds int    `toml:"warning_seconds"`
		LogFile        string `toml:"log_file"`
		Shutdown       struct {
			Primary  []string `toml:"primary"`
			Fallback []string `toml:"fallback"`
			DryRun   bool     `toml:"dry_run"`
		} `toml:"shutdown"`
		Notify struct {
			Command        *string `toml:"command"`
			AppName        string  `toml:"app_name"`
			TimeoutSeconds int     `toml:"timeout_seconds"`
			Chime          *bool   `toml:"chime"`
		} `toml:"notify"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if presets := validPresets(raw.Presets); len(presets) > 0 {
		cfg.Presets = presets
	}
	// The warning must land strictly inside the longest countdown.
	if raw.WarningSeconds > 0 && raw.WarningSeconds < maxPresetMinutes*60 {
		cfg.WarningSeconds = raw.WarningSeconds
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	if primary := trimArgs(raw.Shutdown.Primary); len(primary) > 0 {
		cfg.Shutdown.Primary = primary
	}
	if fallback := trimArgs(raw.Shutdown.Fallback); len(fallback) > 0 {
		cfg.Shutdown.Fallback = fallback
	}
	cfg.Shutdown.DryRun = raw.Shutdown.DryRun

	// An explicit empty command disables external notifications.
	if raw.Notify.Command != nil {
		cfg.Notify.Command = strings.TrimSpace(*raw.Notify.Command)
	}
	if appName := strings.TrimSpace(raw.Notify.AppName); appName != "" {
		cfg.Notify.AppName = appName
	}
	if raw.Notify.TimeoutSeconds > 0 {
		cfg.Notify.Timeout = time.Duration(raw.Notify.TimeoutSeconds) * time.Second
	}
	if raw.Notify.Chime != nil {
		cfg.Notify.Chime = *raw.Notify.Chime
	}

	return cfg, nil
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func validPresets(values []int) []int {
	var out []int
	seen := make(map[int]bool)
	for _, v := range values {
		if v < minPresetMinutes || v > maxPresetMinutes || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
		if len(out) == maxPresets {
			break
		}
	}
	return out
}

func trimArgs(argv []string) []string {
	var out []string
	for _, arg := range argv {
		if trimmed := strings.TrimSpace(arg); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
