package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

const (
	appDirName    = "notch"
	traceFileName = "trace.log"
)

// ShellKind selects the native surface that hosts the menu.
type ShellKind string

const (
	ShellWindow ShellKind = "window"
	ShellTray   ShellKind = "tray"
)

// Config holds runtime settings read from the environment.
type Config struct {
	AppName     string    `env:"NOTCH_APP_NAME"       envDefault:"Notch"`
	Shell       ShellKind `env:"NOTCH_SHELL"          envDefault:"window"`
	Debug       bool      `env:"NOTCH_DEBUG"`
	Trace       bool      `env:"NOTCH_TRACE"`
	TraceLog    string    `env:"NOTCH_TRACE_LOG"`
	Namespace   string    `env:"NOTCH_VIEW_NAMESPACE" envDefault:"window.__NOTCH__"`
	EventBuffer int       `env:"NOTCH_EVENT_BUFFER"   envDefault:"32"`

	// ViewCommands are disabled in the menu while no view is focused.
	ViewCommands []string `env:"NOTCH_VIEW_COMMANDS" envSeparator:"," envDefault:"export"`
}

// Load parses the environment and validates the result.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalises and checks values that may also come from flags.
func (c *Config) Validate() error {
	c.Shell = ShellKind(strings.ToLower(strings.TrimSpace(string(c.Shell))))
	switch c.Shell {
	case ShellWindow, ShellTray:
	default:
		return fmt.Errorf("unsupported shell %q: want %s or %s", c.Shell, ShellWindow, ShellTray)
	}
	if strings.TrimSpace(c.AppName) == "" {
		return fmt.Errorf("application name must not be empty")
	}
	ids := c.ViewCommands[:0]
	for _, id := range c.ViewCommands {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	c.ViewCommands = ids
	if c.EventBuffer < 1 {
		return fmt.Errorf("event buffer must be positive, got %d", c.EventBuffer)
	}
	return nil
}

// TraceLogPath returns the trace destination, or an empty string when tracing
// is off. Without an explicit path the log lives in the user cache directory.
func (c *Config) TraceLogPath() (string, error) {
	if !c.Trace {
		return "", nil
	}
	if custom := strings.TrimSpace(c.TraceLog); custom != "" {
		if err := os.MkdirAll(filepath.Dir(custom), 0o700); err != nil {
			return "", fmt.Errorf("ensure custom trace directory: %w", err)
		}
		return custom, nil
	}

	base, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("determine user cache dir: %w", err)
	}

	dir := filepath.Join(base, appDirName)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("ensure trace directory: %w", err)
	}

	return filepath.Join(dir, traceFileName), nil
}
