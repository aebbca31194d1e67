// Package config handles configuration loading from TOML files and environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/BurntSushi/toml"
	"github.com/xonecas/panes/internal/splitpane"
	"github.com/xonecas/panes/internal/theme"
)

// FileName is the config file looked up in DataDir.
const FileName = "config.toml"

// Config is the root configuration structure.
type Config struct {
	Layout LayoutConfig `toml:"layout"`
	UI     UIConfig     `toml:"ui"`
	Log    LogConfig    `toml:"log"`
}

// LayoutConfig holds the split policy.
type LayoutConfig struct {
	// Direction is "horizontal" (left/right) or "vertical" (top/bottom).
	Direction string `toml:"direction"`
	// Mode is "percentage", "fixed" or "min".
	Mode      string `toml:"mode"`
	Size      int    `toml:"size"`
	MinSize   int    `toml:"min_size"`
	Resizable bool   `toml:"resizable"`
	Separator bool   `toml:"separator"`
	// Step is the resize delta bound to a single key press.
	Step int `toml:"step"`
}

// UIConfig holds border and color settings.
type UIConfig struct {
	// Theme is the Chroma theme border colors are derived from.
	Theme            string               `toml:"theme"`
	Borders          bool                 `toml:"borders"`
	FocusedBorder    splitpane.BorderType `toml:"focused_border"`
	UnfocusedBorder  splitpane.BorderType `toml:"unfocused_border"`
	FocusedColor     string               `toml:"focused_color"`
	UnfocusedColor   string               `toml:"unfocused_color"`
	UnfocusedBorders bool                 `toml:"unfocused_borders"`
}

// ThemeOrDefault returns the configured theme or theme.DefaultTheme if unset.
func (u UIConfig) ThemeOrDefault() string {
	if u.Theme == "" {
		return theme.DefaultTheme
	}
	return u.Theme
}

// LogConfig holds logging settings. An empty File disables logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Layout: LayoutConfig{
			Direction: "horizontal",
			Mode:      "percentage",
			Size:      50,
			MinSize:   10,
			Resizable: true,
			Separator: true,
			Step:      5,
		},
		UI: UIConfig{
			Theme:           theme.DefaultTheme,
			Borders:         true,
			FocusedBorder:   splitpane.BorderThick,
			UnfocusedBorder: splitpane.BorderPlain,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads configuration from a TOML file over the defaults and applies
// environment variable overrides. An empty path means DataDir/config.toml,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		dir, err := DataDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(dir, FileName)
	}

	if _, err := os.Stat(path); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if explicit {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		md, err := toml.DecodeFile(path, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate returns an error if the configuration is invalid.
func (c *Config) Validate() error {
	var errs []error

	if _, err := c.Layout.direction(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.Layout.splitSize(); err != nil {
		errs = append(errs, err)
	}
	if c.Layout.MinSize < 0 || c.Layout.MinSize > 100 {
		errs = append(errs, fmt.Errorf("layout.min_size=%d must be between 0 and 100", c.Layout.MinSize))
	}
	if c.Layout.Step <= 0 {
		errs = append(errs, fmt.Errorf("layout.step=%d must be positive", c.Layout.Step))
	}

	if !theme.Exists(c.UI.ThemeOrDefault()) {
		errs = append(errs, fmt.Errorf("ui.theme=%q is not a known theme", c.UI.Theme))
	}
	for key, value := range map[string]string{
		"ui.focused_color":   c.UI.FocusedColor,
		"ui.unfocused_color": c.UI.UnfocusedColor,
	} {
		if value != "" && !validHex(value) {
			errs = append(errs, fmt.Errorf("%s=%q must be a #rrggbb color", key, value))
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "trace", "debug", "info", "warn", "error", "disabled":
	default:
		errs = append(errs, fmt.Errorf("log.level=%q is not a known level", c.Log.Level))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// Options converts the configuration into split pane options.
func (c *Config) Options() (splitpane.Options, error) {
	dir, err := c.Layout.direction()
	if err != nil {
		return splitpane.Options{}, err
	}
	size, err := c.Layout.splitSize()
	if err != nil {
		return splitpane.Options{}, err
	}

	palette := theme.ThemePalette(c.UI.ThemeOrDefault())
	style := splitpane.PaneBorderStyle{
		ShowBorders:          c.UI.Borders,
		FocusedBorderType:    c.UI.FocusedBorder,
		UnfocusedBorderType:  c.UI.UnfocusedBorder,
		FocusedBorderColor:   palette.AccentColor(),
		UnfocusedBorderColor: palette.MutedColor(),
	}
	if c.UI.FocusedColor != "" {
		style.FocusedBorderColor = lipgloss.Color(c.UI.FocusedColor)
	}
	if c.UI.UnfocusedColor != "" {
		style.UnfocusedBorderColor = lipgloss.Color(c.UI.UnfocusedColor)
	}

	return splitpane.Options{
		Direction:        dir,
		Size:             size,
		Resizable:        c.Layout.Resizable,
		ShowSeparator:    c.Layout.Separator,
		MinSize:          uint16(c.Layout.MinSize),
		BorderStyle:      style,
		UnfocusedBorders: c.UI.UnfocusedBorders,
	}, nil
}

// SplitPane builds the configured pane, rejecting sizes outside the range
// allowed by the min size.
func (c *Config) SplitPane() (*splitpane.SplitPane, error) {
	opts, err := c.Options()
	if err != nil {
		return nil, err
	}
	p, err := splitpane.FromOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return p, nil
}

func (l LayoutConfig) direction() (splitpane.Direction, error) {
	return ParseDirection(l.Direction)
}

// ParseDirection maps "horizontal"/"vertical" to a split direction.
func ParseDirection(s string) (splitpane.Direction, error) {
	switch strings.ToLower(s) {
	case "horizontal", "h":
		return splitpane.Horizontal, nil
	case "vertical", "v":
		return splitpane.Vertical, nil
	}
	return 0, fmt.Errorf("layout.direction=%q must be horizontal or vertical", s)
}

func (l LayoutConfig) splitSize() (splitpane.SplitSize, error) {
	if l.Size < 0 || l.Size > 1<<16-1 {
		return nil, fmt.Errorf("layout.size=%d is out of range", l.Size)
	}
	n := uint16(l.Size)
	switch strings.ToLower(l.Mode) {
	case "percentage", "percent":
		if l.Size > 100 {
			return nil, fmt.Errorf("layout.size=%d must be at most 100 in percentage mode", l.Size)
		}
		return splitpane.Percentage(n), nil
	case "fixed":
		return splitpane.Fixed(n), nil
	case "min":
		return splitpane.Min(n), nil
	}
	return nil, fmt.Errorf("layout.mode=%q must be percentage, fixed or min", l.Mode)
}

func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return false
		}
	}
	return true
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	for _, setter := range []struct {
		env   string
		apply func(string)
	}{
		{"PANES_THEME", func(v string) {
			if v != "" {
				cfg.UI.Theme = v
			}
		}},
		{"PANES_LOG_LEVEL", func(v string) {
			if v != "" {
				cfg.Log.Level = v
			}
		}},
		{"PANES_LOG_FILE", func(v string) {
			if v != "" {
				cfg.Log.File = v
			}
		}},
	} {
		setter.apply(os.Getenv(setter.env))
	}
}

// DataDir returns the path to the panes config directory (~/.config/panes).
func DataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "panes"), nil
}
