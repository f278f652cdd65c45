// internal/config/config.go
//
// This package handles configuration and the .nextstep directory structure.
// Every directory nextstep runs in gets a .nextstep/ folder holding the
// config file, logs and the current session.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// AppDir is the name of the directory we create in each project
	AppDir = ".nextstep"

	// Environment overrides applied on top of config.yaml. They are never
	// written back to disk.
	EnvTheme     = "NEXTSTEP_THEME"
	EnvNoPersist = "NEXTSTEP_NO_PERSIST"
)

// Theme selects the glamour/lipgloss palette.
type Theme string

const (
	ThemeAuto  Theme = "auto"
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

const defaultProjectConfigYAML = `# nextstep configuration
version: 1

# Color theme for the terminal UI: auto, dark or light.
theme: auto

# Show a banner the first time a roadmap step is completed.
celebrate: true

session:
  # Keep the roadmap between runs until "nextstep reset".
  persist: true

# Optional program overlay that rewrites step copy for a region or partner.
# registry:
#   path: registry.yaml
`

// SessionConfig controls session persistence.
type SessionConfig struct {
	Persist bool `yaml:"persist"`
}

// RegistryConfig points at an optional step copy overlay.
type RegistryConfig struct {
	Path string `yaml:"path,omitempty"`
}

// ProjectConfig models .nextstep/config.yaml.
type ProjectConfig struct {
	Version   int            `yaml:"version"`
	Theme     Theme          `yaml:"theme"`
	Celebrate bool           `yaml:"celebrate"`
	Session   SessionConfig  `yaml:"session"`
	Registry  RegistryConfig `yaml:"registry,omitempty"`
}

// Config holds the runtime configuration for nextstep.
type Config struct {
	// ProjectDir is the directory where the user ran `nextstep` from
	ProjectDir string

	// AppProjectDir is ProjectDir/.nextstep
	AppProjectDir string

	Project ProjectConfig
}

// InitAppDir creates the .nextstep directory structure in the given project
// directory.
//
// Structure created:
// .nextstep/
// ├── config.yaml
// ├── logs/         <- nextstep.log (diagnostics) and journey.log
// └── state/        <- session.json
func InitAppDir(projectDir string) error {
	appDir := filepath.Join(projectDir, AppDir)

	dirs := []string{
		filepath.Join(appDir, "logs"),
		filepath.Join(appDir, "state"),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := ensureProjectConfig(filepath.Join(appDir, "config.yaml")); err != nil {
		return err
	}

	return nil
}

// NewConfig creates a new Config instance populated with project settings
// and environment overrides.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir:    projectDir,
		AppProjectDir: filepath.Join(projectDir, AppDir),
		Project:       defaultProjectConfig(),
	}

	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.AppProjectDir, "logs")
}

// StateDir returns the path to the state directory
func (c *Config) StateDir() string {
	return filepath.Join(c.AppProjectDir, "state")
}

// SessionPath returns the path to the persisted session snapshot
func (c *Config) SessionPath() string {
	return filepath.Join(c.StateDir(), "session.json")
}

// JourneyLogPath returns the path to the user-facing journey log
func (c *Config) JourneyLogPath() string {
	return filepath.Join(c.LogsDir(), "journey.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.AppProjectDir, "config.yaml")
}

// Theme returns the configured color theme.
func (c *Config) Theme() Theme {
	return c.Project.Theme
}

// Celebrate reports whether the first-completion banner is enabled.
func (c *Config) Celebrate() bool {
	return c.Project.Celebrate
}

// PersistSession reports whether sessions are written to disk.
func (c *Config) PersistSession() bool {
	return c.Project.Session.Persist
}

// RegistryPath returns the absolute path of the program overlay, or "".
func (c *Config) RegistryPath() string {
	return c.Project.Registry.Path
}

// SetTheme updates the theme and persists it back to .nextstep/config.yaml.
func (c *Config) SetTheme(theme string) error {
	t := Theme(strings.ToLower(strings.TrimSpace(theme)))
	if !t.valid() {
		return fmt.Errorf("config: unknown theme %q", theme)
	}
	c.Project.Theme = t
	return c.saveProjectConfig()
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	parsed := defaultProjectConfig()
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize(c.AppProjectDir)
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func (c *Config) applyEnv() error {
	if value := strings.TrimSpace(os.Getenv(EnvTheme)); value != "" {
		t := Theme(strings.ToLower(value))
		if !t.valid() {
			return fmt.Errorf("config: %s=%q is not a theme", EnvTheme, value)
		}
		c.Project.Theme = t
	}
	switch strings.ToLower(strings.TrimSpace(os.Getenv(EnvNoPersist))) {
	case "1", "true", "yes":
		c.Project.Session.Persist = false
	}
	return nil
}

func defaultProjectConfig() ProjectConfig {
	return ProjectConfig{
		Version:   1,
		Theme:     ThemeAuto,
		Celebrate: true,
		Session:   SessionConfig{Persist: true},
	}
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if pc.Theme == "" {
		pc.Theme = ThemeAuto
	}
}

func (pc *ProjectConfig) normalize(base string) {
	pc.Theme = Theme(strings.ToLower(strings.TrimSpace(string(pc.Theme))))
	pc.Registry.Path = resolvePath(base, pc.Registry.Path)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if !pc.Theme.valid() {
		return fmt.Errorf("theme must be 'auto', 'dark' or 'light'")
	}
	return nil
}

func (t Theme) valid() bool {
	switch t {
	case ThemeAuto, ThemeDark, ThemeLight:
		return true
	}
	return false
}

func resolvePath(base, candidate string) string {
	trimmed := strings.TrimSpace(candidate)
	if trimmed == "" {
		return ""
	}
	if filepath.IsAbs(trimmed) {
		return filepath.Clean(trimmed)
	}
	return filepath.Clean(filepath.Join(base, trimmed))
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0644)
}

func (c *Config) saveProjectConfig() error {
	if c == nil {
		return fmt.Errorf("config: nil receiver")
	}
	c.Project.applyDefaults()
	c.Project.normalize(c.AppProjectDir)
	if err := c.Project.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(c.AppProjectDir, 0o755); err != nil {
		return fmt.Errorf("config: ensure app dir: %w", err)
	}
	data, err := yaml.Marshal(c.Project)
	if err != nil {
		return fmt.Errorf("config: encode config: %w", err)
	}
	if err := os.WriteFile(c.ProjectConfigPath(), data, 0644); err != nil {
		return fmt.Errorf("config: write project config: %w", err)
	}
	return nil
}
