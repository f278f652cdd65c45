package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadProjectConfigDefaultsWhenMissing(t *testing.T) {
	projectDir := t.TempDir()
	appDir := filepath.Join(projectDir, ".nextstep")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AppProjectDir: appDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Project.Version != 1 {
		t.Fatalf("expected default version == 1, got %d", c.Project.Version)
	}
	if c.Theme() != ThemeAuto {
		t.Fatalf("expected default theme %q, got %q", ThemeAuto, c.Theme())
	}
	if !c.PersistSession() || !c.Celebrate() {
		t.Fatalf("expected persistence and celebration enabled by default")
	}
}

func TestInitAppDirWritesDefaultConfig(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatalf("init app dir: %v", err)
	}
	for _, sub := range []string{"logs", "state", "config.yaml"} {
		if _, err := os.Stat(filepath.Join(projectDir, AppDir, sub)); err != nil {
			t.Fatalf("expected %s to exist: %v", sub, err)
		}
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Theme() != ThemeAuto || !cfg.PersistSession() {
		t.Fatalf("default config file should parse to defaults, got %+v", cfg.Project)
	}
	if cfg.SessionPath() != filepath.Join(projectDir, AppDir, "state", "session.json") {
		t.Fatalf("unexpected session path %s", cfg.SessionPath())
	}
}

func TestLoadProjectConfigParsesYaml(t *testing.T) {
	projectDir := t.TempDir()
	appDir := filepath.Join(projectDir, ".nextstep")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
theme: Dark
celebrate: false
session:
  persist: false
registry:
  path: programs/seattle.yaml
`)
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AppProjectDir: appDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err != nil {
		t.Fatalf("loadProjectConfig returned error: %v", err)
	}
	if c.Theme() != ThemeDark {
		t.Fatalf("expected theme to normalize to dark, got %s", c.Theme())
	}
	if c.Celebrate() || c.PersistSession() {
		t.Fatalf("expected celebrate and persist disabled, got %+v", c.Project)
	}
	if want := filepath.Join(appDir, "programs", "seattle.yaml"); c.RegistryPath() != want {
		t.Fatalf("expected registry path %s, got %s", want, c.RegistryPath())
	}
}

func TestLoadProjectConfigValidation(t *testing.T) {
	projectDir := t.TempDir()
	appDir := filepath.Join(projectDir, ".nextstep")
	if err := os.MkdirAll(appDir, 0755); err != nil {
		t.Fatal(err)
	}
	configYAML := strings.TrimSpace(`
version: 1
theme: neon
`)
	if err := os.WriteFile(filepath.Join(appDir, "config.yaml"), []byte(configYAML), 0644); err != nil {
		t.Fatal(err)
	}
	c := &Config{ProjectDir: projectDir, AppProjectDir: appDir, Project: defaultProjectConfig()}
	if err := c.loadProjectConfig(); err == nil {
		t.Fatalf("expected validation error but got none")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvTheme, "light")
	t.Setenv(EnvNoPersist, "1")
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatalf("NewConfig: %v", err)
	}
	if cfg.Theme() != ThemeLight {
		t.Fatalf("expected env theme override, got %s", cfg.Theme())
	}
	if cfg.PersistSession() {
		t.Fatalf("expected %s to disable persistence", EnvNoPersist)
	}

	t.Setenv(EnvTheme, "plaid")
	if _, err := NewConfig(projectDir); err == nil {
		t.Fatalf("expected invalid env theme to fail")
	}
}

func TestSetThemePersists(t *testing.T) {
	projectDir := t.TempDir()
	if err := InitAppDir(projectDir); err != nil {
		t.Fatal(err)
	}
	cfg, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.SetTheme("dark"); err != nil {
		t.Fatalf("SetTheme: %v", err)
	}
	reloaded, err := NewConfig(projectDir)
	if err != nil {
		t.Fatal(err)
	}
	if reloaded.Theme() != ThemeDark {
		t.Fatalf("expected persisted dark theme, got %s", reloaded.Theme())
	}
	if err := cfg.SetTheme("sepia"); err == nil {
		t.Fatalf("expected unknown theme to be rejected")
	}
}
