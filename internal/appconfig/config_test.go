package appconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("missing file yields defaults and writes them", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.TmuxCommand != "tmux" {
			t.Errorf("Load().TmuxCommand = %q, want 'tmux'", cfg.TmuxCommand)
		}

		d, err := ConfigDir()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := os.Stat(filepath.Join(d, "config.yaml")); err != nil {
			t.Errorf("Load() did not create config.yaml: %v", err)
		}
	})

	t.Run("reads values and fills absent defaults", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		dir := filepath.Join(xdg, "muxmark")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		content := "data_dir: /srv/bookmarks\nsession_prefix: mm-\n"
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.DataDir != "/srv/bookmarks" {
			t.Errorf("Load().DataDir = %q, want '/srv/bookmarks'", cfg.DataDir)
		}
		if cfg.SessionPrefix != "mm-" {
			t.Errorf("Load().SessionPrefix = %q, want 'mm-'", cfg.SessionPrefix)
		}
		if cfg.TmuxCommand != "tmux" {
			t.Errorf("Load().TmuxCommand = %q, want default 'tmux'", cfg.TmuxCommand)
		}
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		xdg := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", xdg)

		dir := filepath.Join(xdg, "muxmark")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("data_dir: [oops"), 0o644); err != nil {
			t.Fatal(err)
		}

		if _, err := Load(); err == nil {
			t.Error("Load() expected error for malformed yaml, got nil")
		}
	})
}

func TestConfig_ResolveDataDir(t *testing.T) {
	t.Run("env var wins and must exist", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv(EnvDataDir, dir)

		got, err := Config{DataDir: "/elsewhere"}.ResolveDataDir()
		if err != nil {
			t.Fatalf("ResolveDataDir() error = %v", err)
		}
		if got != dir {
			t.Errorf("ResolveDataDir() = %q, want %q", got, dir)
		}
	})

	t.Run("env var pointing nowhere is an error", func(t *testing.T) {
		t.Setenv(EnvDataDir, filepath.Join(t.TempDir(), "missing"))

		if _, err := (Config{}).ResolveDataDir(); err == nil {
			t.Error("ResolveDataDir() expected error for missing directory, got nil")
		}
	})

	t.Run("configured data_dir must exist", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")

		cfg := Config{DataDir: filepath.Join(t.TempDir(), "missing")}
		if _, err := cfg.ResolveDataDir(); err == nil {
			t.Error("ResolveDataDir() expected error for missing directory, got nil")
		}
	})

	t.Run("configured data_dir rejects a file", func(t *testing.T) {
		t.Setenv(EnvDataDir, "")

		file := filepath.Join(t.TempDir(), "f")
		if err := os.WriteFile(file, nil, 0o644); err != nil {
			t.Fatal(err)
		}
		cfg := Config{DataDir: file}
		if _, err := cfg.ResolveDataDir(); err == nil {
			t.Error("ResolveDataDir() expected error for file path, got nil")
		}
	})

	t.Run("default is created under home", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv(EnvDataDir, "")
		t.Setenv("HOME", home)

		got, err := Config{}.ResolveDataDir()
		if err != nil {
			t.Fatalf("ResolveDataDir() error = %v", err)
		}
		want := filepath.Join(home, defaultDataDirName)
		if got != want {
			t.Errorf("ResolveDataDir() = %q, want %q", got, want)
		}
		info, err := os.Stat(want)
		if err != nil || !info.IsDir() {
			t.Errorf("ResolveDataDir() did not create %q: %v", want, err)
		}
	})
}
