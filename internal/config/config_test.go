package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.TasksDir != DefaultTasksDir {
		t.Errorf("TasksDir = %q, want %q", cfg.TasksDir, DefaultTasksDir)
	}
	if len(cfg.IgnoreDirs) == 0 {
		t.Error("expected default ignore_dirs")
	}
	found := false
	for _, d := range cfg.IgnoreDirs {
		if d == "node_modules" {
			found = true
		}
	}
	if !found {
		t.Error("default deny-list should include node_modules")
	}
	if _, ok := cfg.IDEs["cursor"]; !ok {
		t.Error("default IDEs should include cursor")
	}
	if !cfg.Output.Color {
		t.Error("color should default on")
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgFile := filepath.Join(dir, "config.yaml")
	yaml := `
tasks_dir: /srv/tasks
ignore_dirs:
  - custom_cache
ides:
  zed:
    command: zed
`
	if err := os.WriteFile(cfgFile, []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.TasksDir != "/srv/tasks" {
		t.Errorf("TasksDir = %q", cfg.TasksDir)
	}
	if len(cfg.IgnoreDirs) != 1 || cfg.IgnoreDirs[0] != "custom_cache" {
		t.Errorf("IgnoreDirs = %v, want the file's deny-list verbatim", cfg.IgnoreDirs)
	}
	// Configured IDEs extend the defaults.
	if _, ok := cfg.IDEs["zed"]; !ok {
		t.Error("zed should be present")
	}
	if _, ok := cfg.IDEs["cursor"]; !ok {
		t.Error("defaults should still be present")
	}
}
