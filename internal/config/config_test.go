package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Workers != DefaultWorkers {
		t.Errorf("Default workers = %d, want %d", cfg.Workers, DefaultWorkers)
	}

	if cfg.ReportPrefix != "FileDiscovery" {
		t.Errorf("Default report_prefix = %q, want %q", cfg.ReportPrefix, "FileDiscovery")
	}

	expectedExclude := []string{"$RECYCLE.BIN", "System Volume Information"}
	if len(cfg.Exclude) != len(expectedExclude) {
		t.Fatalf("Default exclude count = %d, want %d", len(cfg.Exclude), len(expectedExclude))
	}
	for i, name := range expectedExclude {
		if cfg.Exclude[i] != name {
			t.Errorf("Default exclude[%d] = %q, want %q", i, cfg.Exclude[i], name)
		}
	}
}

func TestLoadExcludeFile(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "exclude.yaml")
	content := "exclude:\n  - node_modules\n  - .git\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write exclude file: %v", err)
	}

	extra, err := LoadExcludeFile(path)
	if err != nil {
		t.Fatalf("LoadExcludeFile() error = %v", err)
	}

	if len(extra) != 2 || extra[0] != "node_modules" || extra[1] != ".git" {
		t.Errorf("LoadExcludeFile() = %v, want [node_modules .git]", extra)
	}
}

func TestLoadExcludeFile_Missing(t *testing.T) {
	if _, err := LoadExcludeFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadExcludeFile() expected error for missing file")
	}
}

func TestLoadExcludeFile_Invalid(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "bad.yaml")
	if err := os.WriteFile(path, []byte("exclude: [unclosed"), 0644); err != nil {
		t.Fatalf("Failed to write exclude file: %v", err)
	}

	if _, err := LoadExcludeFile(path); err == nil {
		t.Error("LoadExcludeFile() expected error for invalid YAML")
	}
}

func TestApplyExcludeFile(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "exclude.yaml")
	if err := os.WriteFile(path, []byte("exclude:\n  - vendor\n"), 0644); err != nil {
		t.Fatalf("Failed to write exclude file: %v", err)
	}

	cfg := &Config{
		Exclude:     []string{"$RECYCLE.BIN"},
		ExcludeFile: path,
	}

	if err := cfg.ApplyExcludeFile(); err != nil {
		t.Fatalf("ApplyExcludeFile() error = %v", err)
	}

	if len(cfg.Exclude) != 2 || cfg.Exclude[1] != "vendor" {
		t.Errorf("ApplyExcludeFile() exclude = %v, want [$RECYCLE.BIN vendor]", cfg.Exclude)
	}
}

func TestApplyExcludeFile_Unset(t *testing.T) {
	cfg := &Config{Exclude: []string{"$RECYCLE.BIN"}}

	if err := cfg.ApplyExcludeFile(); err != nil {
		t.Fatalf("ApplyExcludeFile() error = %v", err)
	}

	if len(cfg.Exclude) != 1 {
		t.Errorf("ApplyExcludeFile() changed exclude list without a file configured")
	}
}
