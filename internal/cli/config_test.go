package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestConfigInitWritesCompleteFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
		t.Fatalf("config init: %v", err)
	}

	home, _ := os.UserHomeDir()
	data, err := os.ReadFile(filepath.Join(home, ".aggadah", "config.yaml"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	content := string(data)

	// Both the commented header and the marshaled defaults must be
	// present; a write failure anywhere is an error, never a truncated
	// file reported as success.
	if !strings.Contains(content, "# Aggadah Configuration File") {
		t.Error("header comment missing")
	}
	if !strings.Contains(content, "segmenter:") {
		t.Error("default configuration body missing")
	}
	if !strings.Contains(content, "min_content_tree:") {
		t.Error("segmenter thresholds missing")
	}
	if !strings.Contains(content, "# Source paths may also be overridden") {
		t.Error("trailing comment missing")
	}
}

func TestConfigInitRefusesExistingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := configInitCmd.RunE(configInitCmd, nil); err != nil {
		t.Fatalf("first init: %v", err)
	}
	if err := configInitCmd.RunE(configInitCmd, nil); err == nil {
		t.Fatal("expected error when the config file already exists")
	}
}
