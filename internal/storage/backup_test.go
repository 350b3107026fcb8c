package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestBackup(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.vscdb")
	if err := os.WriteFile(path, []byte("db-content"), 0600); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}

	backupPath, err := Backup(path)
	if err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	if backupPath != path+".backup" {
		t.Errorf("Unexpected backup path: %s", backupPath)
	}

	content, err := os.ReadFile(backupPath)
	if err != nil {
		t.Fatalf("Failed to read backup: %v", err)
	}
	if string(content) != "db-content" {
		t.Errorf("Backup content mismatch: %q", content)
	}

	info, err := os.Stat(backupPath)
	if err != nil {
		t.Fatalf("Failed to stat backup: %v", err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("Backup should preserve mode, got %v", info.Mode().Perm())
	}
}

func TestBackupOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	if err := os.WriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("Failed to write source file: %v", err)
	}
	if err := os.WriteFile(path+".backup", []byte("stale-old-backup"), 0644); err != nil {
		t.Fatalf("Failed to write stale backup: %v", err)
	}

	if _, err := Backup(path); err != nil {
		t.Fatalf("Backup failed: %v", err)
	}
	content, _ := os.ReadFile(path + ".backup")
	if string(content) != "new" {
		t.Errorf("Backup should be overwritten, got %q", content)
	}
}

func TestBackupMissingSource(t *testing.T) {
	if _, err := Backup(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Fatal("Expected an error for a missing source file")
	}
}
