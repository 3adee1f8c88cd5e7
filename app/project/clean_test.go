package project

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRemoveNodeModules(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, NodeModulesDir, "left-pad")
	if err := os.MkdirAll(target, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	if err := RemoveNodeModules(root); err != nil {
		t.Fatalf("RemoveNodeModules: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, NodeModulesDir)); !os.IsNotExist(err) {
		t.Errorf("node_modules still present after clean")
	}

	// Already clean is not an error.
	if err := RemoveNodeModules(root); err != nil {
		t.Errorf("RemoveNodeModules on clean project: %v", err)
	}
}

func TestRemoveLockFile(t *testing.T) {
	root := t.TempDir()
	lock := filepath.Join(root, LockFileName)
	if err := os.WriteFile(lock, []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if err := RemoveLockFile(root); err != nil {
		t.Fatalf("RemoveLockFile: %v", err)
	}
	if _, err := os.Stat(lock); !os.IsNotExist(err) {
		t.Errorf("lock file still present after clean")
	}

	if err := RemoveLockFile(root); err != nil {
		t.Errorf("RemoveLockFile with no lock file: %v", err)
	}
}
