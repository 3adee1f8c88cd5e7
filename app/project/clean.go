package project

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// NodeModulesDir is the dependency cache directory removed by the clean
	// action.
	NodeModulesDir = "node_modules"
	// LockFileName is the lock file removed by the clean action's second,
	// separately confirmed step.
	LockFileName = "package-lock.json"
)

// RemoveNodeModules deletes the project's dependency cache directory.
// Missing directories are not an error; the project is simply already clean.
func RemoveNodeModules(rootPath string) error {
	target := filepath.Join(rootPath, NodeModulesDir)
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("failed to remove %s: %w", target, err)
	}
	return nil
}

// RemoveLockFile deletes the project's lock file if present.
func RemoveLockFile(rootPath string) error {
	target := filepath.Join(rootPath, LockFileName)
	if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", target, err)
	}
	return nil
}
