package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultManifestName is the manifest file looked for when no override is configured.
const DefaultManifestName = "package.json"

// ErrManifestNotFound is returned when no manifest exists in the start
// directory or any of its ancestors. Every other operation treats this as a
// hard precondition failure and surfaces it to the user directly.
var ErrManifestNotFound = errors.New("manifest not found")

// Locate searches startDir and each ancestor directory, nearest first, for a
// file named manifestName and returns the absolute path of the first match.
// The walk is bounded by the filesystem root; reaching it without a match
// yields ErrManifestNotFound.
func Locate(startDir, manifestName string) (string, error) {
	if manifestName == "" {
		manifestName = DefaultManifestName
	}
	currentPath, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("could not resolve start directory %s: %w", startDir, err)
	}

	for {
		candidate := filepath.Join(currentPath, manifestName)
		if fi, statErr := os.Stat(candidate); statErr == nil && !fi.IsDir() {
			return candidate, nil
		}

		parentPath := filepath.Dir(currentPath)
		if parentPath == currentPath {
			// We've reached the root without finding a manifest.
			break
		}
		currentPath = parentPath
	}

	return "", fmt.Errorf("%w: no %s in %s or any parent directory", ErrManifestNotFound, manifestName, startDir)
}
