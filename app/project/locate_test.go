package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLocateFindsNearestManifest(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}

	rootManifest := filepath.Join(root, "package.json")
	midManifest := filepath.Join(root, "a", "package.json")
	for _, p := range []string{rootManifest, midManifest} {
		if err := os.WriteFile(p, []byte(`{"name":"x"}`), 0o644); err != nil {
			t.Fatalf("WriteFile: %v", err)
		}
	}

	testCases := []struct {
		name     string
		startDir string
		expected string
	}{
		{"from deepest dir finds nearest ancestor", nested, midManifest},
		{"from manifest's own dir finds it", filepath.Join(root, "a"), midManifest},
		{"from root dir finds root manifest", root, rootManifest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Locate(tc.startDir, "")
			if err != nil {
				t.Fatalf("Locate(%q): unexpected error: %v", tc.startDir, err)
			}
			if got != tc.expected {
				t.Errorf("Locate(%q) = %q, want %q", tc.startDir, got, tc.expected)
			}
		})
	}
}

func TestLocateNotFound(t *testing.T) {
	// A fresh temp dir has no package.json anywhere up to / in practice,
	// but guard against one by using a custom manifest name that cannot
	// exist on the host.
	start := t.TempDir()
	_, err := Locate(start, "package.json.npmtui-test-does-not-exist")
	if err == nil {
		t.Fatal("Locate: expected error, got nil")
	}
	if !errors.Is(err, ErrManifestNotFound) {
		t.Errorf("Locate error = %v, want ErrManifestNotFound", err)
	}
}

func TestLocateIgnoresDirectories(t *testing.T) {
	root := t.TempDir()
	// A directory named package.json must not count as a manifest.
	if err := os.MkdirAll(filepath.Join(root, "sub", "package.json"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	manifest := filepath.Join(root, "package.json")
	if err := os.WriteFile(manifest, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := Locate(filepath.Join(root, "sub"), "")
	if err != nil {
		t.Fatalf("Locate: unexpected error: %v", err)
	}
	if got != manifest {
		t.Errorf("Locate = %q, want %q", got, manifest)
	}
}
