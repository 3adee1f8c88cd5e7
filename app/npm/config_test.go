package npm

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig = %+v, want defaults %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("NPMTUI_NPM_BIN", "pnpm")
	t.Setenv("NPMTUI_NPM_LIST_DEPTH", "3")
	t.Setenv("NPMTUI_UI_PTY", "false")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Bin != "pnpm" {
		t.Errorf("Bin = %q, want %q", cfg.Bin, "pnpm")
	}
	if cfg.ListDepth != 3 {
		t.Errorf("ListDepth = %d, want 3", cfg.ListDepth)
	}
	if cfg.UsePTY {
		t.Error("UsePTY = true, want env override to false")
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := Config{
		Bin:          "pnpm",
		ManifestName: "package.json",
		GlobalArgs:   "--registry https://example.test",
		VerbArgs:     "--no-audit",
		Destination:  DestDev,
		ListDepth:    2,
		UsePTY:       false,
	}
	if err := SaveConfig(want); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	got, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != want {
		t.Errorf("LoadConfig = %+v, want %+v", got, want)
	}
}

func TestSaveConfigRejectsUnknownDestination(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Destination = Destination("sideways")
	if err := SaveConfig(cfg); !errors.Is(err, ErrUnknownDestination) {
		t.Errorf("SaveConfig error = %v, want ErrUnknownDestination", err)
	}
}

func TestLoadConfigRejectsUnknownDestinationInFile(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir := filepath.Join(base, "npmtui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	contents := "npm:\n  install_destination: sideways\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(); !errors.Is(err, ErrUnknownDestination) {
		t.Errorf("LoadConfig error = %v, want ErrUnknownDestination", err)
	}
}

func TestConfigDirHonorsXDG(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	dir, err := ConfigDir()
	if err != nil {
		t.Fatalf("ConfigDir: %v", err)
	}
	if dir != filepath.Join(base, "npmtui") {
		t.Errorf("ConfigDir = %q, want %q", dir, filepath.Join(base, "npmtui"))
	}
}
