package cli

import (
	"context"
	"strings"
	"testing"

	"npmtui/app/npm"
	"npmtui/app/project"
)

func TestStreamCommandReportsExitCode(t *testing.T) {
	cfg := npm.DefaultConfig()
	cfg.Bin = "sh"
	cfg.UsePTY = false
	info := project.Info{RootPath: t.TempDir()}

	err := streamCommand(context.Background(), cfg, info, npm.Command{
		Bin:  "sh",
		Args: []string{"-c", "exit 2"},
	})
	if err == nil {
		t.Fatal("expected non-zero exit to be reported")
	}
	if !strings.Contains(err.Error(), "exited with code 2") {
		t.Errorf("error = %v, want the exit code in the message", err)
	}
}

func TestStreamCommandSuccess(t *testing.T) {
	cfg := npm.DefaultConfig()
	cfg.Bin = "sh"
	cfg.UsePTY = false
	info := project.Info{RootPath: t.TempDir()}

	err := streamCommand(context.Background(), cfg, info, npm.Command{
		Bin:  "sh",
		Args: []string{"-c", "true"},
	})
	if err != nil {
		t.Fatalf("streamCommand: %v", err)
	}
}
