package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"npmtui/app"
	"npmtui/app/npm"
	"npmtui/app/project"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version; typically
// called by main with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the npmtui CLI. With no subcommand it starts the interactive
// menu UI in the current project.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "npmtui",
		Short:        "Interactive front end for common npm actions",
		Long:         `npmtui locates the nearest package.json, presents menu-driven choices for common npm actions (install, uninstall, run scripts, list dependencies, clean, init), and streams the npm output back to you.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app.ScreenMenu)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("npmtui %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInstallCmd())
	root.AddCommand(newUninstallCmd())
	root.AddCommand(newRunCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newCleanCmd())
	root.AddCommand(newOpenCmd())

	return fang.Execute(context.Background(), root, fang.WithVersion(version))
}

// loadContext resolves the configuration and the surrounding project. Every
// action re-detects the manifest fresh; a missing or malformed manifest
// aborts here with the error surfaced directly.
func loadContext(ctx context.Context) (npm.Config, project.Info, error) {
	cfg, err := npm.LoadConfig()
	if err != nil {
		return npm.Config{}, project.Info{}, err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return npm.Config{}, project.Info{}, fmt.Errorf("could not determine working directory: %w", err)
	}

	info, err := project.Detect(cwd, cfg.ManifestName)
	if err != nil {
		return npm.Config{}, project.Info{}, err
	}

	loggerFromContext(ctx).Debug("project detected", "root", info.RootPath, "type", info.Type)
	return cfg, info, nil
}
