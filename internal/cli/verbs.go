package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"npmtui/app"
	"npmtui/app/npm"
	"npmtui/app/project"
)

// streamCommand runs c detached-style but mirrors its combined output to the
// terminal until it ends. The exit code is reported, never interpreted.
func streamCommand(ctx context.Context, cfg npm.Config, info project.Info, c npm.Command) error {
	logger := loggerFromContext(ctx)
	logger.Debug("running", "command", c.String(), "dir", info.RootPath)

	runner := &npm.ExecRunner{Dir: info.RootPath, PTY: cfg.UsePTY}
	h, err := runner.Start(ctx, c)
	if err != nil {
		return err
	}

	_, copyErr := io.Copy(os.Stdout, h.Output)
	code, err := h.Wait()
	if err != nil {
		return err
	}
	if copyErr != nil && !errors.Is(copyErr, io.EOF) {
		return fmt.Errorf("failed reading %s output: %w", cfg.Bin, copyErr)
	}
	if code != 0 {
		return fmt.Errorf("%s exited with code %d", cfg.Bin, code)
	}
	return nil
}

// attachCommand runs c with the terminal's own stdio, for fully interactive
// subcommands like a bare npm init.
func attachCommand(ctx context.Context, info project.Info, c npm.Command) error {
	loggerFromContext(ctx).Debug("running attached", "command", c.String())
	ec := exec.CommandContext(ctx, c.Bin, c.Args...)
	ec.Dir = info.RootPath
	ec.Stdin = os.Stdin
	ec.Stdout = os.Stdout
	ec.Stderr = os.Stderr
	return ec.Run()
}

func newInstallCmd() *cobra.Command {
	var dest string
	var all bool

	cmd := &cobra.Command{
		Use:   "install [packages...]",
		Short: "Install dependencies",
		Long:  "Installs the named packages into the configured destination group, or everything the manifest declares with --all. Without arguments the interactive install prompt opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !all {
				return runTUI(cmd.Context(), app.ScreenInstall)
			}

			cfg, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}
			if dest != "" {
				cfg.Destination, err = npm.ParseDestination(dest)
				if err != nil {
					return err
				}
			}

			var c npm.Command
			if all {
				c, err = npm.InstallAll(cfg)
			} else {
				flag, flagErr := cfg.Destination.Flag()
				if flagErr != nil {
					return flagErr
				}
				c, err = npm.Build(cfg, npm.BuildInput{
					Verb:        "install",
					Positional:  args,
					ExtraArgs:   []string{flag},
					UseVerbArgs: true,
				})
			}
			if err != nil {
				return err
			}
			return streamCommand(cmd.Context(), cfg, info, c)
		},
	}

	cmd.Flags().StringVarP(&dest, "dest", "d", "", "install destination: regular, dev, peer, bundle or optional")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "install everything the manifest declares")
	return cmd
}

func newUninstallCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uninstall [package]",
		Short: "Uninstall a dependency",
		Long:  "Removes a dependency, pruning the manifest group it was declared in. Without arguments a searchable picker opens.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUIPicker(cmd.Context(), app.ScreenPicker, app.PickUninstall)
			}

			cfg, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}

			// Match the name against the manifest so the right group flag
			// rides along; unknown names go through bare.
			dep := project.Dependency{Name: args[0], Group: project.GroupRegular}
			for _, cand := range info.Manifest.AllDependencies() {
				if cand.Name == args[0] {
					dep = cand
					break
				}
			}

			c, err := npm.Uninstall(cfg, dep)
			if err != nil {
				return err
			}
			return streamCommand(cmd.Context(), cfg, info, c)
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [script] [-- args...]",
		Short: "Run a manifest script",
		Long:  "Runs a script from the manifest's scripts section; anything after -- is passed through to the script. Without arguments a searchable picker opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return runTUIPicker(cmd.Context(), app.ScreenPicker, app.PickScript)
			}

			cfg, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}

			script := args[0]
			var trailing []string
			if at := cmd.ArgsLenAtDash(); at >= 0 && at < len(args) {
				trailing = args[at:]
				if at == 0 {
					return fmt.Errorf("script name must come before --")
				}
			}

			c, err := npm.RunScript(cfg, script, trailing)
			if err != nil {
				return err
			}
			return streamCommand(cmd.Context(), cfg, info, c)
		},
	}
}

func newListCmd() *cobra.Command {
	var depth int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed dependencies",
		Long:  "Runs the npm list command synchronously and renders the name/version pairs it reports as a table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("depth") {
				cfg.ListDepth = depth
			}

			c, err := npm.List(cfg)
			if err != nil {
				return err
			}

			runner := &npm.ExecRunner{Dir: info.RootPath}
			out, _, err := npm.Capture(cmd.Context(), runner, c)
			if err != nil {
				return err
			}

			entries := npm.ParseListOutput(out)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PACKAGE\tVERSION")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Version)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&depth, "depth", 0, "dependency tree depth passed to npm list")
	return cmd
}

func newInitCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a project",
		Long:  "Runs npm init in the current directory, attached to the terminal so its questionnaire works; --yes accepts all defaults.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := npm.LoadConfig()
			if err != nil {
				return err
			}
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			c, err := npm.Init(cfg, yes)
			if err != nil {
				return err
			}
			// init is the one action that must not require an existing
			// manifest; it creates one.
			return attachCommand(cmd.Context(), project.Info{RootPath: cwd}, c)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "accept npm init defaults")
	return cmd
}

func newCleanCmd() *cobra.Command {
	var yes bool
	var lock bool

	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Remove node_modules (and optionally the lock file)",
		Long:  "Deletes the project's node_modules directory, and with --lock also package-lock.json. Requires --yes non-interactively; without it the confirmation screen opens.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return runTUI(cmd.Context(), app.ScreenConfirmClean)
			}

			_, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			if err := project.RemoveNodeModules(info.RootPath); err != nil {
				return err
			}
			logger.Info("removed", "target", project.NodeModulesDir)

			if lock {
				if err := project.RemoveLockFile(info.RootPath); err != nil {
					return err
				}
				logger.Info("removed", "target", project.LockFileName)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm deletion")
	cmd.Flags().BoolVar(&lock, "lock", false, "also delete the lock file")
	return cmd
}

func newOpenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open",
		Short: "Open the manifest in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, info, err := loadContext(cmd.Context())
			if err != nil {
				return err
			}

			editor := os.Getenv("VISUAL")
			if editor == "" {
				editor = os.Getenv("EDITOR")
			}
			if editor == "" {
				editor = "vi"
			}

			ec := exec.CommandContext(cmd.Context(), editor, info.ManifestPath)
			ec.Stdin = os.Stdin
			ec.Stdout = os.Stdout
			ec.Stderr = os.Stderr
			return ec.Run()
		},
	}
}
