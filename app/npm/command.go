package npm

import (
	"fmt"
	"strconv"
	"strings"

	"npmtui/app/project"

	"mvdan.cc/sh/v3/shell"
)

// Command is an assembled package-manager invocation held as discrete
// argument tokens. Tokens are handed to the process launcher as-is; no shell
// ever interprets them, so caller-controlled names (package names, script
// names) cannot inject shell syntax.
type Command struct {
	Bin  string
	Args []string
}

// String renders the command for display or clipboard use, with single
// spaces between tokens.
func (c Command) String() string {
	parts := append([]string{c.Bin}, c.Args...)
	return strings.Join(parts, " ")
}

// BuildInput names the caller-supplied pieces of a command. The free-form
// configuration strings come from Config, not from here.
type BuildInput struct {
	Verb        string   // npm subcommand: install, uninstall, run, init, list
	Positional  []string // caller-controlled names, appended as opaque tokens
	ExtraArgs   []string // discrete flags chosen by the caller
	DoubleDash  []string // trailing args passed through after "--"
	UseVerbArgs bool     // apply Config.VerbArgs after the positional args
}

// Build assembles bin + global args + verb + positional + verb args + extra
// args + [-- trailing]. The free-form config strings are split with shell
// field semantics (quotes respected) but never evaluated by a shell; this is
// the raw-passthrough mode for configuration, while names stay single
// tokens.
func Build(cfg Config, in BuildInput) (Command, error) {
	if in.Verb == "" {
		return Command{}, fmt.Errorf("command verb must not be empty")
	}

	globalArgs, err := shell.Fields(cfg.GlobalArgs, nil)
	if err != nil {
		return Command{}, fmt.Errorf("invalid global arguments %q: %w", cfg.GlobalArgs, err)
	}

	args := append([]string{}, globalArgs...)
	args = append(args, in.Verb)
	args = append(args, in.Positional...)

	if in.UseVerbArgs {
		verbArgs, err := shell.Fields(cfg.VerbArgs, nil)
		if err != nil {
			return Command{}, fmt.Errorf("invalid verb arguments %q: %w", cfg.VerbArgs, err)
		}
		args = append(args, verbArgs...)
	}

	for _, extra := range in.ExtraArgs {
		if extra != "" {
			args = append(args, extra)
		}
	}

	if len(in.DoubleDash) > 0 {
		args = append(args, "--")
		args = append(args, in.DoubleDash...)
	}

	return Command{Bin: cfg.Bin, Args: args}, nil
}

// SplitArgs breaks a free-form argument string into discrete tokens with
// shell field semantics, without invoking a shell.
func SplitArgs(s string) ([]string, error) {
	fields, err := shell.Fields(s, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid arguments %q: %w", s, err)
	}
	return fields, nil
}

// InstallPackage builds the command installing a single dependency into the
// configured destination group.
func InstallPackage(cfg Config, name string) (Command, error) {
	flag, err := cfg.Destination.Flag()
	if err != nil {
		return Command{}, err
	}
	return Build(cfg, BuildInput{
		Verb:        "install",
		Positional:  []string{name},
		ExtraArgs:   []string{flag},
		UseVerbArgs: true,
	})
}

// InstallAll builds the bare install command fetching everything the
// manifest declares.
func InstallAll(cfg Config) (Command, error) {
	return Build(cfg, BuildInput{Verb: "install", UseVerbArgs: true})
}

// Uninstall builds the command removing dep, carrying the save flag of the
// group it was declared in so npm prunes the matching manifest section.
func Uninstall(cfg Config, dep project.Dependency) (Command, error) {
	flag, err := GroupFlag(dep.Group)
	if err != nil {
		return Command{}, err
	}
	return Build(cfg, BuildInput{
		Verb:       "uninstall",
		Positional: []string{dep.Name},
		ExtraArgs:  []string{flag},
	})
}

// RunScript builds the command running a manifest script, with optional
// double-dash args passed through to the script itself.
func RunScript(cfg Config, script string, trailing []string) (Command, error) {
	return Build(cfg, BuildInput{
		Verb:       "run",
		Positional: []string{script},
		DoubleDash: trailing,
	})
}

// Init builds the project-init command. yes skips npm's interactive
// questionnaire.
func Init(cfg Config, yes bool) (Command, error) {
	in := BuildInput{Verb: "init"}
	if yes {
		in.ExtraArgs = []string{"--yes"}
	}
	return Build(cfg, in)
}

// List builds the dependency-listing command at the configured depth.
func List(cfg Config) (Command, error) {
	return Build(cfg, BuildInput{
		Verb:      "list",
		ExtraArgs: []string{"--depth=" + strconv.Itoa(cfg.ListDepth)},
	})
}
