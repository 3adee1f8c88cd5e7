package app

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"npmtui/app/npm"
	"npmtui/app/project"
)

// Screen indicates which screen is currently shown.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenInstall
	ScreenPicker
	ScreenDeps
	ScreenOutput
	ScreenConfirmClean
	ScreenSettings
)

// PickerKind says what the searchable picker is currently choosing.
type PickerKind int

const (
	PickUninstall PickerKind = iota
	PickScript
)

// InstallStage tracks the two-step install prompt: package name first, then
// the destination group.
type InstallStage int

const (
	StageName InstallStage = iota
	StageDestination
)

// Model is the primary application state shared by all screens.
type Model struct {
	CurrentScreen Screen
	Width         int
	Height        int

	Project project.Info
	Config  npm.Config

	// Runner streams side-effecting commands; ListRunner captures the
	// synchronous list command without a PTY so its output parses clean.
	Runner     npm.Runner
	ListRunner npm.Runner

	// LastCommand is the most recently assembled command line, kept for the
	// copy-to-clipboard action.
	LastCommand string

	// Menu screen
	MenuIndex int

	// Install prompt
	Input     textinput.Model
	Stage     InstallStage
	DestIndex int

	// Searchable picker (uninstall / run script)
	Picker      PickerKind
	Filter      textinput.Model
	PickItems   []PickItem
	PickMatches []PickItem
	PickIndex   int

	// Double-dash prompt for run script
	PendingScript string

	// Dependency table
	Table       table.Model
	ListEntries []npm.ListEntry
	ListLoading bool
	Spinner     spinner.Model
	SortByName  bool
	SortAsc     bool

	// Output screen
	Viewport    viewport.Model
	OutputTitle string
	Output      string
	Running     bool
	ExitCode    int
	HasExitCode bool

	// Clean confirmation (node_modules first, then the lock file)
	ConfirmStage int

	// Settings screen
	SettingsIndex int
	Editing       bool
	EditBuffer    textinput.Model

	// Last pre-launch error, shown on the menu screen
	Err error

	// Status line feedback, e.g. after copying a command
	Status string
}

// PickItem is one choice in the searchable picker. Payload maps a display
// label back to the thing it stands for.
type PickItem struct {
	Label      string
	Dependency project.Dependency // set for PickUninstall
	Script     string             // set for PickScript
}

// OutputChunkMsg delivers a chunk of subprocess output to the output screen.
type OutputChunkMsg struct {
	Chunk  string
	Handle *npm.Handle
}

// ProcExitMsg reports that the streamed subprocess finished.
type ProcExitMsg struct {
	Code int
	Err  error
}

// ListDoneMsg carries the parsed result of the synchronous list command.
type ListDoneMsg struct {
	Entries []npm.ListEntry
	Err     error
}

// CleanDoneMsg reports the result of a clean step.
type CleanDoneMsg struct {
	What string
	Err  error
}

// EditorFinishedMsg reports that the external editor closed.
type EditorFinishedMsg struct {
	Err error
}

// Shared lip gloss styles.
var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#5f00d7")).Padding(0, 1)
	SubtitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f00d7"))
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFA500"))
	ChoiceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))
	DocStyle       = lipgloss.NewStyle().Padding(1, 2)
	HelpStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("#888888"))
	PathStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	ErrorStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F5F"))
)
