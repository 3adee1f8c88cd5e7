package screens

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
	"npmtui/app/project"
)

// writeClipboard copies a command line to the system clipboard; a variable so
// tests can run without one.
var writeClipboard = clipboard.WriteAll

// summarizeProjectStats returns the header block shown above the menu.
func summarizeProjectStats(m app.Model) string {
	result := app.PathStyle.Render(m.Project.RootPath) + "\n"
	if m.Project.Manifest != nil && m.Project.Manifest.Version != "" {
		result += app.ChoiceStyle.Render(m.Project.Name+"@"+m.Project.Manifest.Version) + "\n"
	}
	if len(m.Project.DetectedPackages) == 0 {
		result += app.ChoiceStyle.Render("    • no recognized packages") + "\n"
	} else {
		result += renderPackagesHorizontally(m.Project.DetectedPackages, 6)
	}
	return result
}

func renderPackagesHorizontally(items []string, columns int) string {
	var lines []string
	var currentLine []string

	for i, pkg := range items {
		currentLine = append(currentLine, pkg)
		if (i+1)%columns == 0 {
			lines = append(lines, strings.Join(currentLine, " | "))
			currentLine = nil
		}
	}
	if len(currentLine) > 0 {
		lines = append(lines, strings.Join(currentLine, " | "))
	}
	return "    " + strings.Join(lines, "\n    ") + "\n"
}

// startProcess launches the command detached and hands back the first output
// read. The TUI keeps re-issuing readChunk until the stream closes; nothing
// gates other actions on the process finishing.
func startProcess(r npm.Runner, c npm.Command) tea.Cmd {
	return func() tea.Msg {
		h, err := r.Start(context.Background(), c)
		if err != nil {
			return app.ProcExitMsg{Code: -1, Err: err}
		}
		return readChunk(h)()
	}
}

// readChunk reads the next chunk of combined output; at EOF it collects the
// exit code.
func readChunk(h *npm.Handle) tea.Cmd {
	return func() tea.Msg {
		buf := make([]byte, 4096)
		n, err := h.Output.Read(buf)
		if n > 0 {
			return app.OutputChunkMsg{Chunk: string(buf[:n]), Handle: h}
		}
		if err != nil {
			code, waitErr := h.Wait()
			return app.ProcExitMsg{Code: code, Err: waitErr}
		}
		return app.OutputChunkMsg{Handle: h}
	}
}

// ReadNextChunk continues the output stream after a delivered chunk.
func ReadNextChunk(h *npm.Handle) tea.Cmd {
	return readChunk(h)
}

// loadList runs the list command synchronously and parses its output.
func loadList(r npm.Runner, c npm.Command) tea.Cmd {
	return func() tea.Msg {
		out, _, err := npm.Capture(context.Background(), r, c)
		if err != nil {
			return app.ListDoneMsg{Err: err}
		}
		return app.ListDoneMsg{Entries: npm.ParseListOutput(out)}
	}
}

// cleanStep removes one clean target and reports back.
func cleanStep(rootPath, what string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch what {
		case project.NodeModulesDir:
			err = project.RemoveNodeModules(rootPath)
		case project.LockFileName:
			err = project.RemoveLockFile(rootPath)
		default:
			err = fmt.Errorf("unknown clean target %q", what)
		}
		return app.CleanDoneMsg{What: what, Err: err}
	}
}

// openEditor suspends the TUI and opens the manifest in the user's editor.
func openEditor(manifestPath string) tea.Cmd {
	editor := os.Getenv("VISUAL")
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		editor = "vi"
	}
	c := exec.Command(editor, manifestPath)
	return tea.ExecProcess(c, func(err error) tea.Msg {
		return app.EditorFinishedMsg{Err: err}
	})
}

// toOutput switches the model to the output screen and kicks off cmd.
// The surface is titled with the project name and the command itself.
func toOutput(m app.Model, c npm.Command) (app.Model, tea.Cmd) {
	m.CurrentScreen = app.ScreenOutput
	m.OutputTitle = fmt.Sprintf("*%s:%s*", m.Project.Name, c.String())
	m.LastCommand = c.String()
	m.Output = ""
	m.Running = true
	m.HasExitCode = false
	m.Err = nil
	m.Viewport.SetContent("")
	m.Viewport.GotoTop()
	return m, startProcess(m.Runner, c)
}

// refreshManifest re-reads the manifest so pickers and headers always see
// fresh data. Locate-or-parse failures land in m.Err and the action aborts.
func refreshManifest(m app.Model) (app.Model, bool) {
	info, err := project.Detect(m.Project.RootPath, m.Config.ManifestName)
	if err != nil {
		m.Err = err
		m.CurrentScreen = app.ScreenMenu
		return m, false
	}
	m.Project = info
	return m, true
}
