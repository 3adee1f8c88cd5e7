package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
)

// AppendOutput folds a subprocess output chunk into the viewport, keeping
// the view pinned to the bottom while the process runs.
func AppendOutput(m app.Model, chunk string) app.Model {
	m.Output += chunk
	m.Viewport.SetContent(m.Output)
	m.Viewport.GotoBottom()
	return m
}

// FinishOutput records the subprocess exit. The code is shown in the footer
// but never interpreted; the process's own output is its error reporting.
func FinishOutput(m app.Model, msg app.ProcExitMsg) app.Model {
	m.Running = false
	m.ExitCode = msg.Code
	m.HasExitCode = msg.Err == nil
	if msg.Err != nil {
		m.Output += "\n" + app.ErrorStyle.Render(msg.Err.Error()) + "\n"
		m.Viewport.SetContent(m.Output)
		m.Viewport.GotoBottom()
	}
	return m
}

// UpdateScreenOutput handles keys on the output screen. Leaving the screen
// does not stop a running subprocess; it keeps going detached, exactly like
// firing a second action before the first finished.
func UpdateScreenOutput(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "b", "q":
		m.CurrentScreen = app.ScreenMenu
		return m, nil

	case "c":
		if m.LastCommand != "" {
			if err := writeClipboard(m.LastCommand); err != nil {
				m.Err = fmt.Errorf("copy failed: %w", err)
				m.Status = ""
			} else {
				m.Err = nil
				m.Status = "copied: " + m.LastCommand
			}
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// ViewOutputScreen renders the streamed subprocess output.
func ViewOutputScreen(m app.Model) string {
	title := app.TitleStyle.Render(m.OutputTitle)
	body := "\n" + m.Viewport.View() + "\n"

	var footer string
	switch {
	case m.Running:
		footer = m.Spinner.View() + " running…"
	case m.HasExitCode:
		footer = fmt.Sprintf("exited with code %d", m.ExitCode)
	default:
		footer = "finished"
	}
	if m.Status != "" {
		footer += "  " + m.Status
	}
	body += app.PathStyle.Render(footer) + "\n"
	if m.Err != nil {
		body += app.ErrorStyle.Render(m.Err.Error()) + "\n"
	}
	body += app.HelpStyle.Render("(↑/↓ to scroll • c to copy command • esc for menu)")
	return title + body
}
