package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
)

// UpdateScreenInstall handles the two-stage install prompt: package name
// first, then the destination group.
func UpdateScreenInstall(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.CurrentScreen = app.ScreenMenu
		m.Input.Blur()
		return m, nil
	}

	switch m.Stage {
	case app.StageName:
		switch msg.String() {
		case "enter":
			if strings.TrimSpace(m.Input.Value()) == "" {
				return m, nil
			}
			m.Stage = app.StageDestination
			m.Input.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.Input, cmd = m.Input.Update(msg)
			return m, cmd
		}

	case app.StageDestination:
		switch msg.String() {
		case "up", "k":
			m.DestIndex = (m.DestIndex + len(npm.Destinations) - 1) % len(npm.Destinations)
		case "down", "j":
			m.DestIndex = (m.DestIndex + 1) % len(npm.Destinations)
		case "c":
			c, err := buildInstall(m)
			if err != nil {
				m.Err = err
				m.CurrentScreen = app.ScreenMenu
				return m, nil
			}
			if err := writeClipboard(c.String()); err != nil {
				m.Err = fmt.Errorf("copy failed: %w", err)
			} else {
				m.Status = "copied: " + c.String()
			}
			m.CurrentScreen = app.ScreenMenu
		case "enter":
			c, err := buildInstall(m)
			if err != nil {
				m.Err = err
				m.CurrentScreen = app.ScreenMenu
				return m, nil
			}
			return toOutput(m, c)
		case "b":
			m.Stage = app.StageName
			m.Input.Focus()
		}
	}
	return m, nil
}

func buildInstall(m app.Model) (npm.Command, error) {
	cfg := m.Config
	cfg.Destination = npm.Destinations[m.DestIndex]
	return npm.InstallPackage(cfg, strings.TrimSpace(m.Input.Value()))
}

// ViewInstallScreen renders the install prompt.
func ViewInstallScreen(m app.Model) string {
	title := app.TitleStyle.Render("Install dependency")
	body := "\n\n"

	switch m.Stage {
	case app.StageName:
		body += app.SubtitleStyle.Render("Package name:") + "\n\n"
		body += "  " + m.Input.View() + "\n"
		body += "\n" + app.HelpStyle.Render("(enter to continue • esc to cancel)")

	case app.StageDestination:
		body += app.SubtitleStyle.Render("Save "+strings.TrimSpace(m.Input.Value())+" to:") + "\n\n"
		for i, dest := range npm.Destinations {
			label := string(dest)
			if flag, err := dest.Flag(); err == nil && flag != "" {
				label += "  " + app.PathStyle.Render(flag)
			}
			if i == m.DestIndex {
				body += "  " + app.HighlightStyle.Render("> "+label) + "\n"
			} else {
				body += "  " + app.ChoiceStyle.Render("  "+label) + "\n"
			}
		}
		body += "\n" + app.HelpStyle.Render("(enter to install • c to copy command • b for name • esc to cancel)")
	}

	return title + body
}
