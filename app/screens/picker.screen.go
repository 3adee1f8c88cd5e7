package screens

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"npmtui/app"
	"npmtui/app/npm"
)

// EnterPicker fills the searchable picker from the (freshly read) manifest.
func EnterPicker(m app.Model, kind app.PickerKind) (app.Model, tea.Cmd) {
	m.Picker = kind
	m.PickItems = nil
	m.PendingScript = ""

	switch kind {
	case app.PickUninstall:
		for _, dep := range m.Project.Manifest.AllDependencies() {
			m.PickItems = append(m.PickItems, app.PickItem{Label: dep.Label, Dependency: dep})
		}
	case app.PickScript:
		for _, name := range m.Project.Manifest.ScriptNames() {
			m.PickItems = append(m.PickItems, app.PickItem{
				Label:  name + "  " + m.Project.Manifest.Scripts[name],
				Script: name,
			})
		}
	}

	if len(m.PickItems) == 0 {
		if kind == app.PickUninstall {
			m.Err = fmt.Errorf("no dependencies declared in %s", m.Config.ManifestName)
		} else {
			m.Err = fmt.Errorf("no scripts declared in %s", m.Config.ManifestName)
		}
		m.CurrentScreen = app.ScreenMenu
		return m, nil
	}

	m.CurrentScreen = app.ScreenPicker
	m.Filter.SetValue("")
	m.Filter.Focus()
	m.PickMatches = m.PickItems
	m.PickIndex = 0
	return m, nil
}

// filterPickItems applies fuzzy matching over the item labels, best match
// first; an empty query keeps the manifest order.
func filterPickItems(items []app.PickItem, query string) []app.PickItem {
	if strings.TrimSpace(query) == "" {
		return items
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	matches := fuzzy.Find(query, labels)
	out := make([]app.PickItem, 0, len(matches))
	for _, match := range matches {
		out = append(out, items[match.Index])
	}
	return out
}

// UpdateScreenPicker handles the searchable list used by uninstall and run
// script, plus the trailing-args prompt after a script is chosen.
func UpdateScreenPicker(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	if m.PendingScript != "" {
		return updateTrailingArgs(m, msg)
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.CurrentScreen = app.ScreenMenu
		m.Filter.Blur()
		return m, nil

	case "up", "ctrl+k":
		if m.PickIndex > 0 {
			m.PickIndex--
		}
		return m, nil

	case "down", "ctrl+j":
		if m.PickIndex < len(m.PickMatches)-1 {
			m.PickIndex++
		}
		return m, nil

	case "enter":
		if len(m.PickMatches) == 0 {
			return m, nil
		}
		chosen := m.PickMatches[m.PickIndex]
		switch m.Picker {
		case app.PickUninstall:
			c, err := npm.Uninstall(m.Config, chosen.Dependency)
			if err != nil {
				m.Err = err
				m.CurrentScreen = app.ScreenMenu
				return m, nil
			}
			return toOutput(m, c)
		case app.PickScript:
			m.PendingScript = chosen.Script
			m.Filter.Blur()
			m.Input.SetValue("")
			m.Input.Focus()
			return m, nil
		}
		return m, nil

	default:
		var cmd tea.Cmd
		m.Filter, cmd = m.Filter.Update(msg)
		m.PickMatches = filterPickItems(m.PickItems, m.Filter.Value())
		if m.PickIndex >= len(m.PickMatches) {
			m.PickIndex = 0
		}
		return m, cmd
	}
}

// updateTrailingArgs prompts for optional double-dash args for the chosen
// script.
func updateTrailingArgs(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		m.PendingScript = ""
		m.Input.Blur()
		m.Filter.Focus()
		return m, nil

	case "enter":
		trailing, err := npm.SplitArgs(m.Input.Value())
		if err != nil {
			m.Err = err
			m.CurrentScreen = app.ScreenMenu
			return m, nil
		}
		c, err := npm.RunScript(m.Config, m.PendingScript, trailing)
		if err != nil {
			m.Err = err
			m.CurrentScreen = app.ScreenMenu
			return m, nil
		}
		m.PendingScript = ""
		m.Input.Blur()
		return toOutput(m, c)

	default:
		var cmd tea.Cmd
		m.Input, cmd = m.Input.Update(msg)
		return m, cmd
	}
}

// ViewPickerScreen renders the searchable picker or, once a script was
// chosen, the trailing-args prompt.
func ViewPickerScreen(m app.Model) string {
	if m.PendingScript != "" {
		title := app.TitleStyle.Render("Run script » " + m.PendingScript)
		body := "\n\n" + app.SubtitleStyle.Render("Arguments after -- (optional):") + "\n\n"
		body += "  " + m.Input.View() + "\n"
		body += "\n" + app.HelpStyle.Render("(enter to run • esc to go back)")
		return title + body
	}

	heading := "Uninstall dependency"
	if m.Picker == app.PickScript {
		heading = "Run script"
	}
	title := app.TitleStyle.Render(heading)
	body := "\n\n  " + m.Filter.View() + "\n\n"

	// Window the visible rows around the cursor.
	maxRows := m.Height - 12
	if maxRows < 5 {
		maxRows = 5
	}
	start := 0
	if m.PickIndex >= maxRows {
		start = m.PickIndex - maxRows + 1
	}
	for i := start; i < len(m.PickMatches) && i < start+maxRows; i++ {
		if i == m.PickIndex {
			body += "  " + app.HighlightStyle.Render("> "+m.PickMatches[i].Label) + "\n"
		} else {
			body += "  " + app.ChoiceStyle.Render("  "+m.PickMatches[i].Label) + "\n"
		}
	}
	if len(m.PickMatches) == 0 {
		body += "  " + app.ChoiceStyle.Render("no matches") + "\n"
	}

	body += "\n" + app.HelpStyle.Render("(type to filter • ↑/↓ to move • enter to select • esc to cancel)")
	return title + body
}
