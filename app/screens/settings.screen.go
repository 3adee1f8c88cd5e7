package screens

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
)

// Settings rows, in display order.
const (
	settingGlobalArgs = iota
	settingVerbArgs
	settingDestination
	settingListDepth
	settingPTY
	settingSave
	settingBack
	settingCount
)

// UpdateScreenSettings handles input on the settings screen. Edits apply to
// the running session only; "Save" writes them to the config file so they
// survive a restart.
func UpdateScreenSettings(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	if m.Editing {
		return updateSettingEdit(m, msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.SettingsIndex = (m.SettingsIndex + settingCount - 1) % settingCount

	case "down", "j":
		m.SettingsIndex = (m.SettingsIndex + 1) % settingCount

	case "enter", " ":
		switch m.SettingsIndex {
		case settingGlobalArgs:
			m = startSettingEdit(m, m.Config.GlobalArgs)
		case settingVerbArgs:
			m = startSettingEdit(m, m.Config.VerbArgs)
		case settingListDepth:
			m = startSettingEdit(m, strconv.Itoa(m.Config.ListDepth))
		case settingDestination:
			m.Config.Destination = m.Config.Destination.Next()
		case settingPTY:
			m.Config.UsePTY = !m.Config.UsePTY
			if r, ok := m.Runner.(*npm.ExecRunner); ok {
				r.PTY = m.Config.UsePTY
			}
		case settingSave:
			if err := npm.SaveConfig(m.Config); err != nil {
				m.Err = err
			} else {
				m.Status = "configuration saved"
			}
		case settingBack:
			m.CurrentScreen = app.ScreenMenu
			m.SettingsIndex = 0
		}

	case "esc", "b":
		m.CurrentScreen = app.ScreenMenu
		m.SettingsIndex = 0
	}
	return m, nil
}

func startSettingEdit(m app.Model, current string) app.Model {
	m.Editing = true
	m.EditBuffer.SetValue(current)
	m.EditBuffer.CursorEnd()
	m.EditBuffer.Focus()
	return m
}

func updateSettingEdit(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Editing = false
		m.EditBuffer.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.EditBuffer.Value())
		switch m.SettingsIndex {
		case settingGlobalArgs:
			m.Config.GlobalArgs = value
		case settingVerbArgs:
			m.Config.VerbArgs = value
		case settingListDepth:
			depth, err := strconv.Atoi(value)
			if err != nil || depth < 0 {
				m.Err = fmt.Errorf("list depth must be a non-negative integer, got %q", value)
			} else {
				m.Err = nil
				m.Config.ListDepth = depth
			}
		}
		m.Editing = false
		m.EditBuffer.Blur()
		return m, nil

	default:
		var cmd tea.Cmd
		m.EditBuffer, cmd = m.EditBuffer.Update(msg)
		return m, cmd
	}
}

// ViewSettingsScreen renders the settings screen.
func ViewSettingsScreen(m app.Model) string {
	title := app.TitleStyle.Render("Settings")
	body := "\n\n"

	rows := []struct {
		label string
		value string
	}{
		{"Global npm arguments", orUnset(m.Config.GlobalArgs)},
		{"Install arguments", orUnset(m.Config.VerbArgs)},
		{"Install destination", string(m.Config.Destination)},
		{"List depth", strconv.Itoa(m.Config.ListDepth)},
		{"PTY output", onOff(m.Config.UsePTY)},
		{"Save to config file", ""},
		{"Back", ""},
	}

	for i, row := range rows {
		line := row.label
		if row.value != "" {
			line += ": " + row.value
		}
		if i == m.SettingsIndex && m.Editing {
			line = row.label + ": " + m.EditBuffer.View()
		}
		if i == m.SettingsIndex {
			body += "  " + app.HighlightStyle.Render("> "+line) + "\n"
		} else {
			body += "  " + app.ChoiceStyle.Render("  "+line) + "\n"
		}
	}

	if m.Err != nil {
		body += "\n" + app.ErrorStyle.Render(m.Err.Error()) + "\n"
	}
	if m.Status != "" {
		body += "\n" + app.HelpStyle.Render(m.Status) + "\n"
	}

	body += "\n" + app.HelpStyle.Render("(enter to edit/toggle • esc to go back)")
	return title + body
}

func orUnset(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
