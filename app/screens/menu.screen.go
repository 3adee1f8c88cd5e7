package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
)

// menuActions are the named operations offered on the main screen, in
// display order.
var menuActions = []string{
	"Install dependency",
	"Install all dependencies",
	"Uninstall dependency",
	"Run script",
	"List dependencies",
	"Init project",
	"Clean project",
	"Open package.json",
	"Settings",
	"Quit",
}

// UpdateScreenMenu handles key presses on the main menu.
func UpdateScreenMenu(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		m.MenuIndex = (m.MenuIndex + len(menuActions) - 1) % len(menuActions)

	case "down", "j":
		m.MenuIndex = (m.MenuIndex + 1) % len(menuActions)

	case "enter":
		return dispatchMenuAction(m)
	}
	return m, nil
}

// dispatchMenuAction runs the selected operation. Pre-launch failures
// (manifest lookup or parse, unknown destination) abort here with the error
// shown on the menu; nothing is retried.
func dispatchMenuAction(m app.Model) (app.Model, tea.Cmd) {
	m.Err = nil
	m.Status = ""

	switch menuActions[m.MenuIndex] {
	case "Install dependency":
		m.CurrentScreen = app.ScreenInstall
		m.Stage = app.StageName
		m.DestIndex = destIndexOf(m.Config.Destination)
		m.Input.SetValue("")
		m.Input.Focus()
		return m, nil

	case "Install all dependencies":
		c, err := npm.InstallAll(m.Config)
		if err != nil {
			m.Err = err
			return m, nil
		}
		return toOutput(m, c)

	case "Uninstall dependency":
		var ok bool
		if m, ok = refreshManifest(m); !ok {
			return m, nil
		}
		return EnterPicker(m, app.PickUninstall)

	case "Run script":
		var ok bool
		if m, ok = refreshManifest(m); !ok {
			return m, nil
		}
		return EnterPicker(m, app.PickScript)

	case "List dependencies":
		c, err := npm.List(m.Config)
		if err != nil {
			m.Err = err
			return m, nil
		}
		m.CurrentScreen = app.ScreenDeps
		m.ListLoading = true
		m.ListEntries = nil
		m.SortByName = true
		m.SortAsc = true
		m.LastCommand = c.String()
		return m, tea.Batch(m.Spinner.Tick, loadList(m.ListRunner, c))

	case "Init project":
		// The output screen does not forward keystrokes, so init must run
		// non-interactively here. The init verb on the command line stays
		// interactive.
		c, err := npm.Init(m.Config, true)
		if err != nil {
			m.Err = err
			return m, nil
		}
		return toOutput(m, c)

	case "Clean project":
		m.CurrentScreen = app.ScreenConfirmClean
		m.ConfirmStage = 0
		return m, nil

	case "Open package.json":
		var ok bool
		if m, ok = refreshManifest(m); !ok {
			return m, nil
		}
		return m, openEditor(m.Project.ManifestPath)

	case "Settings":
		m.CurrentScreen = app.ScreenSettings
		m.SettingsIndex = 0
		m.Editing = false
		return m, nil

	case "Quit":
		return m, tea.Quit
	}
	return m, nil
}

// ViewMenuScreen renders the main menu.
func ViewMenuScreen(m app.Model) string {
	title := app.TitleStyle.Render("npm » " + m.Project.Name)
	body := "\n\n" + summarizeProjectStats(m) + "\n"
	body += app.SubtitleStyle.Render("Actions:") + "\n\n"

	for i, action := range menuActions {
		if i == m.MenuIndex {
			body += "  " + app.HighlightStyle.Render("> "+action) + "\n"
		} else {
			body += "  " + app.ChoiceStyle.Render("  "+action) + "\n"
		}
	}

	if m.Err != nil {
		body += "\n" + app.ErrorStyle.Render(m.Err.Error()) + "\n"
	}
	if m.Status != "" {
		body += "\n" + app.HelpStyle.Render(m.Status) + "\n"
	}

	body += "\n" + app.HelpStyle.Render("(↑/↓ or j/k to move • enter to select • q to quit)")
	return title + body
}

func destIndexOf(d npm.Destination) int {
	for i, cand := range npm.Destinations {
		if cand == d {
			return i
		}
	}
	return 0
}
