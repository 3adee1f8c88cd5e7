package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/project"
)

// Clean confirmation stages: node_modules first, then, separately, the lock
// file. Each deletion needs its own explicit yes.
const (
	confirmNodeModules = iota
	confirmLockFile
)

// UpdateScreenConfirmClean handles the two-step clean confirmation.
func UpdateScreenConfirmClean(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc", "n", "q":
		// Each step reports its own result; declining just leaves whatever
		// the previous step's completion message already said.
		m.CurrentScreen = app.ScreenMenu
		return m, nil

	case "y", "enter":
		switch m.ConfirmStage {
		case confirmNodeModules:
			m.ConfirmStage = confirmLockFile
			return m, cleanStep(m.Project.RootPath, project.NodeModulesDir)
		case confirmLockFile:
			m.CurrentScreen = app.ScreenMenu
			return m, cleanStep(m.Project.RootPath, project.LockFileName)
		}
	}
	return m, nil
}

// ViewConfirmCleanScreen renders the pending confirmation.
func ViewConfirmCleanScreen(m app.Model) string {
	title := app.TitleStyle.Render("Clean project")
	body := "\n\n"

	switch m.ConfirmStage {
	case confirmNodeModules:
		body += "Delete " + app.HighlightStyle.Render(project.NodeModulesDir) + " in " +
			app.PathStyle.Render(m.Project.RootPath) + "?\n"
	case confirmLockFile:
		body += "Also delete " + app.HighlightStyle.Render(project.LockFileName) + "?\n"
	}

	if m.Err != nil {
		body += "\n" + app.ErrorStyle.Render(m.Err.Error()) + "\n"
	}

	body += "\n" + app.HelpStyle.Render("(y to confirm • n/esc to skip)")
	return title + body
}
