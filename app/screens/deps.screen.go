package screens

import (
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
)

// ApplyListResult installs the parsed list entries into the table. Called by
// the program's Update when ListDoneMsg arrives.
func ApplyListResult(m app.Model, msg app.ListDoneMsg) app.Model {
	m.ListLoading = false
	if msg.Err != nil {
		m.Err = msg.Err
		m.CurrentScreen = app.ScreenMenu
		return m
	}
	m.ListEntries = msg.Entries
	m.Table = newDepsTable(m)
	return m
}

func newDepsTable(m app.Model) table.Model {
	entries := append([]npm.ListEntry{}, m.ListEntries...)
	sort.SliceStable(entries, func(i, j int) bool {
		var less bool
		if m.SortByName {
			less = entries[i].Name < entries[j].Name
		} else {
			less = entries[i].Version < entries[j].Version
		}
		if !m.SortAsc {
			return !less
		}
		return less
	})

	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Name, e.Version})
	}

	height := m.Height - 10
	if height < 5 {
		height = 5
	}
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Package", Width: 48},
			{Title: "Version", Width: 16},
		}),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	return t
}

// UpdateScreenDeps handles keys on the dependency table.
func UpdateScreenDeps(m app.Model, msg tea.KeyMsg) (app.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "esc", "b":
		m.CurrentScreen = app.ScreenMenu
		return m, nil

	case "n":
		if m.SortByName {
			m.SortAsc = !m.SortAsc
		} else {
			m.SortByName = true
			m.SortAsc = true
		}
		m.Table = newDepsTable(m)
		return m, nil

	case "v":
		if !m.SortByName {
			m.SortAsc = !m.SortAsc
		} else {
			m.SortByName = false
			m.SortAsc = true
		}
		m.Table = newDepsTable(m)
		return m, nil
	}

	if m.ListLoading {
		return m, nil
	}
	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

// ViewDepsScreen renders the two-column dependency table.
func ViewDepsScreen(m app.Model) string {
	title := app.TitleStyle.Render("Dependencies » " + m.Project.Name)
	body := "\n\n"

	if m.ListLoading {
		body += m.Spinner.View() + " running " + app.PathStyle.Render(m.LastCommand) + "\n"
		body += "\n" + app.HelpStyle.Render("(esc to cancel view)")
		return title + body
	}

	body += m.Table.View() + "\n"
	body += "\n" + app.HelpStyle.Render("(n sort by name • v sort by version • esc to go back)")
	return title + body
}
