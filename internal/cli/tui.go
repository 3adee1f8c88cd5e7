package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"npmtui/app"
	"npmtui/app/npm"
	"npmtui/app/screens"
)

// programModel wraps app.Model so all Update routing lives in one place.
type programModel struct {
	m app.Model
}

func newProgramModel(cfg npm.Config, start app.Screen) programModel {
	input := textinput.New()
	input.Placeholder = "package name"
	input.CharLimit = 214 // npm's max package name length
	input.Width = 48

	filter := textinput.New()
	filter.Placeholder = "type to filter"
	filter.Width = 48

	edit := textinput.New()
	edit.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return programModel{m: app.Model{
		CurrentScreen: start,
		Config:        cfg,
		Input:         input,
		Filter:        filter,
		EditBuffer:    edit,
		Spinner:       sp,
		Viewport:      viewport.New(80, 20),
		SortByName:    true,
		SortAsc:       true,
	}}
}

func (p programModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, p.m.Spinner.Tick)
}

func (p programModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.m.Width = msg.Width
		p.m.Height = msg.Height
		p.m.Viewport.Width = msg.Width - 4
		p.m.Viewport.Height = msg.Height - 8
		return p, nil

	case spinner.TickMsg:
		if p.m.Running || p.m.ListLoading {
			var cmd tea.Cmd
			p.m.Spinner, cmd = p.m.Spinner.Update(msg)
			return p, cmd
		}
		return p, nil

	case app.OutputChunkMsg:
		if msg.Chunk != "" {
			p.m = screens.AppendOutput(p.m, msg.Chunk)
		}
		return p, screens.ReadNextChunk(msg.Handle)

	case app.ProcExitMsg:
		p.m = screens.FinishOutput(p.m, msg)
		return p, nil

	case app.ListDoneMsg:
		p.m = screens.ApplyListResult(p.m, msg)
		return p, nil

	case app.CleanDoneMsg:
		if msg.Err != nil {
			p.m.Err = msg.Err
			p.m.Status = ""
		} else {
			p.m.Status = "removed " + msg.What
		}
		return p, nil

	case app.EditorFinishedMsg:
		if msg.Err != nil {
			p.m.Err = fmt.Errorf("editor failed: %w", msg.Err)
		}
		return p, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		switch p.m.CurrentScreen {
		case app.ScreenMenu:
			p.m, cmd = screens.UpdateScreenMenu(p.m, msg)
		case app.ScreenInstall:
			p.m, cmd = screens.UpdateScreenInstall(p.m, msg)
		case app.ScreenPicker:
			p.m, cmd = screens.UpdateScreenPicker(p.m, msg)
		case app.ScreenDeps:
			p.m, cmd = screens.UpdateScreenDeps(p.m, msg)
		case app.ScreenOutput:
			p.m, cmd = screens.UpdateScreenOutput(p.m, msg)
		case app.ScreenConfirmClean:
			p.m, cmd = screens.UpdateScreenConfirmClean(p.m, msg)
		case app.ScreenSettings:
			p.m, cmd = screens.UpdateScreenSettings(p.m, msg)
		}
		if p.m.Running || p.m.ListLoading {
			cmd = tea.Batch(cmd, p.m.Spinner.Tick)
		}
		return p, cmd
	}
	return p, nil
}

func (p programModel) View() string {
	var s string
	switch p.m.CurrentScreen {
	case app.ScreenMenu:
		s = screens.ViewMenuScreen(p.m)
	case app.ScreenInstall:
		s = screens.ViewInstallScreen(p.m)
	case app.ScreenPicker:
		s = screens.ViewPickerScreen(p.m)
	case app.ScreenDeps:
		s = screens.ViewDepsScreen(p.m)
	case app.ScreenOutput:
		s = screens.ViewOutputScreen(p.m)
	case app.ScreenConfirmClean:
		s = screens.ViewConfirmCleanScreen(p.m)
	case app.ScreenSettings:
		s = screens.ViewSettingsScreen(p.m)
	}
	return app.DocStyle.Render(s)
}

// runTUI detects the project, builds the shared model, and runs the
// interactive program starting on the given screen.
func runTUI(ctx context.Context, start app.Screen) error {
	return runTUIPicker(ctx, start, app.PickUninstall)
}

// runTUIPicker is runTUI with an explicit picker kind for the verbs that
// drop straight into a searchable list.
func runTUIPicker(ctx context.Context, start app.Screen, pick app.PickerKind) error {
	cfg, info, err := loadContext(ctx)
	if err != nil {
		return err
	}

	p := newProgramModel(cfg, start)
	p.m.Project = info
	p.m.Runner = &npm.ExecRunner{Dir: info.RootPath, PTY: cfg.UsePTY}
	p.m.ListRunner = &npm.ExecRunner{Dir: info.RootPath}

	switch start {
	case app.ScreenInstall:
		p.m.Stage = app.StageName
		p.m.Input.Focus()
	case app.ScreenPicker:
		p.m, _ = screens.EnterPicker(p.m, pick)
		if p.m.CurrentScreen != app.ScreenPicker {
			// Nothing to pick from; surface the reason instead of an empty list.
			return p.m.Err
		}
	}

	prog := tea.NewProgram(p, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
