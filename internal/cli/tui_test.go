package cli

import (
	"errors"
	"testing"

	"npmtui/app"
	"npmtui/app/npm"
	"npmtui/app/project"
)

func TestCleanResultDrivesStatus(t *testing.T) {
	p := newProgramModel(npm.DefaultConfig(), app.ScreenConfirmClean)

	next, _ := p.Update(app.CleanDoneMsg{What: project.NodeModulesDir})
	p = next.(programModel)
	if p.m.Status != "removed "+project.NodeModulesDir {
		t.Errorf("Status = %q, want removal confirmation", p.m.Status)
	}
	if p.m.Err != nil {
		t.Errorf("Err = %v, want nil", p.m.Err)
	}

	next, _ = p.Update(app.CleanDoneMsg{What: project.LockFileName, Err: errors.New("permission denied")})
	p = next.(programModel)
	if p.m.Err == nil {
		t.Fatal("expected the removal failure to be surfaced")
	}
	if p.m.Status != "" {
		t.Errorf("Status = %q, want empty after a failed removal", p.m.Status)
	}
}
