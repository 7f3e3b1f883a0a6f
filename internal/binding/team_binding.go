package binding

import (
	"context"
	"fmt"
	"os"

	"reefscout/internal/scouting"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// TeamBinding provides frontend bindings for the team registry on the
// configuration tab.
type TeamBinding struct {
	ctx      context.Context
	emitter  EventEmitter
	registry *scouting.Registry
}

// NewTeamBinding creates a new TeamBinding instance.
func NewTeamBinding(registry *scouting.Registry) *TeamBinding {
	return &TeamBinding{registry: registry}
}

// SetContext sets the Wails runtime context.
func (t *TeamBinding) SetContext(ctx context.Context) {
	t.ctx = ctx
	t.emitter = &WailsEventEmitter{ctx: ctx}
}

// SetEventEmitter injects a custom emitter, for tests.
func (t *TeamBinding) SetEventEmitter(emitter EventEmitter) {
	t.emitter = emitter
}

// Teams lists the registered teams in order.
func (t *TeamBinding) Teams() []scouting.Team {
	return t.registry.Teams()
}

// AddTeam registers a team. Blank fields and duplicate numbers are
// silently ignored; the return value tells the form whether to clear.
func (t *TeamBinding) AddTeam(name, number string) bool {
	added := t.registry.Add(name, number)
	if added {
		runtime.LogInfo(t.ctx, fmt.Sprintf("Team added: #%s %s", number, name))
	}
	return added
}

// DeleteTeam removes the team at the given list position.
func (t *TeamBinding) DeleteTeam(index int) []scouting.Team {
	t.registry.DeleteAt(index)
	runtime.LogInfo(t.ctx, fmt.Sprintf("Team deleted at index %d", index))
	return t.registry.Teams()
}

// ImportTeams opens a file dialog and replaces the registry from the
// chosen JSON file. Returns the new contents, or the old contents when
// the user cancels or the file is not a team list.
func (t *TeamBinding) ImportTeams() ([]scouting.Team, error) {
	runtime.LogInfo(t.ctx, "Opening team import dialog")

	selected, err := runtime.OpenFileDialog(t.ctx, runtime.OpenDialogOptions{
		Title: "Import Teams",
		Filters: []runtime.FileFilter{
			{
				DisplayName: "JSON (*.json)",
				Pattern:     "*.json",
			},
		},
	})
	if err != nil {
		runtime.LogError(t.ctx, fmt.Sprintf("File dialog error: %v", err))
		return t.registry.Teams(), err
	}
	if selected == "" {
		// User cancelled
		return t.registry.Teams(), nil
	}

	data, err := os.ReadFile(selected)
	if err != nil {
		runtime.LogError(t.ctx, fmt.Sprintf("Failed to read import file: %v", err))
		alert(t.emitter, "Invalid JSON file")
		return t.registry.Teams(), err
	}

	if err := t.registry.ReplaceAllFromJSON(data); err != nil {
		runtime.LogWarning(t.ctx, fmt.Sprintf("Team import rejected: %v", err))
		alert(t.emitter, "Invalid JSON file")
		return t.registry.Teams(), err
	}

	runtime.LogInfo(t.ctx, fmt.Sprintf("Imported %d teams", t.registry.Len()))
	return t.registry.Teams(), nil
}

// ExportTeams renders the registry as import-compatible JSON, so a
// filled-in device can hand its team list to another one.
func (t *TeamBinding) ExportTeams() (string, error) {
	data, err := t.registry.ExportJSON()
	if err != nil {
		runtime.LogError(t.ctx, fmt.Sprintf("Failed to export teams: %v", err))
		return "", err
	}
	return string(data), nil
}
