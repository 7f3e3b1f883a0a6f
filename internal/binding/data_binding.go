package binding

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"reefscout/internal/scouting"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// DataBinding provides frontend bindings for the data tab: ledger
// queries, CSV export, and the code-gated bulk delete.
type DataBinding struct {
	ctx     context.Context
	emitter EventEmitter
	ledger  *scouting.Ledger
	gate    *scouting.Gate
}

// NewDataBinding creates a new DataBinding instance.
func NewDataBinding(ledger *scouting.Ledger, gate *scouting.Gate) *DataBinding {
	return &DataBinding{ledger: ledger, gate: gate}
}

// SetContext sets the Wails runtime context.
func (d *DataBinding) SetContext(ctx context.Context) {
	d.ctx = ctx
	d.emitter = &WailsEventEmitter{ctx: ctx}
}

// SetEventEmitter injects a custom emitter, for tests.
func (d *DataBinding) SetEventEmitter(emitter EventEmitter) {
	d.emitter = emitter
}

// Records returns the full ledger in save order. The all-data table
// reverses it for a most-recent-first view.
func (d *DataBinding) Records() []scouting.Record {
	return d.ledger.Records()
}

// Recent returns the last n saved records in save order.
func (d *DataBinding) Recent(n int) []scouting.Record {
	return d.ledger.RecentN(n)
}

// TeamNumbers lists the distinct team numbers present in the ledger,
// for the data tab's team selector.
func (d *DataBinding) TeamNumbers() []string {
	return d.ledger.Teams()
}

// TeamSummary aggregates the ledger for one team.
func (d *DataBinding) TeamSummary(number string) scouting.TeamSummary {
	return d.ledger.Summary(number)
}

// ExportCSV writes the ledger as a CSV file chosen via a save dialog.
// Returns the written path, or "" when the ledger is empty or the user
// cancels.
func (d *DataBinding) ExportCSV() (string, error) {
	if d.ledger.Len() == 0 {
		return "", nil
	}

	target, err := runtime.SaveFileDialog(d.ctx, runtime.SaveDialogOptions{
		Title:           "Export Scouting Data",
		DefaultFilename: scouting.ExportFilename(time.Now()),
		Filters: []runtime.FileFilter{
			{
				DisplayName: "CSV (*.csv)",
				Pattern:     "*.csv",
			},
		},
	})
	if err != nil {
		runtime.LogError(d.ctx, fmt.Sprintf("Save dialog error: %v", err))
		return "", err
	}
	if target == "" {
		// User cancelled
		return "", nil
	}

	csv := scouting.ExportCSV(d.ledger.Records())
	if err := os.WriteFile(target, []byte(csv), 0644); err != nil {
		runtime.LogError(d.ctx, fmt.Sprintf("Failed to write CSV: %v", err))
		return "", err
	}

	runtime.LogInfo(d.ctx, fmt.Sprintf("Exported %d records to %s", d.ledger.Len(), target))
	return target, nil
}

// DeleteAll clears the whole ledger if the delete code matches.
func (d *DataBinding) DeleteAll(code string) error {
	if !d.gate.Verify(code) {
		runtime.LogWarning(d.ctx, "Delete all rejected: incorrect code")
		alert(d.emitter, "Incorrect code.")
		return scouting.ErrAuth
	}

	d.ledger.ClearAll()
	runtime.LogInfo(d.ctx, "All scouting data deleted")
	alert(d.emitter, "All scouting data deleted.")
	return nil
}

// ChangeDeleteCode rotates the delete code after verifying the current
// one.
func (d *DataBinding) ChangeDeleteCode(oldCode, newCode string) error {
	err := d.gate.Rotate(oldCode, newCode)

	var vErr *scouting.ValidationError
	switch {
	case errors.Is(err, scouting.ErrAuth):
		runtime.LogWarning(d.ctx, "Code rotation rejected: incorrect current code")
		alert(d.emitter, "Incorrect current code.")
	case errors.As(err, &vErr):
		runtime.LogWarning(d.ctx, fmt.Sprintf("Code rotation rejected: %v", err))
		alert(d.emitter, "Code must be at least 3 characters.")
	case err == nil:
		runtime.LogInfo(d.ctx, "Delete code updated")
		alert(d.emitter, "Delete code updated.")
	}

	return err
}
