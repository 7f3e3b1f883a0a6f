package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"reefscout/internal/binding"
	"reefscout/internal/scouting"
	"reefscout/internal/settings"
	"reefscout/internal/store"
)

// App struct
type App struct {
	ctx context.Context

	db *store.SQLiteStore

	teamBinding     *binding.TeamBinding
	scoutBinding    *binding.ScoutBinding
	dataBinding     *binding.DataBinding
	settingsBinding *binding.SettingsBinding
}

// NewApp creates a new App application struct
func NewApp() *App {
	slots := openSlotStore()

	registry := scouting.NewRegistry(slots)
	ledger := scouting.NewLedger(slots)
	panel := scouting.NewCounterPanel()
	gate := scouting.NewGate(slots)
	prefs := settings.New(slots)

	app := &App{
		teamBinding:     binding.NewTeamBinding(registry),
		scoutBinding:    binding.NewScoutBinding(panel, ledger),
		dataBinding:     binding.NewDataBinding(ledger, gate),
		settingsBinding: binding.NewSettingsBinding(prefs),
	}
	if db, ok := slots.(*store.SQLiteStore); ok {
		app.db = db
	}
	return app
}

// openSlotStore opens the per-user slot database, falling back to a
// session-only in-memory store when the database cannot be used. The
// fallback is silent: the app keeps working, edits just don't survive a
// restart.
func openSlotStore() store.Store {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return store.NewMemory()
	}

	dbDir := filepath.Join(configDir, "reefscout")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return store.NewMemory()
	}

	db, err := store.Open(filepath.Join(dbDir, "scouting.db"))
	if err != nil {
		return store.NewMemory()
	}
	return db
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	a.teamBinding.SetContext(ctx)
	a.scoutBinding.SetContext(ctx)
	a.dataBinding.SetContext(ctx)
	a.settingsBinding.SetContext(ctx)
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	if a.db != nil {
		a.db.Close()
	}
}

const appVersion = "0.1.0"

// Version returns the current app version.
func (a *App) Version() string {
	return fmt.Sprintf("reefscout %s", appVersion)
}
