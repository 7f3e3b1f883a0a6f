package main

import (
	"path/filepath"
	"testing"

	"reefscout/internal/scouting"
	"reefscout/internal/store"
)

func TestOpenLedgerMissingFile(t *testing.T) {
	_, _, _, err := openLedger(filepath.Join(t.TempDir(), "nope.db"))
	if err == nil {
		t.Fatal("expected error for missing database")
	}
}

func TestOpenLedgerReadsAppDatabase(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "scouting.db")

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}

	registry := scouting.NewRegistry(st)
	registry.Add("Foo", "254")

	ledger := scouting.NewLedger(st)
	if _, err := ledger.Save(scouting.Draft{Team: "254", Match: "3", Color: scouting.ColorBlue}); err != nil {
		t.Fatalf("failed to save record: %v", err)
	}
	wantCSV := scouting.ExportCSV(ledger.Records())

	if err := st.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	gotLedger, gotRegistry, closeStore, err := openLedger(dbPath)
	if err != nil {
		t.Fatalf("failed to open ledger: %v", err)
	}
	defer closeStore()

	if gotRegistry.Len() != 1 {
		t.Errorf("expected 1 team, got %d", gotRegistry.Len())
	}
	if gotLedger.Len() != 1 {
		t.Errorf("expected 1 record, got %d", gotLedger.Len())
	}
	if got := scouting.ExportCSV(gotLedger.Records()); got != wantCSV {
		t.Errorf("CLI export differs from app export:\n got %q\nwant %q", got, wantCSV)
	}
}
