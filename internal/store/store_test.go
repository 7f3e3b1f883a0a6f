package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteReadAbsent(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	if _, ok := s.Read(KeyTeams); ok {
		t.Error("expected absent slot before first write")
	}
}

func TestSQLiteWriteRead(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	s.Write(KeyDarkMode, "true")

	value, ok := s.Read(KeyDarkMode)
	if !ok {
		t.Fatal("expected slot to be present after write")
	}
	if value != "true" {
		t.Errorf("expected 'true', got '%s'", value)
	}
}

func TestSQLiteWriteOverwrites(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	defer s.Close()

	s.Write(KeyBackground, "red")
	s.Write(KeyBackground, "blue")

	value, ok := s.Read(KeyBackground)
	if !ok || value != "blue" {
		t.Errorf("expected last write to win, got '%s' (present=%v)", value, ok)
	}
}

func TestSQLiteDurableAcrossReopen(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	s, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	s.Write(KeyDeleteCode, "9999")
	if err := s.Close(); err != nil {
		t.Fatalf("failed to close store: %v", err)
	}

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen store: %v", err)
	}
	defer reopened.Close()

	value, ok := reopened.Read(KeyDeleteCode)
	if !ok || value != "9999" {
		t.Errorf("expected '9999' after reopen, got '%s' (present=%v)", value, ok)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory()

	if _, ok := m.Read(KeyRecords); ok {
		t.Error("expected absent slot in fresh memory store")
	}

	m.Write(KeyRecords, "[]")
	value, ok := m.Read(KeyRecords)
	if !ok || value != "[]" {
		t.Errorf("expected '[]', got '%s' (present=%v)", value, ok)
	}
}
