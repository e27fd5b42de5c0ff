package state

import (
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	t.Cleanup(func() { db.Close() })
	return db
}

// TestGetPosition_Empty tests reading a position from an empty database.
func TestGetPosition_Empty(t *testing.T) {
	db := setupTestDB(t)

	pos, err := getPosition(db, "/talks/demo")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if pos != nil {
		t.Errorf("expected nil position on empty db, got %+v", pos)
	}
}

// TestSaveAndGetPosition tests saving and retrieving a deck position.
func TestSaveAndGetPosition(t *testing.T) {
	db := setupTestDB(t)

	pos := Position{DeckPath: "/talks/demo", ActiveIndex: 3}
	if err := savePosition(db, pos); err != nil {
		t.Fatalf("savePosition failed: %v", err)
	}

	retrieved, err := getPosition(db, "/talks/demo")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected non-nil position")
	}
	if retrieved.DeckPath != pos.DeckPath {
		t.Errorf("DeckPath = %q, want %q", retrieved.DeckPath, pos.DeckPath)
	}
	if retrieved.ActiveIndex != pos.ActiveIndex {
		t.Errorf("ActiveIndex = %d, want %d", retrieved.ActiveIndex, pos.ActiveIndex)
	}
}

// TestSavePosition_Update tests that saving again overwrites the previous index.
func TestSavePosition_Update(t *testing.T) {
	db := setupTestDB(t)

	if err := savePosition(db, Position{DeckPath: "/talks/demo", ActiveIndex: 1}); err != nil {
		t.Fatalf("savePosition failed: %v", err)
	}
	if err := savePosition(db, Position{DeckPath: "/talks/demo", ActiveIndex: 5}); err != nil {
		t.Fatalf("savePosition failed: %v", err)
	}

	retrieved, err := getPosition(db, "/talks/demo")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if retrieved.ActiveIndex != 5 {
		t.Errorf("ActiveIndex = %d, want 5", retrieved.ActiveIndex)
	}
}

// TestSavePosition_IsolatedPerDeck tests that decks do not share positions.
func TestSavePosition_IsolatedPerDeck(t *testing.T) {
	db := setupTestDB(t)

	if err := savePosition(db, Position{DeckPath: "/a", ActiveIndex: 2}); err != nil {
		t.Fatalf("savePosition failed: %v", err)
	}
	if err := savePosition(db, Position{DeckPath: "/b", ActiveIndex: 7}); err != nil {
		t.Fatalf("savePosition failed: %v", err)
	}

	a, err := getPosition(db, "/a")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if a.ActiveIndex != 2 {
		t.Errorf("deck /a ActiveIndex = %d, want 2", a.ActiveIndex)
	}

	b, err := getPosition(db, "/b")
	if err != nil {
		t.Fatalf("getPosition failed: %v", err)
	}
	if b.ActiveIndex != 7 {
		t.Errorf("deck /b ActiveIndex = %d, want 7", b.ActiveIndex)
	}
}

// TestSavePosition_PrunesOldDecks tests that old entries are dropped past the cap.
func TestSavePosition_PrunesOldDecks(t *testing.T) {
	db := setupTestDB(t)

	for i := range maxRememberedDecks + 10 {
		pos := Position{DeckPath: fmt.Sprintf("/deck-%03d", i), ActiveIndex: i}
		if err := savePosition(db, pos); err != nil {
			t.Fatalf("savePosition failed: %v", err)
		}
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM deck_positions`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count > maxRememberedDecks {
		t.Errorf("deck_positions has %d rows, want at most %d", count, maxRememberedDecks)
	}
}
