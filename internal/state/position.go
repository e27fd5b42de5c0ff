package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/swipedeck/swipedeck/internal/db"
)

// Position is the remembered viewing position for one deck.
type Position struct {
	DeckPath    string
	ActiveIndex int
}

// Old deck entries beyond this count are pruned on save.
const maxRememberedDecks = 50

func getPosition(db *sql.DB, deckPath string) (*Position, error) {
	row := db.QueryRow(`
		SELECT deck_path, active_index
		FROM deck_positions WHERE deck_path = ?
	`, deckPath)

	var pos Position
	err := row.Scan(&pos.DeckPath, &pos.ActiveIndex)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // a deck with no saved position is valid
	}
	if err != nil {
		return nil, err
	}

	return &pos, nil
}

func savePosition(db *sql.DB, pos Position) error {
	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO deck_positions (deck_path, active_index, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(deck_path) DO UPDATE SET
				active_index = excluded.active_index,
				updated_at = excluded.updated_at
		`, pos.DeckPath, pos.ActiveIndex, time.Now().Unix())
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			DELETE FROM deck_positions
			WHERE deck_path NOT IN (
				SELECT deck_path FROM deck_positions
				ORDER BY updated_at DESC
				LIMIT ?
			)
		`, maxRememberedDecks)
		return err
	})
}
