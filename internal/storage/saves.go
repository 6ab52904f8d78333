package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/matchem-poker/internal/core"
)

// Ensure Store implements SessionStore
var _ core.SessionStore = (*Store)(nil)

// SaveInfo describes a stored saved game.
type SaveInfo struct {
	Slot      string
	Size      int
	UpdatedAt time.Time
}

// LoadSession returns the saved game in slot, or nil if there is none.
func (s *Store) LoadSession(slot string) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow("SELECT data FROM saves WHERE slot = ?", slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load save %s: %w", slot, err)
	}
	return data, nil
}

// SaveSession stores data in slot, replacing what was there.
func (s *Store) SaveSession(slot string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO saves (slot, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP`,
		slot, data,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s: %w", slot, err)
	}
	return nil
}

// DeleteSession removes the saved game in slot.
func (s *Store) DeleteSession(slot string) error {
	if _, err := s.db.Exec("DELETE FROM saves WHERE slot = ?", slot); err != nil {
		return fmt.Errorf("storage: cannot delete save %s: %w", slot, err)
	}
	return nil
}

// Sessions lists saved games, most recently updated first.
func (s *Store) Sessions() ([]SaveInfo, error) {
	rows, err := s.db.Query(
		`SELECT slot, LENGTH(data), updated_at
		 FROM saves
		 ORDER BY updated_at DESC, slot`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query saves: %w", err)
	}
	defer rows.Close()

	var infos []SaveInfo
	for rows.Next() {
		var info SaveInfo
		var updatedAt any
		if err := rows.Scan(&info.Slot, &info.Size, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan save: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		infos = append(infos, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return infos, nil
}
