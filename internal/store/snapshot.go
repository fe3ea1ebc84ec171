package store

import (
	"database/sql"
	"errors"
	"time"
)

// SnapshotSource records what triggered a snapshot.
type SnapshotSource string

const (
	// SnapshotSourceGesture marks snapshots saved through the header menu.
	SnapshotSourceGesture SnapshotSource = "gesture"
	// SnapshotSourceHotkey marks quick-saves from the keyboard.
	SnapshotSourceHotkey SnapshotSource = "hotkey"
)

// Snapshot represents a saved canvas image.
type Snapshot struct {
	ID        string
	Path      string
	Source    SnapshotSource
	CreatedAt time.Time
}

// SnapshotRepository provides CRUD operations for snapshots.
type SnapshotRepository struct {
	db *sql.DB
}

// Snapshots returns the snapshot repository for this store.
func (s *Store) Snapshots() *SnapshotRepository {
	return &SnapshotRepository{db: s.db}
}

// Create inserts a new snapshot into the database.
func (r *SnapshotRepository) Create(sn *Snapshot) error {
	sn.CreatedAt = time.Now()

	_, err := r.db.Exec(
		`INSERT INTO snapshots (id, path, source, created_at)
		 VALUES (?, ?, ?, ?)`,
		sn.ID, sn.Path, string(sn.Source), sn.CreatedAt,
	)
	return err
}

// GetByID retrieves a snapshot by its ID.
func (r *SnapshotRepository) GetByID(id string) (*Snapshot, error) {
	sn := &Snapshot{}
	var source string

	err := r.db.QueryRow(
		`SELECT id, path, source, created_at FROM snapshots WHERE id = ?`,
		id,
	).Scan(&sn.ID, &sn.Path, &source, &sn.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	sn.Source = SnapshotSource(source)
	return sn, nil
}

// List retrieves all snapshots, newest first.
func (r *SnapshotRepository) List() ([]*Snapshot, error) {
	rows, err := r.db.Query(
		`SELECT id, path, source, created_at FROM snapshots ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []*Snapshot
	for rows.Next() {
		sn := &Snapshot{}
		var source string

		if err := rows.Scan(&sn.ID, &sn.Path, &source, &sn.CreatedAt); err != nil {
			return nil, err
		}

		sn.Source = SnapshotSource(source)
		snapshots = append(snapshots, sn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return snapshots, nil
}

// Delete removes a snapshot from the database by its ID.
func (r *SnapshotRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM snapshots WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
