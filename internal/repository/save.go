package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hotseatlabs/stockticker-backend/internal/repository/storage/sqlite"
)

var ErrSaveNotFound = errors.New("save slot not found")

// SaveRepository keeps named snapshots so a table can be put away and
// picked up later.
type SaveRepository interface {
	Put(ctx context.Context, name, snapshotText string) error
	Get(ctx context.Context, name string) (string, error)
	List(ctx context.Context) ([]string, error)
}

type dbSave struct {
	storage *sqlite.Storage
}

func NewSaveRepository(storage *sqlite.Storage) SaveRepository {
	return &dbSave{
		storage: storage,
	}
}

func (that *dbSave) Put(ctx context.Context, name, snapshotText string) error {
	query := `INSERT INTO saves (name, snapshot) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET snapshot = excluded.snapshot, created_at = CURRENT_TIMESTAMP`

	_, err := that.storage.Connection.ExecContext(ctx, query, name, snapshotText)
	if err != nil {
		return fmt.Errorf("failed to store save slot: %w", err)
	}

	return nil
}

func (that *dbSave) Get(ctx context.Context, name string) (string, error) {
	query := `SELECT snapshot FROM saves WHERE name = ?`

	var snapshotText string
	err := that.storage.Connection.QueryRowContext(ctx, query, name).Scan(&snapshotText)

	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSaveNotFound
	}

	if err != nil {
		return "", fmt.Errorf("failed to read save slot: %w", err)
	}

	return snapshotText, nil
}

func (that *dbSave) List(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM saves ORDER BY created_at DESC`

	rows, err := that.storage.Connection.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list save slots: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan save slot: %w", err)
		}
		names = append(names, name)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate save slots: %w", err)
	}

	return names, nil
}
