package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/tulikamejora/homework-help/internal/db"
)

// SQLiteSlotRepo implements SlotRepo using a SQLite database.
type SQLiteSlotRepo struct {
	db db.DBTX
}

// NewSQLiteSlotRepo creates a new SQLiteSlotRepo.
func NewSQLiteSlotRepo(db db.DBTX) *SQLiteSlotRepo {
	return &SQLiteSlotRepo{db: db}
}

func (r *SQLiteSlotRepo) Get(ctx context.Context, name string) ([]byte, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM storage_slots WHERE name = ?`, name).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("slot %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("reading slot %q: %w", name, err)
	}
	return []byte(value), nil
}

func (r *SQLiteSlotRepo) Put(ctx context.Context, name string, value []byte) error {
	query := `INSERT INTO storage_slots (name, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, name, string(value), nowUTC()); err != nil {
		return fmt.Errorf("writing slot %q: %w", name, err)
	}
	return nil
}
