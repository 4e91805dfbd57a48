package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_fragment_store.go -package=mocks rbi-assist/internal/storage FragmentStore

import (
	"context"
	"database/sql"
	"fmt"
)

// FragmentRecord is one persisted unit of source document text.
type FragmentRecord struct {
	ID         string
	Text       string
	SourceFile string
}

// FragmentStore defines the document-store operations the retrieval pipeline
// reads through.
type FragmentStore interface {
	// Upsert inserts or replaces fragments by identifier.
	Upsert(ctx context.Context, fragments []FragmentRecord) error
	// TextByID returns the fragment text for id, or "" when the fragment is
	// missing. A missing fragment is not an error.
	TextByID(ctx context.Context, id string) (string, error)
	// Count returns the number of stored fragments.
	Count(ctx context.Context) (int, error)
}

// FragmentRepo implements FragmentStore on SQLite.
type FragmentRepo struct {
	db *sql.DB
}

// NewFragmentRepo creates a new FragmentRepo.
func NewFragmentRepo(db *sql.DB) *FragmentRepo {
	return &FragmentRepo{db: db}
}

// Upsert inserts or replaces fragments by identifier.
func (r *FragmentRepo) Upsert(ctx context.Context, fragments []FragmentRecord) error {
	if len(fragments) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO fragments (id, text, source_file) VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET text = excluded.text, source_file = excluded.source_file`,
	)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	for _, f := range fragments {
		if _, err := stmt.ExecContext(ctx, f.ID, f.Text, f.SourceFile); err != nil {
			return fmt.Errorf("failed to upsert fragment %s: %w", f.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit upsert: %w", err)
	}
	return nil
}

// TextByID returns the fragment text for id, or "" when missing.
func (r *FragmentRepo) TextByID(ctx context.Context, id string) (string, error) {
	var text string
	err := r.db.QueryRowContext(ctx, "SELECT text FROM fragments WHERE id = ?", id).Scan(&text)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query fragment: %w", err)
	}
	return text, nil
}

// Count returns the number of stored fragments.
func (r *FragmentRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fragments").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count fragments: %w", err)
	}
	return n, nil
}
