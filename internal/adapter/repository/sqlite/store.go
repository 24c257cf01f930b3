package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/tcruz/budgetbuddy/internal/domain"
)

// Store implements domain.BlobStore on a single SQLite table keyed by
// (user_id, key). Any of a file, a row, or a remote call can satisfy the
// blob-store contract; this is the durable default.
type Store struct {
	db *sql.DB
}

// NewStore opens (creating if needed) the SQLite database at dbPath and
// runs schema migrations.
func NewStore(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}

// Load retrieves the blob stored under (userID, key).
// A missing blob returns (nil, nil).
func (s *Store) Load(ctx context.Context, userID, key string) ([]byte, error) {
	query := `
		SELECT data
		FROM user_blobs
		WHERE user_id = ? AND key = ?
	`

	var blob []byte
	err := s.db.QueryRowContext(ctx, query, userID, key).Scan(&blob)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load blob %s/%s: %w", userID, key, err)
	}

	return blob, nil
}

// Save stores the blob under (userID, key), replacing any previous value
func (s *Store) Save(ctx context.Context, userID, key string, blob []byte) error {
	query := `
		INSERT INTO user_blobs (user_id, key, data, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, key) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, userID, key, blob)
	if err != nil {
		return fmt.Errorf("failed to save blob %s/%s: %w", userID, key, err)
	}

	return nil
}

// Interface guard
var _ domain.BlobStore = (*Store)(nil)
