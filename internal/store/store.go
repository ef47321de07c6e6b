// Package store handles the SQLite word list library.
package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/verte-zerg/vocard/internal/model"
	"github.com/verte-zerg/vocard/internal/wordlist"

	_ "modernc.org/sqlite" // SQLite driver.
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Store wraps SQLite access for imported word lists. It satisfies
// wordlist.Source.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

var _ wordlist.Source = (*Store)(nil)

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := migrateUp(db); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return New(db), nil
}

// New wraps an already migrated database.
func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func migrateUp(db *sql.DB) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("failed to load migrations: %w", err)
	}
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}
	// m.Close would close db as well; the store keeps using it.
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// SaveList stores pairs under key, replacing any list with the same key.
func (s *Store) SaveList(ctx context.Context, key string, pairs []model.WordPair) (err error) {
	if key == "" {
		return fmt.Errorf("list key is empty")
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM word_pairs WHERE list_key = ?`, key); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx,
		`INSERT INTO word_lists (list_key, imported_at) VALUES (?, ?)
		 ON CONFLICT(list_key) DO UPDATE SET imported_at = excluded.imported_at`,
		key, s.now().UTC().Format(time.RFC3339Nano)); err != nil {
		return err
	}

	if len(pairs) > 0 {
		var stmt *sql.Stmt
		stmt, err = tx.PrepareContext(ctx,
			`INSERT INTO word_pairs (list_key, position, word, meaning) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for i, p := range pairs {
			if _, err = stmt.ExecContext(ctx, key, i, p.Word, p.Meaning); err != nil {
				return err
			}
		}
	}

	err = tx.Commit()
	return err
}

// DeleteList removes a list and its pairs. It reports whether the list existed.
func (s *Store) DeleteList(ctx context.Context, key string) (removed bool, err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM word_pairs WHERE list_key = ?`, key); err != nil {
		return false, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM word_lists WHERE list_key = ?`, key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if err = tx.Commit(); err != nil {
		return false, err
	}
	return n > 0, nil
}

// Keys lists the stored list keys in display order.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT list_key FROM word_lists`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", wordlist.ErrSourceUnavailable, err)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	wordlist.SortKeys(keys)
	return keys, nil
}

// Fetch returns the pairs of a stored list in import order.
func (s *Store) Fetch(ctx context.Context, key string) ([]model.WordPair, error) {
	var exists int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM word_lists WHERE list_key = ?`, key).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: list %q is not in the library", wordlist.ErrSourceUnavailable, key)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT word, meaning FROM word_pairs WHERE list_key = ? ORDER BY position ASC`, key)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var pairs []model.WordPair
	for rows.Next() {
		var p model.WordPair
		if err := rows.Scan(&p.Word, &p.Meaning); err != nil {
			return nil, err
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return pairs, nil
}
