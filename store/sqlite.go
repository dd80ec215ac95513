package store

import (
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const kvSchema = `CREATE TABLE IF NOT EXISTS kv (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
)`

const upsertKV = `INSERT INTO kv (key, value) VALUES (?, ?)
	ON CONFLICT(key) DO UPDATE SET value = excluded.value`

// SQLiteClient stores key-value pairs in a single SQLite table.
type SQLiteClient struct {
	db *sql.DB
}

// NewSQLiteClient opens a SQLite database at the given path.
// If path is ":memory:", uses an in-memory database.
func NewSQLiteClient(path string) (*SQLiteClient, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// an in-memory database only lives as long as its connection
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := db.Exec(kvSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating kv table: %w", err)
	}

	return &SQLiteClient{db: db}, nil
}

func (c *SQLiteClient) Get(key string) (string, bool, error) {
	var value string

	err := c.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("reading %s: %w", key, err)
	}

	return value, true, nil
}

func (c *SQLiteClient) Set(key, value string) error {
	if _, err := c.db.Exec(upsertKV, key, value); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}

	return nil
}

func (c *SQLiteClient) Remove(key string) error {
	if _, err := c.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}

	return nil
}

// Apply writes all the ops in one transaction.
func (c *SQLiteClient) Apply(ops ...Op) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	for _, op := range ops {
		if op.Value == nil {
			_, err = tx.Exec(`DELETE FROM kv WHERE key = ?`, op.Key)
		} else {
			_, err = tx.Exec(upsertKV, op.Key, *op.Value)
		}

		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("applying %s: %w", op.Key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
