// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package history records evaluated expressions in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/zeebo/errs"
)

var Error = errs.Class("history")

type Entry struct {
	ID          int64
	Input       string // as typed
	Description string // canonical form of the parsed expression
	Value       float64
	Unit        string // result unit symbol, "" if dimensionless
	CreatedAt   time.Time
}

type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS evaluations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	input TEXT NOT NULL,
	description TEXT NOT NULL,
	value REAL NOT NULL,
	unit TEXT NOT NULL DEFAULT '',
	created_at DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_created_at ON evaluations(created_at);
`

// Open creates the database file and its directory if needed.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to create data directory: %w", err))
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, Error.Wrap(fmt.Errorf("failed to open database: %w", err))
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, Error.Wrap(fmt.Errorf("failed to create schema: %w", err))
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return Error.Wrap(s.db.Close())
}

// Save stores e and returns its id. A zero CreatedAt is set to now.
func (s *Store) Save(ctx context.Context, e Entry) (int64, error) {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	query := `
	INSERT INTO evaluations (input, description, value, unit, created_at)
	VALUES (?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query, e.Input, e.Description, e.Value, e.Unit, e.CreatedAt.UTC())
	if err != nil {
		return 0, Error.Wrap(err)
	}

	id, err := result.LastInsertId()
	return id, Error.Wrap(err)
}

// Recent returns up to n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, nil
	}

	query := `
	SELECT id, input, description, value, unit, created_at
	FROM evaluations
	ORDER BY created_at DESC, id DESC
	LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Input, &e.Description, &e.Value, &e.Unit, &e.CreatedAt); err != nil {
			return nil, Error.Wrap(err)
		}
		entries = append(entries, e)
	}

	return entries, Error.Wrap(rows.Err())
}
