// Package store is the SQLite repository behind the reference-data admin
// tool. It owns persistence only: all business validation happens in the
// validate package before anything lands here.
package store

import (
	"database/sql"
	"errors"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

// ErrNotFound is returned when a record with the requested ID does not
// exist.
var ErrNotFound = errors.New("record not found")

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Nullable column helpers. Decimals are stored as TEXT to keep exact
// precision through the round trip.

func decToDB(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return d.String()
}

func decFromDB(ns sql.NullString) (*decimal.Decimal, error) {
	if !ns.Valid {
		return nil, nil
	}
	d, err := decimal.NewFromString(ns.String)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func timeToDB(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func timeFromDB(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}
