package sqlstore

import (
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Dialect carries what differs between the supported SQL engines. Statements are
// written once with $N placeholders, numbered in order of first appearance.
type Dialect struct {
	Name   string
	driver string
	// forUpdate is appended to row reads that must hold a lock for the transaction.
	// SQLite locks the whole database when the transaction begins.
	forUpdate       string
	uniqueViolation func(error) bool
}

var (
	Postgres = Dialect{
		Name:            "postgres",
		driver:          "postgres",
		forUpdate:       " FOR UPDATE",
		uniqueViolation: isPostgresUniqueViolation,
	}
	SQLite = Dialect{
		Name:            "sqlite",
		driver:          "sqlite3",
		uniqueViolation: isSQLiteUniqueViolation,
	}
)

func DialectFor(name string) (Dialect, error) {
	switch name {
	case Postgres.Name:
		return Postgres, nil
	case SQLite.Name, "sqlite3":
		return SQLite, nil
	}
	return Dialect{}, fmt.Errorf("unsupported store driver %q", name)
}

func (d Dialect) locking(query string) string {
	return query + d.forUpdate
}

func isPostgresUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}

func isSQLiteUniqueViolation(err error) bool {
	var liteErr sqlite3.Error
	if !errors.As(err, &liteErr) {
		return false
	}
	return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique || liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
