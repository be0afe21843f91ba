// Package storetest opens migrated stores for tests.
package storetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
)

// NewSQLite returns a migrated SQLite store in a temporary directory.
func NewSQLite(t testing.TB) *sqlstore.Store {
	t.Helper()

	ctx := context.Background()
	store, err := sqlstore.Open(ctx, sqlstore.SQLite.Name, filepath.Join(t.TempDir(), "manifesto.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.Migrate(ctx)
	require.NoError(t, err)
	return store
}

// NewPostgres starts a PostgreSQL container and returns a migrated store on it.
// Callers skip it under -short.
func NewPostgres(t testing.TB) *sqlstore.Store {
	t.Helper()

	ctx := context.Background()
	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(pgContainer); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	store, err := sqlstore.Open(ctx, sqlstore.Postgres.Name, connStr)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	_, err = store.Migrate(ctx)
	require.NoError(t, err)
	return store
}
