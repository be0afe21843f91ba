package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

func TestImportUsers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	known := uuid.New()

	n, err := f.users.Import(ctx, []*domain.User{
		{ID: known, Email: "bea@example.org", Name: "Bea"},
		{Email: "  Carl@Example.org ", Name: "Carl"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	bea, err := f.users.GetByID(ctx, known)
	require.NoError(t, err)
	require.NotNil(t, bea)
	assert.Equal(t, "Bea", bea.Name)

	// Re-importing by email updates the same user.
	renamed := &domain.User{Email: "carl@example.org", Name: "Carl R."}
	_, err = f.users.Import(ctx, []*domain.User{renamed})
	require.NoError(t, err)

	carl, err := f.users.GetByID(ctx, renamed.ID)
	require.NoError(t, err)
	require.NotNil(t, carl)
	assert.Equal(t, "Carl R.", carl.Name)
	assert.Equal(t, "carl@example.org", carl.Email)
	assert.Equal(t, 2, f.count(t, `SELECT COUNT(*) FROM users`))

	missing, err := f.users.GetByID(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = f.users.Import(ctx, []*domain.User{{Email: "nobody@example.org"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestImportRejectsEmailOwnedByAnotherUser(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.users.Import(ctx, []*domain.User{{ID: uuid.New(), Email: "dora@example.org", Name: "Dora"}})
	require.NoError(t, err)

	_, err = f.users.Import(ctx, []*domain.User{{ID: uuid.New(), Email: "Dora@example.org", Name: "Impostor"}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Contains(t, err.Error(), "dora@example.org already belongs to another user")
	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM users`))
}
