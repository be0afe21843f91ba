package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

func TestReactChangesBucketsInOneStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newDebate(t)
	user := uuid.New()

	outcome, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: user, Reaction: domain.ReactionAgree})
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionOutcome{Kind: domain.OutcomeCreated, To: domain.ReactionAgree}, *outcome)

	f.clock.Advance(time.Minute)
	outcome, err = f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: user, Reaction: domain.ReactionDisagree})
	require.NoError(t, err)
	assert.Equal(t, domain.ReactionOutcome{Kind: domain.OutcomeChanged, From: domain.ReactionAgree, To: domain.ReactionDisagree}, *outcome)

	debate := f.debate(t, id)
	assert.Equal(t, int64(0), debate.AgreeCount)
	assert.Equal(t, int64(1), debate.DisagreeCount)
	assert.Equal(t, int64(0), debate.NeutralCount)
	assert.True(t, start.Add(time.Minute).Equal(debate.UpdatedAt))

	reaction, err := f.store.Repositories().Debates.GetReaction(ctx, id, user)
	require.NoError(t, err)
	require.NotNil(t, reaction)
	assert.Equal(t, domain.ReactionDisagree, reaction.Reaction)
	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM debate_reactions WHERE debate_id = ?`, id.String()))
}

func TestReactSameReactionIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newDebate(t)
	user := uuid.New()

	for i := 0; i < 3; i++ {
		_, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: user, Reaction: domain.ReactionNeutral})
		require.NoError(t, err)
	}

	outcome, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: user, Reaction: domain.ReactionNeutral})
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeUnchanged, outcome.Kind)

	debate := f.debate(t, id)
	assert.Equal(t, int64(1), debate.NeutralCount)
	assert.Equal(t, int64(1), debate.TotalReactions())
}

func TestReactRejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newDebate(t)

	t.Run("unknown debate", func(t *testing.T) {
		_, err := f.debates.React(ctx, ports.ReactInput{DebateID: uuid.New(), UserID: uuid.New(), Reaction: domain.ReactionAgree})
		assert.ErrorIs(t, err, domain.ErrDebateNotFound)
		assert.ErrorIs(t, err, domain.ErrEntityNotFound)
	})

	t.Run("invalid reaction", func(t *testing.T) {
		_, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: uuid.New(), Reaction: "love"})
		assert.ErrorIs(t, err, domain.ErrInvalidReaction)
	})

	t.Run("archived debate", func(t *testing.T) {
		require.NoError(t, f.debates.Archive(ctx, id))

		_, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: uuid.New(), Reaction: domain.ReactionAgree})
		assert.ErrorIs(t, err, domain.ErrDebateArchived)
		assert.Zero(t, f.debate(t, id).TotalReactions())
	})

	t.Run("archive unknown debate", func(t *testing.T) {
		assert.ErrorIs(t, f.debates.Archive(ctx, uuid.New()), domain.ErrDebateNotFound)
	})
}

func TestConcurrentReactionsKeepCountersInStep(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newDebate(t)

	const users = 20
	reactions := []domain.Reaction{domain.ReactionAgree, domain.ReactionDisagree, domain.ReactionNeutral}

	var wg sync.WaitGroup
	errs := make(chan error, users*2)
	for i := 0; i < users; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			user := uuid.New()
			for _, r := range []domain.Reaction{reactions[i%3], reactions[(i+1)%3]} {
				if _, err := f.debates.React(ctx, ports.ReactInput{DebateID: id, UserID: user, Reaction: r}); err != nil {
					errs <- err
				}
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("unexpected error: %v", err)
	}

	debate := f.debate(t, id)
	assert.Equal(t, int64(users), debate.TotalReactions())

	drifts, err := f.audit.AuditAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, drifts)
}

func TestListDebates(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	project := uuid.New()

	author := &domain.User{Email: "ana@example.org", Name: "Ana"}
	_, err := f.users.Import(ctx, []*domain.User{author})
	require.NoError(t, err)

	transit, err := f.composer.CreateDebate(ctx, ports.CreateDebateInput{AuthorID: author.ID, Title: "Trams", Topic: "Public  Transit"})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	housing, err := f.composer.CreateDebate(ctx, ports.CreateDebateInput{
		AuthorID: uuid.New(),
		Title:    "Rent caps",
		Topic:    "Housing",
		Links:    domain.Links{ProjectID: &project},
	})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	archived, err := f.composer.CreateDebate(ctx, ports.CreateDebateInput{AuthorID: author.ID, Title: "Old", Topic: "Housing"})
	require.NoError(t, err)
	require.NoError(t, f.debates.Archive(ctx, archived.EntityID))

	t.Run("newest first without archived", func(t *testing.T) {
		views, err := f.debates.List(ctx, ports.DebateFilter{})
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, housing.EntityID, views[0].Entity.ID)
		assert.Equal(t, transit.EntityID, views[1].Entity.ID)
	})

	t.Run("topic is matched case and space insensitively", func(t *testing.T) {
		views, err := f.debates.List(ctx, ports.DebateFilter{TopicKey: " public transit "})
		require.NoError(t, err)
		require.Len(t, views, 1)

		view := views[0]
		assert.Equal(t, transit.EntityID, view.Entity.ID)
		require.NotNil(t, view.Post)
		assert.Equal(t, transit.PostID, view.Post.ID)
		require.NotNil(t, view.Author)
		assert.Equal(t, "Ana", view.Author.Name)
	})

	t.Run("by project", func(t *testing.T) {
		views, err := f.debates.List(ctx, ports.DebateFilter{ProjectID: &project})
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, housing.EntityID, views[0].Entity.ID)
		assert.Nil(t, views[0].Author, "unknown authors are left empty")
	})

	t.Run("limit", func(t *testing.T) {
		views, err := f.debates.List(ctx, ports.DebateFilter{Limit: 1})
		require.NoError(t, err)
		assert.Len(t, views, 1)
	})

	t.Run("get archived by id", func(t *testing.T) {
		view, err := f.debates.Get(ctx, archived.EntityID)
		require.NoError(t, err)
		assert.True(t, view.Entity.IsArchived)
	})
}
