package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/adapters/repository/sqlstore"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"github.com/vncsmyrnk/manifesto/internal/core/services"
	"github.com/vncsmyrnk/manifesto/internal/storetest"
	"go.uber.org/zap/zaptest"
)

var start = time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type fixture struct {
	store     *sqlstore.Store
	clock     *testClock
	composer  ports.ComposerService
	debates   ports.DebateService
	polls     ports.PollService
	petitions ports.PetitionService
	feed      ports.FeedService
	users     ports.UserService
	audit     ports.AuditService
	gov       ports.GovernmentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := storetest.NewSQLite(t)
	clock := &testClock{now: start}
	opts := []services.Option{services.WithClock(clock.Now), services.WithLogger(zaptest.NewLogger(t))}

	return &fixture{
		store:     store,
		clock:     clock,
		composer:  services.NewComposerService(store, opts...),
		debates:   services.NewDebateService(store, nil, opts...),
		polls:     services.NewPollService(store, nil, opts...),
		petitions: services.NewPetitionService(store, nil, opts...),
		feed:      services.NewFeedService(store, nil, opts...),
		users:     services.NewUserService(store, opts...),
		audit:     services.NewAuditService(store, opts...),
		gov:       services.NewGovernmentService(store, opts...),
	}
}

func (f *fixture) newDebate(t *testing.T) uuid.UUID {
	t.Helper()
	created, err := f.composer.CreateDebate(context.Background(), ports.CreateDebateInput{
		AuthorID:    uuid.New(),
		Title:       "Should the city build more bike lanes?",
		Description: "Discuss.",
		Topic:       "Transit",
	})
	require.NoError(t, err)
	return created.EntityID
}

func (f *fixture) newPoll(t *testing.T, multiple bool, endDate *time.Time, options ...string) uuid.UUID {
	t.Helper()
	created, err := f.composer.CreatePoll(context.Background(), ports.CreatePollInput{
		AuthorID:         uuid.New(),
		Title:            "Budget priorities",
		Options:          options,
		IsMultipleChoice: multiple,
		EndDate:          endDate,
	})
	require.NoError(t, err)
	return created.EntityID
}

func (f *fixture) newPetition(t *testing.T, goal int64, deadline time.Time) uuid.UUID {
	t.Helper()
	created, err := f.composer.CreatePetition(context.Background(), ports.CreatePetitionInput{
		AuthorID:       uuid.New(),
		Title:          "Keep the library open on Sundays",
		Goal:           goal,
		TargetDeadline: deadline,
	})
	require.NoError(t, err)
	return created.EntityID
}

func (f *fixture) debate(t *testing.T, id uuid.UUID) *domain.Debate {
	t.Helper()
	d, err := f.store.Repositories().Debates.GetByID(context.Background(), id)
	require.NoError(t, err)
	return d
}

func (f *fixture) poll(t *testing.T, id uuid.UUID) *domain.Poll {
	t.Helper()
	p, err := f.store.Repositories().Polls.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) petition(t *testing.T, id uuid.UUID) *domain.Petition {
	t.Helper()
	p, err := f.store.Repositories().Petitions.GetByID(context.Background(), id)
	require.NoError(t, err)
	return p
}

func (f *fixture) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, f.store.DB().QueryRow(query, args...).Scan(&n))
	return n
}
