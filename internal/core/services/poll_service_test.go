package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

func optionCounts(p *domain.Poll) map[string]int64 {
	counts := make(map[string]int64, len(p.Options))
	for _, opt := range p.Options {
		counts[opt.ID] = opt.VoteCount
	}
	return counts
}

func TestVoteSingleChoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPoll(t, false, nil, "Yes", "No")

	_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-0"}})
	require.NoError(t, err)
	poll, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-1"}})
	require.NoError(t, err)

	assert.Equal(t, int64(2), poll.TotalVotes)
	assert.Equal(t, map[string]int64{"option-0": 1, "option-1": 1}, optionCounts(poll))

	stored := f.poll(t, id)
	assert.Equal(t, int64(2), stored.TotalVotes)
	assert.Equal(t, optionCounts(poll), optionCounts(stored))
}

func TestVoteTwiceKeepsFirstBallot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPoll(t, false, nil, "Yes", "No")
	user := uuid.New()

	_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: user, OptionIDs: []string{"option-0"}})
	require.NoError(t, err)

	_, err = f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: user, OptionIDs: []string{"option-1"}})
	assert.ErrorIs(t, err, domain.ErrAlreadyVoted)

	poll := f.poll(t, id)
	assert.Equal(t, int64(1), poll.TotalVotes)
	assert.Equal(t, map[string]int64{"option-0": 1, "option-1": 0}, optionCounts(poll))

	vote, err := f.polls.MyVote(ctx, id, user)
	require.NoError(t, err)
	assert.Equal(t, []string{"option-0"}, vote.OptionIDs)
}

func TestVoteOnClosedPoll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPoll(t, false, nil, "Yes", "No")

	_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-1"}})
	require.NoError(t, err)
	require.NoError(t, f.polls.Close(ctx, id))
	require.NoError(t, f.polls.Close(ctx, id), "closing twice is a no-op")

	_, err = f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-0"}})
	assert.ErrorIs(t, err, domain.ErrPollClosed)

	poll := f.poll(t, id)
	assert.False(t, poll.IsActive)
	assert.Equal(t, int64(1), poll.TotalVotes)
	assert.Equal(t, map[string]int64{"option-0": 0, "option-1": 1}, optionCounts(poll))
	assert.Equal(t, 1, f.count(t, `SELECT COUNT(*) FROM poll_votes WHERE poll_id = ?`, id.String()))
}

func TestVoteAfterEndDateClosesPoll(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	end := start.Add(time.Hour)
	id := f.newPoll(t, false, &end, "Yes", "No")

	f.clock.Advance(time.Hour)
	_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-0"}})
	assert.ErrorIs(t, err, domain.ErrPollClosed)

	poll := f.poll(t, id)
	assert.False(t, poll.IsActive, "the closure is committed with the rejection")
	assert.Zero(t, poll.TotalVotes)
	assert.True(t, start.Add(time.Hour).Equal(poll.UpdatedAt))
}

func TestVoteMultipleChoice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := f.newPoll(t, true, nil, "Parks", "Roads", "Schools")

	_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-0", "option-2", "option-0"}})
	require.NoError(t, err)
	poll, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{"option-2"}})
	require.NoError(t, err)

	assert.Equal(t, int64(2), poll.TotalVotes)
	assert.Equal(t, map[string]int64{"option-0": 1, "option-1": 0, "option-2": 2}, optionCounts(poll))
	assert.Equal(t, int64(3), poll.SelectionCount(), "selections may outnumber ballots")
}

func TestVoteRejectsBadBallots(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	single := f.newPoll(t, false, nil, "Yes", "No")

	t.Run("unknown option", func(t *testing.T) {
		_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: single, UserID: uuid.New(), OptionIDs: []string{"option-0", "option-9"}})
		require.ErrorIs(t, err, domain.ErrInvalidOption)

		var invalid *domain.InvalidOptionError
		require.True(t, errors.As(err, &invalid))
		assert.Equal(t, []string{"option-9"}, invalid.IDs)
	})

	t.Run("two options on single choice", func(t *testing.T) {
		_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: single, UserID: uuid.New(), OptionIDs: []string{"option-0", "option-1"}})
		assert.ErrorIs(t, err, domain.ErrSingleChoice)
	})

	t.Run("empty ballot", func(t *testing.T) {
		_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: single, UserID: uuid.New()})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("unknown poll", func(t *testing.T) {
		_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: uuid.New(), UserID: uuid.New(), OptionIDs: []string{"option-0"}})
		assert.ErrorIs(t, err, domain.ErrPollNotFound)
	})

	poll := f.poll(t, single)
	assert.Zero(t, poll.TotalVotes)
	assert.Zero(t, poll.SelectionCount())
}

func TestConcurrentVotes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	t.Run("distinct users are all counted", func(t *testing.T) {
		id := f.newPoll(t, false, nil, "Yes", "No")
		const voters = 25

		var wg sync.WaitGroup
		for i := 0; i < voters; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: uuid.New(), OptionIDs: []string{domain.OptionID(i % 2)}})
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		poll := f.poll(t, id)
		assert.Equal(t, int64(voters), poll.TotalVotes)
		assert.Equal(t, map[string]int64{"option-0": 13, "option-1": 12}, optionCounts(poll))
	})

	t.Run("one user wins exactly once", func(t *testing.T) {
		id := f.newPoll(t, false, nil, "Yes", "No")
		user := uuid.New()
		const attempts = 10

		var succeeded, rejected atomic.Int32
		var wg sync.WaitGroup
		for i := 0; i < attempts; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := f.polls.Vote(ctx, ports.VoteInput{PollID: id, UserID: user, OptionIDs: []string{"option-0"}})
				switch {
				case err == nil:
					succeeded.Add(1)
				case errors.Is(err, domain.ErrAlreadyVoted):
					rejected.Add(1)
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()

		assert.Equal(t, int32(1), succeeded.Load())
		assert.Equal(t, int32(attempts-1), rejected.Load())
		assert.Equal(t, int64(1), f.poll(t, id).TotalVotes)
	})
}

func TestMyVoteWithoutBallot(t *testing.T) {
	f := newFixture(t)
	id := f.newPoll(t, false, nil, "Yes", "No")

	_, err := f.polls.MyVote(context.Background(), id, uuid.New())
	assert.ErrorIs(t, err, domain.ErrVoteNotFound)

	_, err = f.polls.MyVote(context.Background(), uuid.New(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrPollNotFound)
}

func TestListPolls(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	soon := start.Add(time.Hour)

	open := f.newPoll(t, false, nil, "Yes", "No")
	f.clock.Advance(time.Second)
	ending := f.newPoll(t, false, &soon, "Yes", "No")
	f.clock.Advance(time.Second)
	closed := f.newPoll(t, false, nil, "Yes", "No")
	require.NoError(t, f.polls.Close(ctx, closed))

	ids := func(views []*domain.PollView) []uuid.UUID {
		var out []uuid.UUID
		for _, v := range views {
			out = append(out, v.Entity.ID)
		}
		return out
	}

	views, err := f.polls.List(ctx, ports.PollFilter{})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{closed, ending, open}, ids(views))

	views, err = f.polls.List(ctx, ports.PollFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{ending, open}, ids(views))

	f.clock.Advance(2 * time.Hour)
	views, err = f.polls.List(ctx, ports.PollFilter{ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{open}, ids(views), "polls past their end date are not listed as active")

	view, err := f.polls.Get(ctx, ending)
	require.NoError(t, err)
	require.NotNil(t, view.Post)
	assert.Equal(t, domain.PostTypePoll, view.Post.Type)
}
