package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID               uuid.UUID    `json:"id"`
	PostID           uuid.UUID    `json:"post_id"`
	AuthorID         uuid.UUID    `json:"author_id"`
	Title            string       `json:"title"`
	Description      string       `json:"description"`
	Options          []PollOption `json:"options"`
	TotalVotes       int64        `json:"total_votes"`
	IsMultipleChoice bool         `json:"is_multiple_choice"`
	EndDate          *time.Time   `json:"end_date,omitempty"`
	Links            Links        `json:"links"`
	IsActive         bool         `json:"is_active"`
	CreatedAt        time.Time    `json:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at"`
}

// PollOption ids are positional tokens assigned once at creation.
type PollOption struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	VoteCount int64  `json:"vote_count"`
}

// PollVote is a ballot. Ballots are final once cast.
type PollVote struct {
	PollID    uuid.UUID `json:"poll_id"`
	UserID    uuid.UUID `json:"user_id"`
	OptionIDs []string  `json:"option_ids"`
	CreatedAt time.Time `json:"created_at"`
}

func OptionID(position int) string {
	return fmt.Sprintf("option-%d", position)
}

func NewPoll(post *Post, description string, optionTexts []string, multipleChoice bool, endDate *time.Time) *Poll {
	options := make([]PollOption, 0, len(optionTexts))
	for i, text := range optionTexts {
		options = append(options, PollOption{ID: OptionID(i), Text: strings.TrimSpace(text)})
	}
	return &Poll{
		ID:               uuid.New(),
		PostID:           post.ID,
		AuthorID:         post.AuthorID,
		Title:            post.Title,
		Description:      description,
		Options:          options,
		IsMultipleChoice: multipleChoice,
		EndDate:          endDate,
		Links:            post.Links,
		IsActive:         true,
		CreatedAt:        post.CreatedAt,
		UpdatedAt:        post.CreatedAt,
	}
}

// PastEndDate reports whether the poll's end date has been reached at now.
func (p *Poll) PastEndDate(now time.Time) bool {
	return p.EndDate != nil && !p.EndDate.After(now)
}

// OpenAt is the read-side notion of an active poll.
func (p *Poll) OpenAt(now time.Time) bool {
	return p.IsActive && !p.PastEndDate(now)
}

// AcceptsVotes fails with ErrPollClosed once the poll is closed or past its end date.
// The caller persists the closure when the end date is what closed it.
func (p *Poll) AcceptsVotes(now time.Time) error {
	if !p.IsActive {
		return ErrPollClosed
	}
	if p.PastEndDate(now) {
		p.Close(now)
		return ErrPollClosed
	}
	return nil
}

func (p *Poll) Close(at time.Time) {
	p.IsActive = false
	p.UpdatedAt = at
}

// NormalizeBallot collapses repeated ids and checks every selection against the options.
func (p *Poll) NormalizeBallot(optionIDs []string) ([]string, error) {
	if len(optionIDs) == 0 {
		return nil, Invalid("at least one option is required")
	}

	seen := make(map[string]bool, len(optionIDs))
	ballot := make([]string, 0, len(optionIDs))
	var unknown []string
	for _, id := range optionIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		if !p.HasOption(id) {
			unknown = append(unknown, id)
			continue
		}
		ballot = append(ballot, id)
	}
	if len(unknown) > 0 {
		return nil, InvalidOption(unknown)
	}
	if !p.IsMultipleChoice && len(ballot) > 1 {
		return nil, ErrSingleChoice
	}
	return ballot, nil
}

func (p *Poll) HasOption(id string) bool {
	for _, opt := range p.Options {
		if opt.ID == id {
			return true
		}
	}
	return false
}

// Tally counts a validated ballot: one per selected option, one ballot overall.
func (p *Poll) Tally(ballot []string, at time.Time) {
	for _, id := range ballot {
		for i := range p.Options {
			if p.Options[i].ID == id {
				p.Options[i].VoteCount++
			}
		}
	}
	p.TotalVotes++
	p.UpdatedAt = at
}

func (p *Poll) SelectionCount() int64 {
	var n int64
	for _, opt := range p.Options {
		n += opt.VoteCount
	}
	return n
}

// PollTally is a poll's counters recomputed from its ballots.
type PollTally struct {
	Ballots int64
	Options map[string]int64
}

func TallyBallots(votes []*PollVote) PollTally {
	tally := PollTally{Options: map[string]int64{}}
	for _, v := range votes {
		tally.Ballots++
		for _, id := range v.OptionIDs {
			tally.Options[id]++
		}
	}
	return tally
}

func (t PollTally) Matches(p *Poll) bool {
	if t.Ballots != p.TotalVotes {
		return false
	}
	for _, opt := range p.Options {
		if t.Options[opt.ID] != opt.VoteCount {
			return false
		}
	}
	return true
}
