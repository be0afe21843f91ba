package domain

import "github.com/google/uuid"

// View is a listed entity joined with its feed post and author snapshot.
// Author is nil when the author is unknown to the directory.
type View[T any] struct {
	Entity T              `json:"entity"`
	Post   *Post          `json:"post"`
	Author *AuthorSummary `json:"author"`
}

type (
	DebateView   = View[*Debate]
	PollView     = View[*Poll]
	PetitionView = View[*Petition]
)

// Created is what the composer hands back for a new post and its linked entity.
type Created struct {
	EntityID uuid.UUID `json:"entity_id"`
	PostID   uuid.UUID `json:"post_id"`
}
