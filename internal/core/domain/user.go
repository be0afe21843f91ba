package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthorSummary is the denormalized author snapshot attached to listed entities.
// It may lag behind the user record.
type AuthorSummary struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	AvatarURL string    `json:"avatar_url,omitempty"`
}

func (u *User) Summary() AuthorSummary {
	return AuthorSummary{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL}
}
