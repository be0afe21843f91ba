package domain

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostTypeDebate   PostType = "debate"
	PostTypePoll     PostType = "poll"
	PostTypePetition PostType = "petition"
	PostTypeMedia    PostType = "media"
	PostTypeUpdate   PostType = "update"
)

func (t PostType) Valid() bool {
	switch t {
	case PostTypeDebate, PostTypePoll, PostTypePetition, PostTypeMedia, PostTypeUpdate:
		return true
	}
	return false
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// Post is the feed entry every debate, poll and petition hangs off.
type Post struct {
	ID                 uuid.UUID          `json:"id"`
	AuthorID           uuid.UUID          `json:"author_id"`
	Type               PostType           `json:"type"`
	Title              string             `json:"title"`
	Body               string             `json:"body"`
	Tags               []string           `json:"tags"`
	MediaURLs          []string           `json:"media_urls"`
	Links              Links              `json:"links"`
	Likes              int64              `json:"likes"`
	Comments           int64              `json:"comments"`
	Shares             int64              `json:"shares"`
	VerificationStatus VerificationStatus `json:"verification_status"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// FeedPost is a post with its author snapshot. Author is nil when the author
// is unknown to the directory.
type FeedPost struct {
	*Post
	Author *AuthorSummary `json:"author"`
}

// Links points an entity at the civic records it discusses. Unused links are nil.
type Links struct {
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	LeaderID     *uuid.UUID `json:"leader_id,omitempty"`
	DepartmentID *uuid.UUID `json:"department_id,omitempty"`
	PolicyID     *uuid.UUID `json:"policy_id,omitempty"`
}

func NewPost(authorID uuid.UUID, kind PostType, title, body string, tags []string, links Links, now time.Time) *Post {
	if tags == nil {
		tags = []string{}
	}
	return &Post{
		ID:                 uuid.New(),
		AuthorID:           authorID,
		Type:               kind,
		Title:              title,
		Body:               body,
		Tags:               tags,
		MediaURLs:          []string{},
		Links:              links,
		VerificationStatus: VerificationPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}
