package ports

//go:generate mockgen -source=repository_ports.go -destination=mocks/mock_repository_ports.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// ClampLimit applies the listing default and ceiling.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}

type PostFilter struct {
	Limit int
	Type  domain.PostType
}

type DebateFilter struct {
	Limit     int
	TopicKey  string
	ProjectID *uuid.UUID
}

type PollFilter struct {
	Limit      int
	ProjectID  *uuid.UUID
	ActiveOnly bool
	Now        time.Time
}

type PetitionFilter struct {
	Limit     int
	Status    domain.PetitionStatus
	ProjectID *uuid.UUID
}

type LeaderFilter struct {
	Limit    int
	Party    string
	Position string
}

type DepartmentFilter struct {
	Limit int
	Type  domain.DepartmentType
}

type ProjectFilter struct {
	Limit        int
	Stage        domain.ProjectStage
	DepartmentID *uuid.UUID
}

type ParliamentFilter struct {
	Limit  int
	Type   domain.ParliamentItemType
	Status domain.ParliamentStatus
}

type PostRepository interface {
	Insert(ctx context.Context, post *domain.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Post, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Post, error)
	List(ctx context.Context, filter PostFilter) ([]*domain.Post, error)
	IncrementLikes(ctx context.Context, id uuid.UUID, at time.Time) error
}

type DebateRepository interface {
	Insert(ctx context.Context, debate *domain.Debate) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	// GetForUpdate locks the debate row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Debate, error)
	List(ctx context.Context, filter DebateFilter) ([]*domain.Debate, error)
	GetAll(ctx context.Context) ([]*domain.Debate, error)
	UpdateCounters(ctx context.Context, debate *domain.Debate) error
	SetArchived(ctx context.Context, id uuid.UUID, archived bool, at time.Time) error

	// GetReaction returns nil when the user has not reacted.
	GetReaction(ctx context.Context, debateID, userID uuid.UUID) (*domain.DebateReaction, error)
	InsertReaction(ctx context.Context, reaction *domain.DebateReaction) error
	UpdateReaction(ctx context.Context, reaction *domain.DebateReaction) error
	TallyReactions(ctx context.Context, debateID uuid.UUID) (domain.ReactionTally, error)
}

type PollRepository interface {
	Insert(ctx context.Context, poll *domain.Poll) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	// GetForUpdate locks the poll row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Poll, error)
	List(ctx context.Context, filter PollFilter) ([]*domain.Poll, error)
	GetAll(ctx context.Context) ([]*domain.Poll, error)
	UpdateTally(ctx context.Context, poll *domain.Poll) error
	SetActive(ctx context.Context, id uuid.UUID, active bool, at time.Time) error

	// GetVote returns nil when the user has not voted.
	GetVote(ctx context.Context, pollID, userID uuid.UUID) (*domain.PollVote, error)
	InsertVote(ctx context.Context, vote *domain.PollVote) error
	ListVotes(ctx context.Context, pollID uuid.UUID) ([]*domain.PollVote, error)
}

type PetitionRepository interface {
	Insert(ctx context.Context, petition *domain.Petition) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Petition, error)
	// GetForUpdate locks the petition row until the surrounding transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Petition, error)
	List(ctx context.Context, filter PetitionFilter) ([]*domain.Petition, error)
	GetAll(ctx context.Context) ([]*domain.Petition, error)
	UpdateProgress(ctx context.Context, petition *domain.Petition) error

	HasSigned(ctx context.Context, petitionID, userID uuid.UUID) (bool, error)
	InsertSignature(ctx context.Context, signature *domain.PetitionSignature) error
	CountSignatures(ctx context.Context, petitionID uuid.UUID) (int64, error)
}

type UserRepository interface {
	// GetByID returns nil when no such user exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Upsert(ctx context.Context, user *domain.User) error
	AuthorDirectory
}

// GovernmentRepository stores the read-only government reference data.
// The ByIDs lookups leave unknown ids out of the result.
type GovernmentRepository interface {
	UpsertLeader(ctx context.Context, leader *domain.Leader) error
	UpsertDepartment(ctx context.Context, department *domain.Department) error
	UpsertProject(ctx context.Context, project *domain.Project) error
	UpsertParliamentItem(ctx context.Context, item *domain.ParliamentItem) error

	GetLeader(ctx context.Context, id uuid.UUID) (*domain.Leader, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*domain.Department, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error)

	LeadersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Leader, error)
	DepartmentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Department, error)
	ProjectsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Project, error)

	ListLeaders(ctx context.Context, filter LeaderFilter) ([]*domain.Leader, error)
	ListDepartments(ctx context.Context, filter DepartmentFilter) ([]*domain.Department, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	ListParliament(ctx context.Context, filter ParliamentFilter) ([]*domain.ParliamentItem, error)
}

// AuthorDirectory resolves author snapshots in one batch. Unknown ids are absent from the result.
type AuthorDirectory interface {
	Summaries(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]domain.AuthorSummary, error)
}

// Repositories is one consistent set of repositories, bound either to the
// store or to a single transaction.
type Repositories struct {
	Posts      PostRepository
	Debates    DebateRepository
	Polls      PollRepository
	Petitions  PetitionRepository
	Users      UserRepository
	Government GovernmentRepository
}

type UnitOfWork interface {
	Repositories() Repositories
	// WithinTx runs fn in one transaction. It commits when fn returns nil and rolls back otherwise.
	WithinTx(ctx context.Context, fn func(r Repositories) error) error
}
