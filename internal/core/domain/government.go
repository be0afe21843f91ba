package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Government records are reference data imported by operators. Posts, debates,
// polls and petitions point at them through Links.

type DepartmentType string

const (
	DepartmentNational   DepartmentType = "national"
	DepartmentProvincial DepartmentType = "provincial"
	DepartmentMunicipal  DepartmentType = "municipal"
)

func (t DepartmentType) Valid() bool {
	switch t {
	case DepartmentNational, DepartmentProvincial, DepartmentMunicipal:
		return true
	}
	return false
}

type ProjectStage string

const (
	StagePlanning   ProjectStage = "planning"
	StageTender     ProjectStage = "tender"
	StageInProgress ProjectStage = "in_progress"
	StageCompleted  ProjectStage = "completed"
	StageOnHold     ProjectStage = "on_hold"
	StageCancelled  ProjectStage = "cancelled"
)

func (s ProjectStage) Valid() bool {
	switch s {
	case StagePlanning, StageTender, StageInProgress, StageCompleted, StageOnHold, StageCancelled:
		return true
	}
	return false
}

type ParliamentItemType string

const (
	ParliamentBill    ParliamentItemType = "bill"
	ParliamentSession ParliamentItemType = "session"
	ParliamentVote    ParliamentItemType = "vote"
	ParliamentDebate  ParliamentItemType = "debate"
)

func (t ParliamentItemType) Valid() bool {
	switch t {
	case ParliamentBill, ParliamentSession, ParliamentVote, ParliamentDebate:
		return true
	}
	return false
}

type ParliamentStatus string

const (
	ParliamentDraft    ParliamentStatus = "draft"
	ParliamentTabled   ParliamentStatus = "tabled"
	ParliamentDebating ParliamentStatus = "debating"
	ParliamentVoting   ParliamentStatus = "voting"
	ParliamentPassed   ParliamentStatus = "passed"
	ParliamentRejected ParliamentStatus = "rejected"
)

func (s ParliamentStatus) Valid() bool {
	switch s {
	case ParliamentDraft, ParliamentTabled, ParliamentDebating, ParliamentVoting, ParliamentPassed, ParliamentRejected:
		return true
	}
	return false
}

type PromiseStatus string

const (
	PromisePending    PromiseStatus = "pending"
	PromiseInProgress PromiseStatus = "in_progress"
	PromiseFulfilled  PromiseStatus = "fulfilled"
	PromiseBroken     PromiseStatus = "broken"
)

func (s PromiseStatus) Valid() bool {
	switch s {
	case PromisePending, PromiseInProgress, PromiseFulfilled, PromiseBroken:
		return true
	}
	return false
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

func (s Severity) Valid() bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}

type MemberVote string

const (
	VoteFor     MemberVote = "for"
	VoteAgainst MemberVote = "against"
	VoteAbstain MemberVote = "abstain"
	VoteAbsent  MemberVote = "absent"
)

func (v MemberVote) Valid() bool {
	switch v {
	case VoteFor, VoteAgainst, VoteAbstain, VoteAbsent:
		return true
	}
	return false
}

type Leader struct {
	ID             uuid.UUID    `json:"id"`
	Name           string       `json:"name"`
	Position       string       `json:"position"`
	Party          string       `json:"party"`
	Bio            string       `json:"bio"`
	PhotoURL       string       `json:"photo_url,omitempty"`
	DepartmentIDs  []uuid.UUID  `json:"department_ids"`
	ProjectIDs     []uuid.UUID  `json:"project_ids"`
	Promises       []Promise    `json:"promises"`
	Scandals       []PublicNote `json:"scandals"`
	Achievements   []PublicNote `json:"achievements"`
	ApprovalRating float64      `json:"approval_rating"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

type Promise struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Status      PromiseStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	FulfilledAt *time.Time    `json:"fulfilled_at,omitempty"`
}

// PublicNote is a reported scandal or achievement on a leader's record.
type PublicNote struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Verified    bool      `json:"verified"`
	At          time.Time `json:"at"`
}

type Department struct {
	ID                uuid.UUID      `json:"id"`
	Name              string         `json:"name"`
	Type              DepartmentType `json:"type"`
	Description       string         `json:"description"`
	Budget            int64          `json:"budget"`
	Expenditure       int64          `json:"expenditure"`
	LeaderIDs         []uuid.UUID    `json:"leader_ids"`
	ProjectIDs        []uuid.UUID    `json:"project_ids"`
	KeyInitiatives    []Initiative   `json:"key_initiatives"`
	Issues            []Issue        `json:"issues"`
	PerformanceRating float64        `json:"performance_rating"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
}

type Initiative struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

type Issue struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
	ReportedAt  time.Time `json:"reported_at"`
}

type Project struct {
	ID                uuid.UUID    `json:"id"`
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	Category          string       `json:"category"`
	Stage             ProjectStage `json:"stage"`
	BudgetAllocated   int64        `json:"budget_allocated"`
	BudgetSpent       int64        `json:"budget_spent"`
	DepartmentID      uuid.UUID    `json:"department_id"`
	LeaderIDs         []uuid.UUID  `json:"leader_ids"`
	Company           string       `json:"company,omitempty"`
	Location          *Location    `json:"location,omitempty"`
	StartDate         time.Time    `json:"start_date"`
	EndDate           *time.Time   `json:"end_date,omitempty"`
	TenderDeadline    *time.Time   `json:"tender_deadline,omitempty"`
	JobsCreated       int64        `json:"jobs_created"`
	Milestones        []Milestone  `json:"milestones"`
	CitizenMediaCount int64        `json:"citizen_media_count"`
	CreatedAt         time.Time    `json:"created_at"`
	UpdatedAt         time.Time    `json:"updated_at"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

type ParliamentItem struct {
	ID              uuid.UUID          `json:"id"`
	Type            ParliamentItemType `json:"type"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	Status          ParliamentStatus   `json:"status"`
	BillNumber      string             `json:"bill_number,omitempty"`
	SessionDate     time.Time          `json:"session_date"`
	Attendance      *Attendance        `json:"attendance,omitempty"`
	VotingRecords   []VotingRecord     `json:"voting_records"`
	LinkedDebateIDs []uuid.UUID        `json:"linked_debate_ids"`
	LinkedPollIDs   []uuid.UUID        `json:"linked_poll_ids"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

type Attendance struct {
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Total   int `json:"total"`
}

type VotingRecord struct {
	LeaderID uuid.UUID  `json:"leader_id"`
	Vote     MemberVote `json:"vote"`
}

// LeaderDetail is a leader with the departments and projects it references.
// Dangling references are dropped.
type LeaderDetail struct {
	*Leader
	Departments []*Department `json:"departments"`
	Projects    []*Project    `json:"projects"`
}

type DepartmentDetail struct {
	*Department
	Leaders  []*Leader  `json:"leaders"`
	Projects []*Project `json:"projects"`
}

// ProjectDetail carries the responsible department, nil when it is unknown.
type ProjectDetail struct {
	*Project
	Department *Department `json:"department"`
	Leaders    []*Leader   `json:"leaders"`
}

func (l *Leader) Validate() error {
	switch {
	case strings.TrimSpace(l.Name) == "":
		return Invalid("leader needs a name")
	case strings.TrimSpace(l.Position) == "":
		return Invalid("leader %s needs a position", l.Name)
	case !validRating(l.ApprovalRating):
		return Invalid("leader %s approval rating must be between 0 and 100", l.Name)
	}
	for _, p := range l.Promises {
		if !p.Status.Valid() {
			return Invalid("leader %s promise %q has unknown status %q", l.Name, p.Title, p.Status)
		}
	}
	return nil
}

func (d *Department) Validate() error {
	switch {
	case strings.TrimSpace(d.Name) == "":
		return Invalid("department needs a name")
	case !d.Type.Valid():
		return Invalid("department %s has unknown type %q", d.Name, d.Type)
	case d.Budget < 0 || d.Expenditure < 0:
		return Invalid("department %s budget and expenditure cannot be negative", d.Name)
	case !validRating(d.PerformanceRating):
		return Invalid("department %s performance rating must be between 0 and 100", d.Name)
	}
	for _, issue := range d.Issues {
		if !issue.Severity.Valid() {
			return Invalid("department %s issue %q has unknown severity %q", d.Name, issue.Title, issue.Severity)
		}
	}
	return nil
}

func (p *Project) Validate() error {
	switch {
	case strings.TrimSpace(p.Title) == "":
		return Invalid("project needs a title")
	case !p.Stage.Valid():
		return Invalid("project %s has unknown stage %q", p.Title, p.Stage)
	case p.DepartmentID == uuid.Nil:
		return Invalid("project %s needs a responsible department", p.Title)
	case p.BudgetAllocated < 0 || p.BudgetSpent < 0 || p.JobsCreated < 0:
		return Invalid("project %s figures cannot be negative", p.Title)
	case p.EndDate != nil && p.EndDate.Before(p.StartDate):
		return Invalid("project %s ends before it starts", p.Title)
	}
	return nil
}

func (i *ParliamentItem) Validate() error {
	switch {
	case strings.TrimSpace(i.Title) == "":
		return Invalid("parliament item needs a title")
	case !i.Type.Valid():
		return Invalid("parliament item %s has unknown type %q", i.Title, i.Type)
	case !i.Status.Valid():
		return Invalid("parliament item %s has unknown status %q", i.Title, i.Status)
	case i.SessionDate.IsZero():
		return Invalid("parliament item %s needs a session date", i.Title)
	}
	for _, r := range i.VotingRecords {
		if !r.Vote.Valid() {
			return Invalid("parliament item %s has unknown vote %q", i.Title, r.Vote)
		}
	}
	return nil
}

func validRating(r float64) bool {
	return r >= 0 && r <= 100
}
