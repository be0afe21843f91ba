package cli

import (
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

// governmentSeed holds the government hub sections of a seed file. Records
// reference each other by id, so ids are needed wherever a link is made:
//
//	departments:
//	  - id: 2f6c0d9e-4c1a-4b8e-9a57-1b2c3d4e5f60
//	    name: Transport
//	    type: national
//	    leader_ids: [7a1d...]
//	leaders:
//	  - id: 7a1d...
//	    name: Bruno Lima
//	    position: Minister
//	    party: Blue
//	projects:
//	  - title: Northern railway
//	    stage: in_progress
//	    department_id: 2f6c0d9e-4c1a-4b8e-9a57-1b2c3d4e5f60
//	    start_date: 2025-01-15T00:00:00Z
//	parliament:
//	  - title: Transit bill
//	    type: bill
//	    status: tabled
//	    session_date: 2025-03-01T09:00:00Z
type governmentSeed struct {
	Departments []seedDepartment `yaml:"departments"`
	Leaders     []seedLeader     `yaml:"leaders"`
	Projects    []seedProject    `yaml:"projects"`
	Parliament  []seedParliament `yaml:"parliament"`
}

type seedDepartment struct {
	ID                uuid.UUID           `yaml:"id"`
	Name              string              `yaml:"name"`
	Type              string              `yaml:"type"`
	Description       string              `yaml:"description"`
	Budget            int64               `yaml:"budget"`
	Expenditure       int64               `yaml:"expenditure"`
	LeaderIDs         []uuid.UUID         `yaml:"leader_ids"`
	ProjectIDs        []uuid.UUID         `yaml:"project_ids"`
	KeyInitiatives    []domain.Initiative `yaml:"key_initiatives"`
	Issues            []seedIssue         `yaml:"issues"`
	PerformanceRating float64             `yaml:"performance_rating"`
}

type seedIssue struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Severity    string    `yaml:"severity"`
	ReportedAt  time.Time `yaml:"reported_at"`
}

type seedLeader struct {
	ID             uuid.UUID           `yaml:"id"`
	Name           string              `yaml:"name"`
	Position       string              `yaml:"position"`
	Party          string              `yaml:"party"`
	Bio            string              `yaml:"bio"`
	PhotoURL       string              `yaml:"photo_url"`
	DepartmentIDs  []uuid.UUID         `yaml:"department_ids"`
	ProjectIDs     []uuid.UUID         `yaml:"project_ids"`
	Promises       []seedPromise       `yaml:"promises"`
	Scandals       []domain.PublicNote `yaml:"scandals"`
	Achievements   []domain.PublicNote `yaml:"achievements"`
	ApprovalRating float64             `yaml:"approval_rating"`
}

type seedPromise struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Status      string     `yaml:"status"`
	CreatedAt   time.Time  `yaml:"created_at"`
	FulfilledAt *time.Time `yaml:"fulfilled_at"`
}

type seedProject struct {
	ID                uuid.UUID        `yaml:"id"`
	Title             string           `yaml:"title"`
	Description       string           `yaml:"description"`
	Category          string           `yaml:"category"`
	Stage             string           `yaml:"stage"`
	BudgetAllocated   int64            `yaml:"budget_allocated"`
	BudgetSpent       int64            `yaml:"budget_spent"`
	DepartmentID      uuid.UUID        `yaml:"department_id"`
	LeaderIDs         []uuid.UUID      `yaml:"leader_ids"`
	Company           string           `yaml:"company"`
	Location          *domain.Location `yaml:"location"`
	StartDate         time.Time        `yaml:"start_date"`
	EndDate           *time.Time       `yaml:"end_date"`
	TenderDeadline    *time.Time       `yaml:"tender_deadline"`
	JobsCreated       int64            `yaml:"jobs_created"`
	Milestones        []seedMilestone  `yaml:"milestones"`
	CitizenMediaCount int64            `yaml:"citizen_media_count"`
}

type seedMilestone struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Completed   bool       `yaml:"completed"`
	CompletedAt *time.Time `yaml:"completed_at"`
}

type seedParliament struct {
	ID              uuid.UUID          `yaml:"id"`
	Type            string             `yaml:"type"`
	Title           string             `yaml:"title"`
	Description     string             `yaml:"description"`
	Status          string             `yaml:"status"`
	BillNumber      string             `yaml:"bill_number"`
	SessionDate     time.Time          `yaml:"session_date"`
	Attendance      *domain.Attendance `yaml:"attendance"`
	VotingRecords   []seedVote         `yaml:"voting_records"`
	LinkedDebateIDs []uuid.UUID        `yaml:"linked_debate_ids"`
	LinkedPollIDs   []uuid.UUID        `yaml:"linked_poll_ids"`
}

type seedVote struct {
	LeaderID uuid.UUID `yaml:"leader_id"`
	Vote     string    `yaml:"vote"`
}

func (g governmentSeed) records() ports.GovernmentRecords {
	var out ports.GovernmentRecords

	for _, d := range g.Departments {
		department := &domain.Department{
			ID: d.ID, Name: d.Name, Type: domain.DepartmentType(d.Type), Description: d.Description,
			Budget: d.Budget, Expenditure: d.Expenditure, PerformanceRating: d.PerformanceRating,
			LeaderIDs: list(d.LeaderIDs), ProjectIDs: list(d.ProjectIDs),
			KeyInitiatives: list(d.KeyInitiatives), Issues: []domain.Issue{},
		}
		for _, i := range d.Issues {
			department.Issues = append(department.Issues, domain.Issue{
				ID: i.ID, Title: i.Title, Description: i.Description,
				Severity: domain.Severity(i.Severity), ReportedAt: i.ReportedAt,
			})
		}
		out.Departments = append(out.Departments, department)
	}

	for _, l := range g.Leaders {
		leader := &domain.Leader{
			ID: l.ID, Name: l.Name, Position: l.Position, Party: l.Party, Bio: l.Bio, PhotoURL: l.PhotoURL,
			DepartmentIDs: list(l.DepartmentIDs), ProjectIDs: list(l.ProjectIDs),
			Promises: []domain.Promise{}, Scandals: list(l.Scandals), Achievements: list(l.Achievements),
			ApprovalRating: l.ApprovalRating,
		}
		for _, p := range l.Promises {
			leader.Promises = append(leader.Promises, domain.Promise{
				ID: p.ID, Title: p.Title, Description: p.Description,
				Status: domain.PromiseStatus(p.Status), CreatedAt: p.CreatedAt, FulfilledAt: p.FulfilledAt,
			})
		}
		out.Leaders = append(out.Leaders, leader)
	}

	for _, p := range g.Projects {
		project := &domain.Project{
			ID: p.ID, Title: p.Title, Description: p.Description, Category: p.Category,
			Stage: domain.ProjectStage(p.Stage), BudgetAllocated: p.BudgetAllocated, BudgetSpent: p.BudgetSpent,
			DepartmentID: p.DepartmentID, LeaderIDs: list(p.LeaderIDs), Company: p.Company, Location: p.Location,
			StartDate: p.StartDate, EndDate: p.EndDate, TenderDeadline: p.TenderDeadline,
			JobsCreated: p.JobsCreated, CitizenMediaCount: p.CitizenMediaCount, Milestones: []domain.Milestone{},
		}
		for _, m := range p.Milestones {
			project.Milestones = append(project.Milestones, domain.Milestone(m))
		}
		out.Projects = append(out.Projects, project)
	}

	for _, i := range g.Parliament {
		item := &domain.ParliamentItem{
			ID: i.ID, Type: domain.ParliamentItemType(i.Type), Title: i.Title, Description: i.Description,
			Status: domain.ParliamentStatus(i.Status), BillNumber: i.BillNumber, SessionDate: i.SessionDate,
			Attendance: i.Attendance, VotingRecords: []domain.VotingRecord{},
			LinkedDebateIDs: list(i.LinkedDebateIDs), LinkedPollIDs: list(i.LinkedPollIDs),
		}
		for _, v := range i.VotingRecords {
			item.VotingRecords = append(item.VotingRecords, domain.VotingRecord{LeaderID: v.LeaderID, Vote: domain.MemberVote(v.Vote)})
		}
		out.Parliament = append(out.Parliament, item)
	}

	return out
}

func list[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
