package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
)

var (
	leaderColumns = []string{"id", "name", "position", "party", "bio", "photo_url", "department_ids", "project_ids",
		"promises", "scandals", "achievements", "approval_rating", "created_at", "updated_at"}
	departmentColumns = []string{"id", "name", "type", "description", "budget", "expenditure", "leader_ids", "project_ids",
		"key_initiatives", "issues", "performance_rating", "created_at", "updated_at"}
	projectColumns = []string{"id", "title", "description", "category", "stage", "budget_allocated", "budget_spent",
		"department_id", "leader_ids", "company", "location", "start_date", "end_date", "tender_deadline", "jobs_created",
		"milestones", "citizen_media_count", "created_at", "updated_at"}
	parliamentColumns = []string{"id", "type", "title", "description", "status", "bill_number", "session_date",
		"attendance", "voting_records", "linked_debate_ids", "linked_poll_ids", "created_at", "updated_at"}
)

type governmentRepository struct {
	q querier
	d Dialect
}

func NewGovernmentRepository(db *sql.DB, d Dialect) ports.GovernmentRepository {
	return &governmentRepository{q: db, d: d}
}

func (r *governmentRepository) UpsertLeader(ctx context.Context, l *domain.Leader) error {
	cols, err := jsonColumns(l.DepartmentIDs, l.ProjectIDs, l.Promises, l.Scandals, l.Achievements)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, upsertQuery("leaders", leaderColumns),
		l.ID, l.Name, l.Position, l.Party, l.Bio, l.PhotoURL, cols[0], cols[1],
		cols[2], cols[3], cols[4], l.ApprovalRating, l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert leader: %w", err)
	}
	return nil
}

func (r *governmentRepository) UpsertDepartment(ctx context.Context, d *domain.Department) error {
	cols, err := jsonColumns(d.LeaderIDs, d.ProjectIDs, d.KeyInitiatives, d.Issues)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, upsertQuery("departments", departmentColumns),
		d.ID, d.Name, d.Type, d.Description, d.Budget, d.Expenditure, cols[0], cols[1],
		cols[2], cols[3], d.PerformanceRating, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert department: %w", err)
	}
	return nil
}

func (r *governmentRepository) UpsertProject(ctx context.Context, p *domain.Project) error {
	cols, err := jsonColumns(p.LeaderIDs, p.Location, p.Milestones)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, upsertQuery("projects", projectColumns),
		p.ID, p.Title, p.Description, p.Category, p.Stage, p.BudgetAllocated, p.BudgetSpent,
		p.DepartmentID, cols[0], p.Company, cols[1], p.StartDate, p.EndDate, p.TenderDeadline, p.JobsCreated,
		cols[2], p.CitizenMediaCount, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert project: %w", err)
	}
	return nil
}

func (r *governmentRepository) UpsertParliamentItem(ctx context.Context, i *domain.ParliamentItem) error {
	cols, err := jsonColumns(i.Attendance, i.VotingRecords, i.LinkedDebateIDs, i.LinkedPollIDs)
	if err != nil {
		return err
	}
	_, err = r.q.ExecContext(ctx, upsertQuery("parliament_items", parliamentColumns),
		i.ID, i.Type, i.Title, i.Description, i.Status, i.BillNumber, i.SessionDate,
		cols[0], cols[1], cols[2], cols[3], i.CreatedAt, i.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert parliament item: %w", err)
	}
	return nil
}

func (r *governmentRepository) GetLeader(ctx context.Context, id uuid.UUID) (*domain.Leader, error) {
	leader, err := scanLeader(r.q.QueryRowContext(ctx, selectFrom("leaders", leaderColumns)+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrLeaderNotFound
		}
		return nil, fmt.Errorf("failed to get leader: %w", err)
	}
	return leader, nil
}

func (r *governmentRepository) GetDepartment(ctx context.Context, id uuid.UUID) (*domain.Department, error) {
	department, err := scanDepartment(r.q.QueryRowContext(ctx, selectFrom("departments", departmentColumns)+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}
	return department, nil
}

func (r *governmentRepository) GetProject(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := scanProject(r.q.QueryRowContext(ctx, selectFrom("projects", projectColumns)+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

func (r *governmentRepository) LeadersByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Leader, error) {
	leaders := make(map[uuid.UUID]*domain.Leader, len(ids))
	if len(ids) == 0 {
		return leaders, nil
	}
	in, args := inList(ids)
	list, err := queryAll(ctx, r.q, "leaders", scanLeader, selectFrom("leaders", leaderColumns)+` WHERE id IN `+in, args...)
	if err != nil {
		return nil, err
	}
	for _, l := range list {
		leaders[l.ID] = l
	}
	return leaders, nil
}

func (r *governmentRepository) DepartmentsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Department, error) {
	departments := make(map[uuid.UUID]*domain.Department, len(ids))
	if len(ids) == 0 {
		return departments, nil
	}
	in, args := inList(ids)
	list, err := queryAll(ctx, r.q, "departments", scanDepartment, selectFrom("departments", departmentColumns)+` WHERE id IN `+in, args...)
	if err != nil {
		return nil, err
	}
	for _, d := range list {
		departments[d.ID] = d
	}
	return departments, nil
}

func (r *governmentRepository) ProjectsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*domain.Project, error) {
	projects := make(map[uuid.UUID]*domain.Project, len(ids))
	if len(ids) == 0 {
		return projects, nil
	}
	in, args := inList(ids)
	list, err := queryAll(ctx, r.q, "projects", scanProject, selectFrom("projects", projectColumns)+` WHERE id IN `+in, args...)
	if err != nil {
		return nil, err
	}
	for _, p := range list {
		projects[p.ID] = p
	}
	return projects, nil
}

func (r *governmentRepository) ListLeaders(ctx context.Context, filter ports.LeaderFilter) ([]*domain.Leader, error) {
	var c conditions
	if filter.Party != "" {
		c.add("party = ?", filter.Party)
	}
	if filter.Position != "" {
		c.add("position = ?", filter.Position)
	}
	query := selectFrom("leaders", leaderColumns) + c.where() + ` ORDER BY name, id` + c.limit(ports.ClampLimit(filter.Limit))
	return queryAll(ctx, r.q, "leaders", scanLeader, query, c.args...)
}

func (r *governmentRepository) ListDepartments(ctx context.Context, filter ports.DepartmentFilter) ([]*domain.Department, error) {
	var c conditions
	if filter.Type != "" {
		c.add("type = ?", filter.Type)
	}
	query := selectFrom("departments", departmentColumns) + c.where() + ` ORDER BY name, id` + c.limit(ports.ClampLimit(filter.Limit))
	return queryAll(ctx, r.q, "departments", scanDepartment, query, c.args...)
}

func (r *governmentRepository) ListProjects(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	var c conditions
	if filter.Stage != "" {
		c.add("stage = ?", filter.Stage)
	}
	if filter.DepartmentID != nil {
		c.add("department_id = ?", *filter.DepartmentID)
	}
	query := selectFrom("projects", projectColumns) + c.where() + ` ORDER BY created_at DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))
	return queryAll(ctx, r.q, "projects", scanProject, query, c.args...)
}

func (r *governmentRepository) ListParliament(ctx context.Context, filter ports.ParliamentFilter) ([]*domain.ParliamentItem, error) {
	var c conditions
	if filter.Type != "" {
		c.add("type = ?", filter.Type)
	}
	if filter.Status != "" {
		c.add("status = ?", filter.Status)
	}
	query := selectFrom("parliament_items", parliamentColumns) + c.where() + ` ORDER BY session_date DESC, id DESC` + c.limit(ports.ClampLimit(filter.Limit))
	return queryAll(ctx, r.q, "parliament items", scanParliamentItem, query, c.args...)
}

func scanLeader(row rowScanner) (*domain.Leader, error) {
	var l domain.Leader
	var departments, projects, promises, scandals, achievements []byte
	err := row.Scan(
		&l.ID, &l.Name, &l.Position, &l.Party, &l.Bio, &l.PhotoURL, &departments, &projects,
		&promises, &scandals, &achievements, &l.ApprovalRating, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	err = decodeColumns(
		departments, &l.DepartmentIDs,
		projects, &l.ProjectIDs,
		promises, &l.Promises,
		scandals, &l.Scandals,
		achievements, &l.Achievements,
	)
	if err != nil {
		return nil, err
	}
	l.DepartmentIDs = orEmpty(l.DepartmentIDs)
	l.ProjectIDs = orEmpty(l.ProjectIDs)
	l.Promises = orEmpty(l.Promises)
	l.Scandals = orEmpty(l.Scandals)
	l.Achievements = orEmpty(l.Achievements)
	return &l, nil
}

func scanDepartment(row rowScanner) (*domain.Department, error) {
	var d domain.Department
	var leaders, projects, initiatives, issues []byte
	err := row.Scan(
		&d.ID, &d.Name, &d.Type, &d.Description, &d.Budget, &d.Expenditure, &leaders, &projects,
		&initiatives, &issues, &d.PerformanceRating, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	err = decodeColumns(
		leaders, &d.LeaderIDs,
		projects, &d.ProjectIDs,
		initiatives, &d.KeyInitiatives,
		issues, &d.Issues,
	)
	if err != nil {
		return nil, err
	}
	d.LeaderIDs = orEmpty(d.LeaderIDs)
	d.ProjectIDs = orEmpty(d.ProjectIDs)
	d.KeyInitiatives = orEmpty(d.KeyInitiatives)
	d.Issues = orEmpty(d.Issues)
	return &d, nil
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var p domain.Project
	var leaders, location, milestones []byte
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Category, &p.Stage, &p.BudgetAllocated, &p.BudgetSpent,
		&p.DepartmentID, &leaders, &p.Company, &location, &p.StartDate, &p.EndDate, &p.TenderDeadline, &p.JobsCreated,
		&milestones, &p.CitizenMediaCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	err = decodeColumns(
		leaders, &p.LeaderIDs,
		location, &p.Location,
		milestones, &p.Milestones,
	)
	if err != nil {
		return nil, err
	}
	p.LeaderIDs = orEmpty(p.LeaderIDs)
	p.Milestones = orEmpty(p.Milestones)
	return &p, nil
}

func scanParliamentItem(row rowScanner) (*domain.ParliamentItem, error) {
	var i domain.ParliamentItem
	var attendance, votes, debates, polls []byte
	err := row.Scan(
		&i.ID, &i.Type, &i.Title, &i.Description, &i.Status, &i.BillNumber, &i.SessionDate,
		&attendance, &votes, &debates, &polls, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	err = decodeColumns(
		attendance, &i.Attendance,
		votes, &i.VotingRecords,
		debates, &i.LinkedDebateIDs,
		polls, &i.LinkedPollIDs,
	)
	if err != nil {
		return nil, err
	}
	i.VotingRecords = orEmpty(i.VotingRecords)
	i.LinkedDebateIDs = orEmpty(i.LinkedDebateIDs)
	i.LinkedPollIDs = orEmpty(i.LinkedPollIDs)
	return &i, nil
}

func queryAll[T any](ctx context.Context, q querier, what string, scan func(rowScanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", what, err)
	}
	defer rows.Close()

	list := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan %s: %w", what, err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s: %w", what, err)
	}
	return list, nil
}

func selectFrom(table string, columns []string) string {
	return `SELECT ` + strings.Join(columns, ", ") + ` FROM ` + table
}

// upsertQuery inserts a row or, on an id conflict, overwrites every column
// except id and created_at.
func upsertQuery(table string, columns []string) string {
	placeholders := make([]string, len(columns))
	var set []string
	for i, col := range columns {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		if col != "id" && col != "created_at" {
			set = append(set, col+" = excluded."+col)
		}
	}
	return `INSERT INTO ` + table + ` (` + strings.Join(columns, ", ") + `) VALUES (` + strings.Join(placeholders, ", ") +
		`) ON CONFLICT (id) DO UPDATE SET ` + strings.Join(set, ", ")
}

func jsonColumns(values ...any) ([]string, error) {
	cols := make([]string, len(values))
	for i, v := range values {
		col, err := encodeJSON(v)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}
	return cols, nil
}

// decodeColumns takes raw column and destination pairs.
func decodeColumns(pairs ...any) error {
	for i := 0; i+1 < len(pairs); i += 2 {
		if err := decodeJSON(pairs[i].([]byte), pairs[i+1]); err != nil {
			return err
		}
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
