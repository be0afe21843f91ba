package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
	"github.com/vncsmyrnk/manifesto/internal/core/ports"
	"go.uber.org/zap"
)

// governmentNamespace derives stable ids for imported records that do not carry one.
var governmentNamespace = uuid.MustParse("0b8f3c1e-6a4d-4e2b-8d71-5c9a2e7f1d36")

type governmentService struct {
	uow ports.UnitOfWork
	options
}

func NewGovernmentService(uow ports.UnitOfWork, opts ...Option) ports.GovernmentService {
	return &governmentService{
		uow:     uow,
		options: newOptions(opts),
	}
}

func (s *governmentService) ListLeaders(ctx context.Context, filter ports.LeaderFilter) ([]*domain.Leader, error) {
	filter.Party = strings.TrimSpace(filter.Party)
	filter.Position = strings.TrimSpace(filter.Position)
	return s.uow.Repositories().Government.ListLeaders(ctx, filter)
}

func (s *governmentService) GetLeader(ctx context.Context, id uuid.UUID) (*domain.LeaderDetail, error) {
	repo := s.uow.Repositories().Government
	leader, err := repo.GetLeader(ctx, id)
	if err != nil {
		return nil, err
	}
	departments, err := repo.DepartmentsByIDs(ctx, leader.DepartmentIDs)
	if err != nil {
		return nil, err
	}
	projects, err := repo.ProjectsByIDs(ctx, leader.ProjectIDs)
	if err != nil {
		return nil, err
	}
	return &domain.LeaderDetail{
		Leader:      leader,
		Departments: inOrder(leader.DepartmentIDs, departments),
		Projects:    inOrder(leader.ProjectIDs, projects),
	}, nil
}

func (s *governmentService) ListDepartments(ctx context.Context, filter ports.DepartmentFilter) ([]*domain.Department, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.Invalid("unknown department type %q", filter.Type)
	}
	return s.uow.Repositories().Government.ListDepartments(ctx, filter)
}

func (s *governmentService) GetDepartment(ctx context.Context, id uuid.UUID) (*domain.DepartmentDetail, error) {
	repo := s.uow.Repositories().Government
	department, err := repo.GetDepartment(ctx, id)
	if err != nil {
		return nil, err
	}
	leaders, err := repo.LeadersByIDs(ctx, department.LeaderIDs)
	if err != nil {
		return nil, err
	}
	projects, err := repo.ProjectsByIDs(ctx, department.ProjectIDs)
	if err != nil {
		return nil, err
	}
	return &domain.DepartmentDetail{
		Department: department,
		Leaders:    inOrder(department.LeaderIDs, leaders),
		Projects:   inOrder(department.ProjectIDs, projects),
	}, nil
}

func (s *governmentService) ListProjects(ctx context.Context, filter ports.ProjectFilter) ([]*domain.Project, error) {
	if filter.Stage != "" && !filter.Stage.Valid() {
		return nil, domain.Invalid("unknown project stage %q", filter.Stage)
	}
	return s.uow.Repositories().Government.ListProjects(ctx, filter)
}

func (s *governmentService) GetProject(ctx context.Context, id uuid.UUID) (*domain.ProjectDetail, error) {
	repo := s.uow.Repositories().Government
	project, err := repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}
	departments, err := repo.DepartmentsByIDs(ctx, []uuid.UUID{project.DepartmentID})
	if err != nil {
		return nil, err
	}
	leaders, err := repo.LeadersByIDs(ctx, project.LeaderIDs)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectDetail{
		Project:    project,
		Department: departments[project.DepartmentID],
		Leaders:    inOrder(project.LeaderIDs, leaders),
	}, nil
}

func (s *governmentService) ListParliament(ctx context.Context, filter ports.ParliamentFilter) ([]*domain.ParliamentItem, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, domain.Invalid("unknown parliament item type %q", filter.Type)
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domain.Invalid("unknown parliament status %q", filter.Status)
	}
	return s.uow.Repositories().Government.ListParliament(ctx, filter)
}

// Import upserts a batch of records in one transaction. Records without an id
// get one derived from their kind and name, so re-importing a file updates the
// same rows. References between records are not checked.
func (s *governmentService) Import(ctx context.Context, records ports.GovernmentRecords) error {
	now := s.now()
	for _, d := range records.Departments {
		if err := d.Validate(); err != nil {
			return err
		}
		d.ID = importID(d.ID, "department", d.Name)
		d.CreatedAt, d.UpdatedAt = createdAt(d.CreatedAt, now), now
	}
	for _, l := range records.Leaders {
		if err := l.Validate(); err != nil {
			return err
		}
		l.ID = importID(l.ID, "leader", l.Name)
		l.CreatedAt, l.UpdatedAt = createdAt(l.CreatedAt, now), now
	}
	for _, p := range records.Projects {
		if err := p.Validate(); err != nil {
			return err
		}
		p.ID = importID(p.ID, "project", p.Title)
		p.CreatedAt, p.UpdatedAt = createdAt(p.CreatedAt, now), now
	}
	for _, i := range records.Parliament {
		if err := i.Validate(); err != nil {
			return err
		}
		i.ID = importID(i.ID, "parliament", i.Title)
		i.CreatedAt, i.UpdatedAt = createdAt(i.CreatedAt, now), now
	}

	err := s.uow.WithinTx(ctx, func(r ports.Repositories) error {
		for _, d := range records.Departments {
			if err := r.Government.UpsertDepartment(ctx, d); err != nil {
				return err
			}
		}
		for _, l := range records.Leaders {
			if err := r.Government.UpsertLeader(ctx, l); err != nil {
				return err
			}
		}
		for _, p := range records.Projects {
			if err := r.Government.UpsertProject(ctx, p); err != nil {
				return err
			}
		}
		for _, i := range records.Parliament {
			if err := r.Government.UpsertParliamentItem(ctx, i); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to import government records: %w", err)
	}

	s.log.Info("government records imported",
		zap.Int("departments", len(records.Departments)),
		zap.Int("leaders", len(records.Leaders)),
		zap.Int("projects", len(records.Projects)),
		zap.Int("parliament_items", len(records.Parliament)),
	)
	return nil
}

func importID(id uuid.UUID, kind, name string) uuid.UUID {
	if id != uuid.Nil {
		return id
	}
	return uuid.NewSHA1(governmentNamespace, []byte(kind+":"+strings.TrimSpace(name)))
}

func createdAt(t, now time.Time) time.Time {
	if t.IsZero() {
		return now
	}
	return t
}

// inOrder lists the found records in reference order, skipping dangling ids.
func inOrder[T any](ids []uuid.UUID, found map[uuid.UUID]*T) []*T {
	out := make([]*T, 0, len(ids))
	for _, id := range ids {
		if v, ok := found[id]; ok {
			out = append(out, v)
		}
	}
	return out
}
