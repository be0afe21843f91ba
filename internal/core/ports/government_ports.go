package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

// GovernmentRecords is one import batch. Records reference each other by id.
type GovernmentRecords struct {
	Departments []*domain.Department
	Leaders     []*domain.Leader
	Projects    []*domain.Project
	Parliament  []*domain.ParliamentItem
}

type GovernmentService interface {
	ListLeaders(ctx context.Context, filter LeaderFilter) ([]*domain.Leader, error)
	GetLeader(ctx context.Context, id uuid.UUID) (*domain.LeaderDetail, error)
	ListDepartments(ctx context.Context, filter DepartmentFilter) ([]*domain.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*domain.DepartmentDetail, error)
	ListProjects(ctx context.Context, filter ProjectFilter) ([]*domain.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*domain.ProjectDetail, error)
	ListParliament(ctx context.Context, filter ParliamentFilter) ([]*domain.ParliamentItem, error)
	Import(ctx context.Context, records GovernmentRecords) error
}
