package ports

import (
	"context"

	"github.com/vncsmyrnk/manifesto/internal/core/domain"
)

// AuditService recomputes every aggregate from its ledger and reports disagreements.
type AuditService interface {
	AuditAll(ctx context.Context) ([]domain.Drift, error)
}
