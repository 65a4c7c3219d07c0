package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// GeneralRepository defines the interface for taxonomy persistence
type GeneralRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*General, error)
	FindByGroup(ctx context.Context, tenantID uuid.UUID, groupName string) ([]*General, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*General, error)
	Save(ctx context.Context, general *General) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsInGroup(ctx context.Context, tenantID uuid.UUID, groupName, value string) (bool, error)
}
