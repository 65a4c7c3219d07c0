package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// PurchaserRepository defines the interface for purchaser persistence
type PurchaserRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Purchaser, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Purchaser, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Purchaser, error)
	Save(ctx context.Context, purchaser *Purchaser) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}
