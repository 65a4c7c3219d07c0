package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// CurrencyRepository defines the interface for currency persistence
type CurrencyRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Currency, error)
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Currency, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Currency, error)
	FindDefault(ctx context.Context, tenantID uuid.UUID) (*Currency, error)
	Save(ctx context.Context, currency *Currency) error
	// SetDefault clears the previous default and marks the given currency
	// in a single transaction.
	SetDefault(ctx context.Context, tenantID, id uuid.UUID) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)
}
