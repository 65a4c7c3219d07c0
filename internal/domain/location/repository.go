package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Warehouse, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Warehouse, error)
	Save(ctx context.Context, warehouse *Warehouse) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
}

// CabinetRepository defines the interface for cabinet persistence
type CabinetRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Cabinet, error)
	FindByWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) ([]*Cabinet, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Cabinet, error)
	Save(ctx context.Context, cabinet *Cabinet) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	CountByWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) (int64, error)
}

// StoreRepository defines the interface for store persistence
type StoreRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Store, error)
	FindByCabinet(ctx context.Context, tenantID, cabinetID uuid.UUID) ([]*Store, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Store, error)
	Save(ctx context.Context, store *Store) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	CountByCabinet(ctx context.Context, tenantID, cabinetID uuid.UUID) (int64, error)
}
