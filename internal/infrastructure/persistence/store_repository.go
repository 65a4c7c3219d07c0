package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/location"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStoreRepository implements StoreRepository using GORM
type GormStoreRepository struct {
	db *gorm.DB
}

// NewGormStoreRepository creates a new GormStoreRepository
func NewGormStoreRepository(db *gorm.DB) *GormStoreRepository {
	return &GormStoreRepository{db: db}
}

// FindByID finds a store by ID within a tenant
func (r *GormStoreRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*location.Store, error) {
	var store location.Store
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&store).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &store, nil
}

// FindByCabinet finds all stores of a cabinet ordered by name
func (r *GormStoreRepository) FindByCabinet(ctx context.Context, tenantID, cabinetID uuid.UUID) ([]*location.Store, error) {
	var stores []*location.Store
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND cabinet_id = ?", tenantID, cabinetID).
		Order("name ASC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// FindAll finds all stores for a tenant matching the filter
func (r *GormStoreRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*location.Store, error) {
	var stores []*location.Store
	query := r.db.WithContext(ctx).Model(&location.Store{}).Where("tenant_id = ?", tenantID)

	if cabinetID, ok := filter.Filters["cabinet_id"]; ok {
		query = query.Where("cabinet_id = ?", cabinetID)
	}
	query = applyLocationFilter(query, filter)

	if err := query.Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// Save creates or updates a store
func (r *GormStoreRepository) Save(ctx context.Context, store *location.Store) error {
	return r.db.WithContext(ctx).Save(store).Error
}

// Delete deletes a store within a tenant
func (r *GormStoreRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&location.Store{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts stores for a tenant matching the filter
func (r *GormStoreRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&location.Store{}).Where("tenant_id = ?", tenantID)

	if cabinetID, ok := filter.Filters["cabinet_id"]; ok {
		query = query.Where("cabinet_id = ?", cabinetID)
	}
	query = applyLocationSearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCabinet counts stores belonging to a cabinet
func (r *GormStoreRepository) CountByCabinet(ctx context.Context, tenantID, cabinetID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&location.Store{}).
		Where("tenant_id = ? AND cabinet_id = ?", tenantID, cabinetID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStoreRepository implements StoreRepository
var _ location.StoreRepository = (*GormStoreRepository)(nil)
