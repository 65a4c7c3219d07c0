package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/location"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCabinetRepository implements CabinetRepository using GORM
type GormCabinetRepository struct {
	db *gorm.DB
}

// NewGormCabinetRepository creates a new GormCabinetRepository
func NewGormCabinetRepository(db *gorm.DB) *GormCabinetRepository {
	return &GormCabinetRepository{db: db}
}

// FindByID finds a cabinet by ID within a tenant
func (r *GormCabinetRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*location.Cabinet, error) {
	var cabinet location.Cabinet
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&cabinet).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &cabinet, nil
}

// FindByWarehouse finds all cabinets of a warehouse ordered by name
func (r *GormCabinetRepository) FindByWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) ([]*location.Cabinet, error) {
	var cabinets []*location.Cabinet
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND warehouse_id = ?", tenantID, warehouseID).
		Order("name ASC").
		Find(&cabinets).Error; err != nil {
		return nil, err
	}
	return cabinets, nil
}

// FindAll finds all cabinets for a tenant matching the filter
func (r *GormCabinetRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*location.Cabinet, error) {
	var cabinets []*location.Cabinet
	query := r.db.WithContext(ctx).Model(&location.Cabinet{}).Where("tenant_id = ?", tenantID)

	if warehouseID, ok := filter.Filters["warehouse_id"]; ok {
		query = query.Where("warehouse_id = ?", warehouseID)
	}
	query = applyLocationFilter(query, filter)

	if err := query.Find(&cabinets).Error; err != nil {
		return nil, err
	}
	return cabinets, nil
}

// Save creates or updates a cabinet
func (r *GormCabinetRepository) Save(ctx context.Context, cabinet *location.Cabinet) error {
	return r.db.WithContext(ctx).Save(cabinet).Error
}

// Delete deletes a cabinet within a tenant
func (r *GormCabinetRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&location.Cabinet{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts cabinets for a tenant matching the filter
func (r *GormCabinetRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&location.Cabinet{}).Where("tenant_id = ?", tenantID)

	if warehouseID, ok := filter.Filters["warehouse_id"]; ok {
		query = query.Where("warehouse_id = ?", warehouseID)
	}
	query = applyLocationSearch(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByWarehouse counts cabinets belonging to a warehouse
func (r *GormCabinetRepository) CountByWarehouse(ctx context.Context, tenantID, warehouseID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&location.Cabinet{}).
		Where("tenant_id = ? AND warehouse_id = ?", tenantID, warehouseID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCabinetRepository implements CabinetRepository
var _ location.CabinetRepository = (*GormCabinetRepository)(nil)
