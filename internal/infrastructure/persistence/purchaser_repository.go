package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/partner"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormPurchaserRepository implements PurchaserRepository using GORM
type GormPurchaserRepository struct {
	db *gorm.DB
}

// NewGormPurchaserRepository creates a new GormPurchaserRepository
func NewGormPurchaserRepository(db *gorm.DB) *GormPurchaserRepository {
	return &GormPurchaserRepository{db: db}
}

// FindByID finds a purchaser by ID within a tenant
func (r *GormPurchaserRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Purchaser, error) {
	var purchaser partner.Purchaser
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&purchaser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchaser, nil
}

// FindByCode finds a purchaser by its code within a tenant
func (r *GormPurchaserRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Purchaser, error) {
	var purchaser partner.Purchaser
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&purchaser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &purchaser, nil
}

// FindAll finds all purchasers for a tenant matching the filter
func (r *GormPurchaserRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Purchaser, error) {
	var purchasers []partner.Purchaser
	query := r.db.WithContext(ctx).Model(&partner.Purchaser{}).Where("tenant_id = ?", tenantID)
	query = applyPartnerFilter(query, filter, PartnerSortFields)

	if err := query.Find(&purchasers).Error; err != nil {
		return nil, err
	}
	return purchasers, nil
}

// Save creates or updates a purchaser
func (r *GormPurchaserRepository) Save(ctx context.Context, purchaser *partner.Purchaser) error {
	return r.db.WithContext(ctx).Save(purchaser).Error
}

// Delete deletes a purchaser within a tenant
func (r *GormPurchaserRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&partner.Purchaser{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts purchasers for a tenant matching the filter
func (r *GormPurchaserRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&partner.Purchaser{}).Where("tenant_id = ?", tenantID)
	query = applyPartnerConditions(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByCode checks if a purchaser with the given code exists in the tenant
func (r *GormPurchaserRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Purchaser{}).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Ensure GormPurchaserRepository implements PurchaserRepository
var _ partner.PurchaserRepository = (*GormPurchaserRepository)(nil)
