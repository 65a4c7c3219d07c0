package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormGeneralRepository implements GeneralRepository using GORM
type GormGeneralRepository struct {
	db *gorm.DB
}

// NewGormGeneralRepository creates a new GormGeneralRepository
func NewGormGeneralRepository(db *gorm.DB) *GormGeneralRepository {
	return &GormGeneralRepository{db: db}
}

// FindByID finds a taxonomy entry by ID within a tenant
func (r *GormGeneralRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.General, error) {
	var general catalog.General
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&general).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &general, nil
}

// FindByGroup finds all entries of a group ordered by sort order then value
func (r *GormGeneralRepository) FindByGroup(ctx context.Context, tenantID uuid.UUID, groupName string) ([]*catalog.General, error) {
	var generals []*catalog.General
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND group_name = ?", tenantID, groupName).
		Order("sort_order ASC, value ASC").
		Find(&generals).Error; err != nil {
		return nil, err
	}
	return generals, nil
}

// FindAll finds all taxonomy entries for a tenant matching the filter
func (r *GormGeneralRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*catalog.General, error) {
	var generals []*catalog.General
	query := r.db.WithContext(ctx).Model(&catalog.General{}).Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}

	orderBy := ValidateSortField(filter.OrderBy, GeneralSortFields, "group_name")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&generals).Error; err != nil {
		return nil, err
	}
	return generals, nil
}

// Save creates or updates a taxonomy entry
func (r *GormGeneralRepository) Save(ctx context.Context, general *catalog.General) error {
	return r.db.WithContext(ctx).Save(general).Error
}

// Delete deletes a taxonomy entry within a tenant
func (r *GormGeneralRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&catalog.General{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Count counts taxonomy entries for a tenant matching the filter
func (r *GormGeneralRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&catalog.General{}).Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsInGroup checks if a value already exists in a group
func (r *GormGeneralRepository) ExistsInGroup(ctx context.Context, tenantID uuid.UUID, groupName, value string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.General{}).
		Where("tenant_id = ? AND group_name = ? AND value = ?", tenantID, groupName, value).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *GormGeneralRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("value ILIKE ?", searchPattern)
	}

	for key, value := range filter.Filters {
		if key == "group_name" {
			query = query.Where("group_name = ?", value)
		}
	}

	return query
}

// Ensure GormGeneralRepository implements GeneralRepository
var _ catalog.GeneralRepository = (*GormGeneralRepository)(nil)
