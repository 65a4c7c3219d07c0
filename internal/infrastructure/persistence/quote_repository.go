package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM
type GormQuoteRepository struct {
	db *gorm.DB
}

// NewGormQuoteRepository creates a new GormQuoteRepository
func NewGormQuoteRepository(db *gorm.DB) *GormQuoteRepository {
	return &GormQuoteRepository{db: db}
}

// conn returns the transaction handle carried by ctx, if any
func (r *GormQuoteRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// FindByID finds a quote with its items within a tenant
func (r *GormQuoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Quote, error) {
	var quote billing.Quote
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindByNumber finds a quote by its number within a tenant
func (r *GormQuoteRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (*billing.Quote, error) {
	var quote billing.Quote
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND quote_number = ?", tenantID, strings.ToUpper(quoteNumber)).
		First(&quote).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// FindAll finds all quotes for a tenant matching the filter
func (r *GormQuoteRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*billing.Quote, error) {
	var quotes []*billing.Quote
	query := r.conn(ctx).WithContext(ctx).
		Model(&billing.Quote{}).
		Preload("Items").
		Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}

	orderBy := ValidateSortField(filter.OrderBy, QuoteSortFields, "issued_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

// Save creates or updates a quote together with its items
func (r *GormQuoteRepository) Save(ctx context.Context, quote *billing.Quote) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items").Save(quote).Error; err != nil {
			return err
		}
		if err := syncQuoteItems(tx, quote); err != nil {
			return err
		}
		quote.MarkPersisted()
		return nil
	})
}

// SaveWithLock persists the quote guarded by its version column.
// Returns ErrConcurrencyConflict on a stale write.
func (r *GormQuoteRepository) SaveWithLock(ctx context.Context, quote *billing.Quote) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&billing.Quote{}).
			Where("id = ? AND version = ?", quote.ID, quote.Version-1).
			Select("*").
			Omit("Items").
			Updates(quote)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		if err := syncQuoteItems(tx, quote); err != nil {
			return err
		}
		quote.MarkPersisted()
		return nil
	})
}

// Delete deletes a quote and its items within a tenant
func (r *GormQuoteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("quote_id = ?", id).Delete(&billing.QuoteItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&billing.Quote{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts quotes for a tenant matching the filter
func (r *GormQuoteRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.conn(ctx).WithContext(ctx).Model(&billing.Quote{}).Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if a quote with the given number exists in the tenant
func (r *GormQuoteRepository) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (bool, error) {
	var count int64
	if err := r.conn(ctx).WithContext(ctx).
		Model(&billing.Quote{}).
		Where("tenant_id = ? AND quote_number = ?", tenantID, strings.ToUpper(quoteNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextNumber generates the next quote number for a tenant using the
// numbering prefix from the tenant's policy
func (r *GormQuoteRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	prefix := nextNumberPrefix(ctx, r.conn(ctx), tenantID, true)

	var count int64
	if err := r.conn(ctx).WithContext(ctx).
		Model(&billing.Quote{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}

	for seq := count + 1; ; seq++ {
		number := fmt.Sprintf("%s-%06d", prefix, seq)
		exists, err := r.ExistsByNumber(ctx, tenantID, number)
		if err != nil {
			return "", err
		}
		if !exists {
			return number, nil
		}
	}
}

// syncQuoteItems replaces the item rows with the aggregate's current set
func syncQuoteItems(tx *gorm.DB, quote *billing.Quote) error {
	currentItemIDs := make([]uuid.UUID, len(quote.Items))
	for i, item := range quote.Items {
		currentItemIDs[i] = item.ID
	}

	if len(currentItemIDs) > 0 {
		if err := tx.Where("quote_id = ? AND id NOT IN ?", quote.ID, currentItemIDs).
			Delete(&billing.QuoteItem{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("quote_id = ?", quote.ID).
			Delete(&billing.QuoteItem{}).Error; err != nil {
			return err
		}
	}

	for i := range quote.Items {
		quote.Items[i].QuoteID = quote.ID
		if err := tx.Save(&quote.Items[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormQuoteRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("quote_number ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		}
	}

	return query
}

// Ensure GormQuoteRepository implements QuoteRepository
var _ billing.QuoteRepository = (*GormQuoteRepository)(nil)
