package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/settings"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormInvoiceRepository implements InvoiceRepository using GORM
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

// conn returns the transaction handle carried by ctx, if any
func (r *GormInvoiceRepository) conn(ctx context.Context) *gorm.DB {
	return dbFromContext(ctx, r.db)
}

// FindByID finds an invoice with its items and payments within a tenant
func (r *GormInvoiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	var invoice billing.Invoice
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindByNumber finds an invoice by its number within a tenant
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (*billing.Invoice, error) {
	var invoice billing.Invoice
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items").
		Preload("Payments").
		Where("tenant_id = ? AND invoice_number = ?", tenantID, strings.ToUpper(invoiceNumber)).
		First(&invoice).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll finds all invoices for a tenant matching the filter
func (r *GormInvoiceRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*billing.Invoice, error) {
	var invoices []*billing.Invoice
	query := r.conn(ctx).WithContext(ctx).
		Model(&billing.Invoice{}).
		Preload("Items").
		Preload("Payments").
		Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.Limit())
	}

	orderBy := ValidateSortField(filter.OrderBy, InvoiceSortFields, "issued_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// FindIssuedBetween returns non-void invoices issued in [from, to]
// ordered by issue date, for reporting
func (r *GormInvoiceRepository) FindIssuedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*billing.Invoice, error) {
	var invoices []*billing.Invoice
	if err := r.conn(ctx).WithContext(ctx).
		Preload("Items").
		Where("tenant_id = ? AND status <> ? AND issued_at BETWEEN ? AND ?",
			tenantID, billing.InvoiceStatusVoid, from, to).
		Order("issued_at ASC").
		Find(&invoices).Error; err != nil {
		return nil, err
	}
	return invoices, nil
}

// Save creates or updates an invoice together with its items and payments
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Payments").Save(invoice).Error; err != nil {
			return err
		}
		if err := syncInvoiceChildren(tx, invoice); err != nil {
			return err
		}
		invoice.MarkPersisted()
		return nil
	})
}

// SaveWithLock persists the invoice guarded by its version column.
// Returns ErrConcurrencyConflict on a stale write.
func (r *GormInvoiceRepository) SaveWithLock(ctx context.Context, invoice *billing.Invoice) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&billing.Invoice{}).
			Where("id = ? AND version = ?", invoice.ID, invoice.Version-1).
			Select("*").
			Omit("Items", "Payments").
			Updates(invoice)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrConcurrencyConflict
		}
		if err := syncInvoiceChildren(tx, invoice); err != nil {
			return err
		}
		invoice.MarkPersisted()
		return nil
	})
}

// Delete deletes an invoice and its child rows within a tenant
func (r *GormInvoiceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return r.conn(ctx).WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&billing.Payment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", id).Delete(&billing.InvoiceItem{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&billing.Invoice{}, "tenant_id = ? AND id = ?", tenantID, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Count counts invoices for a tenant matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.conn(ctx).WithContext(ctx).Model(&billing.Invoice{}).Where("tenant_id = ?", tenantID)
	query = r.applyConditions(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ExistsByNumber checks if an invoice with the given number exists in the tenant
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (bool, error) {
	var count int64
	if err := r.conn(ctx).WithContext(ctx).
		Model(&billing.Invoice{}).
		Where("tenant_id = ? AND invoice_number = ?", tenantID, strings.ToUpper(invoiceNumber)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// NextNumber generates the next invoice number for a tenant using the
// numbering prefix from the tenant's policy
func (r *GormInvoiceRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	prefix := nextNumberPrefix(ctx, r.conn(ctx), tenantID, false)

	var count int64
	if err := r.conn(ctx).WithContext(ctx).
		Model(&billing.Invoice{}).
		Where("tenant_id = ?", tenantID).
		Count(&count).Error; err != nil {
		return "", err
	}

	// Deleted invoices leave gaps; probe forward until the number is free.
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

// nextNumberPrefix reads the numbering prefix from the tenant policy,
// falling back to the defaults when no policy row exists
func nextNumberPrefix(ctx context.Context, db *gorm.DB, tenantID uuid.UUID, quote bool) string {
	var policy settings.Policy
	if err := db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&policy).Error; err != nil {
		if quote {
			return "QUO"
		}
		return "INV"
	}
	if quote {
		return policy.QuotePrefix
	}
	return policy.InvoicePrefix
}

// syncInvoiceChildren replaces the item rows with the aggregate's
// current set and upserts payments, which are append-only
func syncInvoiceChildren(tx *gorm.DB, invoice *billing.Invoice) error {
	currentItemIDs := make([]uuid.UUID, len(invoice.Items))
	for i, item := range invoice.Items {
		currentItemIDs[i] = item.ID
	}

	if len(currentItemIDs) > 0 {
		if err := tx.Where("invoice_id = ? AND id NOT IN ?", invoice.ID, currentItemIDs).
			Delete(&billing.InvoiceItem{}).Error; err != nil {
			return err
		}
	} else {
		if err := tx.Where("invoice_id = ?", invoice.ID).
			Delete(&billing.InvoiceItem{}).Error; err != nil {
			return err
		}
	}

	for i := range invoice.Items {
		invoice.Items[i].InvoiceID = invoice.ID
		if err := tx.Save(&invoice.Items[i]).Error; err != nil {
			return err
		}
	}

	for i := range invoice.Payments {
		invoice.Payments[i].InvoiceID = invoice.ID
		if err := tx.Save(&invoice.Payments[i]).Error; err != nil {
			return err
		}
	}

	return nil
}

func (r *GormInvoiceRepository) applyConditions(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("invoice_number ILIKE ? OR customer_name ILIKE ?", searchPattern, searchPattern)
	}

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "issued_from":
			query = query.Where("issued_at >= ?", value)
		case "issued_to":
			// Inclusive day bound for a date-only filter value.
			query = query.Where("issued_at < (?::date + interval '1 day')", value)
		}
	}

	return query
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ billing.InvoiceRepository = (*GormInvoiceRepository)(nil)
