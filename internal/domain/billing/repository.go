package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// InvoiceRepository defines the interface for invoice persistence
type InvoiceRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Invoice, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (*Invoice, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Invoice, error)
	// FindIssuedBetween returns non-void invoices issued in [from, to]
	// ordered by issue date, for reporting.
	FindIssuedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*Invoice, error)
	Save(ctx context.Context, invoice *Invoice) error
	// SaveWithLock persists the invoice guarded by its version column
	// and returns ErrConcurrencyConflict on a stale write.
	SaveWithLock(ctx context.Context, invoice *Invoice) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (bool, error)
	NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}

// QuoteRepository defines the interface for quote persistence
type QuoteRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Quote, error)
	FindByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (*Quote, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*Quote, error)
	Save(ctx context.Context, quote *Quote) error
	SaveWithLock(ctx context.Context, quote *Quote) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error)
	ExistsByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (bool, error)
	NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error)
}
