package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Policy holds tenant-wide billing defaults. One row per tenant.
type Policy struct {
	shared.TenantAggregateRoot
	DefaultTaxRate  decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	InvoicePrefix   string          `gorm:"type:varchar(20);not null;default:'INV'"`
	QuotePrefix     string          `gorm:"type:varchar(20);not null;default:'QUO'"`
	PaymentTermDays int             `gorm:"not null;default:30"`
	InvoiceNotes    string          `gorm:"type:text"`
	QuoteNotes      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (Policy) TableName() string {
	return "policies"
}

// NewPolicy creates a policy with defaults
func NewPolicy(tenantID uuid.UUID) *Policy {
	return &Policy{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		DefaultTaxRate:      decimal.Zero,
		InvoicePrefix:       "INV",
		QuotePrefix:         "QUO",
		PaymentTermDays:     30,
	}
}

// Update updates the policy fields
func (p *Policy) Update(defaultTaxRate decimal.Decimal, invoicePrefix, quotePrefix string, paymentTermDays int, invoiceNotes, quoteNotes string) error {
	if defaultTaxRate.IsNegative() || defaultTaxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}
	if invoicePrefix == "" || len(invoicePrefix) > 20 {
		return shared.NewDomainError("INVALID_PREFIX", "Invoice prefix must be 1-20 characters")
	}
	if quotePrefix == "" || len(quotePrefix) > 20 {
		return shared.NewDomainError("INVALID_PREFIX", "Quote prefix must be 1-20 characters")
	}
	if paymentTermDays < 0 || paymentTermDays > 365 {
		return shared.NewDomainError("INVALID_PAYMENT_TERM", "Payment term must be between 0 and 365 days")
	}

	p.DefaultTaxRate = defaultTaxRate
	p.InvoicePrefix = invoicePrefix
	p.QuotePrefix = quotePrefix
	p.PaymentTermDays = paymentTermDays
	p.InvoiceNotes = invoiceNotes
	p.QuoteNotes = quoteNotes
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
