package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Currency is a tenant-configured currency. Exactly one currency per
// tenant is the default; the repository enforces the swap atomically.
type Currency struct {
	shared.TenantAggregateRoot
	Code          string `gorm:"type:varchar(3);not null;index:idx_currency_tenant_code"`
	Symbol        string `gorm:"type:varchar(10);not null"`
	Name          string `gorm:"type:varchar(100);not null"`
	DecimalPlaces int    `gorm:"not null;default:2"`
	IsDefault     bool   `gorm:"not null;default:false"`
}

// TableName returns the table name for GORM
func (Currency) TableName() string {
	return "currencies"
}

// NewCurrency creates a new currency
func NewCurrency(tenantID uuid.UUID, code, symbol, name string, decimalPlaces int) (*Currency, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return nil, shared.NewDomainError("INVALID_CURRENCY_CODE", "Currency code must be 3 letters")
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return nil, shared.NewDomainError("INVALID_CURRENCY_CODE", "Currency code must be 3 letters")
		}
	}
	if symbol == "" {
		return nil, shared.NewDomainError("INVALID_SYMBOL", "Currency symbol cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Currency name cannot be empty")
	}
	if decimalPlaces < 0 || decimalPlaces > 4 {
		return nil, shared.NewDomainError("INVALID_DECIMAL_PLACES", "Decimal places must be between 0 and 4")
	}

	return &Currency{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Symbol:              symbol,
		Name:                name,
		DecimalPlaces:       decimalPlaces,
	}, nil
}

// Update updates the currency's symbol, name, and decimal places
func (c *Currency) Update(symbol, name string, decimalPlaces int) error {
	if symbol == "" {
		return shared.NewDomainError("INVALID_SYMBOL", "Currency symbol cannot be empty")
	}
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Currency name cannot be empty")
	}
	if decimalPlaces < 0 || decimalPlaces > 4 {
		return shared.NewDomainError("INVALID_DECIMAL_PLACES", "Decimal places must be between 0 and 4")
	}

	c.Symbol = symbol
	c.Name = name
	c.DecimalPlaces = decimalPlaces
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}

// MarkDefault flags the currency as the tenant default
func (c *Currency) MarkDefault() {
	c.IsDefault = true
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// ClearDefault removes the default flag
func (c *Currency) ClearDefault() {
	c.IsDefault = false
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}
