package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// QuoteStatus represents the lifecycle status of a quote
type QuoteStatus string

const (
	QuoteStatusOpen      QuoteStatus = "OPEN"
	QuoteStatusConverted QuoteStatus = "CONVERTED"
	QuoteStatusExpired   QuoteStatus = "EXPIRED"
)

// IsValid checks if the status is a valid QuoteStatus
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusOpen, QuoteStatusConverted, QuoteStatusExpired:
		return true
	}
	return false
}

// QuoteItem represents a line item on a quote
type QuoteItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	QuoteID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"type:uuid"`
	SKU       string          `gorm:"type:varchar(50)"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (QuoteItem) TableName() string {
	return "quote_items"
}

// NewQuoteItem creates a new quote line item
func NewQuoteItem(quoteID uuid.UUID, productID *uuid.UUID, sku, name string, quantity, unitPrice decimal.Decimal) (*QuoteItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	return &QuoteItem{
		ID:        uuid.New(),
		QuoteID:   quoteID,
		ProductID: productID,
		SKU:       sku,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		Amount:    quantity.Mul(unitPrice),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Quote represents a price quotation aggregate root. Unlike invoices,
// tax applies as a single flat rate on the subtotal and no payments
// attach to a quote.
type Quote struct {
	shared.TenantAggregateRoot
	QuoteNumber     string          `gorm:"type:varchar(50);not null;index:idx_quote_tenant_number"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string          `gorm:"type:varchar(200);not null"`
	CustomerPhone   string          `gorm:"type:varchar(50)"`
	CustomerAddress string          `gorm:"type:varchar(500)"`
	IssuedAt        time.Time       `gorm:"not null;index"`
	ValidUntil      *time.Time      `gorm:"index"`
	Items           []QuoteItem     `gorm:"foreignKey:QuoteID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxRate         decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          QuoteStatus     `gorm:"type:varchar(20);not null;default:'OPEN'"`
	Remarks         string          `gorm:"type:text"`
	ConvertedAt     *time.Time
	InvoiceID       *uuid.UUID `gorm:"type:uuid"`
}

// TableName returns the table name for GORM
func (Quote) TableName() string {
	return "quotes"
}

// NewQuote creates a new quote with a snapshot of the customer
func NewQuote(tenantID uuid.UUID, quoteNumber string, customerID *uuid.UUID, customerName string) (*Quote, error) {
	if quoteNumber == "" {
		return nil, shared.NewDomainError("INVALID_QUOTE_NUMBER", "Quote number cannot be empty")
	}
	if len(quoteNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_QUOTE_NUMBER", "Quote number cannot exceed 50 characters")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Quote{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		QuoteNumber:         quoteNumber,
		CustomerID:          customerID,
		CustomerName:        customerName,
		IssuedAt:            time.Now(),
		Items:               make([]QuoteItem, 0),
		Subtotal:            decimal.Zero,
		TaxRate:             decimal.Zero,
		TaxAmount:           decimal.Zero,
		DiscountAmount:      decimal.Zero,
		TotalAmount:         decimal.Zero,
		Status:              QuoteStatusOpen,
	}, nil
}

// SetCustomerContact sets the quote's customer contact snapshot
func (q *Quote) SetCustomerContact(phone, address string) {
	q.CustomerPhone = phone
	q.CustomerAddress = address
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
}

// SetValidUntil sets the quote's expiry date
func (q *Quote) SetValidUntil(validUntil *time.Time) error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify a closed quote")
	}

	q.ValidUntil = validUntil
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// AddItem adds a line item to the quote
func (q *Quote) AddItem(productID *uuid.UUID, sku, name string, quantity, unitPrice decimal.Decimal) (*QuoteItem, error) {
	if q.Status != QuoteStatusOpen {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a closed quote")
	}

	item, err := NewQuoteItem(q.ID, productID, sku, name, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	q.Items = append(q.Items, *item)
	q.recalculateTotals()
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return item, nil
}

// RemoveItem removes a line item from the quote
func (q *Quote) RemoveItem(itemID uuid.UUID) error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a closed quote")
	}

	for idx, item := range q.Items {
		if item.ID == itemID {
			q.Items = append(q.Items[:idx], q.Items[idx+1:]...)
			q.recalculateTotals()
			q.UpdatedAt = time.Now()
			q.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Quote item not found")
}

// ReplaceItems swaps out the full line item set and recalculates
func (q *Quote) ReplaceItems(items []QuoteItem) error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items on a closed quote")
	}

	q.Items = items
	q.recalculateTotals()
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// SetTaxRate sets the flat tax rate applied to the subtotal
func (q *Quote) SetTaxRate(taxRate decimal.Decimal) error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify a closed quote")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	q.TaxRate = taxRate
	q.recalculateTotals()
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// ApplyDiscount applies an order-level discount
func (q *Quote) ApplyDiscount(discount decimal.Decimal) error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply discount to a closed quote")
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.GreaterThan(q.Subtotal.Add(q.TaxAmount)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	q.DiscountAmount = discount
	q.recalculateTotals()
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// SetRemarks sets the quote's remarks
func (q *Quote) SetRemarks(remarks string) {
	q.Remarks = remarks
	q.UpdatedAt = time.Now()
	q.IncrementVersion()
}

// MarkExpired marks an open quote expired
func (q *Quote) MarkExpired() error {
	if q.Status != QuoteStatusOpen {
		return shared.NewDomainError("INVALID_STATE", "Only open quotes can expire")
	}

	q.Status = QuoteStatusExpired
	q.UpdatedAt = time.Now()
	q.IncrementVersion()

	return nil
}

// ConvertToInvoice produces an invoice carrying the quote's customer
// snapshot and line items, then marks the quote converted. Line items
// on the invoice inherit the quote's flat tax rate so the invoice
// total matches the quoted total. A quote converts at most once.
func (q *Quote) ConvertToInvoice(invoiceNumber string) (*Invoice, error) {
	if q.Status == QuoteStatusConverted {
		return nil, shared.NewDomainError("ALREADY_CONVERTED", "Quote has already been converted")
	}
	if q.Status != QuoteStatusOpen {
		return nil, shared.NewDomainError("INVALID_STATE", "Only open quotes can be converted")
	}
	if len(q.Items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Cannot convert a quote without items")
	}

	invoice, err := NewInvoice(q.TenantID, invoiceNumber, q.CustomerID, q.CustomerName)
	if err != nil {
		return nil, err
	}
	invoice.SetCustomerContact(q.CustomerPhone, q.CustomerAddress)

	for idx := range q.Items {
		item := q.Items[idx]
		if _, err := invoice.AddItem(item.ProductID, item.SKU, item.Name, item.Quantity, item.UnitPrice, q.TaxRate); err != nil {
			return nil, err
		}
	}
	if q.DiscountAmount.IsPositive() {
		if err := invoice.ApplyDiscount(q.DiscountAmount); err != nil {
			return nil, err
		}
	}
	invoice.SetRemarks(q.Remarks)

	now := time.Now()
	q.Status = QuoteStatusConverted
	q.ConvertedAt = &now
	q.InvoiceID = &invoice.ID
	q.UpdatedAt = now
	q.IncrementVersion()

	return invoice, nil
}

// recalculateTotals re-derives the quote's monetary fields. Tax is a
// flat rate on the subtotal, rounded half-up to 2 places.
func (q *Quote) recalculateTotals() {
	subtotal := decimal.Zero
	for idx := range q.Items {
		subtotal = subtotal.Add(q.Items[idx].Amount)
	}

	q.Subtotal = subtotal.Round(2)
	q.TaxAmount = q.Subtotal.Mul(q.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
	q.TotalAmount = q.Subtotal.Add(q.TaxAmount).Sub(q.DiscountAmount).Round(2)
	if q.TotalAmount.IsNegative() {
		q.TotalAmount = decimal.Zero
	}
}
