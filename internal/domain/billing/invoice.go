package billing

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "UNPAID"
	InvoiceStatusPartial InvoiceStatus = "PARTIAL"
	InvoiceStatusPaid    InvoiceStatus = "PAID"
	InvoiceStatusVoid    InvoiceStatus = "VOID"
)

// IsValid checks if the status is a valid InvoiceStatus
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPartial, InvoiceStatusPaid, InvoiceStatusVoid:
		return true
	}
	return false
}

// String returns the string representation of InvoiceStatus
func (s InvoiceStatus) String() string {
	return string(s)
}

// InvoiceItem represents a line item on an invoice
type InvoiceItem struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID *uuid.UUID      `gorm:"type:uuid"`
	SKU       string          `gorm:"type:varchar(50)"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Quantity  decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	TaxRate   decimal.Decimal `gorm:"type:decimal(8,4);not null;default:0"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (InvoiceItem) TableName() string {
	return "invoice_items"
}

// NewInvoiceItem creates a new invoice line item
func NewInvoiceItem(invoiceID uuid.UUID, productID *uuid.UUID, sku, name string, quantity, unitPrice, taxRate decimal.Decimal) (*InvoiceItem, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_ITEM_NAME", "Item name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	now := time.Now()
	return &InvoiceItem{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		ProductID: productID,
		SKU:       sku,
		Name:      name,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		TaxRate:   taxRate,
		Amount:    quantity.Mul(unitPrice),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// TaxAmount returns the tax owed on this line
func (i *InvoiceItem) TaxAmount() decimal.Decimal {
	return i.Amount.Mul(i.TaxRate).Div(decimal.NewFromInt(100))
}

// UpdateQuantity updates the item quantity and recalculates the amount
func (i *InvoiceItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.Amount = quantity.Mul(i.UnitPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// UpdateUnitPrice updates the unit price and recalculates the amount
func (i *InvoiceItem) UpdateUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	i.UnitPrice = unitPrice
	i.Amount = i.Quantity.Mul(unitPrice)
	i.UpdatedAt = time.Now()

	return nil
}

// Payment is one entry in an invoice's append-only payment log
type Payment struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	InvoiceID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Method    string          `gorm:"type:varchar(50)"`
	Reference string          `gorm:"type:varchar(100)"`
	Remarks   string          `gorm:"type:text"`
	PaidAt    time.Time       `gorm:"not null"`
	CreatedAt time.Time
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "invoice_payments"
}

// Invoice represents an issued customer invoice aggregate root.
// Monetary totals are always derived from the line items and the
// payment log, never accepted from callers.
type Invoice struct {
	shared.TenantAggregateRoot
	InvoiceNumber   string          `gorm:"type:varchar(50);not null;index:idx_invoice_tenant_number"`
	CustomerID      *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName    string          `gorm:"type:varchar(200);not null"`
	CustomerPhone   string          `gorm:"type:varchar(50)"`
	CustomerAddress string          `gorm:"type:varchar(500)"`
	IssuedAt        time.Time       `gorm:"not null;index"`
	Items           []InvoiceItem   `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Payments        []Payment       `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TaxAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DiscountAmount  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	PaidAmount      decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	DueAmount       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Status          InvoiceStatus   `gorm:"type:varchar(20);not null;default:'UNPAID'"`
	Remarks         string          `gorm:"type:text"`
	VoidedAt        *time.Time
	VoidReason      string `gorm:"type:varchar(500)"`
}

// TableName returns the table name for GORM
func (Invoice) TableName() string {
	return "invoices"
}

// NewInvoice creates a new invoice with a snapshot of the customer
func NewInvoice(tenantID uuid.UUID, invoiceNumber string, customerID *uuid.UUID, customerName string) (*Invoice, error) {
	if invoiceNumber == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if len(invoiceNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	if customerName == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}

	return &Invoice{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		InvoiceNumber:       invoiceNumber,
		CustomerID:          customerID,
		CustomerName:        customerName,
		IssuedAt:            time.Now(),
		Items:               make([]InvoiceItem, 0),
		Payments:            make([]Payment, 0),
		Subtotal:            decimal.Zero,
		TaxAmount:           decimal.Zero,
		DiscountAmount:      decimal.Zero,
		TotalAmount:         decimal.Zero,
		PaidAmount:          decimal.Zero,
		DueAmount:           decimal.Zero,
		Status:              InvoiceStatusUnpaid,
	}, nil
}

// SetCustomerContact sets the invoice's customer contact snapshot
func (inv *Invoice) SetCustomerContact(phone, address string) {
	inv.CustomerPhone = phone
	inv.CustomerAddress = address
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}

// SetIssuedAt sets the invoice issue date
func (inv *Invoice) SetIssuedAt(issuedAt time.Time) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Cannot modify a void invoice")
	}

	inv.IssuedAt = issuedAt
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// AddItem adds a line item to the invoice
func (inv *Invoice) AddItem(productID *uuid.UUID, sku, name string, quantity, unitPrice, taxRate decimal.Decimal) (*InvoiceItem, error) {
	if inv.Status == InvoiceStatusVoid {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot add items to a void invoice")
	}

	item, err := NewInvoiceItem(inv.ID, productID, sku, name, quantity, unitPrice, taxRate)
	if err != nil {
		return nil, err
	}

	inv.Items = append(inv.Items, *item)
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return item, nil
}

// UpdateItemQuantity updates the quantity of an existing line item
func (inv *Invoice) UpdateItemQuantity(itemID uuid.UUID, quantity decimal.Decimal) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items on a void invoice")
	}

	for idx := range inv.Items {
		if inv.Items[idx].ID == itemID {
			if err := inv.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			inv.recalculateTotals()
			inv.UpdatedAt = time.Now()
			inv.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Invoice item not found")
}

// RemoveItem removes a line item from the invoice
func (inv *Invoice) RemoveItem(itemID uuid.UUID) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Cannot remove items from a void invoice")
	}

	for idx, item := range inv.Items {
		if item.ID == itemID {
			inv.Items = append(inv.Items[:idx], inv.Items[idx+1:]...)
			inv.recalculateTotals()
			inv.UpdatedAt = time.Now()
			inv.IncrementVersion()
			return nil
		}
	}

	return shared.NewDomainError("ITEM_NOT_FOUND", "Invoice item not found")
}

// ReplaceItems swaps out the full line item set and recalculates
func (inv *Invoice) ReplaceItems(items []InvoiceItem) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Cannot update items on a void invoice")
	}

	inv.Items = items
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// ApplyDiscount applies an order-level discount
func (inv *Invoice) ApplyDiscount(discount decimal.Decimal) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Cannot apply discount to a void invoice")
	}
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if discount.GreaterThan(inv.Subtotal.Add(inv.TaxAmount)) {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot exceed total amount")
	}

	inv.DiscountAmount = discount
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return nil
}

// AddPayment appends an entry to the payment log and re-derives the
// paid, due and status fields. Payments exceeding the due amount are
// rejected.
func (inv *Invoice) AddPayment(amount decimal.Decimal, method, reference, remarks string, paidAt time.Time) (*Payment, error) {
	if inv.Status == InvoiceStatusVoid {
		return nil, shared.NewDomainError("INVALID_STATE", "Cannot record payment on a void invoice")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_PAYMENT", "Payment amount must be positive")
	}
	if amount.GreaterThan(inv.DueAmount) {
		return nil, shared.NewDomainError("OVERPAYMENT",
			fmt.Sprintf("Payment %s exceeds due amount %s", amount.StringFixed(2), inv.DueAmount.StringFixed(2)))
	}
	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	payment := Payment{
		ID:        uuid.New(),
		InvoiceID: inv.ID,
		Amount:    amount,
		Method:    method,
		Reference: reference,
		Remarks:   remarks,
		PaidAt:    paidAt,
		CreatedAt: time.Now(),
	}

	inv.Payments = append(inv.Payments, payment)
	inv.recalculateTotals()
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()

	return &payment, nil
}

// Void marks the invoice void. Void is terminal.
func (inv *Invoice) Void(reason string) error {
	if inv.Status == InvoiceStatusVoid {
		return shared.NewDomainError("INVALID_STATE", "Invoice is already void")
	}

	now := time.Now()
	inv.Status = InvoiceStatusVoid
	inv.VoidedAt = &now
	inv.VoidReason = reason
	inv.UpdatedAt = now
	inv.IncrementVersion()

	return nil
}

// SetRemarks sets the invoice's remarks
func (inv *Invoice) SetRemarks(remarks string) {
	inv.Remarks = remarks
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}

// recalculateTotals re-derives every monetary field from the line
// items and payment log. Rounding is half-up to 2 places at the
// aggregate boundary only; line amounts keep full precision.
func (inv *Invoice) recalculateTotals() {
	subtotal := decimal.Zero
	tax := decimal.Zero
	for idx := range inv.Items {
		subtotal = subtotal.Add(inv.Items[idx].Amount)
		tax = tax.Add(inv.Items[idx].TaxAmount())
	}

	paid := decimal.Zero
	for idx := range inv.Payments {
		paid = paid.Add(inv.Payments[idx].Amount)
	}

	inv.Subtotal = subtotal.Round(2)
	inv.TaxAmount = tax.Round(2)
	inv.TotalAmount = inv.Subtotal.Add(inv.TaxAmount).Sub(inv.DiscountAmount).Round(2)
	if inv.TotalAmount.IsNegative() {
		inv.TotalAmount = decimal.Zero
	}
	inv.PaidAmount = paid.Round(2)
	inv.DueAmount = inv.TotalAmount.Sub(inv.PaidAmount)
	if inv.DueAmount.IsNegative() {
		inv.DueAmount = decimal.Zero
	}

	if inv.Status == InvoiceStatusVoid {
		return
	}
	switch {
	case inv.PaidAmount.IsZero():
		inv.Status = InvoiceStatusUnpaid
	case inv.DueAmount.IsZero():
		inv.Status = InvoiceStatusPaid
	default:
		inv.Status = InvoiceStatusPartial
	}
}
