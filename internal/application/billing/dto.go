package billing

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/shopspring/decimal"
)

// =============================================================================
// Shared line item DTOs
// =============================================================================

// LineItemRequest is one line submitted with an invoice or quote
type LineItemRequest struct {
	ProductID *uuid.UUID       `json:"product_id"`
	SKU       string           `json:"sku" binding:"max=50"`
	Name      string           `json:"name" binding:"required,min=1,max=200"`
	Quantity  decimal.Decimal  `json:"quantity" binding:"required"`
	UnitPrice decimal.Decimal  `json:"unit_price" binding:"required"`
	TaxRate   *decimal.Decimal `json:"tax_rate"`
}

// InvoiceItemResponse represents an invoice line in API responses
type InvoiceItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	TaxRate   decimal.Decimal `json:"tax_rate"`
	Amount    decimal.Decimal `json:"amount"`
}

// =============================================================================
// Invoice DTOs
// =============================================================================

// CreateInvoiceRequest represents a request to create an invoice
type CreateInvoiceRequest struct {
	InvoiceNumber   string            `json:"invoice_number" binding:"max=50"`
	CustomerID      *uuid.UUID        `json:"customer_id"`
	CustomerName    string            `json:"customer_name" binding:"required,min=1,max=200"`
	CustomerPhone   string            `json:"customer_phone" binding:"max=50"`
	CustomerAddress string            `json:"customer_address" binding:"max=500"`
	IssuedAt        *time.Time        `json:"issued_at"`
	Items           []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	Discount        *decimal.Decimal  `json:"discount"`
	Remarks         string            `json:"remarks"`
}

// UpdateInvoiceRequest represents a request to update an invoice
type UpdateInvoiceRequest struct {
	CustomerName    *string           `json:"customer_name" binding:"omitempty,min=1,max=200"`
	CustomerPhone   *string           `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerAddress *string           `json:"customer_address" binding:"omitempty,max=500"`
	IssuedAt        *time.Time        `json:"issued_at"`
	Items           []LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	Discount        *decimal.Decimal  `json:"discount"`
	Remarks         *string           `json:"remarks"`
}

// AddPaymentRequest represents a request to record a payment
type AddPaymentRequest struct {
	Amount    decimal.Decimal `json:"amount" binding:"required"`
	Method    string          `json:"method" binding:"max=50"`
	Reference string          `json:"reference" binding:"max=100"`
	Remarks   string          `json:"remarks"`
	PaidAt    *time.Time      `json:"paid_at"`
}

// VoidInvoiceRequest represents a request to void an invoice
type VoidInvoiceRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// PaymentResponse represents one payment log entry
type PaymentResponse struct {
	ID        uuid.UUID       `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Reference string          `json:"reference"`
	Remarks   string          `json:"remarks"`
	PaidAt    time.Time       `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID              uuid.UUID             `json:"id"`
	InvoiceNumber   string                `json:"invoice_number"`
	CustomerID      *uuid.UUID            `json:"customer_id"`
	CustomerName    string                `json:"customer_name"`
	CustomerPhone   string                `json:"customer_phone"`
	CustomerAddress string                `json:"customer_address"`
	IssuedAt        time.Time             `json:"issued_at"`
	Items           []InvoiceItemResponse `json:"items"`
	Payments        []PaymentResponse     `json:"payments"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	TaxAmount       decimal.Decimal       `json:"tax_amount"`
	DiscountAmount  decimal.Decimal       `json:"discount_amount"`
	TotalAmount     decimal.Decimal       `json:"total_amount"`
	PaidAmount      decimal.Decimal       `json:"paid_amount"`
	DueAmount       decimal.Decimal       `json:"due_amount"`
	Status          string                `json:"status"`
	Remarks         string                `json:"remarks"`
	VoidedAt        *time.Time            `json:"voided_at,omitempty"`
	VoidReason      string                `json:"void_reason,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
	Version         int                   `json:"version"`
}

// InvoiceListFilter represents filter options for invoice list
type InvoiceListFilter struct {
	Search     string `form:"search"`
	Status     string `form:"status" binding:"omitempty,oneof=UNPAID PARTIAL PAID VOID"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	From       string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To         string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToInvoiceResponse converts a domain invoice to a response DTO
func ToInvoiceResponse(inv *billing.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for idx := range inv.Items {
		item := inv.Items[idx]
		items = append(items, InvoiceItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			TaxRate:   item.TaxRate,
			Amount:    item.Amount,
		})
	}

	payments := make([]PaymentResponse, 0, len(inv.Payments))
	for idx := range inv.Payments {
		payment := inv.Payments[idx]
		payments = append(payments, PaymentResponse{
			ID:        payment.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			Reference: payment.Reference,
			Remarks:   payment.Remarks,
			PaidAt:    payment.PaidAt,
			CreatedAt: payment.CreatedAt,
		})
	}

	return InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		CustomerID:      inv.CustomerID,
		CustomerName:    inv.CustomerName,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		IssuedAt:        inv.IssuedAt,
		Items:           items,
		Payments:        payments,
		Subtotal:        inv.Subtotal,
		TaxAmount:       inv.TaxAmount,
		DiscountAmount:  inv.DiscountAmount,
		TotalAmount:     inv.TotalAmount,
		PaidAmount:      inv.PaidAmount,
		DueAmount:       inv.DueAmount,
		Status:          string(inv.Status),
		Remarks:         inv.Remarks,
		VoidedAt:        inv.VoidedAt,
		VoidReason:      inv.VoidReason,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
		Version:         inv.Version,
	}
}

// ToInvoiceResponses converts a slice of domain invoices
func ToInvoiceResponses(invoices []*billing.Invoice) []InvoiceResponse {
	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		responses = append(responses, ToInvoiceResponse(inv))
	}
	return responses
}

// =============================================================================
// Quote DTOs
// =============================================================================

// CreateQuoteRequest represents a request to create a quote
type CreateQuoteRequest struct {
	QuoteNumber     string            `json:"quote_number" binding:"max=50"`
	CustomerID      *uuid.UUID        `json:"customer_id"`
	CustomerName    string            `json:"customer_name" binding:"required,min=1,max=200"`
	CustomerPhone   string            `json:"customer_phone" binding:"max=50"`
	CustomerAddress string            `json:"customer_address" binding:"max=500"`
	ValidUntil      *time.Time        `json:"valid_until"`
	Items           []LineItemRequest `json:"items" binding:"required,min=1,dive"`
	TaxRate         *decimal.Decimal  `json:"tax_rate"`
	Discount        *decimal.Decimal  `json:"discount"`
	Remarks         string            `json:"remarks"`
}

// UpdateQuoteRequest represents a request to update a quote
type UpdateQuoteRequest struct {
	CustomerName    *string           `json:"customer_name" binding:"omitempty,min=1,max=200"`
	CustomerPhone   *string           `json:"customer_phone" binding:"omitempty,max=50"`
	CustomerAddress *string           `json:"customer_address" binding:"omitempty,max=500"`
	ValidUntil      *time.Time        `json:"valid_until"`
	Items           []LineItemRequest `json:"items" binding:"omitempty,min=1,dive"`
	TaxRate         *decimal.Decimal  `json:"tax_rate"`
	Discount        *decimal.Decimal  `json:"discount"`
	Remarks         *string           `json:"remarks"`
}

// QuoteItemResponse represents a quote line in API responses
type QuoteItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID *uuid.UUID      `json:"product_id"`
	SKU       string          `json:"sku"`
	Name      string          `json:"name"`
	Quantity  decimal.Decimal `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Amount    decimal.Decimal `json:"amount"`
}

// QuoteResponse represents a quote in API responses
type QuoteResponse struct {
	ID              uuid.UUID           `json:"id"`
	QuoteNumber     string              `json:"quote_number"`
	CustomerID      *uuid.UUID          `json:"customer_id"`
	CustomerName    string              `json:"customer_name"`
	CustomerPhone   string              `json:"customer_phone"`
	CustomerAddress string              `json:"customer_address"`
	IssuedAt        time.Time           `json:"issued_at"`
	ValidUntil      *time.Time          `json:"valid_until"`
	Items           []QuoteItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	TaxRate         decimal.Decimal     `json:"tax_rate"`
	TaxAmount       decimal.Decimal     `json:"tax_amount"`
	DiscountAmount  decimal.Decimal     `json:"discount_amount"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	Remarks         string              `json:"remarks"`
	ConvertedAt     *time.Time          `json:"converted_at,omitempty"`
	InvoiceID       *uuid.UUID          `json:"invoice_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Version         int                 `json:"version"`
}

// QuoteListFilter represents filter options for quote list
type QuoteListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=OPEN CONVERTED EXPIRED"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToQuoteResponse converts a domain quote to a response DTO
func ToQuoteResponse(q *billing.Quote) QuoteResponse {
	items := make([]QuoteItemResponse, 0, len(q.Items))
	for idx := range q.Items {
		item := q.Items[idx]
		items = append(items, QuoteItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			SKU:       item.SKU,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Amount:    item.Amount,
		})
	}

	return QuoteResponse{
		ID:              q.ID,
		QuoteNumber:     q.QuoteNumber,
		CustomerID:      q.CustomerID,
		CustomerName:    q.CustomerName,
		CustomerPhone:   q.CustomerPhone,
		CustomerAddress: q.CustomerAddress,
		IssuedAt:        q.IssuedAt,
		ValidUntil:      q.ValidUntil,
		Items:           items,
		Subtotal:        q.Subtotal,
		TaxRate:         q.TaxRate,
		TaxAmount:       q.TaxAmount,
		DiscountAmount:  q.DiscountAmount,
		TotalAmount:     q.TotalAmount,
		Status:          string(q.Status),
		Remarks:         q.Remarks,
		ConvertedAt:     q.ConvertedAt,
		InvoiceID:       q.InvoiceID,
		CreatedAt:       q.CreatedAt,
		UpdatedAt:       q.UpdatedAt,
		Version:         q.Version,
	}
}

// ToQuoteResponses converts a slice of domain quotes
func ToQuoteResponses(quotes []*billing.Quote) []QuoteResponse {
	responses := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		responses = append(responses, ToQuoteResponse(q))
	}
	return responses
}
