package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
)

// InvoiceService handles invoice business operations
type InvoiceService struct {
	invoiceRepo billing.InvoiceRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new invoice. When no invoice number is supplied the
// repository sequence assigns one.
func (s *InvoiceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	number := req.InvoiceNumber
	if number == "" {
		var err error
		number, err = s.invoiceRepo.NextNumber(ctx, tenantID)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.invoiceRepo.ExistsByNumber(ctx, tenantID, number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
		}
	}

	invoice, err := billing.NewInvoice(tenantID, number, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}
	invoice.SetCustomerContact(req.CustomerPhone, req.CustomerAddress)
	if req.IssuedAt != nil {
		if err := invoice.SetIssuedAt(*req.IssuedAt); err != nil {
			return nil, err
		}
	}

	for _, line := range req.Items {
		taxRate := decimalOrZero(line.TaxRate)
		if _, err := invoice.AddItem(line.ProductID, line.SKU, line.Name, line.Quantity, line.UnitPrice, taxRate); err != nil {
			return nil, err
		}
	}
	if req.Discount != nil {
		if err := invoice.ApplyDiscount(*req.Discount); err != nil {
			return nil, err
		}
	}
	if req.Remarks != "" {
		invoice.SetRemarks(req.Remarks)
	}

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// GetByID retrieves an invoice by ID
func (s *InvoiceService) GetByID(ctx context.Context, tenantID, invoiceID uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// List retrieves invoices with filtering and pagination
func (s *InvoiceService) List(ctx context.Context, tenantID uuid.UUID, filter InvoiceListFilter) ([]InvoiceResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	} else {
		domainFilter.OrderBy = "issued_at"
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.CustomerID != "" {
		domainFilter.Filters["customer_id"] = filter.CustomerID
	}
	if filter.From != "" {
		domainFilter.Filters["issued_from"] = filter.From
	}
	if filter.To != "" {
		domainFilter.Filters["issued_to"] = filter.To
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToInvoiceResponses(invoices), total, nil
}

// Update updates an invoice. Items, when present, replace the full
// line set; totals and due re-derive server-side.
func (s *InvoiceService) Update(ctx context.Context, tenantID, invoiceID uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		if *req.CustomerName == "" {
			return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
		}
		invoice.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil || req.CustomerAddress != nil {
		phone := invoice.CustomerPhone
		address := invoice.CustomerAddress
		if req.CustomerPhone != nil {
			phone = *req.CustomerPhone
		}
		if req.CustomerAddress != nil {
			address = *req.CustomerAddress
		}
		invoice.SetCustomerContact(phone, address)
	}
	if req.IssuedAt != nil {
		if err := invoice.SetIssuedAt(*req.IssuedAt); err != nil {
			return nil, err
		}
	}

	if req.Items != nil {
		items := make([]billing.InvoiceItem, 0, len(req.Items))
		for _, line := range req.Items {
			item, err := billing.NewInvoiceItem(invoice.ID, line.ProductID, line.SKU, line.Name, line.Quantity, line.UnitPrice, decimalOrZero(line.TaxRate))
			if err != nil {
				return nil, err
			}
			items = append(items, *item)
		}
		if err := invoice.ReplaceItems(items); err != nil {
			return nil, err
		}
	}
	if req.Discount != nil {
		if err := invoice.ApplyDiscount(*req.Discount); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		invoice.SetRemarks(*req.Remarks)
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// AddPayment appends a payment to the invoice's log
func (s *InvoiceService) AddPayment(ctx context.Context, tenantID, invoiceID uuid.UUID, req AddPaymentRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}

	paidAt := time.Time{}
	if req.PaidAt != nil {
		paidAt = *req.PaidAt
	}
	if _, err := invoice.AddPayment(req.Amount, req.Method, req.Reference, req.Remarks, paidAt); err != nil {
		return nil, err
	}

	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Void voids an invoice
func (s *InvoiceService) Void(ctx context.Context, tenantID, invoiceID uuid.UUID, reason string) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID)
	if err != nil {
		return nil, err
	}
	if err := invoice.Void(reason); err != nil {
		return nil, err
	}
	if err := s.invoiceRepo.SaveWithLock(ctx, invoice); err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// Delete deletes an invoice
func (s *InvoiceService) Delete(ctx context.Context, tenantID, invoiceID uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, tenantID, invoiceID); err != nil {
		return err
	}
	return s.invoiceRepo.Delete(ctx, tenantID, invoiceID)
}
