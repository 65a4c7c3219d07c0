package billing

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionManager runs a function inside a database transaction.
// Repository calls made with the callback's context join it.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// QuoteService handles quote business operations
type QuoteService struct {
	quoteRepo   billing.QuoteRepository
	invoiceRepo billing.InvoiceRepository
	txManager   TransactionManager
}

// NewQuoteService creates a new QuoteService
func NewQuoteService(quoteRepo billing.QuoteRepository, invoiceRepo billing.InvoiceRepository, txManager TransactionManager) *QuoteService {
	return &QuoteService{
		quoteRepo:   quoteRepo,
		invoiceRepo: invoiceRepo,
		txManager:   txManager,
	}
}

// Create creates a new quote
func (s *QuoteService) Create(ctx context.Context, tenantID uuid.UUID, req CreateQuoteRequest) (*QuoteResponse, error) {
	number := req.QuoteNumber
	if number == "" {
		var err error
		number, err = s.quoteRepo.NextNumber(ctx, tenantID)
		if err != nil {
			return nil, err
		}
	} else {
		exists, err := s.quoteRepo.ExistsByNumber(ctx, tenantID, number)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Quote with this number already exists")
		}
	}

	quote, err := billing.NewQuote(tenantID, number, req.CustomerID, req.CustomerName)
	if err != nil {
		return nil, err
	}
	quote.SetCustomerContact(req.CustomerPhone, req.CustomerAddress)
	if req.ValidUntil != nil {
		if err := quote.SetValidUntil(req.ValidUntil); err != nil {
			return nil, err
		}
	}

	for _, line := range req.Items {
		if _, err := quote.AddItem(line.ProductID, line.SKU, line.Name, line.Quantity, line.UnitPrice); err != nil {
			return nil, err
		}
	}
	if req.TaxRate != nil {
		if err := quote.SetTaxRate(*req.TaxRate); err != nil {
			return nil, err
		}
	}
	if req.Discount != nil {
		if err := quote.ApplyDiscount(*req.Discount); err != nil {
			return nil, err
		}
	}
	if req.Remarks != "" {
		quote.SetRemarks(req.Remarks)
	}

	if err := s.quoteRepo.Save(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// GetByID retrieves a quote by ID
func (s *QuoteService) GetByID(ctx context.Context, tenantID, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// List retrieves quotes with filtering and pagination
func (s *QuoteService) List(ctx context.Context, tenantID uuid.UUID, filter QuoteListFilter) ([]QuoteResponse, int64, error) {
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

	quotes, err := s.quoteRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.quoteRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToQuoteResponses(quotes), total, nil
}

// Update updates a quote
func (s *QuoteService) Update(ctx context.Context, tenantID, quoteID uuid.UUID, req UpdateQuoteRequest) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}

	if req.CustomerName != nil {
		if *req.CustomerName == "" {
			return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
		}
		quote.CustomerName = *req.CustomerName
	}
	if req.CustomerPhone != nil || req.CustomerAddress != nil {
		phone := quote.CustomerPhone
		address := quote.CustomerAddress
		if req.CustomerPhone != nil {
			phone = *req.CustomerPhone
		}
		if req.CustomerAddress != nil {
			address = *req.CustomerAddress
		}
		quote.SetCustomerContact(phone, address)
	}
	if req.ValidUntil != nil {
		if err := quote.SetValidUntil(req.ValidUntil); err != nil {
			return nil, err
		}
	}

	if req.Items != nil {
		items := make([]billing.QuoteItem, 0, len(req.Items))
		for _, line := range req.Items {
			item, err := billing.NewQuoteItem(quote.ID, line.ProductID, line.SKU, line.Name, line.Quantity, line.UnitPrice)
			if err != nil {
				return nil, err
			}
			items = append(items, *item)
		}
		if err := quote.ReplaceItems(items); err != nil {
			return nil, err
		}
	}
	if req.TaxRate != nil {
		if err := quote.SetTaxRate(*req.TaxRate); err != nil {
			return nil, err
		}
	}
	if req.Discount != nil {
		if err := quote.ApplyDiscount(*req.Discount); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		quote.SetRemarks(*req.Remarks)
	}

	if err := s.quoteRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// Convert turns an open quote into an invoice. The new invoice and the
// quote's state change commit in one transaction so a crash can never
// leave a converted quote without its invoice.
func (s *QuoteService) Convert(ctx context.Context, tenantID, quoteID uuid.UUID) (*InvoiceResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}

	number, err := s.invoiceRepo.NextNumber(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	invoice, err := quote.ConvertToInvoice(number)
	if err != nil {
		return nil, err
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.invoiceRepo.Save(txCtx, invoice); err != nil {
			return err
		}
		return s.quoteRepo.SaveWithLock(txCtx, quote)
	})
	if err != nil {
		return nil, err
	}

	response := ToInvoiceResponse(invoice)
	return &response, nil
}

// MarkExpired marks a quote expired
func (s *QuoteService) MarkExpired(ctx context.Context, tenantID, quoteID uuid.UUID) (*QuoteResponse, error) {
	quote, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID)
	if err != nil {
		return nil, err
	}
	if err := quote.MarkExpired(); err != nil {
		return nil, err
	}
	if err := s.quoteRepo.SaveWithLock(ctx, quote); err != nil {
		return nil, err
	}

	response := ToQuoteResponse(quote)
	return &response, nil
}

// Delete deletes a quote
func (s *QuoteService) Delete(ctx context.Context, tenantID, quoteID uuid.UUID) error {
	if _, err := s.quoteRepo.FindByID(ctx, tenantID, quoteID); err != nil {
		return err
	}
	return s.quoteRepo.Delete(ctx, tenantID, quoteID)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
