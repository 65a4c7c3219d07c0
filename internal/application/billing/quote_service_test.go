package billing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ============================================
// Mock Repositories
// ============================================

type MockQuoteRepository struct {
	mock.Mock
}

func (m *MockQuoteRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Quote, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (*billing.Quote, error) {
	args := m.Called(ctx, tenantID, quoteNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Quote), args.Error(1)
}

func (m *MockQuoteRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*billing.Quote, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Quote), args.Error(1)
}

func (m *MockQuoteRepository) Save(ctx context.Context, quote *billing.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) SaveWithLock(ctx context.Context, quote *billing.Quote) error {
	args := m.Called(ctx, quote)
	return args.Error(0)
}

func (m *MockQuoteRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockQuoteRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockQuoteRepository) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, quoteNumber string) (bool, error) {
	args := m.Called(ctx, tenantID, quoteNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockQuoteRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, invoiceNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindIssuedBetween(ctx context.Context, tenantID uuid.UUID, from, to time.Time) ([]*billing.Invoice, error) {
	args := m.Called(ctx, tenantID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) SaveWithLock(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, tenantID uuid.UUID, invoiceNumber string) (bool, error) {
	args := m.Called(ctx, tenantID, invoiceNumber)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) NextNumber(ctx context.Context, tenantID uuid.UUID) (string, error) {
	args := m.Called(ctx, tenantID)
	return args.String(0), args.Error(1)
}

// passthroughTx runs the callback directly without opening a transaction.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// ============================================
// Test Helpers
// ============================================

func newQuoteService() (*QuoteService, *MockQuoteRepository, *MockInvoiceRepository) {
	quoteRepo := new(MockQuoteRepository)
	invoiceRepo := new(MockInvoiceRepository)
	service := NewQuoteService(quoteRepo, invoiceRepo, passthroughTx{})
	return service, quoteRepo, invoiceRepo
}

func createOpenQuote(t *testing.T, tenantID uuid.UUID) *billing.Quote {
	t.Helper()
	quote, err := billing.NewQuote(tenantID, "QUO-2026-0001", nil, "Acme Ltd")
	require.NoError(t, err)
	_, err = quote.AddItem(nil, "WID-1", "Widget", decimal.NewFromInt(4), decimal.NewFromInt(25))
	require.NoError(t, err)
	require.NoError(t, quote.SetTaxRate(decimal.NewFromInt(10)))
	quote.MarkPersisted()
	return quote
}

// ============================================
// Create Tests
// ============================================

func TestQuoteService_Create(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	validReq := func() CreateQuoteRequest {
		return CreateQuoteRequest{
			CustomerName: "Acme Ltd",
			Items: []LineItemRequest{
				{SKU: "WID-1", Name: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
			},
		}
	}

	t.Run("assigns next number when none given", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quoteRepo.On("NextNumber", ctx, tenantID).Return("QUO-2026-0042", nil)
		quoteRepo.On("Save", ctx, mock.AnythingOfType("*billing.Quote")).Return(nil)

		resp, err := service.Create(ctx, tenantID, validReq())

		require.NoError(t, err)
		assert.Equal(t, "QUO-2026-0042", resp.QuoteNumber)
		assert.Equal(t, "100", resp.Subtotal.String())
		assert.Equal(t, string(billing.QuoteStatusOpen), resp.Status)
		quoteRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate explicit number", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		req := validReq()
		req.QuoteNumber = "QUO-2026-0001"
		quoteRepo.On("ExistsByNumber", ctx, tenantID, "QUO-2026-0001").Return(true, nil)

		resp, err := service.Create(ctx, tenantID, req)

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		quoteRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("applies tax rate and discount", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		req := validReq()
		taxRate := decimal.NewFromInt(10)
		discount := decimal.NewFromInt(20)
		req.TaxRate = &taxRate
		req.Discount = &discount
		quoteRepo.On("NextNumber", ctx, tenantID).Return("QUO-2026-0043", nil)
		quoteRepo.On("Save", ctx, mock.AnythingOfType("*billing.Quote")).Return(nil)

		resp, err := service.Create(ctx, tenantID, req)

		require.NoError(t, err)
		assert.Equal(t, "100", resp.Subtotal.String())
		assert.Equal(t, "10", resp.TaxAmount.String())
		assert.Equal(t, "20", resp.DiscountAmount.String())
		assert.Equal(t, "90", resp.TotalAmount.String())
	})
}

// ============================================
// Convert Tests
// ============================================

func TestQuoteService_Convert(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("creates invoice and closes quote in one pass", func(t *testing.T) {
		service, quoteRepo, invoiceRepo := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)
		invoiceRepo.On("NextNumber", ctx, tenantID).Return("INV-2026-0007", nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)
		quoteRepo.On("SaveWithLock", ctx, quote).Return(nil)

		resp, err := service.Convert(ctx, tenantID, quote.ID)

		require.NoError(t, err)
		assert.Equal(t, "INV-2026-0007", resp.InvoiceNumber)
		assert.Equal(t, quote.TotalAmount.String(), resp.TotalAmount.String())
		assert.Equal(t, billing.QuoteStatusConverted, quote.Status)
		require.NotNil(t, quote.InvoiceID)
		assert.Equal(t, resp.ID, *quote.InvoiceID)
		quoteRepo.AssertExpectations(t)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("does not touch the quote when invoice save fails", func(t *testing.T) {
		service, quoteRepo, invoiceRepo := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)
		invoiceRepo.On("NextNumber", ctx, tenantID).Return("INV-2026-0008", nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(assert.AnError)

		resp, err := service.Convert(ctx, tenantID, quote.ID)

		require.Error(t, err)
		assert.Nil(t, resp)
		quoteRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("rejects a second conversion", func(t *testing.T) {
		service, quoteRepo, invoiceRepo := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		_, err := quote.ConvertToInvoice("INV-2026-0009")
		require.NoError(t, err)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)
		invoiceRepo.On("NextNumber", ctx, tenantID).Return("INV-2026-0010", nil)

		resp, err := service.Convert(ctx, tenantID, quote.ID)

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_CONVERTED", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("propagates not found", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quoteID := uuid.New()
		quoteRepo.On("FindByID", ctx, tenantID, quoteID).Return(nil, shared.ErrNotFound)

		resp, err := service.Convert(ctx, tenantID, quoteID)

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

// ============================================
// MarkExpired Tests
// ============================================

func TestQuoteService_MarkExpired(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("expires an open quote", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)
		quoteRepo.On("SaveWithLock", ctx, quote).Return(nil)

		resp, err := service.MarkExpired(ctx, tenantID, quote.ID)

		require.NoError(t, err)
		assert.Equal(t, string(billing.QuoteStatusExpired), resp.Status)
		quoteRepo.AssertExpectations(t)
	})

	t.Run("rejects expiring a converted quote", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		_, err := quote.ConvertToInvoice("INV-2026-0011")
		require.NoError(t, err)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)

		resp, err := service.MarkExpired(ctx, tenantID, quote.ID)

		require.Error(t, err)
		assert.Nil(t, resp)
		quoteRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})
}

// ============================================
// Delete Tests
// ============================================

func TestQuoteService_Delete(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("deletes an existing quote", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quote := createOpenQuote(t, tenantID)
		quoteRepo.On("FindByID", ctx, tenantID, quote.ID).Return(quote, nil)
		quoteRepo.On("Delete", ctx, tenantID, quote.ID).Return(nil)

		err := service.Delete(ctx, tenantID, quote.ID)

		require.NoError(t, err)
		quoteRepo.AssertExpectations(t)
	})

	t.Run("returns not found for missing quote", func(t *testing.T) {
		service, quoteRepo, _ := newQuoteService()
		quoteID := uuid.New()
		quoteRepo.On("FindByID", ctx, tenantID, quoteID).Return(nil, shared.ErrNotFound)

		err := service.Delete(ctx, tenantID, quoteID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
		quoteRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})
}
