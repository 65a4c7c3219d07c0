package report

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
// Mock Repository
// ============================================

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

// ============================================
// Test Helpers
// ============================================

func issuedInvoice(t *testing.T, tenantID uuid.UUID, number, day, sku string, qty, price int64) *billing.Invoice {
	t.Helper()
	inv, err := billing.NewInvoice(tenantID, number, nil, "Acme Ltd")
	require.NoError(t, err)
	_, err = inv.AddItem(nil, sku, "Item "+sku, decimal.NewFromInt(qty), decimal.NewFromInt(price), decimal.Zero)
	require.NoError(t, err)
	issuedAt, err := time.Parse("2006-01-02", day)
	require.NoError(t, err)
	require.NoError(t, inv.SetIssuedAt(issuedAt))
	return inv
}

// ============================================
// Generate Tests
// ============================================

func TestSalesReportService_Generate(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("aggregates totals per day and overall", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewSalesReportService(repo)

		invoices := []*billing.Invoice{
			issuedInvoice(t, tenantID, "INV-1", "2026-03-02", "WID-1", 2, 50),
			issuedInvoice(t, tenantID, "INV-2", "2026-03-02", "GAD-1", 1, 30),
			issuedInvoice(t, tenantID, "INV-3", "2026-03-05", "WID-1", 1, 50),
		}
		repo.On("FindIssuedBetween", ctx, tenantID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(invoices, nil)

		report, err := service.Generate(ctx, tenantID, SalesReportFilter{From: "2026-03-01", To: "2026-03-31"})

		require.NoError(t, err)
		assert.Equal(t, 3, report.InvoiceCount)
		assert.Equal(t, "180", report.Total.String())
		assert.Equal(t, "180", report.Due.String())
		assert.Equal(t, "0", report.Paid.String())

		require.Len(t, report.Daily, 2)
		assert.Equal(t, "2026-03-02", report.Daily[0].Date)
		assert.Equal(t, 2, report.Daily[0].InvoiceCount)
		assert.Equal(t, "130", report.Daily[0].Total.String())
		assert.Equal(t, "2026-03-05", report.Daily[1].Date)
		assert.Equal(t, "50", report.Daily[1].Total.String())
	})

	t.Run("ranks top products by revenue", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewSalesReportService(repo)

		invoices := []*billing.Invoice{
			issuedInvoice(t, tenantID, "INV-1", "2026-03-02", "WID-1", 2, 50),
			issuedInvoice(t, tenantID, "INV-2", "2026-03-03", "GAD-1", 10, 30),
			issuedInvoice(t, tenantID, "INV-3", "2026-03-04", "WID-1", 1, 50),
		}
		repo.On("FindIssuedBetween", ctx, tenantID, mock.Anything, mock.Anything).Return(invoices, nil)

		report, err := service.Generate(ctx, tenantID, SalesReportFilter{From: "2026-03-01", To: "2026-03-31"})

		require.NoError(t, err)
		require.Len(t, report.TopProducts, 2)
		assert.Equal(t, "GAD-1", report.TopProducts[0].SKU)
		assert.Equal(t, "300", report.TopProducts[0].Revenue.String())
		assert.Equal(t, "WID-1", report.TopProducts[1].SKU)
		assert.Equal(t, "3", report.TopProducts[1].Quantity.String())
		assert.Equal(t, "150", report.TopProducts[1].Revenue.String())
	})

	t.Run("excludes void invoices", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewSalesReportService(repo)

		voided := issuedInvoice(t, tenantID, "INV-1", "2026-03-02", "WID-1", 2, 50)
		require.NoError(t, voided.Void("entry error"))
		invoices := []*billing.Invoice{
			voided,
			issuedInvoice(t, tenantID, "INV-2", "2026-03-02", "GAD-1", 1, 30),
		}
		repo.On("FindIssuedBetween", ctx, tenantID, mock.Anything, mock.Anything).Return(invoices, nil)

		report, err := service.Generate(ctx, tenantID, SalesReportFilter{From: "2026-03-01", To: "2026-03-31"})

		require.NoError(t, err)
		assert.Equal(t, 1, report.InvoiceCount)
		assert.Equal(t, "30", report.Total.String())
		require.Len(t, report.TopProducts, 1)
		assert.Equal(t, "GAD-1", report.TopProducts[0].SKU)
	})

	t.Run("queries an inclusive window", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewSalesReportService(repo)

		var gotFrom, gotTo time.Time
		repo.On("FindIssuedBetween", ctx, tenantID, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				gotFrom = args.Get(2).(time.Time)
				gotTo = args.Get(3).(time.Time)
			}).
			Return([]*billing.Invoice{}, nil)

		_, err := service.Generate(ctx, tenantID, SalesReportFilter{From: "2026-03-01", To: "2026-03-01"})

		require.NoError(t, err)
		assert.Equal(t, "2026-03-01", gotFrom.Format("2006-01-02"))
		assert.True(t, gotTo.After(gotFrom))
		assert.Equal(t, "2026-03-01", gotTo.Format("2006-01-02"))
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		repo := new(MockInvoiceRepository)
		service := NewSalesReportService(repo)

		report, err := service.Generate(ctx, tenantID, SalesReportFilter{From: "2026-03-31", To: "2026-03-01"})

		require.Error(t, err)
		assert.Nil(t, report)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE_RANGE", domainErr.Code)
		repo.AssertNotCalled(t, "FindIssuedBetween", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
