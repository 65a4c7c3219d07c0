package billing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/backend/internal/domain/billing"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ============================================
// Test Helpers
// ============================================

func newInvoiceService() (*InvoiceService, *MockInvoiceRepository) {
	invoiceRepo := new(MockInvoiceRepository)
	return NewInvoiceService(invoiceRepo), invoiceRepo
}

func createUnpaidInvoice(t *testing.T, tenantID uuid.UUID) *billing.Invoice {
	t.Helper()
	invoice, err := billing.NewInvoice(tenantID, "INV-2026-0001", nil, "Acme Ltd")
	require.NoError(t, err)
	_, err = invoice.AddItem(nil, "WID-1", "Widget", decimal.NewFromInt(2), decimal.NewFromInt(50), decimal.Zero)
	require.NoError(t, err)
	invoice.MarkPersisted()
	return invoice
}

// ============================================
// Create Tests
// ============================================

func TestInvoiceService_Create(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	validReq := func() CreateInvoiceRequest {
		return CreateInvoiceRequest{
			CustomerName: "Acme Ltd",
			Items: []LineItemRequest{
				{SKU: "WID-1", Name: "Widget", Quantity: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(50)},
			},
		}
	}

	t.Run("assigns next number when none given", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoiceRepo.On("NextNumber", ctx, tenantID).Return("INV-2026-0042", nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*billing.Invoice")).Return(nil)

		resp, err := service.Create(ctx, tenantID, validReq())

		require.NoError(t, err)
		assert.Equal(t, "INV-2026-0042", resp.InvoiceNumber)
		assert.Equal(t, "100", resp.TotalAmount.String())
		assert.Equal(t, "100", resp.DueAmount.String())
		assert.Equal(t, string(billing.InvoiceStatusUnpaid), resp.Status)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate explicit number", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		req := validReq()
		req.InvoiceNumber = "INV-2026-0001"
		invoiceRepo.On("ExistsByNumber", ctx, tenantID, "INV-2026-0001").Return(true, nil)

		resp, err := service.Create(ctx, tenantID, req)

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects request with invalid line", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		req := validReq()
		req.Items[0].Quantity = decimal.Zero
		invoiceRepo.On("NextNumber", ctx, tenantID).Return("INV-2026-0043", nil)

		resp, err := service.Create(ctx, tenantID, req)

		require.Error(t, err)
		assert.Nil(t, resp)
		invoiceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// ============================================
// AddPayment Tests
// ============================================

func TestInvoiceService_AddPayment(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("records partial payment", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("SaveWithLock", ctx, invoice).Return(nil)

		resp, err := service.AddPayment(ctx, tenantID, invoice.ID, AddPaymentRequest{
			Amount: decimal.NewFromInt(40),
			Method: "CASH",
		})

		require.NoError(t, err)
		assert.Equal(t, "40", resp.PaidAmount.String())
		assert.Equal(t, "60", resp.DueAmount.String())
		assert.Equal(t, string(billing.InvoiceStatusPartial), resp.Status)
		require.Len(t, resp.Payments, 1)
		assert.Equal(t, "CASH", resp.Payments[0].Method)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects overpayment without saving", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)

		resp, err := service.AddPayment(ctx, tenantID, invoice.ID, AddPaymentRequest{
			Amount: decimal.NewFromInt(150),
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OVERPAYMENT", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})

	t.Run("propagates concurrency conflict", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("SaveWithLock", ctx, invoice).Return(shared.ErrConcurrencyConflict)

		resp, err := service.AddPayment(ctx, tenantID, invoice.ID, AddPaymentRequest{
			Amount: decimal.NewFromInt(40),
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

// ============================================
// Void Tests
// ============================================

func TestInvoiceService_Void(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("voids an invoice with reason", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("SaveWithLock", ctx, invoice).Return(nil)

		resp, err := service.Void(ctx, tenantID, invoice.ID, "issued in error")

		require.NoError(t, err)
		assert.Equal(t, string(billing.InvoiceStatusVoid), resp.Status)
		assert.Equal(t, "issued in error", resp.VoidReason)
		require.NotNil(t, resp.VoidedAt)
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects voiding twice", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		require.NoError(t, invoice.Void(""))
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)

		resp, err := service.Void(ctx, tenantID, invoice.ID, "again")

		require.Error(t, err)
		assert.Nil(t, resp)
		invoiceRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})
}

// ============================================
// Update Tests
// ============================================

func TestInvoiceService_Update(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("replaces items and re-derives totals", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("SaveWithLock", ctx, invoice).Return(nil)

		resp, err := service.Update(ctx, tenantID, invoice.ID, UpdateInvoiceRequest{
			Items: []LineItemRequest{
				{SKU: "GAD-1", Name: "Gadget", Quantity: decimal.NewFromInt(3), UnitPrice: decimal.NewFromInt(10)},
			},
		})

		require.NoError(t, err)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "GAD-1", resp.Items[0].SKU)
		assert.Equal(t, "30", resp.TotalAmount.String())
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects empty customer name", func(t *testing.T) {
		service, invoiceRepo := newInvoiceService()
		invoice := createUnpaidInvoice(t, tenantID)
		empty := ""
		invoiceRepo.On("FindByID", ctx, tenantID, invoice.ID).Return(invoice, nil)

		resp, err := service.Update(ctx, tenantID, invoice.ID, UpdateInvoiceRequest{CustomerName: &empty})

		require.Error(t, err)
		assert.Nil(t, resp)
		invoiceRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
	})
}
