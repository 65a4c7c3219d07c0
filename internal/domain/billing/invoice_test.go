package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestInvoice(t *testing.T) *Invoice {
	tenantID := uuid.New()
	customerID := uuid.New()
	inv, err := NewInvoice(tenantID, "INV-000001", &customerID, "Test Customer")
	require.NoError(t, err)
	return inv
}

func addTestInvoiceItem(t *testing.T, inv *Invoice, name string, quantity, price, taxRate float64) *InvoiceItem {
	productID := uuid.New()
	item, err := inv.AddItem(&productID, "SKU-001", name,
		decimal.NewFromFloat(quantity), decimal.NewFromFloat(price), decimal.NewFromFloat(taxRate))
	require.NoError(t, err)
	return item
}

// ============================================
// InvoiceStatus Tests
// ============================================

func TestInvoiceStatus_IsValid(t *testing.T) {
	tests := []struct {
		status  InvoiceStatus
		isValid bool
	}{
		{InvoiceStatusUnpaid, true},
		{InvoiceStatusPartial, true},
		{InvoiceStatusPaid, true},
		{InvoiceStatusVoid, true},
		{InvoiceStatus("INVALID"), false},
		{InvoiceStatus(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			assert.Equal(t, tt.isValid, tt.status.IsValid())
		})
	}
}

// ============================================
// Invoice Creation Tests
// ============================================

func TestNewInvoice(t *testing.T) {
	t.Run("valid invoice", func(t *testing.T) {
		inv := createTestInvoice(t)
		assert.Equal(t, "INV-000001", inv.InvoiceNumber)
		assert.Equal(t, "Test Customer", inv.CustomerName)
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
		assert.True(t, inv.Subtotal.IsZero())
		assert.True(t, inv.TotalAmount.IsZero())
		assert.Empty(t, inv.Items)
		assert.Empty(t, inv.Payments)
	})

	t.Run("empty invoice number", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), "", nil, "Customer")
		assert.Error(t, err)
	})

	t.Run("empty customer name", func(t *testing.T) {
		_, err := NewInvoice(uuid.New(), "INV-000001", nil, "")
		assert.Error(t, err)
	})

	t.Run("walk-in customer without customer ID", func(t *testing.T) {
		inv, err := NewInvoice(uuid.New(), "INV-000002", nil, "Walk-in")
		require.NoError(t, err)
		assert.Nil(t, inv.CustomerID)
	})
}

// ============================================
// Line Item and Totals Tests
// ============================================

func TestInvoice_AddItem(t *testing.T) {
	t.Run("totals derive from items", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 2, 100, 10)
		addTestInvoiceItem(t, inv, "Gadget", 1, 50, 0)

		assert.Equal(t, "250", inv.Subtotal.String())
		assert.Equal(t, "20", inv.TaxAmount.String())
		assert.Equal(t, "270", inv.TotalAmount.String())
		assert.Equal(t, "270", inv.DueAmount.String())
		assert.Equal(t, InvoiceStatusUnpaid, inv.Status)
	})

	t.Run("zero quantity rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		_, err := inv.AddItem(nil, "", "Widget", decimal.Zero, decimal.NewFromInt(10), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		_, err := inv.AddItem(nil, "", "Widget", decimal.NewFromInt(1), decimal.NewFromInt(-1), decimal.Zero)
		assert.Error(t, err)
	})

	t.Run("tax rate above 100 rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		_, err := inv.AddItem(nil, "", "Widget", decimal.NewFromInt(1), decimal.NewFromInt(10), decimal.NewFromInt(101))
		assert.Error(t, err)
	})
}

func TestInvoice_UpdateItemQuantity(t *testing.T) {
	inv := createTestInvoice(t)
	item := addTestInvoiceItem(t, inv, "Widget", 2, 100, 0)

	require.NoError(t, inv.UpdateItemQuantity(item.ID, decimal.NewFromInt(5)))
	assert.Equal(t, "500", inv.Subtotal.String())

	err := inv.UpdateItemQuantity(uuid.New(), decimal.NewFromInt(1))
	assert.Error(t, err)
}

func TestInvoice_RemoveItem(t *testing.T) {
	inv := createTestInvoice(t)
	item := addTestInvoiceItem(t, inv, "Widget", 2, 100, 0)
	addTestInvoiceItem(t, inv, "Gadget", 1, 50, 0)

	require.NoError(t, inv.RemoveItem(item.ID))
	assert.Len(t, inv.Items, 1)
	assert.Equal(t, "50", inv.Subtotal.String())

	assert.Error(t, inv.RemoveItem(uuid.New()))
}

func TestInvoice_ApplyDiscount(t *testing.T) {
	t.Run("discount reduces total", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		require.NoError(t, inv.ApplyDiscount(decimal.NewFromInt(20)))
		assert.Equal(t, "80", inv.TotalAmount.String())
		assert.Equal(t, "80", inv.DueAmount.String())
	})

	t.Run("negative discount rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)
		assert.Error(t, inv.ApplyDiscount(decimal.NewFromInt(-1)))
	})

	t.Run("discount exceeding total rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)
		assert.Error(t, inv.ApplyDiscount(decimal.NewFromInt(101)))
	})
}

// ============================================
// Payment Tests
// ============================================

func TestInvoice_AddPayment(t *testing.T) {
	t.Run("partial payment", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		_, err := inv.AddPayment(decimal.NewFromInt(40), "cash", "", "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusPartial, inv.Status)
		assert.Equal(t, "40", inv.PaidAmount.String())
		assert.Equal(t, "60", inv.DueAmount.String())
	})

	t.Run("payment settling the balance marks paid", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		_, err := inv.AddPayment(decimal.NewFromInt(40), "cash", "", "", time.Now())
		require.NoError(t, err)
		_, err = inv.AddPayment(decimal.NewFromInt(60), "card", "TXN-1", "", time.Now())
		require.NoError(t, err)
		assert.Equal(t, InvoiceStatusPaid, inv.Status)
		assert.True(t, inv.DueAmount.IsZero())
		assert.Len(t, inv.Payments, 2)
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		_, err := inv.AddPayment(decimal.NewFromInt(101), "cash", "", "", time.Now())
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "OVERPAYMENT", domainErr.Code)
	})

	t.Run("zero payment rejected", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		_, err := inv.AddPayment(decimal.Zero, "cash", "", "", time.Now())
		assert.Error(t, err)
	})

	t.Run("zero paid-at defaults to now", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)

		payment, err := inv.AddPayment(decimal.NewFromInt(10), "cash", "", "", time.Time{})
		require.NoError(t, err)
		assert.False(t, payment.PaidAt.IsZero())
	})
}

// ============================================
// Void Tests
// ============================================

func TestInvoice_Void(t *testing.T) {
	t.Run("void preserves amounts", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)
		_, err := inv.AddPayment(decimal.NewFromInt(40), "cash", "", "", time.Now())
		require.NoError(t, err)

		require.NoError(t, inv.Void("entered in error"))
		assert.Equal(t, InvoiceStatusVoid, inv.Status)
		assert.Equal(t, "entered in error", inv.VoidReason)
		assert.NotNil(t, inv.VoidedAt)
		assert.Equal(t, "40", inv.PaidAmount.String())
	})

	t.Run("void is terminal", func(t *testing.T) {
		inv := createTestInvoice(t)
		require.NoError(t, inv.Void("dup"))
		assert.Error(t, inv.Void("again"))
	})

	t.Run("void invoice rejects mutation", func(t *testing.T) {
		inv := createTestInvoice(t)
		addTestInvoiceItem(t, inv, "Widget", 1, 100, 0)
		require.NoError(t, inv.Void("dup"))

		_, err := inv.AddItem(nil, "", "Late", decimal.NewFromInt(1), decimal.NewFromInt(1), decimal.Zero)
		assert.Error(t, err)
		_, err = inv.AddPayment(decimal.NewFromInt(1), "cash", "", "", time.Now())
		assert.Error(t, err)
		assert.Error(t, inv.ApplyDiscount(decimal.NewFromInt(1)))
		assert.Error(t, inv.SetIssuedAt(time.Now()))
	})
}

// ============================================
// Rounding Tests
// ============================================

func TestInvoice_Rounding(t *testing.T) {
	inv := createTestInvoice(t)
	// 3 * 0.333 = 0.999, with 7.5% tax
	addTestInvoiceItem(t, inv, "Widget", 3, 0.333, 7.5)

	assert.Equal(t, "1", inv.Subtotal.String())
	assert.Equal(t, "0.07", inv.TaxAmount.String())
	assert.Equal(t, "1.07", inv.TotalAmount.String())
}
