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
func createTestQuote(t *testing.T) *Quote {
	tenantID := uuid.New()
	customerID := uuid.New()
	q, err := NewQuote(tenantID, "QUO-000001", &customerID, "Test Customer")
	require.NoError(t, err)
	return q
}

func addTestQuoteItem(t *testing.T, q *Quote, name string, quantity, price float64) *QuoteItem {
	productID := uuid.New()
	item, err := q.AddItem(&productID, "SKU-001", name,
		decimal.NewFromFloat(quantity), decimal.NewFromFloat(price))
	require.NoError(t, err)
	return item
}

// ============================================
// Quote Creation Tests
// ============================================

func TestNewQuote(t *testing.T) {
	t.Run("valid quote", func(t *testing.T) {
		q := createTestQuote(t)
		assert.Equal(t, "QUO-000001", q.QuoteNumber)
		assert.Equal(t, QuoteStatusOpen, q.Status)
		assert.True(t, q.TotalAmount.IsZero())
		assert.Empty(t, q.Items)
	})

	t.Run("empty quote number", func(t *testing.T) {
		_, err := NewQuote(uuid.New(), "", nil, "Customer")
		assert.Error(t, err)
	})

	t.Run("empty customer name", func(t *testing.T) {
		_, err := NewQuote(uuid.New(), "QUO-000001", nil, "")
		assert.Error(t, err)
	})
}

// ============================================
// Totals Tests
// ============================================

func TestQuote_Totals(t *testing.T) {
	t.Run("flat tax applies to subtotal", func(t *testing.T) {
		q := createTestQuote(t)
		addTestQuoteItem(t, q, "Widget", 2, 100)
		addTestQuoteItem(t, q, "Gadget", 1, 50)
		require.NoError(t, q.SetTaxRate(decimal.NewFromInt(10)))

		assert.Equal(t, "250", q.Subtotal.String())
		assert.Equal(t, "25", q.TaxAmount.String())
		assert.Equal(t, "275", q.TotalAmount.String())
	})

	t.Run("discount reduces total", func(t *testing.T) {
		q := createTestQuote(t)
		addTestQuoteItem(t, q, "Widget", 1, 100)
		require.NoError(t, q.ApplyDiscount(decimal.NewFromInt(30)))
		assert.Equal(t, "70", q.TotalAmount.String())
	})

	t.Run("tax rate above 100 rejected", func(t *testing.T) {
		q := createTestQuote(t)
		assert.Error(t, q.SetTaxRate(decimal.NewFromInt(101)))
	})
}

// ============================================
// Expiry Tests
// ============================================

func TestQuote_MarkExpired(t *testing.T) {
	q := createTestQuote(t)
	require.NoError(t, q.MarkExpired())
	assert.Equal(t, QuoteStatusExpired, q.Status)

	// terminal
	assert.Error(t, q.MarkExpired())
}

func TestQuote_ClosedQuoteRejectsMutation(t *testing.T) {
	q := createTestQuote(t)
	item := addTestQuoteItem(t, q, "Widget", 1, 100)
	require.NoError(t, q.MarkExpired())

	_, err := q.AddItem(nil, "", "Late", decimal.NewFromInt(1), decimal.NewFromInt(1))
	assert.Error(t, err)
	assert.Error(t, q.RemoveItem(item.ID))
	assert.Error(t, q.SetTaxRate(decimal.NewFromInt(5)))
	assert.Error(t, q.ApplyDiscount(decimal.NewFromInt(1)))
	until := time.Now()
	assert.Error(t, q.SetValidUntil(&until))
}

// ============================================
// Conversion Tests
// ============================================

func TestQuote_ConvertToInvoice(t *testing.T) {
	t.Run("invoice carries items and totals", func(t *testing.T) {
		q := createTestQuote(t)
		q.SetCustomerContact("555-0100", "1 Main St")
		addTestQuoteItem(t, q, "Widget", 2, 100)
		require.NoError(t, q.SetTaxRate(decimal.NewFromInt(10)))
		require.NoError(t, q.ApplyDiscount(decimal.NewFromInt(20)))

		inv, err := q.ConvertToInvoice("INV-000009")
		require.NoError(t, err)

		assert.Equal(t, "INV-000009", inv.InvoiceNumber)
		assert.Equal(t, q.CustomerName, inv.CustomerName)
		assert.Equal(t, "555-0100", inv.CustomerPhone)
		assert.Len(t, inv.Items, 1)
		assert.Equal(t, q.TotalAmount.String(), inv.TotalAmount.String())

		assert.Equal(t, QuoteStatusConverted, q.Status)
		assert.NotNil(t, q.ConvertedAt)
		require.NotNil(t, q.InvoiceID)
		assert.Equal(t, inv.ID, *q.InvoiceID)
	})

	t.Run("converts at most once", func(t *testing.T) {
		q := createTestQuote(t)
		addTestQuoteItem(t, q, "Widget", 1, 100)
		_, err := q.ConvertToInvoice("INV-000010")
		require.NoError(t, err)

		_, err = q.ConvertToInvoice("INV-000011")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_CONVERTED", domainErr.Code)
	})

	t.Run("expired quote cannot convert", func(t *testing.T) {
		q := createTestQuote(t)
		addTestQuoteItem(t, q, "Widget", 1, 100)
		require.NoError(t, q.MarkExpired())

		_, err := q.ConvertToInvoice("INV-000012")
		assert.Error(t, err)
	})

	t.Run("empty quote cannot convert", func(t *testing.T) {
		q := createTestQuote(t)
		_, err := q.ConvertToInvoice("INV-000013")
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NO_ITEMS", domainErr.Code)
	})
}
