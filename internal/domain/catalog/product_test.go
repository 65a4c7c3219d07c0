package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test helpers
func createTestProduct(t *testing.T, sku string) *Product {
	p, err := NewProduct(uuid.New(), sku, "Test Product")
	require.NoError(t, err)
	return p
}

// ============================================
// Product Creation Tests
// ============================================

func TestNewProduct(t *testing.T) {
	t.Run("valid product", func(t *testing.T) {
		p := createTestProduct(t, "wdg-001")
		assert.Equal(t, "WDG-001", p.SKU)
		assert.Equal(t, ProductStatusActive, p.Status)
		assert.Equal(t, 1, p.Stock)
		assert.True(t, p.IsInHouse())
		assert.NotNil(t, p.Attributes)
	})

	t.Run("invalid SKU", func(t *testing.T) {
		tests := []string{"", "has space", "semi;colon", "slash/"}
		for _, sku := range tests {
			_, err := NewProduct(uuid.New(), sku, "Name")
			assert.Error(t, err, "sku %q", sku)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewProduct(uuid.New(), "SKU-1", "")
		assert.Error(t, err)
	})
}

func TestProduct_SetPrices(t *testing.T) {
	p := createTestProduct(t, "WDG-001")

	require.NoError(t, p.SetPrices(decimal.NewFromInt(10), decimal.NewFromInt(15)))
	assert.Equal(t, "10", p.BuyingPrice.String())

	assert.Error(t, p.SetPrices(decimal.NewFromInt(-1), decimal.NewFromInt(15)))
}

func TestProduct_SetSupplier(t *testing.T) {
	p := createTestProduct(t, "WDG-001")
	supplierID := uuid.New()

	p.SetSupplier(&supplierID, "Acme Supplies")
	assert.False(t, p.IsInHouse())
	assert.Equal(t, "Acme Supplies", p.SupplierName)

	// clearing the supplier clears the snapshot name too
	p.SetSupplier(nil, "stale")
	assert.True(t, p.IsInHouse())
	assert.Empty(t, p.SupplierName)
}

func TestProduct_SetStock(t *testing.T) {
	p := createTestProduct(t, "WDG-001")

	p.SetStock(5)
	assert.Equal(t, 5, p.Stock)

	p.SetStock(-3)
	assert.Equal(t, 0, p.Stock)
}

func TestProduct_SetAttributes(t *testing.T) {
	p := createTestProduct(t, "WDG-001")

	require.NoError(t, p.SetAttributes(Attributes{{Name: "color", Value: "red"}}))
	assert.Len(t, p.Attributes, 1)

	assert.Error(t, p.SetAttributes(Attributes{{Name: "", Value: "x"}}))

	require.NoError(t, p.SetAttributes(nil))
	assert.NotNil(t, p.Attributes)
}

func TestProduct_ActivateDeactivate(t *testing.T) {
	p := createTestProduct(t, "WDG-001")

	assert.Error(t, p.Activate())
	require.NoError(t, p.Deactivate())
	assert.Equal(t, ProductStatusInactive, p.Status)
	assert.Error(t, p.Deactivate())
	require.NoError(t, p.Activate())
}

// ============================================
// Stock Aggregation Tests
// ============================================

func TestAggregateStock(t *testing.T) {
	t.Run("rows sharing a SKU collapse", func(t *testing.T) {
		a1 := createTestProduct(t, "WDG-001")
		a1.SetStock(3)
		a2 := createTestProduct(t, "WDG-001")
		a2.SetStock(2)
		b := createTestProduct(t, "GDG-002")
		b.SetStock(7)

		summaries := AggregateStock([]*Product{a1, b, a2})
		require.Len(t, summaries, 2)

		assert.Equal(t, "WDG-001", summaries[0].SKU)
		assert.Equal(t, 5, summaries[0].TotalStock)
		assert.Equal(t, 2, summaries[0].RowCount)
		assert.Equal(t, a1.ID, summaries[0].ID)

		assert.Equal(t, "GDG-002", summaries[1].SKU)
		assert.Equal(t, 7, summaries[1].TotalStock)
		assert.Equal(t, 1, summaries[1].RowCount)
	})

	t.Run("negative stock counts as zero", func(t *testing.T) {
		p := createTestProduct(t, "WDG-001")
		p.Stock = -4

		summaries := AggregateStock([]*Product{p})
		require.Len(t, summaries, 1)
		assert.Equal(t, 0, summaries[0].TotalStock)
	})

	t.Run("nil rows are skipped", func(t *testing.T) {
		p := createTestProduct(t, "WDG-001")
		summaries := AggregateStock([]*Product{nil, p, nil})
		assert.Len(t, summaries, 1)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, AggregateStock(nil))
	})
}
