package partner

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================
// Customer Creation Tests
// ============================================

func TestNewCustomer(t *testing.T) {
	t.Run("valid customer", func(t *testing.T) {
		c, err := NewCustomer(uuid.New(), "cust-001", "Acme Ltd")
		require.NoError(t, err)
		assert.Equal(t, "CUST-001", c.Code)
		assert.Equal(t, "Acme Ltd", c.Name)
		assert.Equal(t, CustomerStatusActive, c.Status)
		assert.True(t, c.IsActive())
		assert.Equal(t, 1, c.Version)
	})

	t.Run("invalid codes", func(t *testing.T) {
		tests := []string{"", "has space", "semi;colon", strings.Repeat("x", 51)}
		for _, code := range tests {
			_, err := NewCustomer(uuid.New(), code, "Name")
			assert.Error(t, err, "code %q", code)
		}
	})

	t.Run("invalid names", func(t *testing.T) {
		tests := []string{"", strings.Repeat("x", 201)}
		for _, name := range tests {
			_, err := NewCustomer(uuid.New(), "C-1", name)
			assert.Error(t, err, "name %q", name)
		}
	})
}

// ============================================
// Contact Tests
// ============================================

func TestCustomer_SetContact(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "C-1", "Acme")
	require.NoError(t, err)

	t.Run("valid contact", func(t *testing.T) {
		require.NoError(t, c.SetContact("Jo Smith", "+1 (555) 010-0100", "jo@acme.example"))
		assert.Equal(t, "Jo Smith", c.ContactName)
	})

	t.Run("invalid phone", func(t *testing.T) {
		assert.Error(t, c.SetContact("Jo", "not-a-phone!", ""))
	})

	t.Run("invalid email", func(t *testing.T) {
		assert.Error(t, c.SetContact("Jo", "", "not-an-email"))
	})

	t.Run("empty fields allowed", func(t *testing.T) {
		assert.NoError(t, c.SetContact("", "", ""))
	})
}

func TestCustomer_SetDeliveryAddress(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "C-1", "Acme")
	require.NoError(t, err)

	require.NoError(t, c.SetDeliveryAddress("1 Main St"))
	assert.Error(t, c.SetDeliveryAddress(strings.Repeat("x", 501)))
}

// ============================================
// Status Tests
// ============================================

func TestCustomer_ActivateDeactivate(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "C-1", "Acme")
	require.NoError(t, err)

	assert.Error(t, c.Activate())
	require.NoError(t, c.Deactivate())
	assert.False(t, c.IsActive())
	assert.Error(t, c.Deactivate())
	require.NoError(t, c.Activate())
	assert.True(t, c.IsActive())
}

// ============================================
// Version Tests
// ============================================

func TestCustomer_VersionAdvancesOncePerPersist(t *testing.T) {
	c, err := NewCustomer(uuid.New(), "C-1", "Acme")
	require.NoError(t, err)

	// several mutations before a save advance the version exactly once
	require.NoError(t, c.Update("Acme Renamed"))
	require.NoError(t, c.SetContact("Jo", "", ""))
	c.SetRemarks("note")
	assert.Equal(t, 2, c.Version)

	c.MarkPersisted()
	require.NoError(t, c.Update("Acme Again"))
	assert.Equal(t, 3, c.Version)
}
