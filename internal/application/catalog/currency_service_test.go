package catalog

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ============================================
// Mock Repository
// ============================================

type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Currency, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*catalog.Currency, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]*catalog.Currency, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindDefault(ctx context.Context, tenantID uuid.UUID) (*catalog.Currency, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) Save(ctx context.Context, currency *catalog.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) SetDefault(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCurrencyRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCurrencyRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

// memoryCache is an in-process ReferenceCache for tests
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

// ============================================
// Test Helpers
// ============================================

func createTestCurrency(t *testing.T, tenantID uuid.UUID, code string) *catalog.Currency {
	t.Helper()
	currency, err := catalog.NewCurrency(tenantID, code, "$", "Test "+code, 2)
	require.NoError(t, err)
	return currency
}

// ============================================
// Create Tests
// ============================================

func TestCurrencyService_Create(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("first currency becomes default", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		repo.On("ExistsByCode", ctx, tenantID, "USD").Return(false, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(0), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Currency")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCurrencyRequest{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalPlaces: 2})

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("later currency is not default unless requested", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		repo.On("ExistsByCode", ctx, tenantID, "EUR").Return(false, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Currency")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCurrencyRequest{Code: "EUR", Symbol: "€", Name: "Euro", DecimalPlaces: 2})

		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("requested default swaps atomically", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		repo.On("ExistsByCode", ctx, tenantID, "EUR").Return(false, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)
		repo.On("Save", ctx, mock.AnythingOfType("*catalog.Currency")).Return(nil)
		repo.On("SetDefault", ctx, tenantID, mock.AnythingOfType("uuid.UUID")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCurrencyRequest{Code: "EUR", Symbol: "€", Name: "Euro", DecimalPlaces: 2, IsDefault: true})

		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		repo.On("ExistsByCode", ctx, tenantID, "USD").Return(true, nil)

		resp, err := service.Create(ctx, tenantID, CreateCurrencyRequest{Code: "USD", Symbol: "$", Name: "US Dollar", DecimalPlaces: 2})

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
	})
}

// ============================================
// List Tests
// ============================================

func TestCurrencyService_List(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("second read served from cache", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		cache := newMemoryCache()
		service := NewCurrencyService(repo, cache)
		usd := createTestCurrency(t, tenantID, "USD")
		repo.On("FindAll", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return([]*catalog.Currency{usd}, nil).Once()

		first, err := service.List(ctx, tenantID)
		require.NoError(t, err)
		second, err := service.List(ctx, tenantID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		repo.AssertNumberOfCalls(t, "FindAll", 1)
	})

	t.Run("mutation invalidates cache", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		cache := newMemoryCache()
		service := NewCurrencyService(repo, cache)
		usd := createTestCurrency(t, tenantID, "USD")
		repo.On("FindAll", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return([]*catalog.Currency{usd}, nil)
		repo.On("FindByID", ctx, tenantID, usd.ID).Return(usd, nil)
		repo.On("Save", ctx, usd).Return(nil)

		_, err := service.List(ctx, tenantID)
		require.NoError(t, err)

		name := "Updated Dollar"
		_, err = service.Update(ctx, tenantID, usd.ID, UpdateCurrencyRequest{Name: &name})
		require.NoError(t, err)

		_, err = service.List(ctx, tenantID)
		require.NoError(t, err)
		repo.AssertNumberOfCalls(t, "FindAll", 2)
	})
}

// ============================================
// Delete Tests
// ============================================

func TestCurrencyService_Delete(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("refuses to delete the default while others remain", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		usd := createTestCurrency(t, tenantID, "USD")
		usd.MarkDefault()
		repo.On("FindByID", ctx, tenantID, usd.ID).Return(usd, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(2), nil)

		err := service.Delete(ctx, tenantID, usd.ID)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "DEFAULT_CURRENCY", domainErr.Code)
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("deletes the last remaining default", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		usd := createTestCurrency(t, tenantID, "USD")
		usd.MarkDefault()
		repo.On("FindByID", ctx, tenantID, usd.ID).Return(usd, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(1), nil)
		repo.On("Delete", ctx, tenantID, usd.ID).Return(nil)

		err := service.Delete(ctx, tenantID, usd.ID)

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("deletes a non-default currency", func(t *testing.T) {
		repo := new(MockCurrencyRepository)
		service := NewCurrencyService(repo, nil)
		eur := createTestCurrency(t, tenantID, "EUR")
		repo.On("FindByID", ctx, tenantID, eur.ID).Return(eur, nil)
		repo.On("Delete", ctx, tenantID, eur.ID).Return(nil)

		err := service.Delete(ctx, tenantID, eur.ID)

		require.NoError(t, err)
		repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything, mock.Anything)
	})
}
