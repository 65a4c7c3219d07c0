package partner

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/openbooks/backend/internal/domain/partner"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ============================================
// Mock Repository
// ============================================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Customer, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Customer, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SaveWithLock(ctx context.Context, customer *partner.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockCustomerRepository) Count(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

// ============================================
// Test Helpers
// ============================================

func newCustomerService() (*CustomerService, *MockCustomerRepository) {
	repo := new(MockCustomerRepository)
	return NewCustomerService(repo), repo
}

func createActiveCustomer(t *testing.T, tenantID uuid.UUID) *partner.Customer {
	t.Helper()
	customer, err := partner.NewCustomer(tenantID, "CUST-001", "Acme Ltd")
	require.NoError(t, err)
	customer.MarkPersisted()
	return customer
}

// ============================================
// Create Tests
// ============================================

func TestCustomerService_Create(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("creates customer with contact", func(t *testing.T) {
		service, repo := newCustomerService()
		repo.On("ExistsByCode", ctx, tenantID, "cust-001").Return(false, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*partner.Customer")).Return(nil)

		resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{
			Code:  "cust-001",
			Name:  "Acme Ltd",
			Phone: "+1 555 010 0100",
			Email: "billing@acme.example",
		})

		require.NoError(t, err)
		assert.Equal(t, "CUST-001", resp.Code)
		assert.Equal(t, "Acme Ltd", resp.Name)
		assert.Equal(t, "billing@acme.example", resp.Email)
		repo.AssertExpectations(t)
	})

	t.Run("rejects duplicate code", func(t *testing.T) {
		service, repo := newCustomerService()
		repo.On("ExistsByCode", ctx, tenantID, "CUST-001").Return(true, nil)

		resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{Code: "CUST-001", Name: "Acme Ltd"})

		require.Error(t, err)
		assert.Nil(t, resp)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects invalid email without saving", func(t *testing.T) {
		service, repo := newCustomerService()
		repo.On("ExistsByCode", ctx, tenantID, "CUST-002").Return(false, nil)

		resp, err := service.Create(ctx, tenantID, CreateCustomerRequest{
			Code:  "CUST-002",
			Name:  "Acme Ltd",
			Email: "not-an-email",
		})

		require.Error(t, err)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// ============================================
// Update Tests
// ============================================

func TestCustomerService_Update(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("merges partial contact update", func(t *testing.T) {
		service, repo := newCustomerService()
		customer := createActiveCustomer(t, tenantID)
		require.NoError(t, customer.SetContact("Jo", "+1 555 010 0100", "jo@acme.example"))
		customer.MarkPersisted()
		repo.On("FindByID", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("SaveWithLock", ctx, customer).Return(nil)

		phone := "+1 555 010 0199"
		resp, err := service.Update(ctx, tenantID, customer.ID, UpdateCustomerRequest{Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, "+1 555 010 0199", resp.Phone)
		assert.Equal(t, "Jo", resp.ContactName)
		assert.Equal(t, "jo@acme.example", resp.Email)
		repo.AssertExpectations(t)
	})

	t.Run("propagates concurrency conflict", func(t *testing.T) {
		service, repo := newCustomerService()
		customer := createActiveCustomer(t, tenantID)
		repo.On("FindByID", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("SaveWithLock", ctx, customer).Return(shared.ErrConcurrencyConflict)

		name := "Acme Holdings"
		resp, err := service.Update(ctx, tenantID, customer.ID, UpdateCustomerRequest{Name: &name})

		require.Error(t, err)
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
	})
}

// ============================================
// Status Tests
// ============================================

func TestCustomerService_ActivateDeactivate(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("deactivates an active customer", func(t *testing.T) {
		service, repo := newCustomerService()
		customer := createActiveCustomer(t, tenantID)
		repo.On("FindByID", ctx, tenantID, customer.ID).Return(customer, nil)
		repo.On("Save", ctx, customer).Return(nil)

		resp, err := service.Deactivate(ctx, tenantID, customer.ID)

		require.NoError(t, err)
		assert.Equal(t, string(partner.CustomerStatusInactive), resp.Status)
		repo.AssertExpectations(t)
	})

	t.Run("activating an active customer fails", func(t *testing.T) {
		service, repo := newCustomerService()
		customer := createActiveCustomer(t, tenantID)
		repo.On("FindByID", ctx, tenantID, customer.ID).Return(customer, nil)

		resp, err := service.Activate(ctx, tenantID, customer.ID)

		require.Error(t, err)
		assert.Nil(t, resp)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

// ============================================
// List Tests
// ============================================

func TestCustomerService_List(t *testing.T) {
	tenantID := uuid.New()
	ctx := context.Background()

	t.Run("passes filter through and returns total", func(t *testing.T) {
		service, repo := newCustomerService()
		first := createActiveCustomer(t, tenantID)
		repo.On("FindAll", ctx, tenantID, mock.MatchedBy(func(f shared.Filter) bool {
			return f.Page == 2 && f.PageSize == 10 && f.Search == "acme" && f.Filters["status"] == "active"
		})).Return([]partner.Customer{*first}, nil)
		repo.On("Count", ctx, tenantID, mock.AnythingOfType("shared.Filter")).Return(int64(11), nil)

		responses, total, err := service.List(ctx, tenantID, CustomerListFilter{
			Search:   "acme",
			Status:   "active",
			Page:     2,
			PageSize: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, int64(11), total)
		require.Len(t, responses, 1)
		assert.Equal(t, "CUST-001", responses[0].Code)
	})
}
