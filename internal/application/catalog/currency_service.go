package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/shared"
)

func currencyCacheKey(tenantID uuid.UUID) string {
	return "ref:currencies:" + tenantID.String()
}

// CurrencyService handles currency business operations
type CurrencyService struct {
	currencyRepo catalog.CurrencyRepository
	cache        ReferenceCache
}

// NewCurrencyService creates a new CurrencyService
func NewCurrencyService(currencyRepo catalog.CurrencyRepository, cache ReferenceCache) *CurrencyService {
	return &CurrencyService{
		currencyRepo: currencyRepo,
		cache:        cache,
	}
}

// Create creates a new currency. The first currency of a tenant
// becomes the default automatically.
func (s *CurrencyService) Create(ctx context.Context, tenantID uuid.UUID, req CreateCurrencyRequest) (*CurrencyResponse, error) {
	exists, err := s.currencyRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Currency with this code already exists")
	}

	currency, err := catalog.NewCurrency(tenantID, req.Code, req.Symbol, req.Name, req.DecimalPlaces)
	if err != nil {
		return nil, err
	}

	total, err := s.currencyRepo.Count(ctx, tenantID, shared.DefaultFilter())
	if err != nil {
		return nil, err
	}
	if total == 0 {
		currency.MarkDefault()
	}

	if err := s.currencyRepo.Save(ctx, currency); err != nil {
		return nil, err
	}

	if req.IsDefault && !currency.IsDefault {
		if err := s.currencyRepo.SetDefault(ctx, tenantID, currency.ID); err != nil {
			return nil, err
		}
		currency.MarkDefault()
	}
	s.invalidate(ctx, tenantID)

	response := ToCurrencyResponse(currency)
	return &response, nil
}

// GetByID retrieves a currency by ID
func (s *CurrencyService) GetByID(ctx context.Context, tenantID, currencyID uuid.UUID) (*CurrencyResponse, error) {
	currency, err := s.currencyRepo.FindByID(ctx, tenantID, currencyID)
	if err != nil {
		return nil, err
	}

	response := ToCurrencyResponse(currency)
	return &response, nil
}

// List retrieves all currencies of a tenant, cached
func (s *CurrencyService) List(ctx context.Context, tenantID uuid.UUID) ([]CurrencyResponse, error) {
	key := currencyCacheKey(tenantID)
	if s.cache != nil {
		var cached []CurrencyResponse
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	filter := shared.DefaultFilter()
	filter.OrderBy = "code"
	filter.OrderDir = "asc"
	filter.PageSize = 100

	currencies, err := s.currencyRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}

	responses := ToCurrencyResponses(currencies)
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, responses, referenceCacheTTL)
	}
	return responses, nil
}

// Update updates a currency
func (s *CurrencyService) Update(ctx context.Context, tenantID, currencyID uuid.UUID, req UpdateCurrencyRequest) (*CurrencyResponse, error) {
	currency, err := s.currencyRepo.FindByID(ctx, tenantID, currencyID)
	if err != nil {
		return nil, err
	}

	symbol := currency.Symbol
	name := currency.Name
	decimalPlaces := currency.DecimalPlaces
	if req.Symbol != nil {
		symbol = *req.Symbol
	}
	if req.Name != nil {
		name = *req.Name
	}
	if req.DecimalPlaces != nil {
		decimalPlaces = *req.DecimalPlaces
	}
	if err := currency.Update(symbol, name, decimalPlaces); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.Save(ctx, currency); err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)

	response := ToCurrencyResponse(currency)
	return &response, nil
}

// SetDefault makes a currency the tenant default. The previous default
// clears in the same transaction.
func (s *CurrencyService) SetDefault(ctx context.Context, tenantID, currencyID uuid.UUID) (*CurrencyResponse, error) {
	if _, err := s.currencyRepo.FindByID(ctx, tenantID, currencyID); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SetDefault(ctx, tenantID, currencyID); err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID)

	currency, err := s.currencyRepo.FindByID(ctx, tenantID, currencyID)
	if err != nil {
		return nil, err
	}

	response := ToCurrencyResponse(currency)
	return &response, nil
}

// Delete deletes a currency. The default currency cannot be deleted
// while other currencies remain.
func (s *CurrencyService) Delete(ctx context.Context, tenantID, currencyID uuid.UUID) error {
	currency, err := s.currencyRepo.FindByID(ctx, tenantID, currencyID)
	if err != nil {
		return err
	}

	if currency.IsDefault {
		total, err := s.currencyRepo.Count(ctx, tenantID, shared.DefaultFilter())
		if err != nil {
			return err
		}
		if total > 1 {
			return shared.NewDomainError("DEFAULT_CURRENCY", "Set another default currency before deleting this one")
		}
	}

	if err := s.currencyRepo.Delete(ctx, tenantID, currencyID); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID)
	return nil
}

func (s *CurrencyService) invalidate(ctx context.Context, tenantID uuid.UUID) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, currencyCacheKey(tenantID))
}
