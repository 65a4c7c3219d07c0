package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/catalog"
	"github.com/openbooks/backend/internal/domain/shared"
)

// ReferenceCache caches reference data that rarely changes between
// reads (taxonomies, currencies). Implementations tolerate cache
// outages: a miss or error falls back to the repository.
type ReferenceCache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

const referenceCacheTTL = 10 * time.Minute

func generalGroupCacheKey(tenantID uuid.UUID, groupName string) string {
	return "ref:generals:" + tenantID.String() + ":" + groupName
}

// GeneralService handles taxonomy business operations
type GeneralService struct {
	generalRepo catalog.GeneralRepository
	cache       ReferenceCache
}

// NewGeneralService creates a new GeneralService
func NewGeneralService(generalRepo catalog.GeneralRepository, cache ReferenceCache) *GeneralService {
	return &GeneralService{
		generalRepo: generalRepo,
		cache:       cache,
	}
}

// Create creates a new taxonomy entry
func (s *GeneralService) Create(ctx context.Context, tenantID uuid.UUID, req CreateGeneralRequest) (*GeneralResponse, error) {
	exists, err := s.generalRepo.ExistsInGroup(ctx, tenantID, req.GroupName, req.Value)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Value already exists in this group")
	}

	general, err := catalog.NewGeneral(tenantID, req.GroupName, req.Value, req.SortOrder)
	if err != nil {
		return nil, err
	}

	if err := s.generalRepo.Save(ctx, general); err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID, general.GroupName)

	response := ToGeneralResponse(general)
	return &response, nil
}

// GetByID retrieves a taxonomy entry by ID
func (s *GeneralService) GetByID(ctx context.Context, tenantID, generalID uuid.UUID) (*GeneralResponse, error) {
	general, err := s.generalRepo.FindByID(ctx, tenantID, generalID)
	if err != nil {
		return nil, err
	}

	response := ToGeneralResponse(general)
	return &response, nil
}

// GetByGroup retrieves all entries of a group, cached
func (s *GeneralService) GetByGroup(ctx context.Context, tenantID uuid.UUID, groupName string) ([]GeneralResponse, error) {
	key := generalGroupCacheKey(tenantID, groupName)
	if s.cache != nil {
		var cached []GeneralResponse
		if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
			return cached, nil
		}
	}

	generals, err := s.generalRepo.FindByGroup(ctx, tenantID, groupName)
	if err != nil {
		return nil, err
	}

	responses := ToGeneralResponses(generals)
	if s.cache != nil {
		_ = s.cache.SetJSON(ctx, key, responses, referenceCacheTTL)
	}
	return responses, nil
}

// List retrieves taxonomy entries with filtering and pagination
func (s *GeneralService) List(ctx context.Context, tenantID uuid.UUID, filter GeneralListFilter) ([]GeneralResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.OrderBy = "sort_order"
	domainFilter.OrderDir = "asc"
	if filter.GroupName != "" {
		domainFilter.Filters["group_name"] = filter.GroupName
	}

	generals, err := s.generalRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.generalRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToGeneralResponses(generals), total, nil
}

// Update updates a taxonomy entry
func (s *GeneralService) Update(ctx context.Context, tenantID, generalID uuid.UUID, req UpdateGeneralRequest) (*GeneralResponse, error) {
	general, err := s.generalRepo.FindByID(ctx, tenantID, generalID)
	if err != nil {
		return nil, err
	}

	value := general.Value
	sortOrder := general.SortOrder
	if req.Value != nil {
		value = *req.Value
	}
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}
	if err := general.Update(value, sortOrder); err != nil {
		return nil, err
	}

	if err := s.generalRepo.Save(ctx, general); err != nil {
		return nil, err
	}
	s.invalidate(ctx, tenantID, general.GroupName)

	response := ToGeneralResponse(general)
	return &response, nil
}

// Delete deletes a taxonomy entry
func (s *GeneralService) Delete(ctx context.Context, tenantID, generalID uuid.UUID) error {
	general, err := s.generalRepo.FindByID(ctx, tenantID, generalID)
	if err != nil {
		return err
	}
	if err := s.generalRepo.Delete(ctx, tenantID, generalID); err != nil {
		return err
	}
	s.invalidate(ctx, tenantID, general.GroupName)
	return nil
}

func (s *GeneralService) invalidate(ctx context.Context, tenantID uuid.UUID, groupName string) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, generalGroupCacheKey(tenantID, groupName))
}
