package location

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/location"
	"github.com/openbooks/backend/internal/domain/shared"
)

// StoreService handles store business operations
type StoreService struct {
	storeRepo   location.StoreRepository
	cabinetRepo location.CabinetRepository
}

// NewStoreService creates a new StoreService
func NewStoreService(storeRepo location.StoreRepository, cabinetRepo location.CabinetRepository) *StoreService {
	return &StoreService{
		storeRepo:   storeRepo,
		cabinetRepo: cabinetRepo,
	}
}

// Create creates a new store inside an existing cabinet
func (s *StoreService) Create(ctx context.Context, tenantID uuid.UUID, req CreateStoreRequest) (*StoreResponse, error) {
	if _, err := s.cabinetRepo.FindByID(ctx, tenantID, req.CabinetID); err != nil {
		return nil, err
	}

	store, err := location.NewStore(tenantID, req.CabinetID, req.Name)
	if err != nil {
		return nil, err
	}
	if req.Remarks != "" {
		store.SetRemarks(req.Remarks)
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	response := ToStoreResponse(store)
	return &response, nil
}

// GetByID retrieves a store by ID
func (s *StoreService) GetByID(ctx context.Context, tenantID, storeID uuid.UUID) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, tenantID, storeID)
	if err != nil {
		return nil, err
	}

	response := ToStoreResponse(store)
	return &response, nil
}

// List retrieves stores, optionally scoped to one cabinet
func (s *StoreService) List(ctx context.Context, tenantID uuid.UUID, cabinetID *uuid.UUID, page, pageSize int) ([]StoreResponse, int64, error) {
	if cabinetID != nil {
		stores, err := s.storeRepo.FindByCabinet(ctx, tenantID, *cabinetID)
		if err != nil {
			return nil, 0, err
		}
		return ToStoreResponses(stores), int64(len(stores)), nil
	}

	filter := shared.DefaultFilter()
	if page > 0 {
		filter.Page = page
	}
	if pageSize > 0 {
		filter.PageSize = pageSize
	}
	filter.OrderBy = "name"
	filter.OrderDir = "asc"

	stores, err := s.storeRepo.FindAll(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.storeRepo.Count(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}

	return ToStoreResponses(stores), total, nil
}

// Update updates a store, optionally reparenting it
func (s *StoreService) Update(ctx context.Context, tenantID, storeID uuid.UUID, req UpdateStoreRequest) (*StoreResponse, error) {
	store, err := s.storeRepo.FindByID(ctx, tenantID, storeID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := store.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.CabinetID != nil && *req.CabinetID != store.CabinetID {
		if _, err := s.cabinetRepo.FindByID(ctx, tenantID, *req.CabinetID); err != nil {
			return nil, err
		}
		if err := store.MoveTo(*req.CabinetID); err != nil {
			return nil, err
		}
	}
	if req.Remarks != nil {
		store.SetRemarks(*req.Remarks)
	}

	if err := s.storeRepo.Save(ctx, store); err != nil {
		return nil, err
	}

	response := ToStoreResponse(store)
	return &response, nil
}

// Delete deletes a store
func (s *StoreService) Delete(ctx context.Context, tenantID, storeID uuid.UUID) error {
	if _, err := s.storeRepo.FindByID(ctx, tenantID, storeID); err != nil {
		return err
	}
	return s.storeRepo.Delete(ctx, tenantID, storeID)
}
