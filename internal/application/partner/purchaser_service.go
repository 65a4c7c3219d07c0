package partner

import (
	"context"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/partner"
	"github.com/openbooks/backend/internal/domain/shared"
)

// PurchaserService handles purchaser-related business operations
type PurchaserService struct {
	purchaserRepo partner.PurchaserRepository
}

// NewPurchaserService creates a new PurchaserService
func NewPurchaserService(purchaserRepo partner.PurchaserRepository) *PurchaserService {
	return &PurchaserService{
		purchaserRepo: purchaserRepo,
	}
}

// Create creates a new purchaser
func (s *PurchaserService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePurchaserRequest) (*PurchaserResponse, error) {
	exists, err := s.purchaserRepo.ExistsByCode(ctx, tenantID, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Purchaser with this code already exists")
	}

	purchaser, err := partner.NewPurchaser(tenantID, req.Code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Phone != "" || req.Email != "" {
		if err := purchaser.SetContact(req.Phone, req.Email); err != nil {
			return nil, err
		}
	}
	if req.Remarks != "" {
		purchaser.SetRemarks(req.Remarks)
	}

	if err := s.purchaserRepo.Save(ctx, purchaser); err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// GetByID retrieves a purchaser by ID
func (s *PurchaserService) GetByID(ctx context.Context, tenantID, purchaserID uuid.UUID) (*PurchaserResponse, error) {
	purchaser, err := s.purchaserRepo.FindByID(ctx, tenantID, purchaserID)
	if err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// GetByCode retrieves a purchaser by code
func (s *PurchaserService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*PurchaserResponse, error) {
	purchaser, err := s.purchaserRepo.FindByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// List retrieves a list of purchasers with filtering and pagination
func (s *PurchaserService) List(ctx context.Context, tenantID uuid.UUID, filter PurchaserListFilter) ([]PurchaserResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	purchasers, err := s.purchaserRepo.FindAll(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.purchaserRepo.Count(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	return ToPurchaserResponses(purchasers), total, nil
}

// Update updates a purchaser
func (s *PurchaserService) Update(ctx context.Context, tenantID, purchaserID uuid.UUID, req UpdatePurchaserRequest) (*PurchaserResponse, error) {
	purchaser, err := s.purchaserRepo.FindByID(ctx, tenantID, purchaserID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := purchaser.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Phone != nil || req.Email != nil {
		phone := purchaser.Phone
		email := purchaser.Email
		if req.Phone != nil {
			phone = *req.Phone
		}
		if req.Email != nil {
			email = *req.Email
		}
		if err := purchaser.SetContact(phone, email); err != nil {
			return nil, err
		}
	}

	if req.Remarks != nil {
		purchaser.SetRemarks(*req.Remarks)
	}

	if err := s.purchaserRepo.Save(ctx, purchaser); err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// Activate activates a purchaser
func (s *PurchaserService) Activate(ctx context.Context, tenantID, purchaserID uuid.UUID) (*PurchaserResponse, error) {
	purchaser, err := s.purchaserRepo.FindByID(ctx, tenantID, purchaserID)
	if err != nil {
		return nil, err
	}
	if err := purchaser.Activate(); err != nil {
		return nil, err
	}
	if err := s.purchaserRepo.Save(ctx, purchaser); err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// Deactivate deactivates a purchaser
func (s *PurchaserService) Deactivate(ctx context.Context, tenantID, purchaserID uuid.UUID) (*PurchaserResponse, error) {
	purchaser, err := s.purchaserRepo.FindByID(ctx, tenantID, purchaserID)
	if err != nil {
		return nil, err
	}
	if err := purchaser.Deactivate(); err != nil {
		return nil, err
	}
	if err := s.purchaserRepo.Save(ctx, purchaser); err != nil {
		return nil, err
	}

	response := ToPurchaserResponse(purchaser)
	return &response, nil
}

// Delete deletes a purchaser
func (s *PurchaserService) Delete(ctx context.Context, tenantID, purchaserID uuid.UUID) error {
	if _, err := s.purchaserRepo.FindByID(ctx, tenantID, purchaserID); err != nil {
		return err
	}
	return s.purchaserRepo.Delete(ctx, tenantID, purchaserID)
}
