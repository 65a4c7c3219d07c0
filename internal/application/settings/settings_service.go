package settings

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/settings"
	"github.com/openbooks/backend/internal/domain/shared"
)

// Mailer sends email through a tenant's SMTP settings
type Mailer interface {
	Send(ctx context.Context, cfg *settings.SMTPConfig, to []string, subject, body string, html bool) error
}

// Service handles tenant settings operations
type Service struct {
	profileRepo settings.ProfileRepository
	policyRepo  settings.PolicyRepository
	smtpRepo    settings.SMTPConfigRepository
	mailer      Mailer
}

// NewService creates a new settings Service
func NewService(
	profileRepo settings.ProfileRepository,
	policyRepo settings.PolicyRepository,
	smtpRepo settings.SMTPConfigRepository,
	mailer Mailer,
) *Service {
	return &Service{
		profileRepo: profileRepo,
		policyRepo:  policyRepo,
		smtpRepo:    smtpRepo,
		mailer:      mailer,
	}
}

// GetProfile retrieves the tenant's business profile
func (s *Service) GetProfile(ctx context.Context, tenantID uuid.UUID) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// SaveProfile creates or updates the tenant's business profile
func (s *Service) SaveProfile(ctx context.Context, tenantID uuid.UUID, req UpdateProfileRequest) (*ProfileResponse, error) {
	profile, err := s.profileRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		profile, err = settings.NewProfile(tenantID, req.BusinessName)
		if err != nil {
			return nil, err
		}
	}

	if err := profile.Update(req.BusinessName, req.OwnerName, req.Phone, req.Email, req.Address, req.Website, req.TaxNumber, req.LogoURL); err != nil {
		return nil, err
	}
	if err := s.profileRepo.Save(ctx, profile); err != nil {
		return nil, err
	}

	response := ToProfileResponse(profile)
	return &response, nil
}

// GetPolicy retrieves the tenant's billing policy, falling back to
// defaults when none is stored yet
func (s *Service) GetPolicy(ctx context.Context, tenantID uuid.UUID) (*PolicyResponse, error) {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			response := ToPolicyResponse(settings.NewPolicy(tenantID))
			return &response, nil
		}
		return nil, err
	}

	response := ToPolicyResponse(policy)
	return &response, nil
}

// SavePolicy creates or updates the tenant's billing policy
func (s *Service) SavePolicy(ctx context.Context, tenantID uuid.UUID, req UpdatePolicyRequest) (*PolicyResponse, error) {
	policy, err := s.policyRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		policy = settings.NewPolicy(tenantID)
	}

	if err := policy.Update(req.DefaultTaxRate, req.InvoicePrefix, req.QuotePrefix, req.PaymentTermDays, req.InvoiceNotes, req.QuoteNotes); err != nil {
		return nil, err
	}
	if err := s.policyRepo.Save(ctx, policy); err != nil {
		return nil, err
	}

	response := ToPolicyResponse(policy)
	return &response, nil
}

// GetSMTP retrieves the tenant's SMTP settings
func (s *Service) GetSMTP(ctx context.Context, tenantID uuid.UUID) (*SMTPResponse, error) {
	cfg, err := s.smtpRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	response := ToSMTPResponse(cfg)
	return &response, nil
}

// SaveSMTP creates or updates the tenant's SMTP settings
func (s *Service) SaveSMTP(ctx context.Context, tenantID uuid.UUID, req UpdateSMTPRequest) (*SMTPResponse, error) {
	cfg, err := s.smtpRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		cfg, err = settings.NewSMTPConfig(tenantID, req.Host, req.Port, req.FromEmail)
		if err != nil {
			return nil, err
		}
	}

	if err := cfg.Update(req.Host, req.Port, req.Username, req.Password, req.FromName, req.FromEmail, req.UseTLS); err != nil {
		return nil, err
	}
	if err := s.smtpRepo.Save(ctx, cfg); err != nil {
		return nil, err
	}

	response := ToSMTPResponse(cfg)
	return &response, nil
}

// SendEmail sends an email through the tenant's stored SMTP settings
func (s *Service) SendEmail(ctx context.Context, tenantID uuid.UUID, req SendEmailRequest) error {
	cfg, err := s.smtpRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("SMTP_NOT_CONFIGURED", "SMTP settings are not configured")
		}
		return err
	}

	return s.mailer.Send(ctx, cfg, req.To, req.Subject, req.Body, req.HTML)
}
