package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/settings"
	"github.com/openbooks/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormProfileRepository implements ProfileRepository using GORM
type GormProfileRepository struct {
	db *gorm.DB
}

// NewGormProfileRepository creates a new GormProfileRepository
func NewGormProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// FindByTenant finds the business profile of a tenant
func (r *GormProfileRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*settings.Profile, error) {
	var profile settings.Profile
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// Save creates or updates a profile
func (r *GormProfileRepository) Save(ctx context.Context, profile *settings.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// GormPolicyRepository implements PolicyRepository using GORM
type GormPolicyRepository struct {
	db *gorm.DB
}

// NewGormPolicyRepository creates a new GormPolicyRepository
func NewGormPolicyRepository(db *gorm.DB) *GormPolicyRepository {
	return &GormPolicyRepository{db: db}
}

// FindByTenant finds the billing policy of a tenant
func (r *GormPolicyRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*settings.Policy, error) {
	var policy settings.Policy
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&policy).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &policy, nil
}

// Save creates or updates a policy
func (r *GormPolicyRepository) Save(ctx context.Context, policy *settings.Policy) error {
	return r.db.WithContext(ctx).Save(policy).Error
}

// GormSMTPConfigRepository implements SMTPConfigRepository using GORM
type GormSMTPConfigRepository struct {
	db *gorm.DB
}

// NewGormSMTPConfigRepository creates a new GormSMTPConfigRepository
func NewGormSMTPConfigRepository(db *gorm.DB) *GormSMTPConfigRepository {
	return &GormSMTPConfigRepository{db: db}
}

// FindByTenant finds the SMTP configuration of a tenant
func (r *GormSMTPConfigRepository) FindByTenant(ctx context.Context, tenantID uuid.UUID) (*settings.SMTPConfig, error) {
	var config settings.SMTPConfig
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		First(&config).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &config, nil
}

// Save creates or updates an SMTP configuration
func (r *GormSMTPConfigRepository) Save(ctx context.Context, config *settings.SMTPConfig) error {
	return r.db.WithContext(ctx).Save(config).Error
}

// Ensure the settings repositories implement their interfaces
var (
	_ settings.ProfileRepository    = (*GormProfileRepository)(nil)
	_ settings.PolicyRepository     = (*GormPolicyRepository)(nil)
	_ settings.SMTPConfigRepository = (*GormSMTPConfigRepository)(nil)
)
