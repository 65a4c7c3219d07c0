package settings

import (
	"context"

	"github.com/google/uuid"
)

// ProfileRepository defines the interface for profile persistence
type ProfileRepository interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*Profile, error)
	Save(ctx context.Context, profile *Profile) error
}

// PolicyRepository defines the interface for policy persistence
type PolicyRepository interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*Policy, error)
	Save(ctx context.Context, policy *Policy) error
}

// SMTPConfigRepository defines the interface for SMTP config persistence
type SMTPConfigRepository interface {
	FindByTenant(ctx context.Context, tenantID uuid.UUID) (*SMTPConfig, error)
	Save(ctx context.Context, config *SMTPConfig) error
}
