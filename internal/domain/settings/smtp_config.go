package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/openbooks/backend/internal/domain/shared"
)

// SMTPConfig holds the tenant's outgoing mail settings. One row per
// tenant; the password never leaves the server in responses.
type SMTPConfig struct {
	shared.TenantAggregateRoot
	Host      string `gorm:"type:varchar(200);not null"`
	Port      int    `gorm:"not null;default:587"`
	Username  string `gorm:"type:varchar(200)"`
	Password  string `gorm:"type:varchar(200)"`
	FromName  string `gorm:"type:varchar(200)"`
	FromEmail string `gorm:"type:varchar(254);not null"`
	UseTLS    bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (SMTPConfig) TableName() string {
	return "smtp_configs"
}

// NewSMTPConfig creates a new SMTP configuration
func NewSMTPConfig(tenantID uuid.UUID, host string, port int, fromEmail string) (*SMTPConfig, error) {
	if host == "" {
		return nil, shared.NewDomainError("INVALID_HOST", "SMTP host cannot be empty")
	}
	if port <= 0 || port > 65535 {
		return nil, shared.NewDomainError("INVALID_PORT", "SMTP port must be between 1 and 65535")
	}
	if fromEmail == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "From email cannot be empty")
	}

	return &SMTPConfig{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Host:                host,
		Port:                port,
		FromEmail:           fromEmail,
		UseTLS:              true,
	}, nil
}

// Update updates the SMTP configuration. An empty password keeps the
// stored one.
func (c *SMTPConfig) Update(host string, port int, username, password, fromName, fromEmail string, useTLS bool) error {
	if host == "" {
		return shared.NewDomainError("INVALID_HOST", "SMTP host cannot be empty")
	}
	if port <= 0 || port > 65535 {
		return shared.NewDomainError("INVALID_PORT", "SMTP port must be between 1 and 65535")
	}
	if fromEmail == "" {
		return shared.NewDomainError("INVALID_EMAIL", "From email cannot be empty")
	}

	c.Host = host
	c.Port = port
	c.Username = username
	if password != "" {
		c.Password = password
	}
	c.FromName = fromName
	c.FromEmail = fromEmail
	c.UseTLS = useTLS
	c.UpdatedAt = time.Now()
	c.IncrementVersion()

	return nil
}
