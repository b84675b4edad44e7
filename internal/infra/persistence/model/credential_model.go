package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PlatformCredentialModel is the GORM-specific struct for the 'platform_credentials' table.
// Tokens are stored sealed; ExternalID is NULL on legacy rows.
type PlatformCredentialModel struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_platform_credentials_identity"`
	Platform     string                      `gorm:"type:varchar(50);not null;uniqueIndex:idx_platform_credentials_identity"`
	ExternalID   *string                     `gorm:"type:varchar(255);uniqueIndex:idx_platform_credentials_identity"`
	AccessToken  string                      `gorm:"type:text;not null"`
	RefreshToken string                      `gorm:"type:text"`
	TokenType    string                      `gorm:"type:varchar(20);not null;default:'Bearer'"`
	ExpiresAt    *time.Time
	Scopes       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Metadata     datatypes.JSONMap           `gorm:"type:jsonb"`
	IsActive     bool                        `gorm:"not null;default:true;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (PlatformCredentialModel) TableName() string {
	return "platform_credentials"
}
