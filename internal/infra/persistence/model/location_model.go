package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// LocationModel is the GORM-specific struct for the 'locations' table.
type LocationModel struct {
	ID                    uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	TenantID              uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name                  string                      `gorm:"type:varchar(255);not null"`
	Address               string                      `gorm:"type:varchar(255)"`
	Address2              string                      `gorm:"column:address2;type:varchar(255)"`
	City                  string                      `gorm:"type:varchar(100)"`
	State                 string                      `gorm:"type:varchar(100)"`
	PostalCode            string                      `gorm:"type:varchar(20)"`
	Country               string                      `gorm:"type:varchar(2)"`
	Phone                 string                      `gorm:"type:varchar(50)"`
	Website               string                      `gorm:"type:varchar(255)"`
	Latitude              decimal.NullDecimal         `gorm:"type:decimal(10,7)"`
	Longitude             decimal.NullDecimal         `gorm:"type:decimal(10,7)"`
	PrimaryCategory       string                      `gorm:"type:varchar(100)"`
	Categories            datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	BusinessHours         datatypes.JSONMap           `gorm:"type:jsonb"`
	Status                string                      `gorm:"type:varchar(20);not null;default:'active'"`
	FacebookPageID        *string                     `gorm:"type:varchar(100);index"`
	GooglePlaceID         *string                     `gorm:"type:varchar(255)"`
	GooglePlayPackageName *string                     `gorm:"type:varchar(255)"`
	YouTubeChannelID      *string                     `gorm:"column:youtube_channel_id;type:varchar(100)"`
	ReviewsSyncedAt       *time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
