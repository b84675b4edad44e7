package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ListingModel is the GORM-specific struct for the 'listings' table.
type ListingModel struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	LocationID      uuid.UUID                   `gorm:"type:uuid;not null;uniqueIndex:idx_listings_location_platform"`
	Platform        string                      `gorm:"type:varchar(50);not null;uniqueIndex:idx_listings_location_platform"`
	ExternalID      *string                     `gorm:"type:varchar(255)"`
	Status          string                      `gorm:"type:varchar(20);not null;default:'pending';index"`
	Name            string                      `gorm:"type:varchar(255)"`
	Address         string                      `gorm:"type:varchar(255)"`
	City            string                      `gorm:"type:varchar(100)"`
	State           string                      `gorm:"type:varchar(100)"`
	PostalCode      string                      `gorm:"type:varchar(20)"`
	Country         string                      `gorm:"type:varchar(2)"`
	Phone           string                      `gorm:"type:varchar(50)"`
	Website         string                      `gorm:"type:varchar(255)"`
	Description     string                      `gorm:"type:text"`
	Categories      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	BusinessHours   datatypes.JSONMap           `gorm:"type:jsonb"`
	Latitude        decimal.NullDecimal         `gorm:"type:decimal(10,7)"`
	Longitude       decimal.NullDecimal         `gorm:"type:decimal(10,7)"`
	Attributes      datatypes.JSONMap           `gorm:"type:jsonb"`
	Discrepancies   datatypes.JSONMap           `gorm:"type:jsonb"`
	LastSyncedAt    *time.Time
	LastPublishedAt *time.Time
	ErrorMessage    string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ListingModel) TableName() string {
	return "listings"
}
