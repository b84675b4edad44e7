package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Location is a tenant-owned business location. The platform id fields link it
// to the matching account on each platform; an empty value means not linked.
type Location struct {
	ID                    uuid.UUID           `json:"id"`
	TenantID              uuid.UUID           `json:"tenant_id"`
	Name                  string              `json:"name"`
	Address               string              `json:"address"`
	Address2              string              `json:"address2,omitempty"`
	City                  string              `json:"city"`
	State                 string              `json:"state"`
	PostalCode            string              `json:"postal_code"`
	Country               string              `json:"country"`
	Phone                 string              `json:"phone"`
	Website               string              `json:"website"`
	Latitude              decimal.NullDecimal `json:"latitude"`
	Longitude             decimal.NullDecimal `json:"longitude"`
	PrimaryCategory       string              `json:"primary_category,omitempty"`
	Categories            []string            `json:"categories,omitempty"`
	BusinessHours         map[string]any      `json:"business_hours,omitempty"`
	Status                string              `json:"status"`
	FacebookPageID        string              `json:"facebook_page_id,omitempty"`
	GooglePlaceID         string              `json:"google_place_id,omitempty"`
	GooglePlayPackageName string              `json:"google_play_package_name,omitempty"`
	YouTubeChannelID      string              `json:"youtube_channel_id,omitempty"`
	ReviewsSyncedAt       *time.Time          `json:"reviews_synced_at,omitempty"`
	CreatedAt             time.Time           `json:"created_at"`
	UpdatedAt             time.Time           `json:"updated_at"`
}

// BelongsTo reports whether the location is owned by tenantID.
func (l *Location) BelongsTo(tenantID uuid.UUID) bool {
	return l != nil && l.TenantID == tenantID
}
