package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ListingStatus is the sync state of a Listing.
type ListingStatus string

const (
	ListingStatusPending ListingStatus = "pending"
	ListingStatusActive  ListingStatus = "active"
	ListingStatusSynced  ListingStatus = "synced"
	ListingStatusError   ListingStatus = "error"
)

// ListingStatuses lists every status in reporting order.
var ListingStatuses = []ListingStatus{
	ListingStatusPending,
	ListingStatusActive,
	ListingStatusSynced,
	ListingStatusError,
}

// Listing is the platform's copy of a location's business information. There is
// at most one listing per (LocationID, Platform).
type Listing struct {
	ID              uuid.UUID           `json:"id"`
	LocationID      uuid.UUID           `json:"location_id"`
	Platform        Platform            `json:"platform"`
	ExternalID      string              `json:"external_id,omitempty"`
	Status          ListingStatus       `json:"status"`
	Name            string              `json:"name"`
	Address         string              `json:"address"`
	City            string              `json:"city"`
	State           string              `json:"state"`
	PostalCode      string              `json:"postal_code"`
	Country         string              `json:"country"`
	Phone           string              `json:"phone"`
	Website         string              `json:"website"`
	Description     string              `json:"description"`
	Categories      []string            `json:"categories"`
	BusinessHours   map[string]any      `json:"business_hours,omitempty"`
	Latitude        decimal.NullDecimal `json:"latitude"`
	Longitude       decimal.NullDecimal `json:"longitude"`
	Attributes      map[string]any      `json:"attributes,omitempty"`
	Discrepancies   Discrepancies       `json:"discrepancies,omitempty"`
	LastSyncedAt    *time.Time          `json:"last_synced_at,omitempty"`
	LastPublishedAt *time.Time          `json:"last_published_at,omitempty"`
	ErrorMessage    string              `json:"error_message,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// HasDiscrepancies reports whether any field differs from the local location.
func (l *Listing) HasDiscrepancies() bool {
	return len(l.Discrepancies) > 0
}

// MarkSynced stamps a successful pull and records the detected differences.
func (l *Listing) MarkSynced(now time.Time, diffs Discrepancies) {
	l.Status = ListingStatusSynced
	l.LastSyncedAt = &now
	l.Discrepancies = diffs
	l.ErrorMessage = ""
}

// ListingFilter narrows a tenant's listings.
type ListingFilter struct {
	LocationID        *uuid.UUID
	Platform          Platform
	Status            ListingStatus
	OnlyDiscrepancies bool
	Limit             int
	Offset            int
}
