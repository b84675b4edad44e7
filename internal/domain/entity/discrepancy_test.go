package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDiscrepancies(t *testing.T) {
	loc := &Location{
		Name:       "Blue Door Cafe",
		Phone:      "+1 555 0100",
		Website:    "https://bluedoor.example",
		Address:    "1 Main St",
		City:       "Springfield",
		PostalCode: "12345",
	}

	tests := []struct {
		name    string
		listing *Listing
		want    Discrepancies
	}{
		{
			name: "identical after trim and case folding",
			listing: &Listing{
				Name:    "  blue door cafe ",
				Phone:   "+1 555 0100",
				Website: "HTTPS://BLUEDOOR.EXAMPLE",
				City:    "springfield",
			},
			want: Discrepancies{},
		},
		{
			name:    "empty platform side is ignored",
			listing: &Listing{Name: "", Phone: "", State: "IL"},
			want:    Discrepancies{},
		},
		{
			name:    "differing fields are reported with both values",
			listing: &Listing{Name: "Blue Door Coffee", PostalCode: "12345", Address: "2 Main St"},
			want: Discrepancies{
				"name":    {Local: "Blue Door Cafe", Platform: "Blue Door Coffee"},
				"address": {Local: "1 Main St", Platform: "2 Main St"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectDiscrepancies(loc, tt.listing))
		})
	}
}

func TestDetectDiscrepancies_Symmetric(t *testing.T) {
	loc := &Location{Name: "Alpha", Phone: "1", City: "X"}
	listing := &Listing{Name: "Beta", Phone: "1", City: "Y"}

	forward := DetectDiscrepancies(loc, listing)
	backward := DetectDiscrepancies(
		&Location{Name: listing.Name, Phone: listing.Phone, City: listing.City},
		&Listing{Name: loc.Name, Phone: loc.Phone, City: loc.City},
	)

	assert.Len(t, forward, 2)
	assert.Len(t, backward, 2)
	for field, diff := range forward {
		assert.Equal(t, FieldDiff{Local: diff.Platform, Platform: diff.Local}, backward[field])
	}
}

func TestListing_MarkSynced(t *testing.T) {
	listing := &Listing{Status: ListingStatusError, ErrorMessage: "timeout"}

	listing.MarkSynced(fixedTime, Discrepancies{"phone": {Local: "1", Platform: "2"}})

	assert.Equal(t, ListingStatusSynced, listing.Status)
	assert.Equal(t, fixedTime, *listing.LastSyncedAt)
	assert.Empty(t, listing.ErrorMessage)
	assert.True(t, listing.HasDiscrepancies())
}
