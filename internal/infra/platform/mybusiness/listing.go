package mybusiness

import (
	"fmt"
	"strings"

	"reviewhub/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/api/mybusinessbusinessinformation/v1"
)

// toListing maps a Business Profile location onto the platform copy of a listing.
func toListing(loc *mybusinessbusinessinformation.Location, locationID uuid.UUID) *entity.Listing {
	listing := &entity.Listing{
		LocationID: locationID,
		Platform:   entity.PlatformGoogleMyBusiness,
		Name:       loc.Title,
		Website:    loc.WebsiteUri,
		Attributes: map[string]any{},
	}

	if loc.PhoneNumbers != nil {
		listing.Phone = loc.PhoneNumbers.PrimaryPhone
	}
	if addr := loc.StorefrontAddress; addr != nil {
		listing.Address = strings.Join(addr.AddressLines, ", ")
		listing.City = addr.Locality
		listing.State = addr.AdministrativeArea
		listing.PostalCode = addr.PostalCode
		listing.Country = addr.RegionCode
	}
	if cats := loc.Categories; cats != nil {
		if cats.PrimaryCategory != nil {
			listing.Categories = append(listing.Categories, cats.PrimaryCategory.DisplayName)
		}
		for _, c := range cats.AdditionalCategories {
			listing.Categories = append(listing.Categories, c.DisplayName)
		}
	}
	if loc.Profile != nil {
		listing.Description = loc.Profile.Description
	}
	if loc.Latlng != nil {
		listing.Latitude = decimal.NewNullDecimal(decimal.NewFromFloat(loc.Latlng.Latitude))
		listing.Longitude = decimal.NewNullDecimal(decimal.NewFromFloat(loc.Latlng.Longitude))
	}
	if hours := loc.RegularHours; hours != nil && len(hours.Periods) > 0 {
		listing.BusinessHours = map[string]any{}
		for _, p := range hours.Periods {
			slots, _ := listing.BusinessHours[p.OpenDay].([]any)
			listing.BusinessHours[p.OpenDay] = append(slots, clock(p.OpenTime)+"-"+clock(p.CloseTime))
		}
	}
	if loc.OpenInfo != nil && loc.OpenInfo.Status != "" {
		listing.Attributes["open_status"] = loc.OpenInfo.Status
	}
	if meta := loc.Metadata; meta != nil {
		if meta.MapsUri != "" {
			listing.Attributes["maps_uri"] = meta.MapsUri
		}
		if meta.NewReviewUri != "" {
			listing.Attributes["new_review_uri"] = meta.NewReviewUri
		}
	}

	return listing
}

func clock(t *mybusinessbusinessinformation.TimeOfDay) string {
	if t == nil {
		return "00:00"
	}

	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
