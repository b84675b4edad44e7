package entity

import "strings"

// FieldDiff holds both sides of a field that differs between a location and its listing.
type FieldDiff struct {
	Local    string `json:"local"`
	Platform string `json:"platform"`
}

// Discrepancies maps a field name to its differing values. An empty map means the
// listing matches the location.
type Discrepancies map[string]FieldDiff

// DiscrepancyFields are the fields compared between a location and a listing.
var DiscrepancyFields = []string{"name", "phone", "website", "address", "city", "state", "postal_code"}

// DetectDiscrepancies compares the location with the platform listing. A field is
// reported only when both sides are non-empty and differ after trimming and case folding.
func DetectDiscrepancies(loc *Location, listing *Listing) Discrepancies {
	local := map[string]string{
		"name":        loc.Name,
		"phone":       loc.Phone,
		"website":     loc.Website,
		"address":     loc.Address,
		"city":        loc.City,
		"state":       loc.State,
		"postal_code": loc.PostalCode,
	}
	remote := map[string]string{
		"name":        listing.Name,
		"phone":       listing.Phone,
		"website":     listing.Website,
		"address":     listing.Address,
		"city":        listing.City,
		"state":       listing.State,
		"postal_code": listing.PostalCode,
	}

	diffs := Discrepancies{}
	for _, field := range DiscrepancyFields {
		l := strings.TrimSpace(local[field])
		r := strings.TrimSpace(remote[field])
		if l == "" || r == "" {
			continue
		}
		if !strings.EqualFold(l, r) {
			diffs[field] = FieldDiff{Local: l, Platform: r}
		}
	}

	return diffs
}
