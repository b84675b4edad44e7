package entity

// PlatformReviewStats aggregates reviews of one platform.
type PlatformReviewStats struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"average_rating"`
}

// ReviewStats summarizes a tenant's reviews. Rating averages only count rated reviews.
type ReviewStats struct {
	Total              int64                            `json:"total"`
	AverageRating      float64                          `json:"average_rating"`
	RatingDistribution map[int]int64                    `json:"rating_distribution"`
	ByPlatform         map[Platform]PlatformReviewStats `json:"by_platform"`
}

// NewReviewStats returns stats with every star bucket present.
func NewReviewStats() *ReviewStats {
	return &ReviewStats{
		RatingDistribution: map[int]int64{5: 0, 4: 0, 3: 0, 2: 0, 1: 0},
		ByPlatform:         map[Platform]PlatformReviewStats{},
	}
}

// ListingStats summarizes a tenant's listings.
type ListingStats struct {
	TotalListings     int64                   `json:"total_listings"`
	ByPlatform        map[Platform]int64      `json:"by_platform"`
	ByStatus          map[ListingStatus]int64 `json:"by_status"`
	WithDiscrepancies int64                   `json:"with_discrepancies"`
	RecentlySynced    int64                   `json:"recently_synced"`
}

// NewListingStats returns stats with every status bucket present.
func NewListingStats() *ListingStats {
	stats := &ListingStats{
		ByPlatform: map[Platform]int64{},
		ByStatus:   make(map[ListingStatus]int64, len(ListingStatuses)),
	}
	for _, s := range ListingStatuses {
		stats.ByStatus[s] = 0
	}

	return stats
}

// PlatformConnection describes whether a tenant has connected a platform.
type PlatformConnection struct {
	Platform  Platform `json:"platform"`
	Connected bool     `json:"connected"`
	PageID    string   `json:"page_id,omitempty"`
	PageName  string   `json:"page_name,omitempty"`
}
