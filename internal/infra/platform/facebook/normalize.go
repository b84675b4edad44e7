package facebook

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"reviewhub/internal/domain/entity"
	"reviewhub/internal/infra/platform/graph"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const anonymousAuthor = "Anonymous"

type ratingItem struct {
	Rating             *int   `json:"rating"`
	ReviewText         string `json:"review_text"`
	RecommendationType string `json:"recommendation_type"`
	CreatedTime        string `json:"created_time"`
	OpenGraphStory     *struct {
		ID string `json:"id"`
	} `json:"open_graph_story"`
	Reviewer *struct {
		Name    string `json:"name"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	} `json:"reviewer"`
}

// normalizeRating maps one page rating onto a review. Items without a star
// rating are not reviews and are skipped.
func normalizeRating(raw json.RawMessage, locationID uuid.UUID, now time.Time) (*entity.Review, bool) {
	var item ratingItem
	if err := json.Unmarshal(raw, &item); err != nil || item.Rating == nil {
		return nil, false
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, false
	}

	author := anonymousAuthor
	var picture string
	if item.Reviewer != nil {
		if item.Reviewer.Name != "" {
			author = item.Reviewer.Name
		}
		picture = item.Reviewer.Picture.Data.URL
	}

	content := item.ReviewText
	if content == "" {
		content = item.RecommendationType
	}

	var storyID string
	if item.OpenGraphStory != nil {
		storyID = item.OpenGraphStory.ID
	}
	externalID := storyID
	if externalID == "" {
		externalID = hashID(author, item.CreatedTime)
	}

	return &entity.Review{
		LocationID:  locationID,
		Platform:    entity.PlatformFacebook,
		ExternalID:  externalID,
		AuthorName:  author,
		AuthorImage: picture,
		Rating:      *item.Rating,
		Content:     content,
		PublishedAt: graph.ParseTime(item.CreatedTime, now),
		Metadata: entity.ReviewMetadata{
			ReplyTargetID: storyID,
			Raw:           payload,
		},
	}, true
}

// hashID derives a best-effort identity for items the platform gives no id.
func hashID(parts ...string) string {
	sum := md5.Sum([]byte(strings.Join(parts, "")))

	return hex.EncodeToString(sum[:])
}

type pageDetails struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	About        string `json:"about"`
	Description  string `json:"description"`
	Phone        string `json:"phone"`
	Website      string `json:"website"`
	CategoryList []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"category_list"`
	Location *struct {
		Street    string   `json:"street"`
		City      string   `json:"city"`
		State     string   `json:"state"`
		Zip       string   `json:"zip"`
		Country   string   `json:"country"`
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
	Hours              map[string]string `json:"hours"`
	FanCount           *int64            `json:"fan_count"`
	FollowersCount     *int64            `json:"followers_count"`
	RatingCount        *int64            `json:"rating_count"`
	OverallStarRating  *float64          `json:"overall_star_rating"`
	VerificationStatus string            `json:"verification_status"`
}

// toListing maps page details onto the platform copy of a listing.
func (p *pageDetails) toListing(locationID uuid.UUID) *entity.Listing {
	listing := &entity.Listing{
		LocationID: locationID,
		Platform:   entity.PlatformFacebook,
		ExternalID: p.ID,
		Name:       p.Name,
		Phone:      p.Phone,
		Website:    p.Website,
		Attributes: map[string]any{},
	}

	setAttr(listing.Attributes, "fan_count", p.FanCount)
	setAttr(listing.Attributes, "followers_count", p.FollowersCount)
	setAttr(listing.Attributes, "rating_count", p.RatingCount)
	setAttr(listing.Attributes, "overall_star_rating", p.OverallStarRating)
	if p.VerificationStatus != "" {
		listing.Attributes["verification_status"] = p.VerificationStatus
	}

	listing.Description = p.About
	if listing.Description == "" {
		listing.Description = p.Description
	}
	for _, c := range p.CategoryList {
		listing.Categories = append(listing.Categories, c.Name)
	}
	if len(p.Hours) > 0 {
		listing.BusinessHours = make(map[string]any, len(p.Hours))
		for k, v := range p.Hours {
			listing.BusinessHours[k] = v
		}
	}
	if loc := p.Location; loc != nil {
		listing.Address = loc.Street
		listing.City = loc.City
		listing.State = loc.State
		listing.PostalCode = loc.Zip
		listing.Country = loc.Country
		if loc.Latitude != nil {
			listing.Latitude = decimal.NewNullDecimal(decimal.NewFromFloat(*loc.Latitude))
		}
		if loc.Longitude != nil {
			listing.Longitude = decimal.NewNullDecimal(decimal.NewFromFloat(*loc.Longitude))
		}
	}

	return listing
}

func setAttr[T int64 | float64](attrs map[string]any, key string, value *T) {
	if value != nil {
		attrs[key] = *value
	}
}
