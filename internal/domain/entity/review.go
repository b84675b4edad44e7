package entity

import (
	"maps"
	"time"

	"github.com/google/uuid"
)

const metaReplyTargetID = "reply_target_id"

// ReviewMetadata carries the platform payload of a review. ReplyTargetID is the
// remote object a reply must be posted to; Raw keeps the original payload.
type ReviewMetadata struct {
	ReplyTargetID string
	Raw           map[string]any
}

// ReviewMetadataFromMap restores metadata from its stored form.
func ReviewMetadataFromMap(m map[string]any) ReviewMetadata {
	meta := ReviewMetadata{Raw: make(map[string]any, len(m))}
	for k, v := range m {
		if s, ok := v.(string); ok && k == metaReplyTargetID {
			meta.ReplyTargetID = s

			continue
		}
		meta.Raw[k] = v
	}

	return meta
}

// ToMap flattens the metadata for storage.
func (m ReviewMetadata) ToMap() map[string]any {
	out := make(map[string]any, len(m.Raw)+1)
	maps.Copy(out, m.Raw)
	if m.ReplyTargetID != "" {
		out[metaReplyTargetID] = m.ReplyTargetID
	}

	return out
}

// Lookup walks nested objects of the raw payload and returns the string at path.
func (m ReviewMetadata) Lookup(path ...string) (string, bool) {
	var cur any = m.Raw
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur = obj[key]
	}
	s, ok := cur.(string)

	return s, ok && s != ""
}

// Review is a customer review imported from a platform. Its identity is
// (LocationID, Platform, ExternalID). Rating is 0 for unrated items such as comments.
type Review struct {
	ID          uuid.UUID       `json:"id"`
	LocationID  uuid.UUID       `json:"location_id"`
	Platform    Platform        `json:"platform"`
	ExternalID  string          `json:"external_id"`
	AuthorName  string          `json:"author_name"`
	AuthorImage string          `json:"author_image,omitempty"`
	Rating      int             `json:"rating"`
	Content     string          `json:"content"`
	PublishedAt time.Time       `json:"published_at"`
	Metadata    ReviewMetadata  `json:"-"`
	Response    *ReviewResponse `json:"response,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// HasResponse reports whether a response has been attached.
func (r *Review) HasResponse() bool {
	return r.Response != nil
}

// ReviewFilter narrows a tenant's review list.
type ReviewFilter struct {
	LocationID  *uuid.UUID
	Platform    Platform
	Rating      int
	MinRating   int
	HasResponse *bool
	Search      string
	From        *time.Time
	To          *time.Time
	Limit       int
	Offset      int
}
