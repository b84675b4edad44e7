package entity

import (
	"time"

	"github.com/google/uuid"

	domainerrors "reviewhub/internal/domain/errors"
)

// ResponseStatus is the lifecycle state of a ReviewResponse.
type ResponseStatus string

const (
	ResponseStatusDraft     ResponseStatus = "draft"
	ResponseStatusApproved  ResponseStatus = "approved"
	ResponseStatusRejected  ResponseStatus = "rejected"
	ResponseStatusPublished ResponseStatus = "published"
)

// ReviewResponse is the business's reply to a review. A nil UserID marks a reply
// that was written on the platform itself and imported during sync.
type ReviewResponse struct {
	ID              uuid.UUID      `json:"id"`
	ReviewID        uuid.UUID      `json:"review_id"`
	UserID          *uuid.UUID     `json:"user_id,omitempty"`
	Content         string         `json:"content"`
	Status          ResponseStatus `json:"status"`
	AIGenerated     bool           `json:"ai_generated"`
	ApprovedBy      *uuid.UUID     `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time     `json:"approved_at,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	PublishedAt     *time.Time     `json:"published_at,omitempty"`
	PlatformSynced  bool           `json:"platform_synced"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// NewDraftResponse creates a draft written by userID.
func NewDraftResponse(reviewID, userID uuid.UUID, content string, aiGenerated bool) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:    reviewID,
		UserID:      &userID,
		Content:     content,
		Status:      ResponseStatusDraft,
		AIGenerated: aiGenerated,
	}
}

// NewExternalResponse records a reply that already exists on the platform.
func NewExternalResponse(reviewID uuid.UUID, content string, publishedAt time.Time) *ReviewResponse {
	return &ReviewResponse{
		ReviewID:       reviewID,
		Content:        content,
		Status:         ResponseStatusPublished,
		PublishedAt:    &publishedAt,
		PlatformSynced: true,
	}
}

// IsExternal reports whether the response originated on the platform.
func (r *ReviewResponse) IsExternal() bool {
	return r.UserID == nil
}

// Edit replaces the content of a response that has not been published yet.
func (r *ReviewResponse) Edit(content string) error {
	if r.Status == ResponseStatusPublished {
		return domainerrors.ErrInvalidResponseTransition.WithDetails("published responses cannot be edited")
	}
	r.Content = content

	return nil
}

// Approve moves a draft to approved.
func (r *ReviewResponse) Approve(approver uuid.UUID, now time.Time) error {
	if r.Status != ResponseStatusDraft {
		return domainerrors.ErrInvalidResponseTransition.WithDetails("only drafts can be approved")
	}
	r.Status = ResponseStatusApproved
	r.ApprovedBy = &approver
	r.ApprovedAt = &now
	r.RejectionReason = ""

	return nil
}

// Reject moves a draft or approved response to rejected. Only the reason is
// recorded; an earlier approval stays on the row.
func (r *ReviewResponse) Reject(reason string) error {
	if r.Status != ResponseStatusDraft && r.Status != ResponseStatusApproved {
		return domainerrors.ErrInvalidResponseTransition.WithDetails("only unpublished responses can be rejected")
	}
	r.Status = ResponseStatusRejected
	r.RejectionReason = reason

	return nil
}

// Resubmit returns a rejected response to draft.
func (r *ReviewResponse) Resubmit(content string) error {
	if r.Status != ResponseStatusRejected {
		return domainerrors.ErrInvalidResponseTransition.WithDetails("only rejected responses can be resubmitted")
	}
	r.Status = ResponseStatusDraft
	if content != "" {
		r.Content = content
	}

	return nil
}

// CanPublish reports whether the response is approved and waiting to be published.
func (r *ReviewResponse) CanPublish() bool {
	return r.Status == ResponseStatusApproved
}

// MarkPublished records a successful publication. synced is false when the
// platform has no reply API and the response only exists locally.
func (r *ReviewResponse) MarkPublished(now time.Time, synced bool) {
	r.Status = ResponseStatusPublished
	r.PublishedAt = &now
	r.PlatformSynced = synced
}
