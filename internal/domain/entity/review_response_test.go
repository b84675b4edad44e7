package entity

import (
	"testing"
	"time"

	domainerrors "reviewhub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func TestReviewResponse_Transitions(t *testing.T) {
	approver := uuid.New()

	tests := []struct {
		name   string
		from   ResponseStatus
		apply  func(r *ReviewResponse) error
		want   ResponseStatus
		reject bool
	}{
		{name: "approve draft", from: ResponseStatusDraft, apply: func(r *ReviewResponse) error { return r.Approve(approver, fixedTime) }, want: ResponseStatusApproved},
		{name: "approve approved", from: ResponseStatusApproved, apply: func(r *ReviewResponse) error { return r.Approve(approver, fixedTime) }, reject: true},
		{name: "approve rejected", from: ResponseStatusRejected, apply: func(r *ReviewResponse) error { return r.Approve(approver, fixedTime) }, reject: true},
		{name: "reject draft", from: ResponseStatusDraft, apply: func(r *ReviewResponse) error { return r.Reject("tone") }, want: ResponseStatusRejected},
		{name: "reject approved", from: ResponseStatusApproved, apply: func(r *ReviewResponse) error { return r.Reject("tone") }, want: ResponseStatusRejected},
		{name: "reject published", from: ResponseStatusPublished, apply: func(r *ReviewResponse) error { return r.Reject("tone") }, reject: true},
		{name: "resubmit rejected", from: ResponseStatusRejected, apply: func(r *ReviewResponse) error { return r.Resubmit("") }, want: ResponseStatusDraft},
		{name: "resubmit draft", from: ResponseStatusDraft, apply: func(r *ReviewResponse) error { return r.Resubmit("") }, reject: true},
		{name: "edit published", from: ResponseStatusPublished, apply: func(r *ReviewResponse) error { return r.Edit("new") }, reject: true},
		{name: "edit approved", from: ResponseStatusApproved, apply: func(r *ReviewResponse) error { return r.Edit("new") }, want: ResponseStatusApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &ReviewResponse{Status: tt.from, Content: "old"}

			err := tt.apply(r)

			if tt.reject {
				require.ErrorIs(t, err, domainerrors.ErrInvalidResponseTransition)
				assert.Equal(t, tt.from, r.Status)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestReviewResponse_ApproveThenReject(t *testing.T) {
	approver := uuid.New()
	r := NewDraftResponse(uuid.New(), uuid.New(), "Thanks!", false)

	require.NoError(t, r.Approve(approver, fixedTime))
	assert.Equal(t, approver, *r.ApprovedBy)
	assert.True(t, r.CanPublish())

	require.NoError(t, r.Reject("too short"))
	assert.Equal(t, ResponseStatusRejected, r.Status)
	require.NotNil(t, r.ApprovedBy)
	assert.Equal(t, approver, *r.ApprovedBy)
	require.NotNil(t, r.ApprovedAt)
	assert.Equal(t, fixedTime, *r.ApprovedAt)
	assert.Equal(t, "too short", r.RejectionReason)

	require.NoError(t, r.Resubmit("Thank you for visiting!"))
	assert.Equal(t, "Thank you for visiting!", r.Content)
	assert.False(t, r.CanPublish())
}

func TestReviewResponse_External(t *testing.T) {
	r := NewExternalResponse(uuid.New(), "Thanks from the dev team", fixedTime)

	assert.True(t, r.IsExternal())
	assert.Equal(t, ResponseStatusPublished, r.Status)
	assert.True(t, r.PlatformSynced)
	assert.False(t, NewDraftResponse(uuid.New(), uuid.New(), "x", true).IsExternal())
}
