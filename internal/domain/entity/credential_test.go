package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPlatformCredential_Validity(t *testing.T) {
	past := fixedTime.Add(-time.Minute)
	soon := fixedTime.Add(3 * time.Minute)

	tests := []struct {
		name        string
		cred        PlatformCredential
		wantValid   bool
		wantExpired bool
		wantSoon    bool
	}{
		{name: "no expiry", cred: PlatformCredential{IsActive: true}, wantValid: true},
		{name: "expired", cred: PlatformCredential{IsActive: true, ExpiresAt: &past}, wantExpired: true, wantSoon: true},
		{name: "expiring soon", cred: PlatformCredential{IsActive: true, ExpiresAt: &soon}, wantValid: true, wantSoon: true},
		{name: "inactive", cred: PlatformCredential{IsActive: false}},
		{name: "expiry equal to now", cred: PlatformCredential{IsActive: true, ExpiresAt: &fixedTime}, wantExpired: true, wantSoon: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantValid, tt.cred.IsValid(fixedTime))
			assert.Equal(t, tt.wantExpired, tt.cred.IsExpired(fixedTime))
			assert.Equal(t, tt.wantSoon, tt.cred.ExpiresWithin(fixedTime, 5*time.Minute))
		})
	}
}

func TestPlatformCredential_EffectiveToken(t *testing.T) {
	cred := PlatformCredential{AccessToken: "user-token"}
	assert.Equal(t, "user-token", cred.EffectiveToken())

	cred.Metadata.PageAccessToken = "page-token"
	assert.Equal(t, "page-token", cred.EffectiveToken())
}

func TestPlatformCredential_HasReviewAccess(t *testing.T) {
	tests := []struct {
		scopes []string
		want   bool
	}{
		{scopes: []string{"pages_show_list", "pages_read_engagement"}, want: true},
		{scopes: []string{" pages_manage_engagement"}, want: true},
		{scopes: FacebookDefaultScopes, want: true},
		{scopes: []string{"pages_read_user_content"}, want: false},
		{scopes: []string{"pages_show_list"}, want: false},
		{scopes: nil, want: false},
	}
	for _, tt := range tests {
		cred := &PlatformCredential{Platform: PlatformFacebook, Scopes: tt.scopes}
		assert.Equal(t, tt.want, cred.HasReviewAccess(), "scopes %v", tt.scopes)
	}
	assert.True(t, (&PlatformCredential{Platform: PlatformYouTube}).HasReviewAccess())
}

func TestCredentialMetadata_KeepsUnknownKeys(t *testing.T) {
	meta := CredentialMetadataFromMap(map[string]any{
		"page_id":    "pg1",
		"page_name":  "Cafe",
		"tasks":      []any{"MODERATE"},
		"account_id": 42,
	})

	assert.Equal(t, "pg1", meta.PageID)
	assert.Equal(t, "Cafe", meta.PageName)
	assert.Empty(t, meta.AccountID)
	assert.Equal(t, 42, meta.Extra["account_id"])

	out := meta.ToMap()
	assert.Equal(t, "pg1", out["page_id"])
	assert.Equal(t, []any{"MODERATE"}, out["tasks"])
}

func TestPlatform_CredentialPlatform(t *testing.T) {
	assert.Equal(t, PlatformFacebook, PlatformInstagram.CredentialPlatform())
	assert.Equal(t, PlatformGooglePlay, PlatformGooglePlay.CredentialPlatform())

	_, ok := ParsePlatform("myspace")
	assert.False(t, ok)
	p, ok := ParsePlatform("youtube")
	assert.True(t, ok)
	assert.Equal(t, PlatformYouTube, p)
}
