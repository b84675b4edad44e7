package entity

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultTokenType is used when a platform does not report a token type.
const DefaultTokenType = "Bearer"

// FacebookDefaultScopes are requested when a Facebook page is connected without explicit scopes.
var FacebookDefaultScopes = []string{
	"pages_show_list",
	"pages_read_engagement",
	"pages_manage_metadata",
	"pages_manage_posts",
	"pages_manage_engagement",
	"business_management",
}

// reviewScopes lists the scopes that grant read access to reviews, per platform.
var reviewScopes = map[Platform][]string{
	PlatformFacebook: {"pages_read_engagement", "pages_manage_engagement"},
}

// Keys of the well-known metadata fields.
const (
	metaPageID          = "page_id"
	metaPageName        = "page_name"
	metaPageAccessToken = "page_access_token"
	metaAccountID       = "account_id"
	metaLocationName    = "location_name"
)

// CredentialMetadata holds the platform-specific fields stored alongside a credential.
// Unknown keys survive a round trip through Extra.
type CredentialMetadata struct {
	PageID          string
	PageName        string
	PageAccessToken string
	AccountID       string
	// LocationName is the My Business resource name, "accounts/{a}/locations/{l}".
	LocationName string
	Extra        map[string]any
}

// CredentialMetadataFromMap splits a stored metadata bag into known fields and Extra.
func CredentialMetadataFromMap(m map[string]any) CredentialMetadata {
	meta := CredentialMetadata{Extra: map[string]any{}}
	for k, v := range m {
		s, isString := v.(string)
		switch {
		case k == metaPageID && isString:
			meta.PageID = s
		case k == metaPageName && isString:
			meta.PageName = s
		case k == metaPageAccessToken && isString:
			meta.PageAccessToken = s
		case k == metaAccountID && isString:
			meta.AccountID = s
		case k == metaLocationName && isString:
			meta.LocationName = s
		default:
			meta.Extra[k] = v
		}
	}

	return meta
}

// ToMap flattens the metadata back into a single bag for storage.
func (m CredentialMetadata) ToMap() map[string]any {
	out := make(map[string]any, len(m.Extra)+5)
	maps.Copy(out, m.Extra)
	setIfNotEmpty(out, metaPageID, m.PageID)
	setIfNotEmpty(out, metaPageName, m.PageName)
	setIfNotEmpty(out, metaPageAccessToken, m.PageAccessToken)
	setIfNotEmpty(out, metaAccountID, m.AccountID)
	setIfNotEmpty(out, metaLocationName, m.LocationName)

	return out
}

func setIfNotEmpty(m map[string]any, key, value string) {
	if value != "" {
		m[key] = value
	}
}

// PlatformCredential is a tenant's stored authorization for one platform account.
// The identity is (TenantID, Platform, ExternalID); ExternalID is empty on legacy rows.
type PlatformCredential struct {
	ID           uuid.UUID          `json:"id"`
	TenantID     uuid.UUID          `json:"tenant_id"`
	Platform     Platform           `json:"platform"`
	ExternalID   string             `json:"external_id,omitempty"`
	AccessToken  string             `json:"-"`
	RefreshToken string             `json:"-"`
	TokenType    string             `json:"token_type"`
	ExpiresAt    *time.Time         `json:"expires_at,omitempty"`
	Scopes       []string           `json:"scopes"`
	Metadata     CredentialMetadata `json:"-"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// IsExpired reports whether the access token has passed its expiry at now.
// A credential without an expiry never expires.
func (c *PlatformCredential) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && !c.ExpiresAt.After(now)
}

// IsValid reports whether the credential may be used for remote calls at now.
func (c *PlatformCredential) IsValid(now time.Time) bool {
	return c.IsActive && !c.IsExpired(now)
}

// ExpiresWithin reports whether the token expires before now+window.
func (c *PlatformCredential) ExpiresWithin(now time.Time, window time.Duration) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now.Add(window))
}

// EffectiveToken returns the token to send to the platform. Facebook page
// operations prefer the page access token over the user token.
func (c *PlatformCredential) EffectiveToken() string {
	if c.Metadata.PageAccessToken != "" {
		return c.Metadata.PageAccessToken
	}

	return c.AccessToken
}

// HasReviewAccess reports whether the granted scopes permit reading reviews.
// Platforms without a scope requirement always have access.
func (c *PlatformCredential) HasReviewAccess() bool {
	required, ok := reviewScopes[c.Platform]
	if !ok {
		return true
	}

	return slices.ContainsFunc(c.Scopes, func(s string) bool {
		return slices.Contains(required, strings.TrimSpace(s))
	})
}

// Deactivate marks the credential as disconnected. Rows are never hard deleted.
func (c *PlatformCredential) Deactivate() {
	c.IsActive = false
}
