// Package entity contains the core business objects of the project.
package entity

import "slices"

// Platform identifies a third-party review or listing platform.
type Platform string

const (
	PlatformFacebook         Platform = "facebook"
	PlatformInstagram        Platform = "instagram"
	PlatformGoogle           Platform = "google" // Places API, keyed by place id instead of an OAuth account
	PlatformGoogleMyBusiness Platform = "google_my_business"
	PlatformGooglePlay       Platform = "google_play"
	PlatformYouTube          Platform = "youtube"
)

// AllPlatforms lists every supported platform in display order.
var AllPlatforms = []Platform{
	PlatformFacebook,
	PlatformInstagram,
	PlatformGoogleMyBusiness,
	PlatformGoogle,
	PlatformGooglePlay,
	PlatformYouTube,
}

// ParsePlatform converts a raw value into a known Platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(s)
	if !slices.Contains(AllPlatforms, p) {
		return "", false
	}

	return p, true
}

// String returns the platform identifier.
func (p Platform) String() string {
	return string(p)
}

// CredentialPlatform returns the platform whose stored credential authorizes calls for p.
// Instagram business accounts are reached through the linked Facebook page.
func (p Platform) CredentialPlatform() Platform {
	if p == PlatformInstagram {
		return PlatformFacebook
	}

	return p
}
