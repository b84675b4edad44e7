// Package google renews OAuth tokens of the Google family of platforms.
package google

import (
	"context"
	"log/slog"
	"net/http"
	"slices"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

// refreshablePlatforms are the platforms whose credentials carry Google OAuth tokens.
var refreshablePlatforms = []entity.Platform{
	entity.PlatformGoogleMyBusiness,
	entity.PlatformGooglePlay,
	entity.PlatformYouTube,
}

// Refresher exchanges Google refresh tokens for new access tokens.
type Refresher struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRefresher creates the token refresher from the Google OAuth client settings.
func NewRefresher(cfg *config.Config, logger *slog.Logger) service.TokenRefresher {
	google := cfg.Platforms.Google
	endpoint := googleoauth.Endpoint
	if google.TokenURL != "" {
		endpoint.TokenURL = google.TokenURL
	}

	return &Refresher{
		oauth: &oauth2.Config{
			ClientID:     google.ClientID,
			ClientSecret: google.ClientSecret,
			Endpoint:     endpoint,
		},
		httpClient: &http.Client{Timeout: cfg.Platforms.RequestTimeout},
		logger:     logger,
	}
}

// CanRefresh reports whether cred is a Google credential holding a refresh token.
func (r *Refresher) CanRefresh(cred *entity.PlatformCredential) bool {
	return r.oauth.ClientID != "" &&
		cred.RefreshToken != "" &&
		slices.Contains(refreshablePlatforms, cred.Platform)
}

// Refresh exchanges the refresh token. The returned copy keeps the old refresh
// token when Google does not rotate it.
func (r *Refresher) Refresh(ctx context.Context, cred *entity.PlatformCredential) (*entity.PlatformCredential, error) {
	if !r.CanRefresh(cred) {
		return nil, errors.Errorf("credential %s cannot be refreshed", cred.ID)
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, r.httpClient)
	// An empty access token forces the source to hit the token endpoint.
	token, err := r.oauth.TokenSource(ctx, &oauth2.Token{RefreshToken: cred.RefreshToken}).Token()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to refresh %s token", cred.Platform)
	}

	refreshed := *cred
	refreshed.AccessToken = token.AccessToken
	if token.RefreshToken != "" {
		refreshed.RefreshToken = token.RefreshToken
	}
	if token.TokenType != "" {
		refreshed.TokenType = token.TokenType
	}
	if token.Expiry.IsZero() {
		refreshed.ExpiresAt = nil
	} else {
		expiry := token.Expiry.UTC()
		refreshed.ExpiresAt = &expiry
	}

	r.logger.Info("Refreshed platform token",
		slog.String("platform", cred.Platform.String()),
		slog.String("credential_id", cred.ID.String()),
	)

	return &refreshed, nil
}
