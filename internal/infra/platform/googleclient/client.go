// Package googleclient holds the plumbing shared by adapters built on the generated
// Google API clients.
package googleclient

import (
	"context"
	"net/http"
	"strings"

	"reviewhub/internal/domain/service"
	"reviewhub/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// TokenSource turns a stored access token into an oauth2 token source. A token
// holding a service account key is exchanged for scoped access tokens instead.
func TokenSource(ctx context.Context, base *http.Client, accessToken string, scopes ...string) (oauth2.TokenSource, error) {
	if strings.HasPrefix(strings.TrimSpace(accessToken), "{") {
		creds, err := google.CredentialsFromJSON(context.WithValue(ctx, oauth2.HTTPClient, base), []byte(accessToken), scopes...)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse service account key")
		}

		return creds.TokenSource, nil
	}

	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: accessToken, TokenType: "Bearer"}), nil
}

// ClientOptions authorizes base with ts and points the generated client at
// endpoint when one is configured.
func ClientOptions(ctx context.Context, base *http.Client, ts oauth2.TokenSource, endpoint string) []option.ClientOption {
	opts := []option.ClientOption{
		option.WithHTTPClient(oauth2.NewClient(context.WithValue(ctx, oauth2.HTTPClient, base), ts)),
	}
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint))
	}

	return opts
}

// Classify marks err as a broken reference when the API answered 404 and as a
// remote rejection otherwise.
func Classify(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == http.StatusNotFound {
		return errors.Join(service.ErrBrokenLink, err)
	}

	return errors.Join(service.ErrRemoteRejected, err)
}
