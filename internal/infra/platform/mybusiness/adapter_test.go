package mybusiness

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testLocationName = "accounts/a1/locations/l1"

func newTestAdapter(t *testing.T, handler http.HandlerFunc) *Adapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: 5 * time.Second,
		Google: config.GoogleConfig{
			MyBusinessBaseURL:    srv.URL,
			BusinessInfoEndpoint: srv.URL + "/",
		},
	}}
	adapter := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	adapter.now = func() time.Time { return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC) }

	return adapter
}

func gmbTarget() service.Target {
	return service.Target{
		Location: &entity.Location{ID: uuid.New(), Name: "Main Street Cafe"},
		Credential: &entity.PlatformCredential{
			Platform:    entity.PlatformGoogleMyBusiness,
			ExternalID:  testLocationName,
			AccessToken: "gmb-token",
			IsActive:    true,
		},
	}
}

func respond(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestAdapter_FetchReviewsMapsStarRatings(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/"+testLocationName+"/reviews", r.URL.Path)
		assert.Equal(t, "Bearer gmb-token", r.Header.Get("Authorization"))
		respond(w, http.StatusOK, `{"reviews":[
			{"reviewId":"r1","name":"accounts/a1/locations/l1/reviews/r1","starRating":"FOUR","comment":"Good",
			 "reviewer":{"displayName":"Ana","profilePhotoUrl":"https://img/ana"},"createTime":"2024-05-01T10:00:00.123Z",
			 "reviewReply":{"comment":"Thanks Ana","updateTime":"2024-05-02T09:00:00Z"}},
			{"reviewId":"r2","name":"accounts/a1/locations/l1/reviews/r2","starRating":"STAR_RATING_UNSPECIFIED"},
			{"reviewId":"r3","name":"accounts/a1/locations/l1/reviews/r3"},
			{"reviewId":"r4","name":"accounts/a1/locations/l1/reviews/r4","starRating":"ONE","reviewer":{"isAnonymous":true}}
		]}`)
	})

	reviews, err := adapter.FetchReviews(context.Background(), gmbTarget())
	require.NoError(t, err)
	require.Len(t, reviews, 2)

	first := reviews[0]
	assert.Equal(t, "r1", first.Review.ExternalID)
	assert.Equal(t, 4, first.Review.Rating)
	assert.Equal(t, "Ana", first.Review.AuthorName)
	assert.Equal(t, "accounts/a1/locations/l1/reviews/r1", first.Review.Metadata.ReplyTargetID)
	assert.Equal(t, time.Date(2024, 5, 1, 10, 0, 0, 123000000, time.UTC), first.Review.PublishedAt)
	require.NotNil(t, first.Reply)
	assert.Equal(t, "Thanks Ana", first.Reply.Content)

	assert.Equal(t, 1, reviews[1].Review.Rating)
	assert.Equal(t, "Anonymous", reviews[1].Review.AuthorName)
	assert.Nil(t, reviews[1].Reply)
}

func TestAdapter_FetchReviewsPrefersTargetAccountRef(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v4/accounts/a1/locations/l2/reviews", r.URL.Path)
		respond(w, http.StatusOK, `{}`)
	})
	target := gmbTarget()
	target.AccountRef = "accounts/a1/locations/l2"

	reviews, err := adapter.FetchReviews(context.Background(), target)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestAdapter_FetchReviewsWithoutLocationName(t *testing.T) {
	adapter := newTestAdapter(t, func(http.ResponseWriter, *http.Request) {
		t.Error("no request expected")
	})
	target := gmbTarget()
	target.Credential.ExternalID = "1234567890"

	_, err := adapter.FetchReviews(context.Background(), target)
	assert.ErrorIs(t, err, service.ErrBrokenLink)
}

func TestAdapter_PublishReply(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/v4/accounts/a1/locations/l1/reviews/r1/reply", r.URL.Path)

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Thanks Ana", body["comment"])
		respond(w, http.StatusOK, `{"comment":"Thanks Ana"}`)
	})
	review := &entity.Review{ID: uuid.New(), ExternalID: "r1"}

	require.NoError(t, adapter.PublishReply(context.Background(), gmbTarget(), review, "Thanks Ana"))
}

func TestAdapter_PublishReplyRejected(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusForbidden, `{"error":{"code":403,"message":"denied","status":"PERMISSION_DENIED"}}`)
	})
	review := &entity.Review{ID: uuid.New(), Metadata: entity.ReviewMetadata{ReplyTargetID: "accounts/a1/locations/l1/reviews/r1"}}

	err := adapter.PublishReply(context.Background(), gmbTarget(), review, "Thanks")
	assert.ErrorIs(t, err, service.ErrRemoteRejected)
}

func TestAdapter_FetchListing(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/locations/l1", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("readMask"), "storefrontAddress")
		respond(w, http.StatusOK, `{
			"name":"locations/l1","title":"Main St Cafe","websiteUri":"https://cafe.example",
			"phoneNumbers":{"primaryPhone":"555-0100"},
			"storefrontAddress":{"addressLines":["1 Main St","Suite 2"],"locality":"Springfield","administrativeArea":"IL","postalCode":"62701","regionCode":"US"},
			"categories":{"primaryCategory":{"displayName":"Cafe"},"additionalCategories":[{"displayName":"Bakery"}]},
			"profile":{"description":"Coffee"},
			"latlng":{"latitude":39.78,"longitude":-89.65},
			"regularHours":{"periods":[
				{"openDay":"MONDAY","openTime":{"hours":8},"closeDay":"MONDAY","closeTime":{"hours":12}},
				{"openDay":"MONDAY","openTime":{"hours":13,"minutes":30},"closeDay":"MONDAY","closeTime":{"hours":18}}
			]},
			"metadata":{"mapsUri":"https://maps/l1"}
		}`)
	})
	target := gmbTarget()

	listing, err := adapter.FetchListing(context.Background(), target)
	require.NoError(t, err)
	assert.Equal(t, testLocationName, listing.ExternalID)
	assert.Equal(t, entity.PlatformGoogleMyBusiness, listing.Platform)
	assert.Equal(t, "Main St Cafe", listing.Name)
	assert.Equal(t, "555-0100", listing.Phone)
	assert.Equal(t, "1 Main St, Suite 2", listing.Address)
	assert.Equal(t, "US", listing.Country)
	assert.Equal(t, []string{"Cafe", "Bakery"}, listing.Categories)
	assert.Equal(t, "Coffee", listing.Description)
	assert.Equal(t, []any{"08:00-12:00", "13:30-18:00"}, listing.BusinessHours["MONDAY"])
	assert.Equal(t, "https://maps/l1", listing.Attributes["maps_uri"])
	assert.Equal(t, "39.78", listing.Latitude.Decimal.String())
}

func TestAdapter_PublishListing(t *testing.T) {
	adapter := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/v1/locations/l1", r.URL.Path)
		assert.Equal(t, "title,websiteUri", r.URL.Query().Get("updateMask"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Main Street Cafe", body["title"])
		assert.Equal(t, "https://cafe.example", body["websiteUri"])
		respond(w, http.StatusOK, `{"name":"locations/l1"}`)
	})
	target := gmbTarget()
	target.Location.Website = "https://cafe.example"

	require.NoError(t, adapter.PublishListing(context.Background(), target))
}

func TestResourceName(t *testing.T) {
	assert.Equal(t, "locations/l1", resourceName("accounts/a1/locations/l1"))
	assert.Equal(t, "locations/l1", resourceName("locations/l1"))
}
