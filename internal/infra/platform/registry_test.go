package platform

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"reviewhub/config"
	"reviewhub/internal/domain/entity"
	"reviewhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func testConfig() *config.Config {
	return &config.Config{Platforms: &config.PlatformsConfig{
		RequestTimeout: time.Second,
		Facebook:       config.FacebookConfig{BaseURL: "http://graph.test", GraphVersion: "v24.0"},
		Google: config.GoogleConfig{
			PlacesBaseURL:     "http://places.test",
			MyBusinessBaseURL: "http://mybusiness.test",
		},
	}}
}

func TestModule_BuildsRegistry(t *testing.T) {
	var registry *service.Registry
	var pages service.PageDirectory

	app := fxtest.New(t,
		fx.Supply(testConfig(), slog.New(slog.NewTextHandler(io.Discard, nil))),
		Module,
		fx.Populate(&registry, &pages),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, registry)
	assert.NotNil(t, pages)
	assert.Equal(t, entity.AllPlatforms, registry.Platforms())

	assert.Len(t, registry.ReviewSources(), len(entity.AllPlatforms))

	var listingPlatforms []entity.Platform
	for _, source := range registry.ListingSources() {
		listingPlatforms = append(listingPlatforms, source.Platform())
	}
	assert.Equal(t, []entity.Platform{entity.PlatformFacebook, entity.PlatformGoogleMyBusiness}, listingPlatforms)

	for _, p := range []entity.Platform{
		entity.PlatformFacebook,
		entity.PlatformInstagram,
		entity.PlatformGoogleMyBusiness,
		entity.PlatformGooglePlay,
		entity.PlatformYouTube,
	} {
		_, ok := registry.ReplyPublisher(p)
		assert.True(t, ok, "%s publishes replies", p)
	}
	_, ok := registry.ReplyPublisher(entity.PlatformGoogle)
	assert.False(t, ok, "places is read only")

	adapter, ok := registry.Adapter(entity.PlatformGoogle)
	require.True(t, ok)
	fallback, ok := adapter.(service.Fallback)
	require.True(t, ok)
	assert.Equal(t, entity.PlatformGoogleMyBusiness, fallback.FallbackFor())
}
