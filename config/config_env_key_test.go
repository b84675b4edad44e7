package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestCanonicalizeEnvKey_PlatformKeys(t *testing.T) {
	existing := map[string]any{
		"platforms": map[string]any{
			"strictBinding": false,
			"facebook": map[string]any{
				"graphVersion": "v24.0",
			},
			"google": map[string]any{
				"placesApiKey": "",
			},
		},
		"tokenCipher": map[string]any{
			"key": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PLATFORMS_STRICTBINDING", want: "platforms.strictBinding"},
		{envKey: "PLATFORMS_FACEBOOK_GRAPHVERSION", want: "platforms.facebook.graphVersion"},
		{envKey: "PLATFORMS_GOOGLE_PLACESAPIKEY", want: "platforms.google.placesApiKey"},
		{envKey: "TOKENCIPHER_KEY", want: "tokenCipher.key"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyPlatformDefaults(t *testing.T) {
	cfg := &Config{}
	applyPlatformDefaults(cfg)

	if cfg.Platforms == nil {
		t.Fatal("platforms config should be initialized")
	}
	if cfg.Platforms.RequestTimeout != defaultRequestTimeout {
		t.Fatalf("RequestTimeout = %v, want %v", cfg.Platforms.RequestTimeout, defaultRequestTimeout)
	}
	if cfg.Platforms.Facebook.GraphVersion != defaultGraphVersion {
		t.Fatalf("GraphVersion = %q, want %q", cfg.Platforms.Facebook.GraphVersion, defaultGraphVersion)
	}
	if cfg.Platforms.Google.PlacesBaseURL != defaultPlacesBaseURL {
		t.Fatalf("PlacesBaseURL = %q, want %q", cfg.Platforms.Google.PlacesBaseURL, defaultPlacesBaseURL)
	}

	cfg.Platforms.Facebook.GraphVersion = "v19.0"
	applyPlatformDefaults(cfg)
	if cfg.Platforms.Facebook.GraphVersion != "v19.0" {
		t.Fatalf("explicit GraphVersion was overwritten: %q", cfg.Platforms.Facebook.GraphVersion)
	}
}
