package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultRequestTimeout     = 15 * time.Second
	defaultRefreshSkew        = 5 * time.Minute
	defaultGraphBaseURL       = "https://graph.facebook.com"
	defaultGraphVersion       = "v24.0"
	defaultPlacesBaseURL      = "https://maps.googleapis.com/maps/api/place"
	defaultMyBusinessBaseURL  = "https://mybusiness.googleapis.com"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database configuration for schema management and query logging
	Database *DatabaseConfig `json:"database" yaml:"database"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	// TokenCipher configuration for sealing platform tokens at rest
	TokenCipher *TokenCipherConfig `json:"tokenCipher" yaml:"tokenCipher"`

	// Platforms configuration for third-party platform adapters
	Platforms *PlatformsConfig `json:"platforms" yaml:"platforms"`

	// PubSub configuration for sync job publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines settings applied on top of the postgres connection
type DatabaseConfig struct {
	// Run AutoMigrate for every model on startup
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at warn level
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// TokenCipherConfig defines the key used to seal credential tokens
type TokenCipherConfig struct {
	// Base64-encoded 32-byte secretbox key; empty stores tokens unsealed
	Key string `json:"key" yaml:"key"`
}

// PlatformsConfig defines settings shared by every platform adapter
type PlatformsConfig struct {
	// Upper bound for a single remote call; calls are never retried
	RequestTimeout time.Duration `json:"requestTimeout" yaml:"requestTimeout"`

	// Fail credential resolution instead of picking the oldest row when several accounts match
	StrictBinding bool `json:"strictBinding" yaml:"strictBinding"`

	// Refresh Google tokens that expire within this window before use
	RefreshSkew time.Duration `json:"refreshSkew" yaml:"refreshSkew"`

	Facebook FacebookConfig `json:"facebook" yaml:"facebook"`
	Google   GoogleConfig   `json:"google" yaml:"google"`
	YouTube  YouTubeConfig  `json:"youtube" yaml:"youtube"`
}

// FacebookConfig defines Graph API settings shared by Facebook and Instagram
type FacebookConfig struct {
	BaseURL      string `json:"baseUrl" yaml:"baseUrl"`
	GraphVersion string `json:"graphVersion" yaml:"graphVersion"`
}

// GoogleConfig defines settings for the Google family of platforms
type GoogleConfig struct {
	// Places API base URL and key for the review fallback
	PlacesBaseURL string `json:"placesBaseUrl" yaml:"placesBaseUrl"`
	PlacesAPIKey  string `json:"placesApiKey" yaml:"placesApiKey"`

	// My Business v4 base URL for reviews
	MyBusinessBaseURL string `json:"myBusinessBaseUrl" yaml:"myBusinessBaseUrl"`

	// Optional endpoint overrides for the generated API clients
	PlayEndpoint         string `json:"playEndpoint" yaml:"playEndpoint"`
	BusinessInfoEndpoint string `json:"businessInfoEndpoint" yaml:"businessInfoEndpoint"`

	// OAuth client used to refresh tokens
	ClientID     string `json:"clientId" yaml:"clientId"`
	ClientSecret string `json:"clientSecret" yaml:"clientSecret"`
	TokenURL     string `json:"tokenUrl" yaml:"tokenUrl"`
}

// YouTubeConfig defines YouTube Data API settings
type YouTubeConfig struct {
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

// PubSubConfig defines Pub/Sub configuration for sync job publishing
type PubSubConfig struct {
	// Provider type: "noop", "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Expected audience of push OIDC tokens (for google provider)
	PushAudience string `json:"pushAudience" yaml:"pushAudience"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyPlatformDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyPlatformDefaults(cfg *Config) {
	if cfg.Platforms == nil {
		cfg.Platforms = &PlatformsConfig{}
	}
	p := cfg.Platforms
	if p.RequestTimeout <= 0 {
		p.RequestTimeout = defaultRequestTimeout
	}
	if p.RefreshSkew <= 0 {
		p.RefreshSkew = defaultRefreshSkew
	}
	if p.Facebook.BaseURL == "" {
		p.Facebook.BaseURL = defaultGraphBaseURL
	}
	if p.Facebook.GraphVersion == "" {
		p.Facebook.GraphVersion = defaultGraphVersion
	}
	if p.Google.PlacesBaseURL == "" {
		p.Google.PlacesBaseURL = defaultPlacesBaseURL
	}
	if p.Google.MyBusinessBaseURL == "" {
		p.Google.MyBusinessBaseURL = defaultMyBusinessBaseURL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
