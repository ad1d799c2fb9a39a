package config

import (
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvironmentProduction is the environment tag that restricts cross-origin access.
const EnvironmentProduction = "production"

const defaultProductionOrigin = "https://yourdomain.com"

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName         string
	AppVersion      string
	AppEnv          string
	Host            string
	Port            string
	LogLevel        string
	AllowedOrigins  []string
	AIProvider      string
	AIModel         string
	AITimeout       time.Duration
	AIMaxTokens     int
	AITemperature   float32
	AIRequireKey    bool
	GoogleAPIKey    string
	OpenAIAPIKey    string
	OpenAIBaseURL   string
	RedisURL        string
	RateLimitMax    int
	RateLimitWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	port := strings.TrimPrefix(c.Port, ":")
	return net.JoinHostPort(c.Host, port)
}

// IsProduction reports whether the service runs with the production environment tag.
func (c Config) IsProduction() bool {
	return c.AppEnv == EnvironmentProduction
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EAD Teachers Tool Backend")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("environment", "development")
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", "8000")
	v.SetDefault("log.level", "info")
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.timeout", "60s")
	v.SetDefault("ai.max_tokens", 4096)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.require_key", false)
	v.SetDefault("rate_limit.max", 30)
	v.SetDefault("rate_limit.window", "1m")

	timeout, err := parseDuration(v.GetString("ai.timeout"), 60*time.Second)
	if err != nil {
		return Config{}, fmt.Errorf("invalid ai timeout: %w", err)
	}

	window, err := parseDuration(v.GetString("rate_limit.window"), time.Minute)
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppVersion:      v.GetString("app.version"),
		AppEnv:          strings.ToLower(strings.TrimSpace(v.GetString("environment"))),
		Host:            v.GetString("host"),
		Port:            v.GetString("port"),
		LogLevel:        strings.ToLower(v.GetString("log.level")),
		AIProvider:      strings.ToLower(strings.TrimSpace(v.GetString("ai.provider"))),
		AIModel:         strings.TrimSpace(v.GetString("ai.model")),
		AITimeout:       timeout,
		AIMaxTokens:     v.GetInt("ai.max_tokens"),
		AITemperature:   float32(v.GetFloat64("ai.temperature")),
		AIRequireKey:    v.GetBool("ai.require_key"),
		GoogleAPIKey:    strings.TrimSpace(v.GetString("google_api_key")),
		OpenAIAPIKey:    strings.TrimSpace(v.GetString("openai_api_key")),
		OpenAIBaseURL:   strings.TrimSpace(v.GetString("openai_base_url")),
		RedisURL:        strings.TrimSpace(v.GetString("redis.url")),
		RateLimitMax:    v.GetInt("rate_limit.max"),
		RateLimitWindow: window,
	}

	cfg.AllowedOrigins = resolveOrigins(cfg.AppEnv, v.GetString("allowed_origins"))

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 30
	}

	if cfg.AIMaxTokens <= 0 {
		cfg.AIMaxTokens = 4096
	}

	if cfg.AIRequireKey && cfg.APIKey() == "" {
		return Config{}, fmt.Errorf("api key for provider %q must be provided", cfg.AIProvider)
	}

	return cfg, nil
}

// APIKey returns the credential of the configured generation provider.
func (c Config) APIKey() string {
	if c.AIProvider == "openai" {
		return c.OpenAIAPIKey
	}
	return c.GoogleAPIKey
}

func resolveOrigins(env, raw string) []string {
	if env != EnvironmentProduction {
		return []string{"*"}
	}

	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{defaultProductionOrigin}
	}
	return origins
}

func parseDuration(value string, fallback time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if parsed <= 0 {
		return fallback, nil
	}
	return parsed, nil
}
