// Package config provides application configuration with multi-source priority.
//
// Sources (highest to lowest priority):
//  1. Environment variables
//  2. Config file (~/.nova/config.yaml or ./config.yaml)
//  3. Defaults
//
// The model-provider credential (GEMINI_API_KEY) is read directly by the
// Genkit plugin, never via Viper. Its absence is not a load error: the
// server starts in a degraded mode where chat requests fail with a
// service-unavailable classification instead of crashing the process.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Sentinel errors for validation, checked with errors.Is().
var (
	ErrConfigNil             = errors.New("configuration is nil")
	ErrInvalidModelName      = errors.New("invalid model name")
	ErrInvalidTemperature    = errors.New("invalid temperature")
	ErrInvalidTopP           = errors.New("invalid top_p")
	ErrInvalidPenalty        = errors.New("invalid penalty")
	ErrInvalidMaxTokens      = errors.New("invalid max tokens")
	ErrInvalidMessageLength  = errors.New("invalid max message length")
	ErrInvalidContextTurns   = errors.New("invalid max context turns")
	ErrInvalidPort           = errors.New("invalid port")
	ErrInvalidRateLimitQuota = errors.New("invalid rate limit quota")
)

// Defaults mirroring the production deployment.
const (
	DefaultModelName        = "gemini-2.5-flash"
	DefaultMaxMessageLength = 1000
	DefaultMaxContextTurns  = 10
	DefaultMaxResponseChars = 2000
	DefaultRateLimit        = "30/minute"
)

// Config stores application configuration.
type Config struct {
	// Model selection and sampling parameters
	ModelName        string  `mapstructure:"model_name"`
	Temperature      float32 `mapstructure:"temperature"`
	TopP             float32 `mapstructure:"top_p"`
	FrequencyPenalty float32 `mapstructure:"frequency_penalty"`
	PresencePenalty  float32 `mapstructure:"presence_penalty"`
	MaxTokens        int     `mapstructure:"max_tokens"`

	// Request handling limits
	MaxMessageLength int    `mapstructure:"max_message_length"`
	MaxContextTurns  int    `mapstructure:"max_context_turns"`
	MaxResponseChars int    `mapstructure:"max_response_chars"`
	RateLimit        string `mapstructure:"rate_limit"` // "count/window", e.g. "30/minute"

	// Redaction targets for the sanitizer
	RedactedOrgs []string `mapstructure:"redacted_orgs"`

	// Server settings
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
	TrustProxy  bool     `mapstructure:"trust_proxy"`

	// Logging
	LogJSON bool `mapstructure:"log_json"`
}

// Load loads configuration with env > file > defaults priority.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting user home directory: %w", err)
	}
	configDir := filepath.Join(home, ".nova")

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")

	setDefaults(v)
	bindEnvVariables(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		slog.Debug("configuration file not found, using defaults",
			"search_paths", []string{configDir, "."})
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating configuration: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("model_name", DefaultModelName)
	v.SetDefault("temperature", 0.7)
	v.SetDefault("top_p", 0.9)
	v.SetDefault("frequency_penalty", 0.5)
	v.SetDefault("presence_penalty", 0.5)
	v.SetDefault("max_tokens", 2000)

	v.SetDefault("max_message_length", DefaultMaxMessageLength)
	v.SetDefault("max_context_turns", DefaultMaxContextTurns)
	v.SetDefault("max_response_chars", DefaultMaxResponseChars)
	v.SetDefault("rate_limit", DefaultRateLimit)

	v.SetDefault("redacted_orgs", []string{"UMTI Tech Solutions", "UMTI Tech", "UMTI"})

	v.SetDefault("port", 5000)
	v.SetDefault("cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("trust_proxy", false)
	v.SetDefault("log_json", false)
}

// bindEnvVariables binds environment overrides explicitly.
// NOTE: GEMINI_API_KEY is read directly by the Genkit plugin, not via Viper.
func bindEnvVariables(v *viper.Viper) {
	mustBind := func(key, envVar string) {
		if err := v.BindEnv(key, envVar); err != nil {
			panic(fmt.Sprintf("BUG: failed to bind %q to %q: %v", key, envVar, err))
		}
	}

	mustBind("model_name", "NOVA_MODEL_NAME")
	mustBind("temperature", "NOVA_TEMPERATURE")
	mustBind("max_tokens", "NOVA_MAX_TOKENS")
	mustBind("max_message_length", "NOVA_MAX_MESSAGE_LENGTH")
	mustBind("max_context_turns", "NOVA_MAX_CONTEXT_TURNS")
	mustBind("rate_limit", "NOVA_RATE_LIMIT")
	mustBind("port", "PORT")
	mustBind("cors_origins", "NOVA_CORS_ORIGINS")
	mustBind("trust_proxy", "NOVA_TRUST_PROXY")
	mustBind("log_json", "NOVA_LOG_JSON")
}

// HasCredential reports whether the model-provider credential is present.
// Absence switches the service into degraded mode at startup.
func (c *Config) HasCredential() bool {
	return os.Getenv("GEMINI_API_KEY") != ""
}

// FullModelName returns the provider-qualified model name for Genkit,
// e.g. "googleai/gemini-2.5-flash". Names already containing a "/" are
// returned as-is.
func (c *Config) FullModelName() string {
	if strings.Contains(c.ModelName, "/") {
		return c.ModelName
	}
	return "googleai/" + c.ModelName
}
