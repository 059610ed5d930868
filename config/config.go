package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // Location must work in minimal containers

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"mindbet-bot/internal/model"
)

// Telegram update delivery modes.
const (
	TelegramModeWebhook = "webhook"
	TelegramModePolling = "polling"
	TelegramModeBoth    = "both"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Timezone    string

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// MindBet specifics
	Telegram TelegramConfig
	Backend  BackendConfig
	MiniApp  MiniAppConfig
	Site     SiteConfig
	Intent   IntentConfig
	Hotspot  HotspotConfig

	// LLM Provider Abstraction
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
	// TrustedProxies may set X-Forwarded-For; empty trusts none.
	TrustedProxies  []string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type TelegramConfig struct {
	BotToken        string
	WebhookURL      string
	SecretToken     string
	AllowedIPs      []string
	Mode            string
	RateLimitPerMin int
	PollTimeout     time.Duration
	MaxConcurrency  int
	// NgrokAPIURL is queried for a public URL when WebhookURL is empty.
	NgrokAPIURL string
}

// UsesWebhook reports whether updates arrive through the HTTP webhook.
func (c TelegramConfig) UsesWebhook() bool {
	return c.Mode == TelegramModeWebhook || c.Mode == TelegramModeBoth
}

// UsesPolling reports whether the getUpdates poller should run.
func (c TelegramConfig) UsesPolling() bool {
	return c.Mode == TelegramModePolling || c.Mode == TelegramModeBoth
}

type BackendConfig struct {
	URL     string
	Timeout time.Duration
}

type MiniAppConfig struct {
	URL string
}

type SiteConfig struct {
	URL string
}

type IntentConfig struct {
	ConfidenceThreshold float64
	ClassifierTimeout   time.Duration
	Temperature         float64
	MaxTokens           int
}

type HotspotConfig struct {
	CacheTTL time.Duration
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"` // global timeout for the whole fallback chain
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Location resolves Timezone, falling back to UTC+8 when the zone database lacks it.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.FixedZone(c.Timezone, 8*60*60)
	}
	return loc
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit YAML file.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Timezone = v.GetString("timezone")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.TrustedProxies = splitList(v.Get("http_server.trusted_proxies"))
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	if port := v.GetInt("server_port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = v.GetString("telegram.secret_token")
	cfg.Telegram.AllowedIPs = splitList(v.Get("telegram.allowed_ips"))
	cfg.Telegram.Mode = strings.ToLower(v.GetString("telegram.mode"))
	cfg.Telegram.RateLimitPerMin = v.GetInt("telegram.rate_limit_per_min")
	cfg.Telegram.PollTimeout = v.GetDuration("telegram.poll_timeout")
	cfg.Telegram.MaxConcurrency = v.GetInt("telegram.max_concurrency")
	cfg.Telegram.NgrokAPIURL = v.GetString("telegram.ngrok_api_url")

	// Backend, Mini App, Site
	cfg.Backend.URL = v.GetString("backend.url")
	cfg.Backend.Timeout = v.GetDuration("backend.timeout")
	if backendURL := v.GetString("backend_api_url"); backendURL != "" {
		cfg.Backend.URL = backendURL
	}
	cfg.MiniApp.URL = v.GetString("mini_app.url")
	cfg.Site.URL = v.GetString("site.url")

	// Intent pipeline
	cfg.Intent.ConfidenceThreshold = v.GetFloat64("intent.confidence_threshold")
	cfg.Intent.ClassifierTimeout = v.GetDuration("intent.classifier_timeout")
	cfg.Intent.Temperature = v.GetFloat64("intent.temperature")
	cfg.Intent.MaxTokens = v.GetInt("intent.max_tokens")
	cfg.Hotspot.CacheTTL = v.GetDuration("hotspot.cache_ttl")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")

	// Load provider configurations
	if v.IsSet("llm.providers") {
		if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// Flat AI_* variables describe a single OpenAI-compatible provider.
	if len(cfg.LLM.Providers) == 0 {
		if apiKey := v.GetString("ai_api_key"); apiKey != "" {
			cfg.LLM.Providers = []ProviderConfig{{
				Name:     v.GetString("ai_provider"),
				Enabled:  true,
				Priority: 1,
				APIKey:   apiKey,
				BaseURL:  strings.TrimSuffix(v.GetString("ai_api_url"), "/chat/completions"),
				Model:    v.GetString("ai_model"),
				Timeout:  v.GetString("intent.classifier_timeout"),
			}}
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("timezone", "Asia/Shanghai")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 60)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("telegram.mode", TelegramModePolling)
	v.SetDefault("telegram.rate_limit_per_min", 20)
	v.SetDefault("telegram.poll_timeout", "30s")
	v.SetDefault("telegram.max_concurrency", 16)
	v.SetDefault("telegram.ngrok_api_url", "http://ngrok:4040")

	v.SetDefault("backend.url", "http://localhost:8080")
	v.SetDefault("backend.timeout", "10s")
	v.SetDefault("site.url", "https://mindbet.io")

	v.SetDefault("intent.confidence_threshold", 0.6)
	v.SetDefault("intent.classifier_timeout", "30s")
	v.SetDefault("intent.temperature", 0.3)
	v.SetDefault("intent.max_tokens", 500)
	v.SetDefault("hotspot.cache_ttl", "30m")

	v.SetDefault("ai_provider", "hunyuan")
	v.SetDefault("ai_model", "hunyuan-lite")

	// LLM defaults
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 3)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "30s")
}

func (c *Config) validate() error {
	switch c.Telegram.Mode {
	case TelegramModeWebhook, TelegramModePolling, TelegramModeBoth:
	default:
		return fmt.Errorf("telegram.mode must be one of webhook, polling, both: got %q", c.Telegram.Mode)
	}
	switch model.Environment(c.Environment.Name) {
	case model.EnvironmentDevelopment, model.EnvironmentProduction:
	default:
		return fmt.Errorf("environment.name must be development or production: got %q", c.Environment.Name)
	}
	if c.HTTPServer.RateLimitPerMin < 0 {
		return fmt.Errorf("http_server.rate_limit_per_min must not be negative: got %d", c.HTTPServer.RateLimitPerMin)
	}
	if c.Telegram.RateLimitPerMin < 0 {
		return fmt.Errorf("telegram.rate_limit_per_min must not be negative: got %d", c.Telegram.RateLimitPerMin)
	}
	if c.Intent.ConfidenceThreshold < 0 || c.Intent.ConfidenceThreshold >= 1 {
		return fmt.Errorf("intent.confidence_threshold must be in [0, 1): got %v", c.Intent.ConfidenceThreshold)
	}
	// Providers are optional: without any the resolver runs keyword-only.
	if len(c.LLM.Providers) > 0 {
		if err := validateLLMConfig(&c.LLM); err != nil {
			return fmt.Errorf("invalid llm config: %w", err)
		}
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		// Try viper first (handles both env and config)
		if envValue := v.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if !provider.Enabled {
			continue
		}
		enabledCount++

		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	for _, d := range []string{cfg.RetryDelay, cfg.MaxTotalTimeout} {
		if d == "" {
			continue
		}
		if _, err := time.ParseDuration(d); err != nil {
			return fmt.Errorf("invalid duration %q: %w", d, err)
		}
	}

	return nil
}

// splitList accepts a YAML list or a comma-separated string (as env vars arrive).
func splitList(raw any) []string {
	var parts []string
	switch val := raw.(type) {
	case []interface{}:
		for _, item := range val {
			parts = append(parts, fmt.Sprint(item))
		}
	case []string:
		parts = val
	case string:
		parts = strings.Split(val, ",")
	}

	var out []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// JSON-decoded numbers arrive as float64
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
