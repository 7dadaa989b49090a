package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrEmptyEnvironmentVariable = errors.New("empty environment variable")
	ErrInvalidConnectionString  = errors.New("invalid call automation connection string")
	ErrUnknownProvider          = errors.New("unknown provider")
)

const (
	AgentProviderAssistants = "assistants"
	AgentProviderGemini     = "gemini"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config holds all application configuration
type Config struct {
	Server         ServerConfig
	CallAutomation CallAutomationConfig
	Speech         SpeechConfig
	AudioStore     AudioStoreConfig
	Agent          AgentConfig
	Database       DatabaseConfig
	Sessions       SessionConfig
	Notifications  NotificationConfig
	Timing         TimingConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// CallAutomationConfig holds the call-control platform settings
type CallAutomationConfig struct {
	Endpoint        string
	AccessKey       string
	CallbackURL     string
	TargetUserID    string
	APIVersion      string
	WelcomeAudioURL string

	// CognitiveServicesEndpoint enables speech recognition on answered calls.
	CognitiveServicesEndpoint string
}

// SpeechConfig holds text-to-speech and translator settings
type SpeechConfig struct {
	TTSEndpoint        string
	TTSKey             string
	TTSRegion          string
	TranslatorEndpoint string
	TranslatorKey      string
	TranslatorRegion   string
}

// AudioStoreConfig holds the transient audio bucket settings
type AudioStoreConfig struct {
	Bucket   string
	Region   string
	Endpoint string
	Prefix   string
	URLTTL   time.Duration
	// Static keys for S3-compatible stores; the default AWS chain is used when empty.
	AccessKeyID     string
	SecretAccessKey string
}

// AgentConfig holds the conversational agent settings
type AgentConfig struct {
	Provider     string
	Endpoint     string
	APIKey       string
	AgentID      string
	GeminiAPIKey string
	GeminiModel  string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Username       string
	Password       string
	Name           string
	MenuContainer  string
	OrderContainer string
}

// SessionConfig selects and configures the call session backend
type SessionConfig struct {
	Backend       string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	TTL           time.Duration
}

// NotificationConfig holds the optional order confirmation channels.
// An empty credential disables its channel.
type NotificationConfig struct {
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string
	ResendAPIKey     string
	OrderEmailSender string
	KafkaBrokers     []string
	OrderEventsTopic string
}

// TimingConfig bounds outbound calls and the silence hang-up pause
type TimingConfig struct {
	OutboundTimeout    time.Duration
	SilenceHangupDelay time.Duration
}

// Load reads and validates all required environment variables
func Load() (*Config, error) {
	// Load env.local in non-production environments
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return nil, fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return FromEnv()
}

// FromEnv builds the configuration from the current process environment.
func FromEnv() (*Config, error) {
	cfg := &Config{}
	var err error

	// Server configuration
	cfg.Server.Port, err = strconv.Atoi(getEnvWithDefault("SERVER_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	// Call automation configuration
	connectionString, err := requireEnv("ACS_CONNECTION_STRING")
	if err != nil {
		return nil, err
	}
	cfg.CallAutomation.Endpoint, cfg.CallAutomation.AccessKey, err = ParseConnectionString(connectionString)
	if err != nil {
		return nil, err
	}
	if cfg.CallAutomation.CallbackURL, err = requireEnv("ACS_CALLBACK_URL"); err != nil {
		return nil, err
	}
	cfg.CallAutomation.TargetUserID = os.Getenv("ACS_TARGET_USER_ID")
	cfg.CallAutomation.APIVersion = getEnvWithDefault("ACS_API_VERSION", "2023-10-15")
	cfg.CallAutomation.WelcomeAudioURL = os.Getenv("WELCOME_AUDIO_URL")
	cfg.CallAutomation.CognitiveServicesEndpoint = os.Getenv("ACS_COGNITIVE_SERVICES_ENDPOINT")

	// Speech configuration
	if cfg.Speech.TTSEndpoint, err = requireEnv("TTS_ENDPOINT"); err != nil {
		return nil, err
	}
	if cfg.Speech.TTSKey, err = requireEnv("TTS_KEY"); err != nil {
		return nil, err
	}
	if cfg.Speech.TTSRegion, err = requireEnv("TTS_REGION"); err != nil {
		return nil, err
	}
	cfg.Speech.TranslatorEndpoint = getEnvWithDefault("TRANSLATOR_ENDPOINT", "https://api.cognitive.microsofttranslator.com")
	if cfg.Speech.TranslatorKey, err = requireEnv("TRANSLATOR_KEY"); err != nil {
		return nil, err
	}
	cfg.Speech.TranslatorRegion = getEnvWithDefault("TRANSLATOR_REGION", cfg.Speech.TTSRegion)

	// Audio store configuration
	if cfg.AudioStore.Bucket, err = requireEnv("AUDIO_BUCKET"); err != nil {
		return nil, err
	}
	cfg.AudioStore.Region = getEnvWithDefault("AUDIO_BUCKET_REGION", "us-east-1")
	cfg.AudioStore.Endpoint = os.Getenv("AUDIO_BUCKET_ENDPOINT")
	cfg.AudioStore.Prefix = os.Getenv("AUDIO_BUCKET_PREFIX")
	cfg.AudioStore.AccessKeyID = os.Getenv("AUDIO_BUCKET_ACCESS_KEY_ID")
	cfg.AudioStore.SecretAccessKey = os.Getenv("AUDIO_BUCKET_SECRET_ACCESS_KEY")
	if cfg.AudioStore.URLTTL, err = durationEnv("AUDIO_URL_TTL", "15m"); err != nil {
		return nil, err
	}

	// Agent configuration
	cfg.Agent.Provider = getEnvWithDefault("AGENT_PROVIDER", AgentProviderAssistants)
	switch cfg.Agent.Provider {
	case AgentProviderAssistants:
		cfg.Agent.Endpoint = os.Getenv("AGENT_ENDPOINT")
		if cfg.Agent.APIKey, err = requireEnv("AGENT_API_KEY"); err != nil {
			return nil, err
		}
		if cfg.Agent.AgentID, err = requireEnv("AGENT_ID"); err != nil {
			return nil, err
		}
	case AgentProviderGemini:
		if cfg.Agent.GeminiAPIKey, err = requireEnv("GEMINI_API_KEY"); err != nil {
			return nil, err
		}
		cfg.Agent.GeminiModel = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
	default:
		return nil, fmt.Errorf("AGENT_PROVIDER %q: %w", cfg.Agent.Provider, ErrUnknownProvider)
	}

	// Database configuration
	if cfg.Database.Host, err = requireEnv("DB_HOST"); err != nil {
		return nil, err
	}
	if cfg.Database.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return nil, err
	}
	if cfg.Database.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return nil, err
	}
	if cfg.Database.Name, err = requireEnv("DB_NAME"); err != nil {
		return nil, err
	}
	cfg.Database.MenuContainer = getEnvWithDefault("MENU_CONTAINER", "food_menu_items")
	cfg.Database.OrderContainer = getEnvWithDefault("ORDER_CONTAINER", "food_orders")

	// Session configuration
	cfg.Sessions.Backend = getEnvWithDefault("SESSION_BACKEND", SessionBackendMemory)
	switch cfg.Sessions.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if cfg.Sessions.RedisHost, err = requireEnv("REDIS_HOST"); err != nil {
			return nil, err
		}
		cfg.Sessions.RedisPort = getEnvWithDefault("REDIS_PORT", "6379")
		cfg.Sessions.RedisPassword = os.Getenv("REDIS_PASSWORD")
		cfg.Sessions.RedisDB, err = strconv.Atoi(getEnvWithDefault("REDIS_DB", "0"))
		if err != nil {
			return nil, fmt.Errorf("failed to parse REDIS_DB: %w", err)
		}
	default:
		return nil, fmt.Errorf("SESSION_BACKEND %q: %w", cfg.Sessions.Backend, ErrUnknownProvider)
	}
	if cfg.Sessions.TTL, err = durationEnv("SESSION_TTL", "2h"); err != nil {
		return nil, err
	}

	// Notification configuration, every channel optional
	cfg.Notifications.TwilioAccountSID = os.Getenv("TWILIO_ACCOUNT_SID")
	cfg.Notifications.TwilioAuthToken = os.Getenv("TWILIO_AUTH_TOKEN")
	cfg.Notifications.TwilioFromNumber = os.Getenv("TWILIO_FROM_NUMBER")
	cfg.Notifications.ResendAPIKey = os.Getenv("RESEND_API_KEY")
	cfg.Notifications.OrderEmailSender = os.Getenv("ORDER_EMAIL_SENDER")
	cfg.Notifications.KafkaBrokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Notifications.OrderEventsTopic = getEnvWithDefault("ORDER_EVENTS_TOPIC", "food-orders")

	// Timing configuration
	if cfg.Timing.OutboundTimeout, err = durationEnv("OUTBOUND_TIMEOUT", "10s"); err != nil {
		return nil, err
	}
	if cfg.Timing.SilenceHangupDelay, err = durationEnv("SILENCE_HANGUP_DELAY", "3s"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConnectionString returns a PostgreSQL connection string
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s",
		c.Username, c.Password, c.Host, c.Name)
}

// Addr returns the redis host:port pair
func (c *SessionConfig) Addr() string {
	return c.RedisHost + ":" + c.RedisPort
}

// SMSEnabled reports whether all Twilio credentials are present
func (c *NotificationConfig) SMSEnabled() bool {
	return c.TwilioAccountSID != "" && c.TwilioAuthToken != "" && c.TwilioFromNumber != ""
}

// EmailEnabled reports whether Resend is configured with a sender
func (c *NotificationConfig) EmailEnabled() bool {
	return c.ResendAPIKey != "" && c.OrderEmailSender != ""
}

// EventsEnabled reports whether order events should be published
func (c *NotificationConfig) EventsEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

// ParseConnectionString splits "endpoint=https://...;accesskey=..." into its parts.
// Keys are matched case-insensitively and the access key keeps any trailing '=' padding.
func ParseConnectionString(raw string) (endpoint, accessKey string, err error) {
	for _, part := range strings.Split(raw, ";") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.ToLower(key) {
		case "endpoint":
			endpoint = strings.TrimSuffix(value, "/")
		case "accesskey":
			accessKey = value
		}
	}
	if endpoint == "" || accessKey == "" {
		return "", "", ErrInvalidConnectionString
	}
	return endpoint, accessKey, nil
}

// requireEnv retrieves an environment variable or returns an error if empty
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func durationEnv(key, defaultValue string) (time.Duration, error) {
	d, err := time.ParseDuration(getEnvWithDefault(key, defaultValue))
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return d, nil
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
