// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port          string
	SiteURL       string
	DBPath        string
	AutoOpenDelay time.Duration
	SessionTTL    time.Duration

	Calendar        CalendarConfig
	Email           EmailConfig
	AssistantAddr   string
	Events          EventsConfig
	ConversationLog ConversationLogConfig
}

// CalendarConfig holds Google Calendar integration settings.
type CalendarConfig struct {
	ClientID       string
	ClientSecret   string
	RefreshToken   string
	CalendarID     string
	OrganizerEmail string
	OrganizerName  string
}

// Enabled reports whether enough credentials are present to talk to the
// calendar API.
func (c CalendarConfig) Enabled() bool {
	return c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
}

// EmailConfig holds settings for the transactional email API.
type EmailConfig struct {
	Endpoint    string
	ServiceID   string
	TemplateID  string
	PublicKey   string
	Destination string
}

// Enabled reports whether the email sender is configured.
func (c EmailConfig) Enabled() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// EventsConfig holds settings for the optional AMQP event publisher.
type EventsConfig struct {
	URL      string
	Exchange string
}

// Enabled reports whether event publishing is configured.
func (c EventsConfig) Enabled() bool {
	return c.URL != ""
}

// ConversationLogConfig controls NDJSON conversation logging.
type ConversationLogConfig struct {
	Enabled       bool
	Dir           string
	GlobalEnabled bool
	GlobalPath    string
	QueueSize     int
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	queueSize := getEnvInt("CONVERSATION_LOG_QUEUE_SIZE", 1000)
	if queueSize <= 0 {
		queueSize = 1000
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SiteURL:       getEnv("SITE_URL", ""),
		DBPath:        getEnv("DB_PATH", "./data/site.db"),
		AutoOpenDelay: getEnvDuration("CHAT_AUTO_OPEN_DELAY", 6*time.Second),
		SessionTTL:    getEnvDuration("CHAT_SESSION_TTL", 60*time.Minute),
		Calendar: CalendarConfig{
			ClientID:       getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret:   getEnv("GOOGLE_CLIENT_SECRET", ""),
			RefreshToken:   getEnv("GOOGLE_REFRESH_TOKEN", ""),
			CalendarID:     getEnv("GOOGLE_CALENDAR_ID", "primary"),
			OrganizerEmail: getEnv("BOOKING_ORGANIZER_EMAIL", "hello@slashbyte.org"),
			OrganizerName:  getEnv("BOOKING_ORGANIZER_NAME", "SlashByte Team"),
		},
		Email: EmailConfig{
			Endpoint:    getEnv("EMAILJS_ENDPOINT", "https://api.emailjs.com/api/v1.0/email/send"),
			ServiceID:   getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID:  getEnv("EMAILJS_TEMPLATE_ID", ""),
			PublicKey:   getEnv("EMAILJS_PUBLIC_KEY", ""),
			Destination: getEnv("EMAILJS_DESTINATION", "hello@slashbyte.org"),
		},
		AssistantAddr: getEnv("ASSISTANT_ADDR", ""),
		Events: EventsConfig{
			URL:      getEnv("AMQP_URL", ""),
			Exchange: getEnv("AMQP_EXCHANGE", "site.events"),
		},
		ConversationLog: ConversationLogConfig{
			Enabled:       getEnvBool("CONVERSATION_LOG_ENABLED", true),
			Dir:           getEnv("CONVERSATION_LOG_DIR", "./data/logs/conversations"),
			GlobalEnabled: getEnvBool("CONVERSATION_LOG_GLOBAL_ENABLED", false),
			GlobalPath:    getEnv("CONVERSATION_LOG_GLOBAL_PATH", "./data/logs/conversations/all.ndjson"),
			QueueSize:     queueSize,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.AutoOpenDelay < 0 {
		return fmt.Errorf("CHAT_AUTO_OPEN_DELAY cannot be negative")
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("CHAT_SESSION_TTL must be > 0")
	}
	if c.ConversationLog.Dir == "" {
		return fmt.Errorf("CONVERSATION_LOG_DIR cannot be empty")
	}
	if c.ConversationLog.GlobalPath == "" {
		return fmt.Errorf("CONVERSATION_LOG_GLOBAL_PATH cannot be empty")
	}
	if c.ConversationLog.QueueSize <= 0 {
		return fmt.Errorf("CONVERSATION_LOG_QUEUE_SIZE must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.SiteURL == "" ||
		strings.Contains(c.SiteURL, "localhost") ||
		strings.Contains(c.SiteURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
