package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   secrets for external providers)
// - default: Values common across all environments (timezone, timeout, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Email    EmailConfig
	WhatsApp WhatsAppConfig
	Cron     CronConfig
}

type ServerConfig struct {
	Port     string `envconfig:"PORT" required:"true"`
	TimeZone string `envconfig:"SERVER_TIMEZONE" default:"UTC"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

type JWTConfig struct {
	Secret               string `envconfig:"JWT_SECRET" required:"true"`
	AccessTokenDuration  string `envconfig:"JWT_ACCESS_TOKEN_DURATION" default:"1h"`
	RefreshTokenDuration string `envconfig:"JWT_REFRESH_TOKEN_DURATION" default:"168h"`
}

// EmailConfig drives the transactional email dispatcher. When APIKey is
// empty the dispatcher is disabled and sends report a skipped outcome.
type EmailConfig struct {
	APIBaseURL  string        `envconfig:"EMAIL_API_BASE_URL" default:"https://api.resend.com"`
	APIKey      string        `envconfig:"EMAIL_API_KEY" default:""`
	FromAddress string        `envconfig:"EMAIL_FROM_ADDRESS" default:"reservations@example.com"`
	FromName    string        `envconfig:"EMAIL_FROM_NAME" default:"Hotel Reservations"`
	Timeout     time.Duration `envconfig:"EMAIL_TIMEOUT" default:"10s"`
}

// WhatsAppConfig drives the WhatsApp dispatcher (Twilio messaging API).
// Disabled unless both AccountSID and AuthToken are set.
type WhatsAppConfig struct {
	APIBaseURL string        `envconfig:"WHATSAPP_API_BASE_URL" default:"https://api.twilio.com"`
	AccountSID string        `envconfig:"TWILIO_ACCOUNT_SID" default:""`
	AuthToken  string        `envconfig:"TWILIO_AUTH_TOKEN" default:""`
	FromNumber string        `envconfig:"TWILIO_WHATSAPP_FROM" default:""`
	Timeout    time.Duration `envconfig:"WHATSAPP_TIMEOUT" default:"10s"`
}

type CronConfig struct {
	Secret string `envconfig:"CRON_SECRET" required:"true"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:     "8889",
			TimeZone: "UTC",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:               "test-secret",
			AccessTokenDuration:  "1h",
			RefreshTokenDuration: "168h",
		},
		Cron: CronConfig{
			Secret: "test-cron-secret",
		},
	}
}
