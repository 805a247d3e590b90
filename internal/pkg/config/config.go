package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments and have no safe default (secrets)
// - default: Values common across all environments (timezone, limits, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server     ServerConfig
	Store      StoreConfig
	DB         DBConfig
	Redis      RedisConfig
	CORS       CORSConfig
	Log        LogConfig
	Admin      AdminConfig
	Cookie     CookieConfig
	Mail       MailConfig
	SMS        SMSConfig
	RateLimit  RateLimitConfig
	Digest     DigestConfig
	Restaurant RestaurantConfig
}

type ServerConfig struct {
	Port      string `envconfig:"PORT" default:"3000"`
	BodyLimit int64  `envconfig:"BODY_LIMIT" default:"10240"`
}

type StoreConfig struct {
	// file | postgres | redis | memory
	Driver  string `envconfig:"STORE_DRIVER" default:"file"`
	DataDir string `envconfig:"STORE_DATA_DIR" default:"./database"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD"`
	DBName   string `envconfig:"DB_NAME" default:"restaurant"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Europe/Paris"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"restaurant:"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"*"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-API-Key"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Paris"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"3600"` // 1*60*60
}

type AdminConfig struct {
	// Either the raw key or its bcrypt hash; the hash wins when both are set.
	APIKey          string        `envconfig:"ADMIN_API_KEY"`
	APIKeyHash      string        `envconfig:"ADMIN_API_KEY_HASH"`
	JWTSecret       string        `envconfig:"ADMIN_JWT_SECRET"`
	SessionDuration time.Duration `envconfig:"ADMIN_SESSION_DURATION" default:"12h"`
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN"`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Strict"`
}

type MailConfig struct {
	SendGridAPIKey  string `envconfig:"SENDGRID_API_KEY"`
	FromEmail       string `envconfig:"SENDGRID_FROM_EMAIL"`
	FromName        string `envconfig:"SENDGRID_FROM_NAME" default:"La Voûte Savoie"`
	RestaurantEmail string `envconfig:"RESTAURANT_EMAIL"`
}

type SMSConfig struct {
	AccountSID string `envconfig:"TWILIO_ACCOUNT_SID"`
	AuthToken  string `envconfig:"TWILIO_AUTH_TOKEN"`
	FromNumber string `envconfig:"TWILIO_FROM_NUMBER"`
}

type RateLimitConfig struct {
	Enabled         bool          `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
	GlobalRequests  int           `envconfig:"RATE_LIMIT_GLOBAL_REQUESTS" default:"100"`
	GlobalWindow    time.Duration `envconfig:"RATE_LIMIT_GLOBAL_WINDOW" default:"15m"`
	BookingRequests int           `envconfig:"RATE_LIMIT_BOOKING_REQUESTS" default:"10"`
	BookingWindow   time.Duration `envconfig:"RATE_LIMIT_BOOKING_WINDOW" default:"1h"`
}

type DigestConfig struct {
	Enabled bool   `envconfig:"DIGEST_ENABLED" default:"false"`
	Cron    string `envconfig:"DIGEST_CRON" default:"0 9 * * *"`
}

type RestaurantConfig struct {
	Name     string `envconfig:"RESTAURANT_NAME" default:"La Voûte Savoie"`
	TimeZone string `envconfig:"RESTAURANT_TIMEZONE" default:"Europe/Paris"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// Location falls back to UTC when the zone database does not know the name.
func (c RestaurantConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func (c AdminConfig) Enabled() bool {
	return c.APIKey != "" || c.APIKeyHash != ""
}

func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("failed to load .env file: %w", err)
	}

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
			Port:      "8889", // Test port
			BodyLimit: 10240,
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Paris",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 3600,
		},
		Admin: AdminConfig{
			APIKey:          "test-admin-key",
			JWTSecret:       "test-jwt-secret",
			SessionDuration: time.Hour,
		},
		Cookie: CookieConfig{
			SameSite: "Strict",
		},
		RateLimit: RateLimitConfig{
			Enabled: false,
		},
		Restaurant: RestaurantConfig{
			Name:     "Test Restaurant",
			TimeZone: "Europe/Paris",
		},
	}
}
