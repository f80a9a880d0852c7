package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, secrets)
// - default: Values common across all environments (timezone, timeout, rates)
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	Store   StoreConfig
	CORS    CORSConfig
	Log     LogConfig
	JWT     JWTConfig
	Token   TokenConfig
	Pricing PricingConfig
	Email   EmailConfig
	Janitor JanitorConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:""`
	DBName   string `envconfig:"DB_NAME" default:"car_rental"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

const (
	StoreBackendPostgres = "postgres"
	StoreBackendMemory   = "memory"
)

type StoreConfig struct {
	Backend string `envconfig:"STORE_BACKEND" default:"postgres"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// JWTConfig verifies caller bearer tokens. Issuing them is the identity provider's job.
type JWTConfig struct {
	Secret   string        `envconfig:"JWT_SECRET" required:"true"`
	Duration time.Duration `envconfig:"JWT_DURATION" default:"24h"`
}

type TokenConfig struct {
	Secret      string        `envconfig:"CONFIRMATION_SECRET" required:"true"`
	TTL         time.Duration `envconfig:"CONFIRMATION_TTL" default:"10m"`
	FrontendURL string        `envconfig:"FRONTEND_URL" default:"http://localhost:5173"`
}

type PricingConfig struct {
	GPSDailyRate       decimal.Decimal `envconfig:"PRICING_GPS_DAILY_RATE" default:"10"`
	ChildSeatDailyRate decimal.Decimal `envconfig:"PRICING_CHILD_SEAT_DAILY_RATE" default:"15"`
}

type EmailConfig struct {
	SendGridAPIKey string `envconfig:"SENDGRID_API_KEY"`
	FromEmail      string `envconfig:"EMAIL_FROM" default:"no-reply@car-rental.local"`
	FromName       string `envconfig:"EMAIL_FROM_NAME" default:"Car Rental Team"`

	ConfirmationTemplateID    string `envconfig:"SENDGRID_TEMPLATE_RENTAL_CONFIRMATION"`
	SuccessTemplateID         string `envconfig:"SENDGRID_TEMPLATE_RENTAL_SUCCESS"`
	ReturnInitiatedTemplateID string `envconfig:"SENDGRID_TEMPLATE_RETURN_INITIATED"`
	ReturnInvoiceTemplateID   string `envconfig:"SENDGRID_TEMPLATE_RETURN_INVOICE"`
}

type JanitorConfig struct {
	Enabled         bool          `envconfig:"OFFER_CLEANUP_ENABLED" default:"true"`
	Schedule        string        `envconfig:"OFFER_CLEANUP_SCHEDULE" default:"0 */5 * * * *"`
	OfferExpiration time.Duration `envconfig:"OFFER_EXPIRATION" default:"10m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	switch cfg.Store.Backend {
	case StoreBackendPostgres, StoreBackendMemory:
	default:
		return Config{}, fmt.Errorf("unsupported STORE_BACKEND %q", cfg.Store.Backend)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 20,
		},
		Store: StoreConfig{Backend: StoreBackendMemory},
		CORS: CORSConfig{
			AllowOrigins: []string{"http://localhost:5173"},
			AllowMethods: []string{"GET", "POST", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
			MaxAge:       time.Hour,
		},
		Log: LogConfig{
			Level:      "error",
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-jwt-secret",
			Duration: time.Hour,
		},
		Token: TokenConfig{
			Secret:      "test-confirmation-secret",
			TTL:         10 * time.Minute,
			FrontendURL: "http://localhost:5173",
		},
		Pricing: PricingConfig{
			GPSDailyRate:       decimal.NewFromInt(10),
			ChildSeatDailyRate: decimal.NewFromInt(15),
		},
		Email: EmailConfig{
			FromEmail: "no-reply@car-rental.local",
			FromName:  "Car Rental Team",
		},
		Janitor: JanitorConfig{
			Enabled:         false,
			Schedule:        "0 */5 * * * *",
			OfferExpiration: 10 * time.Minute,
		},
	}
}
