package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values without a safe default (chat credentials, admin identity)
// - default: Policy knobs common across deployments (lead time, horizon, slots)
// -----------------------------------------------------------------------------

type Config struct {
	Bot     BotConfig
	Server  ServerConfig
	Store   StoreConfig
	DB      DBConfig
	Booking BookingConfig
	CORS    CORSConfig
	Log     LogConfig
}

type BotConfig struct {
	Token      string `envconfig:"BOT_TOKEN" required:"true"`
	AdminID    int64  `envconfig:"ADMIN_CHAT_ID" required:"true"`
	AdminToken string `envconfig:"ADMIN_API_TOKEN" required:"true"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type StoreConfig struct {
	// Driver selects the ledger backend: "postgres" or "memory".
	Driver string `envconfig:"STORE_DRIVER" default:"postgres"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" default:"shootbook"`
	Password string `envconfig:"DB_PASSWORD" default:"shootbook"`
	DBName   string `envconfig:"DB_NAME" default:"shootbook"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type BookingConfig struct {
	TimeZone    string        `envconfig:"BOOKING_TIMEZONE" default:"Europe/Moscow"`
	LeadTime    time.Duration `envconfig:"BOOKING_LEAD_TIME" default:"60m"`
	HorizonDays int           `envconfig:"BOOKING_HORIZON_DAYS" default:"180"`
	DayTimes    []string      `envconfig:"BOOKING_DAY_TIMES" default:"10:00,11:00,12:00,13:00,14:00,15:00,16:00,17:00,18:00,19:00"`
	ShootTypes  []string      `envconfig:"BOOKING_SHOOT_TYPES" default:"Wedding,Reportage,Individual/Family"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Admin-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Europe/Moscow"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"10800"` // 3*60*60
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
		Bot: BotConfig{
			Token:      "test-token",
			AdminID:    1,
			AdminToken: "test-admin-token",
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Store: StoreConfig{
			Driver: "memory",
		},
		Booking: BookingConfig{
			TimeZone:    "Europe/Moscow",
			LeadTime:    60 * time.Minute,
			HorizonDays: 180,
			DayTimes:    []string{"10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00"},
			ShootTypes:  []string{"Wedding", "Reportage", "Individual/Family"},
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Europe/Moscow",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 10800,
		},
	}
}
