package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	JWT      JWTConfig
	Booking  BookingConfig
	Sweeper  SweeperConfig
	Redis    RedisConfig
	Notifier NotifierConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
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

type JWTConfig struct {
	Secret   string `envconfig:"JWT_SECRET" required:"true"`
	Duration string `envconfig:"JWT_DURATION" default:"24h"`
}

type BookingConfig struct {
	// how early before scheduledStart a confirmed session may be started
	StartWindowBefore time.Duration `envconfig:"BOOKING_START_WINDOW_BEFORE" default:"15m"`
	MinLeadTime       time.Duration `envconfig:"BOOKING_MIN_LEAD_TIME" default:"60m"`
	MaxDaysAhead      int           `envconfig:"BOOKING_MAX_DAYS_AHEAD" default:"60"`
	DefaultTimezone   string        `envconfig:"BOOKING_DEFAULT_TIMEZONE" default:"UTC"`
	SweepOnRead       bool          `envconfig:"BOOKING_SWEEP_ON_READ" default:"true"`
}

type SweeperConfig struct {
	Enabled              bool          `envconfig:"SWEEPER_ENABLED" default:"true"`
	Schedule             string        `envconfig:"SWEEPER_SCHEDULE" default:"@every 5m"`
	LockTTL              time.Duration `envconfig:"SWEEPER_LOCK_TTL" default:"2m"`
	PaymentRetrySchedule string        `envconfig:"PAYMENT_RETRY_SCHEDULE" default:"@every 1m"`
	PaymentRetryBatch    int           `envconfig:"PAYMENT_RETRY_BATCH" default:"50"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Prefix   string `envconfig:"REDIS_KEY_PREFIX" default:"guidely"`
}

type NotifierConfig struct {
	// log | smtp | kafka
	Driver    string `envconfig:"NOTIFIER_DRIVER" default:"log"`
	QueueSize int    `envconfig:"NOTIFIER_QUEUE_SIZE" default:"256"`

	SMTPHost     string `envconfig:"SMTP_HOST" default:"localhost"`
	SMTPPort     int    `envconfig:"SMTP_PORT" default:"587"`
	SMTPUser     string `envconfig:"SMTP_USER" default:""`
	SMTPPassword string `envconfig:"SMTP_PASSWORD" default:""`
	SMTPFrom     string `envconfig:"SMTP_FROM" default:"no-reply@guidely.local"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS" default:"localhost:9092"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"guidely.booking-events"`
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
	if _, err := time.LoadLocation(cfg.Booking.DefaultTimezone); err != nil {
		return Config{}, fmt.Errorf("invalid BOOKING_DEFAULT_TIMEZONE %q: %w", cfg.Booking.DefaultTimezone, err)
	}
	return cfg, nil
}

// LoadDBConfig reads only the database settings, for tools that never serve HTTP.
func LoadDBConfig() (DBConfig, error) {
	var cfg DBConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return DBConfig{}, fmt.Errorf("failed to process db env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		JWT: JWTConfig{
			Secret:   "test-secret",
			Duration: "1h",
		},
		Booking: BookingConfig{
			StartWindowBefore: 15 * time.Minute,
			MinLeadTime:       60 * time.Minute,
			MaxDaysAhead:      60,
			DefaultTimezone:   "UTC",
			SweepOnRead:       true,
		},
		Sweeper: SweeperConfig{
			Enabled:              false,
			Schedule:             "@every 5m",
			LockTTL:              2 * time.Minute,
			PaymentRetrySchedule: "@every 1m",
			PaymentRetryBatch:    50,
		},
		Notifier: NotifierConfig{
			Driver:    "log",
			QueueSize: 16,
		},
	}
}
