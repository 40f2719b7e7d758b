package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, passcode, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server  ServerConfig
	DB      DBConfig
	CORS    CORSConfig
	Log     LogConfig
	Staff   StaffConfig
	Session SessionConfig
	Cookie  CookieConfig
	Redis   RedisConfig
	Gemini  GeminiConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

// DBConfig selects the booking store. Driver is "postgres" or "sqlite".
type DBConfig struct {
	Driver     string `envconfig:"DB_DRIVER" default:"sqlite"`
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       string `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER"`
	Password   string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME" default:"appointments"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone   string `envconfig:"DB_TIMEZONE" default:"UTC"`
	SQLitePath string `envconfig:"SQLITE_PATH" default:"appointments.db"`
	MaxConns   int32  `envconfig:"DB_MAX_CONNS" default:"10"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Session-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// StaffConfig holds the shared staff passcode. PasscodeHash wins over Passcode when both are set.
type StaffConfig struct {
	Passcode          string  `envconfig:"STAFF_PASSCODE"`
	PasscodeHash      string  `envconfig:"STAFF_PASSCODE_HASH"`
	AttemptsPerMinute float64 `envconfig:"STAFF_ATTEMPTS_PER_MINUTE" default:"5"`
	Burst             int     `envconfig:"STAFF_ATTEMPTS_BURST" default:"3"`
}

// SessionConfig.Backend is "memory" or "redis".
type SessionConfig struct {
	Backend       string        `envconfig:"SESSION_BACKEND" default:"memory"`
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
	HistorySize   int           `envconfig:"SESSION_HISTORY_SIZE" default:"10"`
}

type CookieConfig struct {
	Name     string `envconfig:"COOKIE_NAME" default:"session_id"`
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
}

type RedisConfig struct {
	Addr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password  string `envconfig:"REDIS_PASSWORD"`
	DB        int    `envconfig:"REDIS_DB" default:"0"`
	KeyPrefix string `envconfig:"REDIS_KEY_PREFIX" default:"appt:session:"`
}

// GeminiConfig enables the LLM responder when APIKey is set.
type GeminiConfig struct {
	APIKey      string        `envconfig:"GEMINI_API_KEY"`
	Model       string        `envconfig:"GEMINI_MODEL" default:"gemini-1.5-flash"`
	Temperature float32       `envconfig:"GEMINI_TEMPERATURE" default:"0.3"`
	Timeout     time.Duration `envconfig:"GEMINI_TIMEOUT" default:"15s"`
}

type AppConfig struct {
	TimeZone string `envconfig:"APP_TIMEZONE" default:"UTC"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

// BuildSQLiteDSN enables foreign keys and a busy timeout so concurrent writers wait instead of failing.
func (c *DBConfig) BuildSQLiteDSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000&_foreign_keys=on", c.SQLitePath)
}

func (c *AppConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("failed to load app timezone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if cfg.Staff.Passcode == "" && cfg.Staff.PasscodeHash == "" {
		return Config{}, fmt.Errorf("one of STAFF_PASSCODE or STAFF_PASSCODE_HASH is required")
	}
	switch cfg.DB.Driver {
	case "postgres", "sqlite":
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DB.Driver)
	}
	switch cfg.Session.Backend {
	case "memory", "redis":
	default:
		return Config{}, fmt.Errorf("unsupported SESSION_BACKEND %q", cfg.Session.Backend)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Driver:     "sqlite",
			Host:       "localhost",
			Port:       "15433", // Test DB port
			User:       "test",
			Password:   "test",
			DBName:     "test_db",
			SSLMode:    "disable",
			TimeZone:   "UTC",
			SQLitePath: ":memory:",
			MaxConns:   4,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Staff: StaffConfig{
			Passcode:          "letmein42",
			AttemptsPerMinute: 60,
			Burst:             5,
		},
		Session: SessionConfig{
			Backend:       "memory",
			IdleTTL:       30 * time.Minute,
			SweepInterval: time.Minute,
			HistorySize:   10,
		},
		Cookie: CookieConfig{
			Name:     "session_id",
			SameSite: "Lax",
		},
		Redis: RedisConfig{
			Addr:      "localhost:6379",
			KeyPrefix: "appt:test:",
		},
		Gemini: GeminiConfig{
			Model: "gemini-1.5-flash",
		},
		App: AppConfig{
			TimeZone: "UTC",
		},
	}
}
