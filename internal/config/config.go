package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from config.toml
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Redis    Redis    `toml:"redis"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Auth     Auth     `toml:"auth"`
	Studio   Studio   `toml:"studio"`
}

// Server holds the HTTP listener settings; timeouts are in seconds
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// Database holds the postgres connection settings
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // seconds
}

// DSN builds the lib/pq connection string
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Redis holds the optional cache backend settings. When disabled, the
// availability cache falls back to the in-process store.
type Redis struct {
	Enabled  bool   `toml:"enabled"`
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Logs holds the logger settings
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds the prometheus settings
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Auth holds the operator sign-in settings
type Auth struct {
	JWTSecret   string `toml:"jwt_secret"`
	TokenTTLMin int    `toml:"token_ttl_minutes"`
}

// Studio holds the business settings: the operator's WhatsApp number
// (digits only, with country code) and the dates the studio is closed.
type Studio struct {
	OperatorPhone string   `toml:"operator_phone"`
	BlockedDates  []string `toml:"blocked_dates"` // YYYY-MM-DD
	SessionTTLMin int      `toml:"session_ttl_minutes"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return &cfg, nil
}
