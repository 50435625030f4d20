package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

var GlobalConfig *Config

// Config global configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Logger   LoggerConfig   `yaml:"logger"`
	Tracker  TrackerConfig  `yaml:"tracker"`
}

// ServerConfig server configuration
type ServerConfig struct {
	Port           int           `yaml:"port"`
	Mode           string        `yaml:"mode"`            // debug, release, test
	RequestTimeout time.Duration `yaml:"request_timeout"` // per-request deadline propagated to queries
}

// DatabaseConfig relational store configuration
type DatabaseConfig struct {
	Driver   string `yaml:"driver"` // mysql, sqlite
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	Path     string `yaml:"path"` // sqlite file path
}

// RedisConfig Redis configuration for the hours cache
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

// LoggerConfig logger configuration
type LoggerConfig struct {
	Level  string           `yaml:"level"`  // debug, info, warn, error
	Output string           `yaml:"output"` // console, file, both
	File   LoggerFileConfig `yaml:"file"`
}

// LoggerFileConfig logger file configuration
type LoggerFileConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"max_size"`    // megabytes before rotation
	MaxBackups int    `yaml:"max_backups"` // rotated files kept, 0 keeps all
	MaxAge     int    `yaml:"max_age"`     // days, 0 disables age based removal
	Compress   bool   `yaml:"compress"`
}

// TrackerConfig tracker business rules
type TrackerConfig struct {
	Timezone           string `yaml:"timezone"`             // zone used to cut calendar months
	AllowNegativeHours *bool  `yaml:"allow_negative_hours"` // nil means allowed
}

// Location resolves the configured month-boundary time zone.
func (c TrackerConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NegativeHoursAllowed reports whether negative hour values are accepted.
func (c TrackerConfig) NegativeHoursAllowed() bool {
	return c.AllowNegativeHours == nil || *c.AllowNegativeHours
}

// Default values
const (
	DefaultPort           = 3000
	DefaultMode           = "release"
	DefaultRequestTimeout = 10 * time.Second
	DefaultDriver         = "mysql"
	DefaultMySQLPort      = 3306
	DefaultSQLitePath     = "data/mytime.db"
	DefaultRedisTTL       = 5 * time.Minute
	DefaultTimezone       = "UTC"
	DefaultLogLevel       = "info"
	DefaultLogOutput      = "console"
	DefaultLogFile        = "logs/mytime.log"
	DefaultLogMaxSize     = 100
)

// Init initializes configuration
func Init() error {
	cfg, err := Load(configPath())
	if err != nil {
		return err
	}
	GlobalConfig = cfg
	return nil
}

// Load reads a YAML config file, applies environment overrides and fills defaults.
// A missing file is not an error: env and defaults are enough to boot.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
	case os.IsNotExist(err):
	default:
		return nil, err
	}

	applyEnvOverrides(&cfg)
	validateAndApplyDefaults(&cfg)
	return &cfg, nil
}

func configPath() string {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}
	return configPath
}

// applyEnvOverrides honours the variables the service was historically deployed with.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = port
		}
	}
	if v := os.Getenv("DB_USER"); v != "" {
		cfg.Database.User = v
	}
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("DB_DATABASE"); v != "" {
		cfg.Database.Database = v
	}
}

// validateAndApplyDefaults replaces missing or invalid values with defaults
func validateAndApplyDefaults(cfg *Config) {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		cfg.Server.Port = DefaultPort
	}
	switch cfg.Server.Mode {
	case "debug", "release", "test":
	default:
		cfg.Server.Mode = DefaultMode
	}
	if cfg.Server.RequestTimeout <= 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}

	switch cfg.Database.Driver {
	case "mysql":
	case "sqlite":
		if cfg.Database.Path == "" {
			cfg.Database.Path = DefaultSQLitePath
		}
	default:
		cfg.Database.Driver = DefaultDriver
	}
	if cfg.Database.Port <= 0 {
		cfg.Database.Port = DefaultMySQLPort
	}

	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = DefaultRedisTTL
	}

	switch cfg.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		cfg.Logger.Level = DefaultLogLevel
	}
	switch cfg.Logger.Output {
	case "console":
	case "file", "both":
		if cfg.Logger.File.Path == "" {
			cfg.Logger.File.Path = DefaultLogFile
		}
		if cfg.Logger.File.MaxSize <= 0 {
			cfg.Logger.File.MaxSize = DefaultLogMaxSize
		}
	default:
		cfg.Logger.Output = DefaultLogOutput
	}

	if cfg.Tracker.Timezone == "" {
		cfg.Tracker.Timezone = DefaultTimezone
	}
	if _, err := time.LoadLocation(cfg.Tracker.Timezone); err != nil {
		cfg.Tracker.Timezone = DefaultTimezone
	}
}
