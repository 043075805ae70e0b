package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"task-tracker/internal/model"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task tracker specifics
	Storage        StorageConfig
	Timezone       string
	GoogleCalendar GoogleCalendarConfig
	Reminder       ReminderConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool

	// ConsoleLevel applies to cmd/console only, where stderr shares the terminal with the menu.
	ConsoleLevel string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type StorageConfig struct {
	CSVPath string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

type ReminderConfig struct {
	Enabled  bool
	Schedule string // cron spec with a seconds field
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/task-tracker/.
// Any key can be overridden from the environment, e.g. STORAGE_CSV_PATH.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/task-tracker/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.ConsoleLevel = v.GetString("logger.console_level")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	// Task tracker specifics
	cfg.Storage.CSVPath = strings.TrimSpace(v.GetString("storage.csv_path"))
	cfg.Timezone = v.GetString("timezone")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	cfg.Reminder.Enabled = v.GetBool("reminder.enabled")
	cfg.Reminder.Schedule = v.GetString("reminder.schedule")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Storage.CSVPath == "" {
		return errors.New("storage.csv_path must not be empty")
	}
	if cfg.Reminder.Enabled && cfg.Reminder.Schedule == "" {
		return errors.New("reminder.schedule is required when reminder.enabled is true")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.console_level", "warn")
	v.SetDefault("rate_limit.requests_per_min", 60)

	v.SetDefault("storage.csv_path", "tasks.csv")
	v.SetDefault("timezone", "Local")

	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")

	v.SetDefault("reminder.enabled", false)
	v.SetDefault("reminder.schedule", "0 0 8 * * *")
}
