package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"uni_dashboard/catalog"
)

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	devSessionSecret    = "dev-only-session-secret-change-me-please!"
	minSessionSecret    = 32
	defaultTotalClasses = 30
)

type Config struct {
	Environment        string
	ServerPort         string
	LogLevel           slog.Level
	SessionSecret      string
	SessionName        string
	SessionMaxAge      time.Duration
	CORSAllowedOrigins []string
	DefaultTotal       int
	Author             string
	AppTitle           string
	ShutdownTimeout    time.Duration
	Catalog            catalog.Catalog
}

// IsDevelopment reports whether the app runs locally or under tests.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment || c.Environment == EnvTest
}

// Load builds the configuration from defaults, an optional .env file, the
// environment and, if path is not empty, a config file. Environment wins over
// the file.
func Load(path string) (*Config, error) {
	// Non-fatal: production injects the environment directly.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "loading .env")
	}

	v := newViper()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config file %s", path)
		}
	}
	return fromViper(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	def := catalog.Default()
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_secret", "")
	v.SetDefault("session_name", "dashboard_session")
	v.SetDefault("session_max_age", 24*time.Hour)
	v.SetDefault("cors_allowed_origins", []string{"*"})
	v.SetDefault("default_total_classes", defaultTotalClasses)
	v.SetDefault("author", "HUSAM")
	v.SetDefault("app_title", "BITS Pilani, Dubai Clubs Dashboard")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("catalog.frame_width", def.FrameWidth)
	v.SetDefault("catalog.frame_height", def.FrameHeight)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func fromViper(v *viper.Viper) (*Config, error) {
	level, err := parseLevel(v.GetString("log_level"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Environment:        strings.ToLower(v.GetString("environment")),
		ServerPort:         v.GetString("port"),
		LogLevel:           level,
		SessionSecret:      v.GetString("session_secret"),
		SessionName:        v.GetString("session_name"),
		SessionMaxAge:      v.GetDuration("session_max_age"),
		CORSAllowedOrigins: splitList(v.GetStringSlice("cors_allowed_origins")),
		DefaultTotal:       v.GetInt("default_total_classes"),
		Author:             v.GetString("author"),
		AppTitle:           v.GetString("app_title"),
		ShutdownTimeout:    v.GetDuration("shutdown_timeout"),
		Catalog:            catalog.Default(),
	}
	cfg.Catalog.FrameWidth = v.GetInt("catalog.frame_width")
	cfg.Catalog.FrameHeight = v.GetInt("catalog.frame_height")

	if v.IsSet("catalog.university") {
		if err := v.UnmarshalKey("catalog.university", &cfg.Catalog.University); err != nil {
			return nil, errors.Wrap(err, "decoding catalog.university")
		}
	}
	if v.IsSet("catalog.clubs") {
		if err := v.UnmarshalKey("catalog.clubs", &cfg.Catalog.Clubs); err != nil {
			return nil, errors.Wrap(err, "decoding catalog.clubs")
		}
	}

	if cfg.SessionSecret == "" && cfg.IsDevelopment() {
		cfg.SessionSecret = devSessionSecret
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := strconv.ParseUint(c.ServerPort, 10, 16); err != nil {
		return errors.Errorf("invalid port %q", c.ServerPort)
	}
	if len(c.SessionSecret) < minSessionSecret {
		return errors.Errorf("SESSION_SECRET must be at least %d bytes", minSessionSecret)
	}
	if c.SessionName == "" {
		return errors.New("session name is required")
	}
	if c.DefaultTotal < 1 {
		return errors.Errorf("default total classes must be at least 1, got %d", c.DefaultTotal)
	}
	if c.ShutdownTimeout <= 0 {
		return errors.Errorf("invalid shutdown timeout %s", c.ShutdownTimeout)
	}
	return errors.Wrap(c.Catalog.Validate(), "invalid catalog")
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, errors.Wrapf(err, "invalid log level %q", s)
	}
	return level, nil
}

// splitList accepts both list values and a comma separated env var.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
