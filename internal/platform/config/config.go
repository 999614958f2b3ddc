package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix namespaces every environment variable, e.g. BENEFITCHECK_ADDR.
const envPrefix = "BENEFITCHECK"

// Server captures HTTP server level configuration.
type Server struct {
	Addr            string        `mapstructure:"ADDR"`
	Environment     string        `mapstructure:"ENV"`
	LogLevel        string        `mapstructure:"LOG_LEVEL"`
	LogFormat       string        `mapstructure:"LOG_FORMAT"`
	RequestTimeout  time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins  []string      `mapstructure:"CORS_ALLOWED_ORIGINS"`
	MetricsEnabled  bool          `mapstructure:"METRICS_ENABLED"`
	// MetricsAddr serves /metrics on its own listener when set; otherwise the
	// endpoint is mounted on the main router.
	MetricsAddr     string        `mapstructure:"METRICS_ADDR"`
}

var defaults = map[string]any{
	"ADDR":                 ":8080",
	"ENV":                  "development",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"REQUEST_TIMEOUT":      "30s",
	"SHUTDOWN_TIMEOUT":     "10s",
	"CORS_ALLOWED_ORIGINS": "*",
	"METRICS_ENABLED":      true,
	"METRICS_ADDR":         "",
}

// Load builds a Server config from the environment so main stays lean. A .env
// file in the working directory is loaded first when present; real environment
// variables win over it.
func Load() (Server, error) {
	_ = godotenv.Load()
	return load(viper.New())
}

func load(v *viper.Viper) (Server, error) {
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return Server{}, fmt.Errorf("bind %s: %w", key, err)
		}
	}

	var cfg Server
	if err := v.Unmarshal(&cfg); err != nil {
		return Server{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.AllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.RequestTimeout <= 0 {
		return Server{}, fmt.Errorf("request timeout must be positive, got %s", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout <= 0 {
		return Server{}, fmt.Errorf("shutdown timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
