package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"physcalc/internal/logger"
	"physcalc/internal/model"
)

// Config holds the calculator settings shared by the GUI and the CLI.
type Config struct {
	Mode     string        `validate:"oneof=scientific plain"`
	LogLevel string        `validate:"loglevel"`
	LogFile  string        `validate:"omitempty,filepath"`
	CacheTTL time.Duration `validate:"gte=0"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Mode:     "scientific",
		LogLevel: "info",
		CacheTTL: 10 * time.Minute,
	}
}

// Load reads .env files (if any exist) and then the PHYSCALC_* environment
// variables. A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load env: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment and validates it.
func FromEnv() (*Config, error) {
	cfg := Default()
	cfg.Mode = strings.ToLower(getEnv("PHYSCALC_MODE", cfg.Mode))
	cfg.LogLevel = strings.ToLower(getEnv("PHYSCALC_LOG_LEVEL", cfg.LogLevel))
	cfg.LogFile = getEnv("PHYSCALC_LOG_FILE", cfg.LogFile)

	if v, ok := os.LookupEnv("PHYSCALC_CACHE_TTL"); ok && v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("PHYSCALC_CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		return slices.Contains(logger.Levels, fl.Field().String())
	})
	return v
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DisplayMode returns the configured mode. Call after Validate.
func (c *Config) DisplayMode() model.DisplayMode {
	m, _ := model.ParseDisplayMode(c.Mode)
	return m
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}
