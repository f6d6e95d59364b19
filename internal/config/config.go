// Package config provides application configuration loaded from environment
// variables with defaults and validation: business constants (VAT rate,
// warranty days), state machine switches, lookup timeouts and server/log
// settings.
package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration values for the application.
type Config struct {
	// Server
	Port    string // HTTP port, just the number
	GinMode string // debug|release|test

	// Logging
	LogLevel  string // debug|info|warn|error
	LogPretty bool   // pretty console logs in dev

	// Business constants
	VATRate              float64 // fixed VAT rate, default 0.15
	DefaultWarrantyDays  int     // warranty period set at creation, default 90
	DefaultGuaranteeDays int     // guarantee days on a quotation, default 90
	InitialPaymentPct    float64 // default initial payment percentage

	// State machine switches
	AllowCancelCompleted bool // permit canceling Completed/Warranty jobs

	// External lookups
	LookupTimeout time.Duration // bound on client/technician resolution

	// CORS
	AllowedOrigins []string
}

// MustLoad loads the configuration and panics if validation fails.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// Load reads the environment and validates the result.
func Load() (Config, error) {
	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		GinMode:              getenv("GIN_MODE", "debug"),
		LogLevel:             getenv("LOG_LEVEL", "info"),
		LogPretty:            getenvBool("LOG_PRETTY", false),
		VATRate:              getenvFloat("VAT_RATE", 0.15),
		DefaultWarrantyDays:  getenvInt("DEFAULT_WARRANTY_DAYS", 90),
		DefaultGuaranteeDays: getenvInt("DEFAULT_GUARANTEE_DAYS", 90),
		InitialPaymentPct:    getenvFloat("INITIAL_PAYMENT_PERCENTAGE", 50),
		AllowCancelCompleted: getenvBool("ALLOW_CANCEL_COMPLETED", false),
		LookupTimeout:        getenvDuration("LOOKUP_TIMEOUT", 5*time.Second),
		AllowedOrigins:       splitCSV(getenv("CORS_ALLOWED_ORIGINS", "*")),
	}

	if cfg.VATRate < 0 || cfg.VATRate >= 1 {
		return Config{}, errors.New("VAT_RATE must be in [0,1)")
	}
	if cfg.DefaultWarrantyDays < 0 {
		return Config{}, errors.New("DEFAULT_WARRANTY_DAYS must be >= 0")
	}
	if cfg.InitialPaymentPct < 0 || cfg.InitialPaymentPct > 100 {
		return Config{}, errors.New("INITIAL_PAYMENT_PERCENTAGE must be in [0,100]")
	}
	if cfg.LookupTimeout <= 0 {
		return Config{}, errors.New("LOOKUP_TIMEOUT must be positive")
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch v {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
