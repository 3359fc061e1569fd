package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings holds runtime configuration for the display server
type Settings struct {
	Port           int
	LogLevel       string
	DevMode        bool
	CurrencySymbol string
}

// LoadSettings reads server settings from environment variables
func LoadSettings() (*Settings, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	s := &Settings{
		Port:           getEnvAsInt("SIPCALC_PORT", 8080),
		LogLevel:       getEnv("SIPCALC_LOG_LEVEL", "info"),
		DevMode:        getEnvAsBool("SIPCALC_DEV_MODE", false),
		CurrencySymbol: getEnv("SIPCALC_CURRENCY_SYMBOL", "₹"),
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate checks if the settings are usable
func (s *Settings) Validate() error {
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("SIPCALC_PORT must be a valid TCP port, got %d", s.Port)
	}
	if s.CurrencySymbol == "" {
		return fmt.Errorf("SIPCALC_CURRENCY_SYMBOL cannot be empty")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
