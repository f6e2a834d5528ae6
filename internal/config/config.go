package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// History persistence
	HistoryBackend string // "memory" or "sqlite"
	SQLiteDBPath   string

	// Seed data for the in-memory budget backend
	SeedDataDir string

	// AMQP snapshot events
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	// Google Sheets snapshot export (worker)
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// Analytics
	TrendMonths int
	CacheTTL    time.Duration

	// Spending classification table: group names per spending type.
	LivingGroups     []string
	FixedGroups      []string
	CreditCardGroups []string
}

func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8082"),

		HistoryBackend: getEnv("HISTORY_BACKEND", "sqlite"),
		SQLiteDBPath:   getEnv("SQLITE_DB_PATH", "./data/budgetlens.db"),

		SeedDataDir: getEnv("SEED_DATA_DIR", "data"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "budgetlens"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "snapshot_export"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "NetWorth"),

		TrendMonths: getEnvInt("TREND_MONTHS", 6),
		CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),

		LivingGroups:     getEnvList("LIVING_GROUPS", []string{"Living"}),
		FixedGroups:      getEnvList("FIXED_GROUPS", []string{"Fixed", "CASA NUOVA", "RAINY DAYS"}),
		CreditCardGroups: getEnvList("CREDIT_CARD_GROUPS", []string{"Credit Card Payments"}),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate history backend
	switch c.HistoryBackend {
	case "memory", "sqlite":
	default:
		errors = append(errors, fmt.Sprintf("invalid history backend '%s': must be one of [memory sqlite]", c.HistoryBackend))
	}

	// Validate SQLite configuration if backend is sqlite
	if c.HistoryBackend == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite backend")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}

		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Validate analytics settings
	if c.TrendMonths < 1 {
		errors = append(errors, fmt.Sprintf("invalid trend months %d: must be at least 1", c.TrendMonths))
	} else if c.TrendMonths > 36 {
		errors = append(errors, fmt.Sprintf("invalid trend months %d: must be at most 36", c.TrendMonths))
	}

	if c.CacheTTL < time.Second {
		errors = append(errors, fmt.Sprintf("invalid cache TTL %v: must be at least 1 second", c.CacheTTL))
	}

	// The classification table may be reconfigured but never emptied; a
	// table with no groups would classify everything as Other.
	if len(c.LivingGroups) == 0 && len(c.FixedGroups) == 0 && len(c.CreditCardGroups) == 0 {
		errors = append(errors, "spending group table is empty: configure at least one of LIVING_GROUPS, FIXED_GROUPS, CREDIT_CARD_GROUPS")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
