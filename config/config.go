package config

import (
	"fmt"
	"os"
	"strconv"

	"cloudeng.io/errors"

	"mooncalendar/lunar"
)

// AppConfig is a global variable for configuration
var AppConfig Config

// Config holds all environment variables
type Config struct {
	TelegramBotToken string
	TelegramChatID   string
	StateFilePath    string
	CronExpression   string
	ForecastDays     int
	OutputFormat     string
}

// LoadConfig initializes AppConfig from environment variables
func LoadConfig() {
	AppConfig = FromEnv()
}

// FromEnv returns a Config read from environment variables, falling back to
// defaults for unset ones.
func FromEnv() Config {
	return Config{
		TelegramBotToken: getEnv("TG_BOT_TOKEN", ""),
		TelegramChatID:   getEnv("CHAT_ID", ""),
		StateFilePath:    getEnv("STATE_FILE_PATH", "state.txt"),
		CronExpression:   getEnv("CRON_EXPRESSION", "0 8 * * *"),
		ForecastDays:     toInt(getEnv("FORECAST_DAYS", "7")),
		OutputFormat:     getEnv("OUTPUT_FORMAT", "text"),
	}
}

// ChatID returns TelegramChatID as a number.
func (c Config) ChatID() (int64, error) {
	id, err := strconv.ParseInt(c.TelegramChatID, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("CHAT_ID %q is not numeric: %w", c.TelegramChatID, err)
	}
	return id, nil
}

// Validate reports every setting the bot cannot run with.
func (c Config) Validate() error {
	errs := &errors.M{}
	if c.TelegramBotToken == "" {
		errs.Append(errors.New("TG_BOT_TOKEN is not set"))
	}
	if c.TelegramChatID == "" {
		errs.Append(errors.New("CHAT_ID is not set"))
	} else if _, err := c.ChatID(); err != nil {
		errs.Append(err)
	}
	if c.CronExpression == "" {
		errs.Append(errors.New("CRON_EXPRESSION is empty"))
	}
	if c.ForecastDays <= 0 || c.ForecastDays > lunar.MaxRangeDays {
		errs.Append(fmt.Errorf("FORECAST_DAYS must be between 1 and %d, got %d", lunar.MaxRangeDays, c.ForecastDays))
	}
	return errs.Err()
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// toInt converts a string to int and returns the value
func toInt(s string) int {
	if out, err := strconv.Atoi(s); err == nil {
		return out
	}
	return 0
}
