package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/example/baan-scheduler/internal/baan"
)

type Config struct {
	BaseURL     string
	Credentials baan.Credentials
	Players     baan.Players
	SportID     string

	HTTPTimeout time.Duration

	// pending-booking persistence; DatabaseURL takes precedence over the
	// JSON file when set
	PendingFile string
	DatabaseURL string

	// scheduler
	HorizonDays       int
	SweepInterval     time.Duration
	SweepInitialDelay time.Duration

	// optional Telegram notifier
	TelegramToken  string
	TelegramChatID string

	LogLevel string
}

func FromEnv() (Config, error) {
	cfg := Config{
		BaseURL: strings.TrimSpace(os.Getenv("BAAN_BASE_URL")),
		Credentials: baan.Credentials{
			Username: os.Getenv("BAAN_USERNAME"),
			Password: os.Getenv("BAAN_PASSWORD"),
		},
		Players: baan.Players{
			One: os.Getenv("BAAN_PLAYER1"),
			Two: os.Getenv("BAAN_PLAYER2"),
		},
		SportID:        getenv("BAAN_SPORT_ID", "785"),
		PendingFile:    getenv("PENDING_FILE", "pending_bookings.json"),
		DatabaseURL:    strings.TrimSpace(os.Getenv("DATABASE_URL")),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("BAAN_BASE_URL is required")
	}
	if cfg.Credentials.Username == "" || cfg.Credentials.Password == "" {
		return Config{}, fmt.Errorf("BAAN_USERNAME and BAAN_PASSWORD are required")
	}

	var err error
	if cfg.HTTPTimeout, err = getDuration("HTTP_TIMEOUT", 15*time.Second); err != nil {
		return Config{}, err
	}
	if cfg.SweepInterval, err = getDuration("SWEEP_INTERVAL", 24*time.Hour); err != nil {
		return Config{}, err
	}
	if cfg.SweepInitialDelay, err = getDuration("SWEEP_INITIAL_DELAY", time.Second); err != nil {
		return Config{}, err
	}
	if cfg.HorizonDays, err = getInt("BOOKING_HORIZON_DAYS", 7); err != nil {
		return Config{}, err
	}
	if cfg.HorizonDays < 0 {
		return Config{}, fmt.Errorf("BOOKING_HORIZON_DAYS must be >= 0")
	}
	return cfg, nil
}

func getenv(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", k)
	}
	return d, nil
}

func getInt(k string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", k, err)
	}
	return n, nil
}
