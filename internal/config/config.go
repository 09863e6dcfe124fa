package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// AdminSet holds the Telegram user IDs with admin privileges,
// parsed once at startup.
type AdminSet map[int64]struct{}

func (a AdminSet) Contains(id int64) bool {
	_, ok := a[id]
	return ok
}

type Config struct {
	TelegramToken  string
	AdminIDs       AdminSet
	UsersFile      string
	ProviderBase   string
	HTTPTimeout    time.Duration
	BroadcastDelay time.Duration
	Timezone       string
	LogLevel       string
}

func Load() (*Config, error) {
	cfg := &Config{
		TelegramToken: getEnv("TOKEN", ""),
		UsersFile:     getEnv("USERS_FILE", "users.json"),
		ProviderBase:  getEnv("PROVIDER_BASE", "https://my.telegram.org"),
		Timezone:      getEnv("BOT_TIMEZONE", "Asia/Tehran"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TOKEN is required")
	}

	admins, err := ParseAdminIDs(os.Getenv("ADMIN_USER_IDS"))
	if err != nil {
		return nil, err
	}
	cfg.AdminIDs = admins

	cfg.HTTPTimeout = time.Duration(getEnvAsInt("HTTP_TIMEOUT_SECONDS", 20)) * time.Second
	cfg.BroadcastDelay = time.Duration(getEnvAsInt("BROADCAST_DELAY_MS", 500)) * time.Millisecond

	return cfg, nil
}

// ParseAdminIDs parses a comma-separated list of numeric user IDs.
func ParseAdminIDs(raw string) (AdminSet, error) {
	set := make(AdminSet)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("ADMIN_USER_IDS: invalid id %q", part)
		}
		set[id] = struct{}{}
	}
	return set, nil
}

func getEnv(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		log.Printf("⚠️ Warning: %s must be int, using default %d\n", key, defaultVal)
		return defaultVal
	}
	return val
}
