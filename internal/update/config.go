package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	ReplyDelayMS         int
	SchedulerBuffer      int
	UpcomingLimit        int
	DesktopNotifications bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ReplyDelayMS:         1000,
		SchedulerBuffer:      64,
		UpcomingLimit:        5,
		DesktopNotifications: false,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvInt("PROKRA_REPLY_DELAY_MS"); ok && v > 0 {
		cfg.ReplyDelayMS = v
	}
	if v, ok := getEnvInt("PROKRA_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("PROKRA_UPCOMING_LIMIT"); ok && v > 0 {
		cfg.UpcomingLimit = v
	}
	if v, ok := getEnvBool("PROKRA_DESKTOP_NOTIFICATIONS"); ok {
		cfg.DesktopNotifications = v
	}
	return cfg
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
