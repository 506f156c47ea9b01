package config

import (
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"

	"clinic-engagement-engine/pkg/constants"
)

type Config struct {
	Port                 string
	LogLevel             string
	PodID                string
	RedisURL             string
	AnnouncementsEnabled bool
	AnnouncementStream   string
	InactivityNudgeMS    int64
	GoodbyeCloseMS       int64
	AutoCloseDelayMS     int64
	TypingDelayPerCharMS int64
	TypingDelayMaxMS     int64
	VariantSeed          int64
	MailboxSize          int
}

func Load() *Config {
	config := &Config{
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		PodID:                getEnv("POD_ID", generatePodID()),
		RedisURL:             getEnv("REDIS_URL", "redis://localhost:6379"),
		AnnouncementsEnabled: getEnvBool(constants.EnvAnnouncements, false),
		AnnouncementStream:   getEnv(constants.EnvAnnouncementStream, constants.DiscountAnnouncementsStream),
		InactivityNudgeMS:    getEnvInt64(constants.EnvInactivityNudge, constants.DefaultInactivityNudgeMS),
		GoodbyeCloseMS:       getEnvInt64(constants.EnvGoodbyeClose, constants.DefaultGoodbyeCloseMS),
		AutoCloseDelayMS:     getEnvInt64(constants.EnvAutoCloseDelay, constants.DefaultAutoCloseDelayMS),
		TypingDelayPerCharMS: getEnvInt64(constants.EnvTypingDelayPerChar, constants.DefaultTypingDelayPerCharMS),
		TypingDelayMaxMS:     getEnvInt64(constants.EnvTypingDelayMax, constants.DefaultTypingDelayMaxMS),
		VariantSeed:          getEnvInt64(constants.EnvVariantSeed, 0),
		MailboxSize:          getEnvInt("MAILBOX_SIZE", constants.DefaultMailboxSize),
	}

	return config
}

// Defaults returns the configuration used when no environment is present.
// Tests start from it and override the fields they care about.
func Defaults() *Config {
	return &Config{
		Port:                 "8080",
		LogLevel:             "info",
		PodID:                "local",
		RedisURL:             "redis://localhost:6379",
		AnnouncementStream:   constants.DiscountAnnouncementsStream,
		InactivityNudgeMS:    constants.DefaultInactivityNudgeMS,
		GoodbyeCloseMS:       constants.DefaultGoodbyeCloseMS,
		AutoCloseDelayMS:     constants.DefaultAutoCloseDelayMS,
		TypingDelayPerCharMS: constants.DefaultTypingDelayPerCharMS,
		TypingDelayMaxMS:     constants.DefaultTypingDelayMaxMS,
		MailboxSize:          constants.DefaultMailboxSize,
	}
}

func (c *Config) InactivityNudge() time.Duration {
	return constants.MillisecondsToDuration(c.InactivityNudgeMS)
}

func (c *Config) GoodbyeClose() time.Duration {
	return constants.MillisecondsToDuration(c.GoodbyeCloseMS)
}

func (c *Config) AutoCloseDelay() time.Duration {
	return constants.MillisecondsToDuration(c.AutoCloseDelayMS)
}

func (c *Config) TypingDelayPerChar() time.Duration {
	return constants.MillisecondsToDuration(c.TypingDelayPerCharMS)
}

func (c *Config) TypingDelayMax() time.Duration {
	return constants.MillisecondsToDuration(c.TypingDelayMaxMS)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func generatePodID() string {
	hostname, err := os.Hostname()
	if err != nil {
		return uuid.New().String()
	}
	return hostname + "-" + uuid.New().String()[:8]
}
