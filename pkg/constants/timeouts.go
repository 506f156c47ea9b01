package constants

import "time"

// Session idle thresholds
// These define when the engine speaks up after the visitor goes quiet
const (
	// DefaultInactivityNudgeMS - Idle time before the inactivity nudge is sent
	DefaultInactivityNudgeMS = 5 * 60 * 1000

	// DefaultGoodbyeCloseMS - Idle time after the nudge before the goodbye is sent
	DefaultGoodbyeCloseMS = 60 * 1000

	// DefaultAutoCloseDelayMS - Delay between the goodbye and closing the surface
	DefaultAutoCloseDelayMS = 3000
)

// Cosmetic reply latency
const (
	// DefaultTypingDelayPerCharMS - Latency added per rune of reply text
	DefaultTypingDelayPerCharMS = 15

	// DefaultTypingDelayMaxMS - Upper bound of the typing latency
	DefaultTypingDelayMaxMS = 2500
)

// Discount tiers. The ordered set is {0, 10, 15, 20}.
const (
	DiscountNone      = 0
	DiscountObjection = 10
	DiscountSentiment = 15
	DiscountCeiling   = 20
)

// DiscountTiers lists every valid tier in ascending order.
var DiscountTiers = []int{DiscountNone, DiscountObjection, DiscountSentiment, DiscountCeiling}

// Redis key names
const (
	DiscountAnnouncementsStream = "discount_announcements"
)

// Per-session mailbox capacity
const (
	DefaultMailboxSize = 16
)

// Configuration environment variable names
const (
	EnvInactivityNudge    = "INACTIVITY_NUDGE_MS"
	EnvGoodbyeClose       = "GOODBYE_CLOSE_MS"
	EnvAutoCloseDelay     = "AUTO_CLOSE_DELAY_MS"
	EnvTypingDelayPerChar = "TYPING_DELAY_PER_CHAR_MS"
	EnvTypingDelayMax     = "TYPING_DELAY_MAX_MS"
	EnvAnnouncements      = "ANNOUNCEMENTS_ENABLED"
	EnvAnnouncementStream = "ANNOUNCEMENT_STREAM"
	EnvVariantSeed        = "VARIANT_SEED"
)

// Helper functions for time conversions
func MillisecondsToDuration(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// IsDiscountTier reports whether percent is one of the valid tiers
func IsDiscountTier(percent int) bool {
	for _, tier := range DiscountTiers {
		if tier == percent {
			return true
		}
	}
	return false
}
