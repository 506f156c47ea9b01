package engine

import (
	"time"
	"unicode/utf8"
)

// ReplyDelay is the simulated typing time for text: perChar for every rune,
// capped at limit.
func ReplyDelay(text string, perChar, limit time.Duration) time.Duration {
	if perChar <= 0 || limit <= 0 {
		return 0
	}
	d := time.Duration(utf8.RuneCountInString(text)) * perChar
	if d > limit {
		return limit
	}
	return d
}
