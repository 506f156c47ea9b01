package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("INACTIVITY_NUDGE_MS", "")
	t.Setenv("POD_ID", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Minute, cfg.InactivityNudge())
	assert.Equal(t, time.Minute, cfg.GoodbyeClose())
	assert.Equal(t, 3*time.Second, cfg.AutoCloseDelay())
	assert.False(t, cfg.AnnouncementsEnabled)
	assert.Equal(t, "discount_announcements", cfg.AnnouncementStream)
	assert.NotEmpty(t, cfg.PodID)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("INACTIVITY_NUDGE_MS", "1000")
	t.Setenv("TYPING_DELAY_MAX_MS", "0")
	t.Setenv("ANNOUNCEMENTS_ENABLED", "true")
	t.Setenv("POD_ID", "pod-a")

	cfg := Load()

	assert.Equal(t, time.Second, cfg.InactivityNudge())
	assert.Equal(t, time.Duration(0), cfg.TypingDelayMax())
	assert.True(t, cfg.AnnouncementsEnabled)
	assert.Equal(t, "pod-a", cfg.PodID)
}

func TestLoad_InvalidNumberFallsBack(t *testing.T) {
	t.Setenv("GOODBYE_CLOSE_MS", "soon")

	cfg := Load()

	assert.Equal(t, time.Minute, cfg.GoodbyeClose())
}

func TestDefaults_MatchLoad(t *testing.T) {
	d := Defaults()

	assert.Equal(t, 5*time.Minute, d.InactivityNudge())
	assert.Equal(t, 2500*time.Millisecond, d.TypingDelayMax())
	assert.Equal(t, 16, d.MailboxSize)
}
