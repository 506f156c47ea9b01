// Package announce publishes discount escalations for downstream consumers
// (CRM follow-up, reporting). Publishing is best effort: nothing in a
// conversation waits on it.
package announce

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"

	"clinic-engagement-engine/pkg/metrics"
	"clinic-engagement-engine/pkg/models"
)

type Announcer interface {
	Announce(ctx context.Context, a models.DiscountAnnouncement) error
}

// Nop drops every announcement.
type Nop struct{}

func (Nop) Announce(context.Context, models.DiscountAnnouncement) error { return nil }

// Memory keeps announcements in process. Useful when no Redis is configured
// and in tests.
type Memory struct {
	mu     sync.Mutex
	events []models.DiscountAnnouncement
}

func (m *Memory) Announce(_ context.Context, a models.DiscountAnnouncement) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, a)
	return nil
}

func (m *Memory) Events() []models.DiscountAnnouncement {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]models.DiscountAnnouncement(nil), m.events...)
}

// StreamAnnouncer appends each announcement to a Redis stream.
type StreamAnnouncer struct {
	rdb     *redis.Client
	stream  string
	logger  *logrus.Logger
	metrics *metrics.Metrics
}

func NewStreamAnnouncer(rdb *redis.Client, stream string, logger *logrus.Logger, metrics *metrics.Metrics) *StreamAnnouncer {
	return &StreamAnnouncer{
		rdb:     rdb,
		stream:  stream,
		logger:  logger,
		metrics: metrics,
	}
}

func (sa *StreamAnnouncer) Announce(ctx context.Context, a models.DiscountAnnouncement) error {
	start := time.Now()
	defer func() {
		sa.metrics.AnnouncementDuration.WithLabelValues("xadd").Observe(time.Since(start).Seconds())
	}()

	eventData, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("failed to marshal discount announcement: %w", err)
	}

	streamArgs := &redis.XAddArgs{
		Stream: sa.stream,
		Values: map[string]interface{}{
			"session_id":   string(a.SessionID),
			"previous":     a.Previous,
			"percent":      a.Percent,
			"reason":       string(a.Reason),
			"source":       a.Source,
			"announced_at": a.AnnouncedAt.UnixMilli(),
			"event_data":   string(eventData),
		},
	}

	messageID, err := sa.rdb.XAdd(ctx, streamArgs).Result()
	if err != nil {
		return fmt.Errorf("failed to add announcement to stream: %w", err)
	}

	sa.logger.WithFields(logrus.Fields{
		"session_id": a.SessionID,
		"percent":    a.Percent,
		"reason":     a.Reason,
		"message_id": messageID,
	}).Debug("Published discount announcement to stream")

	return nil
}

// Decode reads an announcement back from a stream entry.
func Decode(msg redis.XMessage) (models.DiscountAnnouncement, error) {
	var a models.DiscountAnnouncement
	raw, ok := msg.Values["event_data"].(string)
	if !ok {
		return a, fmt.Errorf("stream entry %s has no event_data", msg.ID)
	}
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return a, fmt.Errorf("failed to unmarshal discount announcement: %w", err)
	}
	return a, nil
}
