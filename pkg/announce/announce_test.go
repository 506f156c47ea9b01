package announce

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-engagement-engine/pkg/metrics"
	"clinic-engagement-engine/pkg/models"
)

const testStream = "discount_announcements_test"

func setupTestRedis(t *testing.T) *redis.Client {
	rdb := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   3, // Use test database
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		t.Skipf("Redis not available: %v", err)
	}

	rdb.Del(context.Background(), testStream)
	return rdb
}

func sampleAnnouncement() models.DiscountAnnouncement {
	return models.DiscountAnnouncement{
		SessionID:   "sess_123",
		Previous:    0,
		Percent:     10,
		Reason:      models.ReasonPriceObjection,
		Source:      "test-pod",
		AnnouncedAt: time.UnixMilli(1709283600000).UTC(),
	}
}

func TestStreamAnnouncer_Announce(t *testing.T) {
	rdb := setupTestRedis(t)
	defer rdb.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel) // Reduce noise in tests
	sa := NewStreamAnnouncer(rdb, testStream, logger, metrics.NewMetrics(prometheus.NewRegistry()))

	ctx := context.Background()
	require.NoError(t, sa.Announce(ctx, sampleAnnouncement()))

	entries, err := rdb.XRange(ctx, testStream, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "sess_123", entries[0].Values["session_id"])
	assert.Equal(t, "10", entries[0].Values["percent"])
	assert.Equal(t, "price_objection", entries[0].Values["reason"])

	decoded, err := Decode(entries[0])
	require.NoError(t, err)
	assert.Equal(t, sampleAnnouncement(), decoded)
}

func TestStreamAnnouncer_FailsWhenRedisIsGone(t *testing.T) {
	rdb := setupTestRedis(t)
	rdb.Close()

	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)
	sa := NewStreamAnnouncer(rdb, testStream, logger, metrics.NewMetrics(prometheus.NewRegistry()))

	err := sa.Announce(context.Background(), sampleAnnouncement())
	assert.Error(t, err)
}

func TestDecode_MissingEventData(t *testing.T) {
	_, err := Decode(redis.XMessage{ID: "1-0", Values: map[string]interface{}{}})
	assert.Error(t, err)
}

func TestMemory_KeepsOrder(t *testing.T) {
	m := &Memory{}
	first := sampleAnnouncement()
	second := sampleAnnouncement()
	second.Previous, second.Percent = 10, 20

	require.NoError(t, m.Announce(context.Background(), first))
	require.NoError(t, m.Announce(context.Background(), second))

	events := m.Events()
	require.Len(t, events, 2)
	assert.Equal(t, 20, events[1].Percent)
}
