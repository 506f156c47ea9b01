package redis

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNewClient_InvalidURL(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	_, err := NewClient(context.Background(), DefaultConnectionConfig("not-a-url"), logger)

	assert.Error(t, err)
}

func TestDefaultConnectionConfig(t *testing.T) {
	cfg := DefaultConnectionConfig("redis://localhost:6379/3")

	assert.Equal(t, "redis://localhost:6379/3", cfg.URL)
	assert.Positive(t, cfg.DialTimeout)
	assert.Positive(t, cfg.PoolSize)
}
