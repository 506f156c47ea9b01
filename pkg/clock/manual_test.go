package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func TestManual_FiresInOrder(t *testing.T) {
	m := NewManual(epoch)

	var fired []string
	m.AfterFunc(2*time.Minute, func() { fired = append(fired, "second") })
	m.AfterFunc(time.Minute, func() { fired = append(fired, "first") })

	m.Advance(90 * time.Second)
	assert.Equal(t, []string{"first"}, fired)
	assert.Equal(t, epoch.Add(90*time.Second), m.Now())

	m.Advance(time.Minute)
	assert.Equal(t, []string{"first", "second"}, fired)
	assert.Equal(t, 0, m.Pending())
}

func TestManual_NowDuringCallbackIsFireTime(t *testing.T) {
	m := NewManual(epoch)

	var seen time.Time
	m.AfterFunc(time.Minute, func() { seen = m.Now() })
	m.Advance(10 * time.Minute)

	assert.Equal(t, epoch.Add(time.Minute), seen)
	assert.Equal(t, epoch.Add(10*time.Minute), m.Now())
}

func TestManual_Stop(t *testing.T) {
	m := NewManual(epoch)

	called := false
	timer := m.AfterFunc(time.Second, func() { called = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	m.Advance(time.Minute)
	assert.False(t, called)
}

func TestManual_StopAfterFire(t *testing.T) {
	m := NewManual(epoch)

	timer := m.AfterFunc(time.Second, func() {})
	m.Advance(time.Second)

	assert.False(t, timer.Stop())
}

func TestManual_CallbackCanSchedule(t *testing.T) {
	m := NewManual(epoch)

	count := 0
	m.AfterFunc(time.Minute, func() {
		count++
		m.AfterFunc(time.Minute, func() { count++ })
	})

	m.Advance(3 * time.Minute)
	assert.Equal(t, 2, count)
}

func TestManual_After(t *testing.T) {
	m := NewManual(epoch)

	immediate := m.After(0)
	select {
	case <-immediate:
	default:
		t.Fatal("zero delay should be ready immediately")
	}

	ch := m.After(time.Second)
	select {
	case <-ch:
		t.Fatal("should not fire before Advance")
	default:
	}

	m.Advance(time.Second)
	select {
	case got := <-ch:
		require.Equal(t, epoch.Add(time.Second), got)
	default:
		t.Fatal("should fire after Advance")
	}
}
