package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPausableClockFreezesAndResumes(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(epoch)
	pc := NewPausableClock(mock)

	assert.Equal(t, epoch, pc.Now())
	mock.Advance(time.Second)
	assert.Equal(t, epoch.Add(time.Second), pc.Now())

	assert.True(t, pc.Toggle())
	assert.True(t, pc.IsPaused())
	mock.Advance(5 * time.Second)
	assert.Equal(t, epoch.Add(time.Second), pc.Now(), "time frozen while paused")
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())
	assert.Equal(t, epoch.Add(6*time.Second), pc.RealTime())

	assert.False(t, pc.Toggle())
	assert.Equal(t, epoch.Add(time.Second), pc.Now(), "no jump on resume")
	mock.Advance(time.Second)
	assert.Equal(t, epoch.Add(2*time.Second), pc.Now())
	assert.Equal(t, 5*time.Second, pc.TotalPauseDuration())
}

func TestPausableClockIdempotentPause(t *testing.T) {
	epoch := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mock := NewMockTimeProvider(epoch)
	pc := NewPausableClock(mock)

	pc.Pause()
	mock.Advance(time.Second)
	pc.Pause()
	mock.Advance(time.Second)
	pc.Resume()
	pc.Resume()

	assert.False(t, pc.IsPaused())
	assert.Equal(t, 2*time.Second, pc.TotalPauseDuration())
	assert.Equal(t, epoch, pc.Now())
}

func TestPausableClockDefaultsToRealTime(t *testing.T) {
	pc := NewPausableClock(nil)
	before := time.Now()
	assert.False(t, pc.Now().Before(before))
}
