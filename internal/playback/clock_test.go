package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClock_FiveTicks(t *testing.T) {
	c := NewClock(0)
	for i := 0; i < 5; i++ {
		assert.True(t, c.Tick())
	}
	assert.Equal(t, 50, c.Time)
}

func TestClock_WrapsPastEnd(t *testing.T) {
	c := NewClock(0)
	for i := 0; i < 360; i++ {
		c.Tick()
	}
	assert.Equal(t, 3600, c.Time)

	c.Tick()
	assert.Equal(t, 0, c.Time, "tick 361 should wrap to 0")
}

func TestClock_PausedDoesNotMove(t *testing.T) {
	c := NewClock(0)
	c.Toggle()
	assert.False(t, c.Playing)
	assert.False(t, c.Tick())
	assert.Equal(t, 0, c.Time)

	c.Toggle()
	assert.True(t, c.Tick())
	assert.Equal(t, 10, c.Time)
}

func TestClock_Seek(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{125, 125},
		{-10, 0},
		{5000, 3600},
	}
	for _, tt := range tests {
		c := NewClock(0)
		c.Seek(tt.in)
		assert.Equal(t, tt.want, c.Time, "Seek(%d)", tt.in)
	}
}

func TestClock_CustomStep(t *testing.T) {
	c := NewClock(30)
	c.Tick()
	assert.Equal(t, 30, c.Time)
	assert.Equal(t, 30, c.StepSize())

	var zero Clock
	assert.Equal(t, Step, zero.StepSize())
}

func TestClock_Progress(t *testing.T) {
	c := NewClock(0)
	c.Seek(1800)
	assert.InDelta(t, 0.5, c.Progress(), 1e-9)
}
