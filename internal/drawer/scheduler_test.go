package drawer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScheduler_StartsLoopOnce verifies only the first tween of an idle scheduler requests a frame.
func TestScheduler_StartsLoopOnce(t *testing.T) {
	s := NewScheduler(0)
	assert.Equal(t, DefaultFrameInterval, s.interval)
	assert.False(t, s.Running())

	assert.NotNil(t, s.Add(NewTween(0, 0, 1, t0, time.Second, nil)))
	assert.True(t, s.Running())
	assert.Nil(t, s.Add(NewTween(1, 0, 1, t0, time.Second, nil)))
	assert.Equal(t, 2, s.Active())
}

// TestScheduler_ReplacesTweenForSameRow verifies at most one tween per row.
func TestScheduler_ReplacesTweenForSameRow(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	first := NewTween(4, 0, 1, t0, time.Second, nil)
	second := NewTween(4, 1, 0, t0, time.Second, nil)

	s.Add(first)
	s.Add(second)

	assert.Equal(t, 1, s.Active())
	assert.False(t, first.Running())
	got, ok := s.Get(4)
	require.True(t, ok)
	assert.Same(t, second, got)
}

// TestScheduler_HandleFrame verifies the loop reschedules only while tweens remain.
func TestScheduler_HandleFrame(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	s.Add(NewTween(0, 0, 1, t0, 100*time.Millisecond, nil))
	s.Add(NewTween(1, 0, 1, t0, 200*time.Millisecond, nil))

	cmd, ok := s.HandleFrame(FrameMsg{ID: s.ID(), Time: t0.Add(150 * time.Millisecond)})
	assert.True(t, ok)
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, s.Active())

	cmd, ok = s.HandleFrame(FrameMsg{ID: s.ID(), Time: t0.Add(200 * time.Millisecond)})
	assert.True(t, ok)
	assert.Nil(t, cmd)
	assert.False(t, s.Running())
	assert.Equal(t, 2, s.Frames())

	// A late frame after the loop stopped is not processed.
	_, ok = s.HandleFrame(FrameMsg{ID: s.ID(), Time: t0.Add(time.Second)})
	assert.False(t, ok)
	assert.Equal(t, 2, s.Frames())
}

// TestScheduler_IgnoresOtherSchedulers verifies frames are routed by ID.
func TestScheduler_IgnoresOtherSchedulers(t *testing.T) {
	a := NewScheduler(time.Millisecond)
	b := NewScheduler(time.Millisecond)
	require.NotEqual(t, a.ID(), b.ID())

	a.Add(NewTween(0, 0, 1, t0, time.Second, nil))
	_, ok := a.HandleFrame(FrameMsg{ID: b.ID(), Time: t0})
	assert.False(t, ok)
	assert.Equal(t, 0, a.Frames())
}

// TestScheduler_Cancel verifies cancelling removes the tween without completing it.
func TestScheduler_Cancel(t *testing.T) {
	s := NewScheduler(time.Millisecond)
	completed := false
	s.Add(NewTween(2, 0, 1, t0, time.Millisecond, nil).OnComplete(func() { completed = true }))

	assert.True(t, s.Cancel(2))
	assert.False(t, s.Cancel(2))
	assert.False(t, s.Tick(t0.Add(time.Second)))
	assert.False(t, completed)
}
