package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestManualClockFiresInDeadlineOrder(t *testing.T) {
	clock := NewManualClock(epoch)
	var order []int

	clock.AfterFunc(300*time.Millisecond, func() { order = append(order, 3) })
	clock.AfterFunc(100*time.Millisecond, func() { order = append(order, 1) })
	clock.AfterFunc(200*time.Millisecond, func() { order = append(order, 2) })

	clock.Advance(150 * time.Millisecond)
	assert.Equal(t, []int{1}, order)

	clock.Advance(time.Second)
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Equal(t, epoch.Add(1150*time.Millisecond), clock.Now())
}

func TestManualClockRunsNestedTimersInsideWindow(t *testing.T) {
	clock := NewManualClock(epoch)
	fired := false

	clock.AfterFunc(time.Second, func() {
		clock.AfterFunc(time.Second, func() { fired = true })
	})

	clock.Advance(1500 * time.Millisecond)
	assert.False(t, fired)
	clock.Advance(500 * time.Millisecond)
	assert.True(t, fired)
}

func TestManualTimerStop(t *testing.T) {
	clock := NewManualClock(epoch)
	fired := false
	timer := clock.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	clock.Advance(2 * time.Second)
	assert.False(t, fired)
	assert.Zero(t, clock.Pending())
}

func TestSchedulerRunsTask(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	ran := 0

	_, err := s.After(time.Second, func() { ran++ })
	require.NoError(t, err)
	assert.Equal(t, 1, s.Pending())

	clock.Advance(time.Second)
	assert.Equal(t, 1, ran)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancel(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	ran := false

	task, err := s.After(time.Second, func() { ran = true })
	require.NoError(t, err)
	task.Cancel()
	task.Cancel()

	clock.Advance(time.Minute)
	assert.False(t, ran)
	assert.Zero(t, s.Pending())
}

func TestSchedulerCancelAllKeepsSchedulerUsable(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	count := 0

	for i := 0; i < 3; i++ {
		_, err := s.After(time.Duration(i+1)*time.Second, func() { count++ })
		require.NoError(t, err)
	}
	s.CancelAll()

	_, err := s.After(time.Second, func() { count += 10 })
	require.NoError(t, err)

	clock.Advance(time.Minute)
	assert.Equal(t, 10, count)
}

func TestSchedulerClose(t *testing.T) {
	clock := NewManualClock(epoch)
	s := New(clock)
	ran := false

	_, err := s.After(time.Second, func() { ran = true })
	require.NoError(t, err)
	s.Close()

	_, err = s.After(time.Second, func() { ran = true })
	assert.ErrorIs(t, err, ErrClosed)

	clock.Advance(time.Minute)
	assert.False(t, ran)
	assert.Zero(t, clock.Pending())
}

func TestZeroTaskCancelIsNoop(t *testing.T) {
	var task Task
	assert.NotPanics(t, task.Cancel)
}

func TestSchedulerRealClock(t *testing.T) {
	s := New(nil)
	done := make(chan struct{})

	_, err := s.After(time.Millisecond, func() { close(done) })
	require.NoError(t, err)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("task did not run")
	}
}
