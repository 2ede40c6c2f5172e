package reveal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewObserverThreshold(t *testing.T) {
	assert.Equal(t, DefaultThreshold, NewObserver(0).Threshold())
	assert.Equal(t, DefaultThreshold, NewObserver(1.5).Threshold())
	assert.Equal(t, 0.5, NewObserver(0.5).Threshold())
}

func TestObserverBelowThresholdDoesNotFire(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	calls := 0
	o.Observe("about", func(Entry) { calls++ })

	assert.False(t, o.Notify("about", 0.19))
	assert.True(t, o.Notify("about", 0.2))
	assert.Equal(t, 1, calls)
}

func TestObserverUnregister(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	unregister := o.Observe("about", func(Entry) { t.Fatal("callback after unregister") })
	unregister()

	assert.False(t, o.Notify("about", 1))
	assert.Zero(t, o.Len())
}

func TestObserverStaleUnregisterKeepsNewRegistration(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	stale := o.Observe("about", func(Entry) {})
	fired := false
	o.Observe("about", func(Entry) { fired = true })

	stale()
	assert.True(t, o.Observing("about"))
	o.Notify("about", 1)
	assert.True(t, fired)
}

func TestObserverDisconnect(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	o.Observe("about", func(Entry) {})
	o.Observe("skills", func(Entry) {})

	o.Disconnect()
	assert.Zero(t, o.Len())
}

func TestSectionRevealsOnceAndNeverReverts(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	s := Watch(o, "projects")
	hooks := 0
	s.OnReveal(func() { hooks++ })

	assert.False(t, s.Visible())
	o.Notify("projects", 0.1)
	assert.False(t, s.Visible())

	o.Notify("projects", 0.25)
	assert.True(t, s.Visible())
	assert.False(t, o.Observing("projects"), "observation is released after reveal")

	o.Notify("projects", 0)
	o.Notify("projects", 0.9)
	assert.True(t, s.Visible())
	assert.Equal(t, 1, hooks)
	assert.False(t, s.Reveal())
}

func TestSectionOnRevealAfterVisibleRunsImmediately(t *testing.T) {
	s := Watch(NewObserver(DefaultThreshold), "contact")
	s.Reveal()

	ran := false
	s.OnReveal(func() { ran = true })
	assert.True(t, ran)
}

func TestSectionRelease(t *testing.T) {
	o := NewObserver(DefaultThreshold)
	s := Watch(o, "skills")
	s.Release()

	o.Notify("skills", 1)
	assert.False(t, s.Visible())
	assert.Zero(t, o.Len())
}

func TestStagger(t *testing.T) {
	assert.Equal(t, time.Duration(0), Stagger(0, 0, 150*time.Millisecond))
	assert.Equal(t, 450*time.Millisecond, Stagger(3, 0, 150*time.Millisecond))
	assert.Equal(t, 300*time.Millisecond, Stagger(2, 100*time.Millisecond, 100*time.Millisecond))
	assert.Equal(t, 200*time.Millisecond, Stagger(-1, 200*time.Millisecond, 200*time.Millisecond))
}
