// Package reveal tracks which page sections have scrolled into view.
//
// A browser reports the visible fraction of a section; an Observer routes the
// report to the callback registered for that section when the fraction
// crosses the threshold. A Section latches visible on its first crossing and
// stops observing.
package reveal

import (
	"sync"
)

// DefaultThreshold is the visible fraction that triggers a reveal.
const DefaultThreshold = 0.2

// Entry describes one visibility report for a target.
type Entry struct {
	Target string
	Ratio  float64
}

// Callback receives entries that crossed the observer's threshold.
type Callback func(Entry)

// Observer maps targets to callbacks.
type Observer struct {
	threshold float64

	mu      sync.Mutex
	seq     uint64
	targets map[string]registration
}

type registration struct {
	id uint64
	cb Callback
}

// NewObserver returns an Observer that fires at threshold. Values outside
// (0,1] fall back to DefaultThreshold.
func NewObserver(threshold float64) *Observer {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Observer{
		threshold: threshold,
		targets:   make(map[string]registration),
	}
}

// Threshold returns the fraction the observer fires at.
func (o *Observer) Threshold() float64 {
	return o.threshold
}

// Observe registers cb for target, replacing any earlier registration. The
// returned function unregisters it; calling it after the target was
// re-registered by someone else does nothing.
func (o *Observer) Observe(target string, cb Callback) (unregister func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.seq++
	id := o.seq
	o.targets[target] = registration{id: id, cb: cb}

	return func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		if reg, ok := o.targets[target]; ok && reg.id == id {
			delete(o.targets, target)
		}
	}
}

// Notify delivers a visibility report. It reports whether a callback ran.
func (o *Observer) Notify(target string, ratio float64) bool {
	if ratio < o.threshold {
		return false
	}

	o.mu.Lock()
	reg, ok := o.targets[target]
	o.mu.Unlock()
	if !ok {
		return false
	}

	reg.cb(Entry{Target: target, Ratio: ratio})
	return true
}

// Observing reports whether target has a registered callback.
func (o *Observer) Observing(target string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.targets[target]
	return ok
}

// Len returns the number of observed targets.
func (o *Observer) Len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.targets)
}

// Disconnect drops every registration.
func (o *Observer) Disconnect() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.targets = make(map[string]registration)
}
