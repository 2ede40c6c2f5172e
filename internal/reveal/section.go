package reveal

import (
	"sync"
	"time"
)

// Section is a one-shot visibility latch for a page section.
type Section struct {
	id string

	mu         sync.Mutex
	visible    bool
	unregister func()
	onReveal   []func()
}

// Watch registers a new Section with the observer under id.
func Watch(o *Observer, id string) *Section {
	s := &Section{id: id}
	s.unregister = o.Observe(id, s.handle)
	return s
}

// ID returns the section identifier.
func (s *Section) ID() string {
	return s.id
}

// OnReveal adds fn to the functions run once the section is revealed. If it
// already is, fn runs immediately.
func (s *Section) OnReveal(fn func()) {
	s.mu.Lock()
	if s.visible {
		s.mu.Unlock()
		fn()
		return
	}
	s.onReveal = append(s.onReveal, fn)
	s.mu.Unlock()
}

// Visible reports whether the section has been revealed.
func (s *Section) Visible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visible
}

// Reveal latches the section visible without an observer report. It returns
// true only on the call that flipped the flag.
func (s *Section) Reveal() bool {
	s.mu.Lock()
	if s.visible {
		s.mu.Unlock()
		return false
	}
	s.visible = true
	hooks := s.onReveal
	s.onReveal = nil
	unregister := s.unregister
	s.unregister = nil
	s.mu.Unlock()

	if unregister != nil {
		unregister()
	}
	for _, fn := range hooks {
		fn()
	}
	return true
}

func (s *Section) handle(Entry) {
	s.Reveal()
}

// Release stops observing without revealing.
func (s *Section) Release() {
	s.mu.Lock()
	unregister := s.unregister
	s.unregister = nil
	s.onReveal = nil
	s.mu.Unlock()

	if unregister != nil {
		unregister()
	}
}

// Stagger returns the animation delay of the item at index: base + index*step.
func Stagger(index int, base, step time.Duration) time.Duration {
	if index < 0 {
		index = 0
	}
	return base + time.Duration(index)*step
}
