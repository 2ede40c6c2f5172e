package page

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leodahal4/portfolio/internal/schedule"
)

// DefaultTTL is how long an unused session is kept.
const DefaultTTL = 30 * time.Minute

// Factory builds a session for a new id.
type Factory func(id string) (*Session, error)

// Registry keeps live sessions by id and tears down idle ones.
type Registry struct {
	clock      schedule.Clock
	ttl        time.Duration
	newSession Factory

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry returns an empty Registry.
func NewRegistry(clock schedule.Clock, ttl time.Duration, factory Factory) *Registry {
	if clock == nil {
		clock = schedule.RealClock()
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Registry{
		clock:      clock,
		ttl:        ttl,
		newSession: factory,
		sessions:   make(map[string]*Session),
	}
}

// Lookup returns the live session for id and marks it used. The touch happens
// under r.mu so a concurrent Sweep cannot close a session it hands out.
func (r *Registry) Lookup(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	s.Touch()
	return s, true
}

// Create builds and stores a session under a fresh id.
func (r *Registry) Create() (*Session, error) {
	s, err := r.newSession(uuid.NewString())
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.sessions[s.ID()] = s
	r.mu.Unlock()
	return s, nil
}

// Acquire returns the session for id, creating a new one when id is unknown
// or expired.
func (r *Registry) Acquire(id string) (s *Session, created bool, err error) {
	if id != "" {
		if s, ok := r.Lookup(id); ok {
			return s, false, nil
		}
	}
	s, err = r.Create()
	if err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep closes and removes sessions idle for longer than the TTL. It returns
// how many were removed.
func (r *Registry) Sweep() int {
	cutoff := r.clock.Now().Add(-r.ttl)

	r.mu.Lock()
	var expired []*Session
	for id, s := range r.sessions {
		if s.LastSeen().Before(cutoff) {
			expired = append(expired, s)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, s := range expired {
		s.Close()
	}
	return len(expired)
}

// Run sweeps every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Sweep()
		}
	}
}

// Close tears down every session.
func (r *Registry) Close() {
	r.mu.Lock()
	sessions := r.sessions
	r.sessions = make(map[string]*Session)
	r.mu.Unlock()

	for _, s := range sessions {
		s.Close()
	}
}
