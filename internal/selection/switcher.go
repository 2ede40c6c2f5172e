// Package selection implements a single-selection switcher over a fixed list
// of identifiers, as used by the experience timeline and the skill tabs.
package selection

import (
	"sync"

	"github.com/pkg/errors"
)

var (
	// ErrNoEntries is returned when a switcher is built from an empty list.
	ErrNoEntries = errors.New("switcher needs at least one entry")
	// ErrDuplicateEntry is returned when the entry list repeats an id.
	ErrDuplicateEntry = errors.New("duplicate switcher entry")
	// ErrUnknownEntry is returned when selecting an id outside the list.
	ErrUnknownEntry = errors.New("unknown entry")
)

// ChangeFunc is called after the active entry changed.
type ChangeFunc func(previous, next string)

// Switcher holds exactly one active id among a fixed list.
type Switcher struct {
	ids   []string
	index map[string]int

	mu        sync.Mutex
	active    string
	listeners []ChangeFunc
}

// NewSwitcher returns a Switcher whose active entry is ids[0].
func NewSwitcher(ids ...string) (*Switcher, error) {
	if len(ids) == 0 {
		return nil, ErrNoEntries
	}
	index := make(map[string]int, len(ids))
	for i, id := range ids {
		if _, dup := index[id]; dup {
			return nil, errors.Wrap(ErrDuplicateEntry, id)
		}
		index[id] = i
	}
	return &Switcher{
		ids:    append([]string(nil), ids...),
		index:  index,
		active: ids[0],
	}, nil
}

// OnChange registers fn to run after every change of the active entry.
func (s *Switcher) OnChange(fn ChangeFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Active returns the active id.
func (s *Switcher) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// IsActive reports whether id is the active entry.
func (s *Switcher) IsActive(id string) bool {
	return s.Active() == id
}

// Entries returns the ids in their fixed order.
func (s *Switcher) Entries() []string {
	return append([]string(nil), s.ids...)
}

// Has reports whether id is one of the entries.
func (s *Switcher) Has(id string) bool {
	_, ok := s.index[id]
	return ok
}

// Select makes id active. Selecting the active entry is a no-op and reports
// changed=false.
func (s *Switcher) Select(id string) (changed bool, err error) {
	if !s.Has(id) {
		return false, errors.Wrap(ErrUnknownEntry, id)
	}

	s.mu.Lock()
	previous := s.active
	if previous == id {
		s.mu.Unlock()
		return false, nil
	}
	s.active = id
	listeners := append([]ChangeFunc(nil), s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(previous, id)
	}
	return true, nil
}
