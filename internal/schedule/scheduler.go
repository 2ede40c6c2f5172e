package schedule

import (
	"sync"
	"time"

	"github.com/pkg/errors"
)

// ErrClosed is returned when scheduling on a closed Scheduler.
var ErrClosed = errors.New("scheduler closed")

// Scheduler owns a set of delayed tasks. Cancelling a task, or closing the
// scheduler, guarantees the task function is never started afterwards.
type Scheduler struct {
	clock Clock

	mu     sync.Mutex
	next   uint64
	tasks  map[uint64]Timer
	closed bool
}

// Task is a handle to one scheduled function.
type Task struct {
	id    uint64
	owner *Scheduler
}

// New creates a Scheduler on the given clock. A nil clock means real time.
func New(clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock()
	}
	return &Scheduler{
		clock: clock,
		tasks: make(map[uint64]Timer),
	}
}

// Clock returns the clock the scheduler runs on.
func (s *Scheduler) Clock() Clock {
	return s.clock
}

// After runs fn once d has elapsed, unless cancelled first.
func (s *Scheduler) After(d time.Duration, fn func()) (Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return Task{}, ErrClosed
	}

	s.next++
	id := s.next
	s.tasks[id] = s.clock.AfterFunc(d, func() {
		if !s.claim(id) {
			return
		}
		fn()
	})
	return Task{id: id, owner: s}, nil
}

// claim removes a firing task from the pending set. It reports false when
// the task was cancelled in the meantime.
func (s *Scheduler) claim(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return false
	}
	delete(s.tasks, id)
	return true
}

// Cancel stops the task. It is safe to call more than once and on a task
// that already ran.
func (t Task) Cancel() {
	if t.owner == nil {
		return
	}
	t.owner.cancel(t.id)
}

func (s *Scheduler) cancel(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if timer, ok := s.tasks[id]; ok {
		timer.Stop()
		delete(s.tasks, id)
	}
}

// CancelAll stops every pending task but keeps the scheduler usable.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelAllLocked()
}

func (s *Scheduler) cancelAllLocked() {
	for id, timer := range s.tasks {
		timer.Stop()
		delete(s.tasks, id)
	}
}

// Close cancels every pending task and refuses new ones.
func (s *Scheduler) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelAllLocked()
	s.closed = true
}

// Pending reports the number of tasks that have neither run nor been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}
