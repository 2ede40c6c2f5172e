// Package skills drives the skill-category tabs and the staggered fill
// animation of their proficiency bars.
package skills

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/selection"
)

const (
	DefaultStartDelay = 100 * time.Millisecond
	DefaultStep       = 100 * time.Millisecond
)

// Options tunes the animation timing. Zero values use the defaults.
type Options struct {
	StartDelay time.Duration
	Step       time.Duration
}

// Bars owns the active category and which of its bars have filled.
//
// Every category change clears all fill flags and schedules skill i of the
// new category to fill after StartDelay + i*Step. Pending fills of an older
// run are cancelled, and a generation check drops any that already fired
// concurrently.
type Bars struct {
	categories []content.SkillCategory
	byID       map[string]content.SkillCategory
	switcher   *selection.Switcher
	sched      *schedule.Scheduler
	startDelay time.Duration
	step       time.Duration

	mu       sync.Mutex
	running  bool
	gen      uint64
	animated map[string]bool
	tasks    []schedule.Task
}

// New builds Bars over categories; the first category is active.
func New(categories []content.SkillCategory, clock schedule.Clock, opts Options) (*Bars, error) {
	ids := make([]string, 0, len(categories))
	byID := make(map[string]content.SkillCategory, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
		byID[c.ID] = c
	}
	switcher, err := selection.NewSwitcher(ids...)
	if err != nil {
		return nil, errors.Wrap(err, "skill categories")
	}

	if opts.StartDelay <= 0 {
		opts.StartDelay = DefaultStartDelay
	}
	if opts.Step <= 0 {
		opts.Step = DefaultStep
	}

	b := &Bars{
		categories: categories,
		byID:       byID,
		switcher:   switcher,
		sched:      schedule.New(clock),
		startDelay: opts.StartDelay,
		step:       opts.Step,
		animated:   make(map[string]bool),
	}
	switcher.OnChange(func(_, _ string) {
		b.replay()
	})
	return b, nil
}

// Start begins animating the active category. Before Start no bar fills;
// calling it again has no effect.
func (b *Bars) Start() {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return
	}
	b.running = true
	b.mu.Unlock()

	b.replay()
}

// Select switches to category id and replays the fill animation.
func (b *Bars) Select(id string) error {
	_, err := b.switcher.Select(id)
	return err
}

// Active returns the active category id.
func (b *Bars) Active() string {
	return b.switcher.Active()
}

// Animated reports whether the named skill's bar has filled.
func (b *Bars) Animated(name string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.animated[name]
}

// Pending returns how many fills are still scheduled.
func (b *Bars) Pending() int {
	return b.sched.Pending()
}

// Close cancels every pending fill. Bars must not be used afterwards.
func (b *Bars) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	b.tasks = nil
	b.sched.Close()
}

// replay reads the active id under b.mu so that listeners delivered out of
// order still schedule the category the switcher ended on.
func (b *Bars) replay() {
	b.mu.Lock()
	defer b.mu.Unlock()

	active := b.switcher.Active()

	b.gen++
	for _, task := range b.tasks {
		task.Cancel()
	}
	b.tasks = nil
	b.animated = make(map[string]bool)

	if !b.running {
		return
	}

	gen := b.gen
	for i, skill := range b.byID[active].Skills {
		name := skill.Name
		task, err := b.sched.After(b.startDelay+time.Duration(i)*b.step, func() {
			b.fill(gen, name)
		})
		if err != nil {
			return
		}
		b.tasks = append(b.tasks, task)
	}
}

func (b *Bars) fill(gen uint64, name string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}
	b.animated[name] = true
}

// Bar is one rendered skill bar. Width is the fill percentage.
type Bar struct {
	Name     string
	Level    int
	Width    int
	Animated bool
}

// Pane is the bar list of one category.
type Pane struct {
	ID     string
	Name   string
	Active bool
	Bars   []Bar
}

// View is a snapshot of the skills panel.
type View struct {
	Active  string
	Running bool
	Done    bool
	Panes   []Pane
}

// View returns the current state for rendering.
func (b *Bars) View() View {
	active := b.switcher.Active()

	b.mu.Lock()
	defer b.mu.Unlock()

	v := View{Active: active, Running: b.running, Done: b.running}
	for _, c := range b.categories {
		pane := Pane{ID: c.ID, Name: c.Name, Active: c.ID == active}
		for _, skill := range c.Skills {
			bar := Bar{Name: skill.Name, Level: skill.Level}
			if pane.Active && b.animated[skill.Name] {
				bar.Animated = true
				bar.Width = skill.Level
			}
			if pane.Active && !bar.Animated {
				v.Done = false
			}
			pane.Bars = append(pane.Bars, bar)
		}
		v.Panes = append(v.Panes, pane)
	}
	return v
}
