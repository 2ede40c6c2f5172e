// Package page composes the stateful page components into one visitor
// session and keeps the live sessions of the server.
package page

import (
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/leodahal4/portfolio/internal/contact"
	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/reveal"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/selection"
	"github.com/leodahal4/portfolio/internal/skills"
)

// Sections with a scroll reveal, in page order. The hero animates on load
// and is not observed.
const (
	SectionAbout      = "about"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionSkills     = "skills"
	SectionContact    = "contact"
)

// RevealSections lists the observed sections in page order.
var RevealSections = []string{
	SectionAbout,
	SectionExperience,
	SectionProjects,
	SectionSkills,
	SectionContact,
}

// ErrUnknownSection is returned for a section id that is not observed.
var ErrUnknownSection = errors.New("unknown section")

// Options configures the components of a session.
type Options struct {
	Threshold float64
	Skills    skills.Options
	Contact   contact.Options
}

// Session is the UI state of one visitor. Components never share state
// with each other except through the reveal of their section.
type Session struct {
	id         string
	site       content.Site
	clock      schedule.Clock
	observer   *reveal.Observer
	sections   map[string]*reveal.Section
	experience *selection.Switcher
	skills     *skills.Bars
	contact    *contact.Form
	nav        *Navbar

	mu       sync.Mutex
	lastSeen time.Time
	closed   bool
}

// NewSession builds every component for one visitor.
func NewSession(id string, site content.Site, clock schedule.Clock, opts Options) (*Session, error) {
	if clock == nil {
		clock = schedule.RealClock()
	}

	experience, err := selection.NewSwitcher(site.ExperienceIDs()...)
	if err != nil {
		return nil, errors.Wrap(err, "experience timeline")
	}
	bars, err := skills.New(site.SkillCategories, clock, opts.Skills)
	if err != nil {
		return nil, err
	}

	s := &Session{
		id:         id,
		site:       site,
		clock:      clock,
		observer:   reveal.NewObserver(opts.Threshold),
		sections:   make(map[string]*reveal.Section, len(RevealSections)),
		experience: experience,
		skills:     bars,
		contact:    contact.New(clock, opts.Contact),
		nav:        &Navbar{},
		lastSeen:   clock.Now(),
	}
	for _, id := range RevealSections {
		s.sections[id] = reveal.Watch(s.observer, id)
	}
	s.sections[SectionSkills].OnReveal(bars.Start)
	return s, nil
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Reveal reports the visible fraction of a section. It returns true when
// this report revealed the section.
func (s *Session) Reveal(section string, ratio float64) (bool, error) {
	if _, ok := s.sections[section]; !ok {
		return false, errors.Wrap(ErrUnknownSection, section)
	}
	return s.observer.Notify(section, ratio), nil
}

// RevealAll reveals every section, as a pre-rendered page shows them.
func (s *Session) RevealAll() {
	for _, id := range RevealSections {
		s.sections[id].Reveal()
	}
}

// Revealed reports whether section has been revealed.
func (s *Session) Revealed(section string) bool {
	sec, ok := s.sections[section]
	return ok && sec.Visible()
}

// SelectExperience makes the experience entry id active.
func (s *Session) SelectExperience(id string) error {
	_, err := s.experience.Select(id)
	return err
}

// SelectSkills makes the skill category id active.
func (s *Session) SelectSkills(id string) error {
	return s.skills.Select(id)
}

// SubmitContact starts a simulated contact submission.
func (s *Session) SubmitContact(in contact.Fields) error {
	return s.contact.Submit(in)
}

// Nav returns the navbar state.
func (s *Session) Nav() *Navbar {
	return s.nav
}

// Touch marks the session as used now.
func (s *Session) Touch() {
	now := s.clock.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

// LastSeen returns when the session was last used.
func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// Close releases every observer registration and pending timer.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	for _, sec := range s.sections {
		sec.Release()
	}
	s.observer.Disconnect()
	s.skills.Close()
	s.contact.Close()
}

// ExperienceView is the timeline with its active entry.
type ExperienceView struct {
	Active string
	Items  []content.ExperienceItem
}

// View is everything the page templates render.
type View struct {
	Site       content.Site
	Year       int
	Static     bool
	Nav        NavView
	Revealed   map[string]bool
	Experience ExperienceView
	Skills     skills.View
	Contact    contact.View
}

// View snapshots the session for rendering.
func (s *Session) View() View {
	revealed := make(map[string]bool, len(s.sections))
	for id, sec := range s.sections {
		revealed[id] = sec.Visible()
	}
	return View{
		Site:     s.site,
		Year:     s.clock.Now().Year(),
		Nav:      s.nav.View(),
		Revealed: revealed,
		Experience: ExperienceView{
			Active: s.experience.Active(),
			Items:  s.site.Experience,
		},
		Skills:  s.skills.View(),
		Contact: s.contact.View(),
	}
}

// Settled returns v as it looks once every animation has finished. Every
// pane's bars are filled so a page without a server can switch tabs.
func (v View) Settled() View {
	v.Static = true
	v.Skills.Running = true
	v.Skills.Done = true
	panes := make([]skills.Pane, len(v.Skills.Panes))
	for i, pane := range v.Skills.Panes {
		bars := make([]skills.Bar, len(pane.Bars))
		for j, bar := range pane.Bars {
			bar.Animated = true
			bar.Width = bar.Level
			bars[j] = bar
		}
		pane.Bars = bars
		panes[i] = pane
	}
	v.Skills.Panes = panes
	return v
}
