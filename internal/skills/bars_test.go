package skills

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leodahal4/portfolio/internal/content"
	"github.com/leodahal4/portfolio/internal/schedule"
	"github.com/leodahal4/portfolio/internal/selection"
)

func newBars(t *testing.T) (*Bars, *schedule.ManualClock) {
	t.Helper()
	clock := schedule.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b, err := New(content.Default().SkillCategories, clock, Options{})
	require.NoError(t, err)
	t.Cleanup(b.Close)
	return b, clock
}

func animatedNames(v View) []string {
	var names []string
	for _, pane := range v.Panes {
		for _, bar := range pane.Bars {
			if bar.Animated {
				names = append(names, bar.Name)
			}
		}
	}
	return names
}

func TestNewRequiresCategories(t *testing.T) {
	_, err := New(nil, nil, Options{})
	assert.ErrorIs(t, err, selection.ErrNoEntries)
}

func TestNothingAnimatesBeforeStart(t *testing.T) {
	b, clock := newBars(t)

	clock.Advance(time.Minute)
	v := b.View()
	assert.Empty(t, animatedNames(v))
	assert.False(t, v.Done)
	assert.Equal(t, "frontend", v.Active)
}

func TestStartFillsBarsInIndexOrder(t *testing.T) {
	b, clock := newBars(t)
	b.Start()
	b.Start()

	assert.Equal(t, 6, b.Pending())

	clock.Advance(99 * time.Millisecond)
	assert.False(t, b.Animated("React"))

	clock.Advance(time.Millisecond)
	assert.True(t, b.Animated("React"))
	assert.False(t, b.Animated("JavaScript"))

	clock.Advance(100 * time.Millisecond)
	assert.True(t, b.Animated("JavaScript"))
	assert.False(t, b.Animated("TypeScript"))

	clock.Advance(400 * time.Millisecond)
	v := b.View()
	assert.True(t, v.Done)
	assert.Equal(t, []string{"React", "JavaScript", "TypeScript", "HTML/CSS", "Vue.js", "Angular"}, animatedNames(v))
	assert.Equal(t, 95, v.Panes[0].Bars[0].Width)
}

func TestCategoryChangeClearsBeforeScheduling(t *testing.T) {
	b, clock := newBars(t)
	b.Start()
	clock.Advance(time.Second)
	require.True(t, b.View().Done)

	require.NoError(t, b.Select("database"))

	v := b.View()
	assert.Empty(t, animatedNames(v), "all flags cleared synchronously on change")
	assert.False(t, v.Done)
	assert.Equal(t, 6, b.Pending())

	clock.Advance(100 * time.Millisecond)
	assert.Equal(t, []string{"MongoDB"}, animatedNames(b.View()))
}

func TestRapidSwitchOnlyLastCategoryAnimates(t *testing.T) {
	b, clock := newBars(t)
	b.Start()

	require.NoError(t, b.Select("backend"))
	clock.Advance(150 * time.Millisecond)
	assert.True(t, b.Animated("Node.js"))

	require.NoError(t, b.Select("frontend"))
	assert.Equal(t, 6, b.Pending(), "pending backend fills were cancelled")

	clock.Advance(time.Second)
	v := b.View()
	assert.Equal(t, "frontend", v.Active)
	assert.True(t, v.Done)
	assert.Equal(t, []string{"React", "JavaScript", "TypeScript", "HTML/CSS", "Vue.js", "Angular"}, animatedNames(v))
	for _, name := range []string{"Node.js", "Express", "Python", "Django", "Java", "PHP"} {
		assert.False(t, b.Animated(name), name)
	}
}

func TestBackendThenImmediatelyFrontend(t *testing.T) {
	b, clock := newBars(t)
	b.Start()

	require.NoError(t, b.Select("backend"))
	require.NoError(t, b.Select("frontend"))
	clock.Advance(time.Second)

	v := b.View()
	for _, pane := range v.Panes {
		for _, bar := range pane.Bars {
			if pane.ID == "frontend" {
				assert.Equal(t, bar.Level, bar.Width, bar.Name)
			} else {
				assert.Zero(t, bar.Width, bar.Name)
			}
		}
	}
}

func TestOverlappingSelectsSettleOnLastCategory(t *testing.T) {
	b, clock := newBars(t)
	b.Start()

	// Holds the backend change and redelivers it after database has won.
	gate := make(chan struct{})
	var once sync.Once
	b.switcher.OnChange(func(_, next string) {
		if next != "backend" {
			return
		}
		once.Do(func() {
			<-gate
			b.replay()
		})
	})

	first := make(chan error, 1)
	go func() { first <- b.Select("backend") }()
	require.Eventually(t, func() bool { return b.Active() == "backend" }, time.Second, time.Millisecond)

	require.NoError(t, b.Select("database"))
	close(gate)
	require.NoError(t, <-first)

	clock.Advance(time.Second)
	v := b.View()
	assert.Equal(t, "database", v.Active)
	assert.True(t, v.Done)
	assert.Equal(t, []string{"MongoDB", "PostgreSQL", "MySQL", "Docker", "AWS", "CI/CD"}, animatedNames(v))
}

func TestSelectUnknownCategory(t *testing.T) {
	b, _ := newBars(t)
	err := b.Select("mobile")
	assert.ErrorIs(t, err, selection.ErrUnknownEntry)
	assert.Equal(t, "frontend", b.Active())
}

func TestOnlyActivePaneVisible(t *testing.T) {
	b, _ := newBars(t)
	require.NoError(t, b.Select("backend"))

	active := 0
	for _, pane := range b.View().Panes {
		if pane.Active {
			active++
			assert.Equal(t, "backend", pane.ID)
		}
	}
	assert.Equal(t, 1, active)
}

func TestCloseCancelsPendingFills(t *testing.T) {
	clock := schedule.NewManualClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	b, err := New(content.Default().SkillCategories, clock, Options{StartDelay: 10 * time.Millisecond, Step: 10 * time.Millisecond})
	require.NoError(t, err)
	b.Start()

	b.Close()
	assert.Zero(t, clock.Pending())
	clock.Advance(time.Second)
	assert.Empty(t, animatedNames(b.View()))
}
