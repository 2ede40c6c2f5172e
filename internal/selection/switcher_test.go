package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSwitcherErrors(t *testing.T) {
	_, err := NewSwitcher()
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = NewSwitcher("a", "b", "a")
	assert.ErrorIs(t, err, ErrDuplicateEntry)
}

func TestSwitcherStartsOnFirstEntry(t *testing.T) {
	s, err := NewSwitcher("exp1", "exp2", "exp3")
	require.NoError(t, err)

	assert.Equal(t, "exp1", s.Active())
	assert.Equal(t, []string{"exp1", "exp2", "exp3"}, s.Entries())
}

func TestSwitcherExactlyOneActive(t *testing.T) {
	ids := []string{"exp1", "exp2", "exp3", "exp4"}
	s, err := NewSwitcher(ids...)
	require.NoError(t, err)

	for _, k := range []string{"exp3", "exp1", "exp4", "exp2"} {
		_, err := s.Select(k)
		require.NoError(t, err)

		active := 0
		for _, id := range ids {
			if s.IsActive(id) {
				active++
				assert.Equal(t, k, id)
			}
		}
		assert.Equal(t, 1, active)
	}
}

func TestSwitcherUnknownEntryLeavesState(t *testing.T) {
	s, err := NewSwitcher("frontend", "backend")
	require.NoError(t, err)
	_, err = s.Select("backend")
	require.NoError(t, err)

	changed, err := s.Select("mobile")
	assert.ErrorIs(t, err, ErrUnknownEntry)
	assert.False(t, changed)
	assert.Equal(t, "backend", s.Active())
}

func TestSwitcherReselectIsNoop(t *testing.T) {
	s, err := NewSwitcher("frontend", "backend")
	require.NoError(t, err)
	calls := 0
	s.OnChange(func(string, string) { calls++ })

	changed, err := s.Select("frontend")
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Zero(t, calls)
}

func TestSwitcherListeners(t *testing.T) {
	s, err := NewSwitcher("frontend", "backend", "database")
	require.NoError(t, err)

	var seen [][2]string
	s.OnChange(func(prev, next string) { seen = append(seen, [2]string{prev, next}) })

	_, _ = s.Select("backend")
	_, _ = s.Select("database")

	assert.Equal(t, [][2]string{{"frontend", "backend"}, {"backend", "database"}}, seen)
}
