package worklog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTrimsAndSelects(t *testing.T) {
	s := NewStore()

	e, err := s.Add("  wrote spec  ")
	require.NoError(t, err)
	assert.Equal(t, "wrote spec", e.Text)
	assert.NotEmpty(t, e.ID)
	assert.False(t, e.At.IsZero())
	assert.Equal(t, 0, s.SelectedIndex())

	_, err = s.Add("reviewed PR")
	require.NoError(t, err)
	assert.Equal(t, 1, s.SelectedIndex(), "selection follows the newest entry")
	assert.Equal(t, []string{"wrote spec", "reviewed PR"}, s.Texts())
}

func TestAddRejectsBlankText(t *testing.T) {
	s := NewStore()

	for _, text := range []string{"", "   ", "\t\n"} {
		_, err := s.Add(text)
		assert.ErrorIs(t, err, ErrEmptyInput)
	}
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.SelectedIndex())
}

func TestEditRequiresSelection(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Edit("anything"), ErrNoSelection)

	_, err := s.Add("first")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Edit("  "), ErrEmptyInput)
	assert.Equal(t, "first", s.Texts()[0])

	require.NoError(t, s.Edit("first, revised"))
	assert.Equal(t, "first, revised", s.Texts()[0])
}

func TestEditSameTextIsIdempotent(t *testing.T) {
	s := NewStore()
	_, err := s.Add("unchanged")
	require.NoError(t, err)

	before := s.Entries()
	require.NoError(t, s.Edit("unchanged"))

	assert.Equal(t, before, s.Entries())
	assert.Equal(t, 0, s.SelectedIndex())
}

func TestDeleteEmptyStore(t *testing.T) {
	s := NewStore()
	assert.ErrorIs(t, s.Delete(), ErrNoSelection)
}

func TestDeleteReselects(t *testing.T) {
	s := NewStore()
	for _, text := range []string{"a", "b", "c"} {
		_, err := s.Add(text)
		require.NoError(t, err)
	}

	// Delete the last entry; selection clamps to the new last index.
	require.NoError(t, s.Delete())
	assert.Equal(t, []string{"a", "b"}, s.Texts())
	assert.Equal(t, 1, s.SelectedIndex())

	// Delete from the front; selection stays at the same index.
	s.SelectPrev()
	require.NoError(t, s.Delete())
	assert.Equal(t, []string{"b"}, s.Texts())
	assert.Equal(t, 0, s.SelectedIndex())

	require.NoError(t, s.Delete())
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.SelectedIndex())
}

func TestSelectionClampsWithoutWraparound(t *testing.T) {
	s := NewStore()
	for _, text := range []string{"a", "b", "c"} {
		_, err := s.Add(text)
		require.NoError(t, err)
	}
	require.Equal(t, 2, s.SelectedIndex())

	s.SelectNext()
	assert.Equal(t, 2, s.SelectedIndex(), "no wraparound at the end")

	s.SelectPrev()
	s.SelectPrev()
	assert.Equal(t, 0, s.SelectedIndex())

	s.SelectPrev()
	assert.Equal(t, 0, s.SelectedIndex(), "no wraparound at the start")
}

func TestEntriesReturnsCopy(t *testing.T) {
	s := NewStore()
	_, err := s.Add("original")
	require.NoError(t, err)

	entries := s.Entries()
	entries[0].Text = "mutated"
	assert.Equal(t, "original", s.Texts()[0])
}

func TestClear(t *testing.T) {
	s := NewStore()
	_, err := s.Add("something")
	require.NoError(t, err)

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, -1, s.SelectedIndex())
	_, ok := s.Selected()
	assert.False(t, ok)
}
