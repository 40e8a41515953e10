package worklog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrEmptyInput is returned when a log is added or edited with text
	// that is blank after trimming.
	ErrEmptyInput = errors.New("log text is empty")

	// ErrNoSelection is returned when an operation needs a selected log
	// and nothing is selected.
	ErrNoSelection = errors.New("no log selected")
)

// Entry is a single timestamped activity note.
type Entry struct {
	ID   string
	At   time.Time
	Text string
}

// Store holds log entries in insertion order plus a selection cursor.
// The cursor is always a valid index, or -1 iff the store is empty.
type Store struct {
	entries  []Entry
	selected int
}

func NewStore() *Store {
	return &Store{selected: -1}
}

// Add appends a new entry and moves the selection to it.
func (s *Store) Add(text string) (Entry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Entry{}, ErrEmptyInput
	}
	e := Entry{
		ID:   uuid.NewString(),
		At:   time.Now(),
		Text: text,
	}
	s.entries = append(s.entries, e)
	s.selected = len(s.entries) - 1
	return e, nil
}

// Edit replaces the selected entry's text in place.
func (s *Store) Edit(text string) error {
	if s.selected < 0 {
		return ErrNoSelection
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptyInput
	}
	s.entries[s.selected].Text = text
	return nil
}

// Delete removes the selected entry. The selection moves to the entry
// that now occupies the same index, or the new last entry, or clears
// when the store empties.
func (s *Store) Delete() error {
	if s.selected < 0 {
		return ErrNoSelection
	}
	i := s.selected
	s.entries = append(s.entries[:i], s.entries[i+1:]...)
	if len(s.entries) == 0 {
		s.selected = -1
	} else if i > len(s.entries)-1 {
		s.selected = len(s.entries) - 1
	} else {
		s.selected = i
	}
	return nil
}

// SelectNext moves the cursor down one entry, clamped at the end.
func (s *Store) SelectNext() {
	if s.selected >= 0 && s.selected < len(s.entries)-1 {
		s.selected++
	}
}

// SelectPrev moves the cursor up one entry, clamped at the start.
func (s *Store) SelectPrev() {
	if s.selected > 0 {
		s.selected--
	}
}

// Selected returns the entry under the cursor.
func (s *Store) Selected() (Entry, bool) {
	if s.selected < 0 {
		return Entry{}, false
	}
	return s.entries[s.selected], true
}

func (s *Store) SelectedIndex() int {
	return s.selected
}

func (s *Store) Len() int {
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Texts returns the entry texts in insertion order.
func (s *Store) Texts() []string {
	out := make([]string, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Text
	}
	return out
}

func (s *Store) Clear() {
	s.entries = nil
	s.selected = -1
}
