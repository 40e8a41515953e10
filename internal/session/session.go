package session

import (
	"errors"
	"time"

	"workwatch/internal/history"
	"workwatch/internal/webhook"
	"workwatch/internal/worklog"
)

// ErrInvalidTransition is returned when an operation is invoked in a
// mode where it is not allowed. State is left untouched.
var ErrInvalidTransition = errors.New("not available in this mode")

type Mode int

const (
	ModeMenu Mode = iota
	ModeWorking
	ModeLogs
)

func (m Mode) String() string {
	switch m {
	case ModeWorking:
		return "Working"
	case ModeLogs:
		return "Logs"
	default:
		return "Menu"
	}
}

// Notifier receives a payload snapshot on clock-in and clock-out.
// Delivery is best-effort; the session never waits on it.
type Notifier interface {
	Notify(p webhook.Payload)
}

// Recorder archives a completed session on clock-out.
type Recorder interface {
	Record(rec *history.Record) error
}

// Session is the single owner of all tracking state. Every mutation
// goes through one of its operations, each guarded by the current mode,
// and all operations are invoked sequentially from the update loop.
//
// Invariant: the clock exists iff the mode is not Menu.
type Session struct {
	username string
	mode     Mode
	clock    *Clock
	logs     *worklog.Store
	notifier Notifier
	archive  Recorder
}

// New builds a session in Menu mode. notifier and archive may be nil,
// which disables notifications and archiving respectively.
func New(username string, notifier Notifier, archive Recorder) *Session {
	return &Session{
		username: username,
		mode:     ModeMenu,
		logs:     worklog.NewStore(),
		notifier: notifier,
		archive:  archive,
	}
}

func (s *Session) Username() string { return s.username }

func (s *Session) Mode() Mode { return s.mode }

func (s *Session) Clock() *Clock { return s.clock }

// Elapsed returns the running session's duration, or zero in Menu mode.
func (s *Session) Elapsed() time.Duration {
	if s.clock == nil {
		return 0
	}
	return s.clock.Elapsed()
}

func (s *Session) Logs() *worklog.Store { return s.logs }

// ClockIn starts a work session.
func (s *Session) ClockIn() error {
	if s.mode != ModeMenu {
		return ErrInvalidTransition
	}
	s.clock = NewClock()
	s.mode = ModeWorking
	s.notify(webhook.Payload{
		Username: s.username,
		Event:    webhook.EventClockIn,
		At:       time.Now(),
	})
	return nil
}

// ClockOut ends the session: the elapsed time and log snapshot are
// captured, the finished session is archived and announced, then the
// clock is destroyed and the logs cleared. A session starts fresh.
func (s *Session) ClockOut() error {
	if s.mode == ModeMenu {
		return ErrInvalidTransition
	}

	stoppedAt := time.Now()
	elapsed := s.clock.Elapsed()
	startedAt := s.clock.StartedAt()
	entries := s.logs.Entries()
	texts := s.logs.Texts()

	s.clock = nil
	s.logs.Clear()
	s.mode = ModeMenu

	if s.archive != nil {
		// Archive failure must not undo a committed clock-out; the
		// recorder is responsible for reporting its own errors.
		_ = s.archive.Record(&history.Record{
			Username:  s.username,
			StartedAt: startedAt,
			StoppedAt: stoppedAt,
			Duration:  elapsed,
			Logs:      texts,
		})
	}

	s.notify(webhook.Payload{
		Username: s.username,
		Event:    webhook.EventClockOut,
		At:       stoppedAt,
		Elapsed:  &elapsed,
		Logs:     entries,
	})
	return nil
}

// OpenLogs switches from the timer screen to the log list.
func (s *Session) OpenLogs() error {
	if s.mode != ModeWorking {
		return ErrInvalidTransition
	}
	s.mode = ModeLogs
	return nil
}

// CloseLogs returns from the log list to the timer screen.
func (s *Session) CloseLogs() error {
	if s.mode != ModeLogs {
		return ErrInvalidTransition
	}
	s.mode = ModeWorking
	return nil
}

// AddLog appends an activity note. Logs only exist inside a session,
// so this is rejected in Menu mode.
func (s *Session) AddLog(text string) error {
	if s.mode == ModeMenu {
		return ErrInvalidTransition
	}
	_, err := s.logs.Add(text)
	return err
}

// EditLog replaces the selected note's text.
func (s *Session) EditLog(text string) error {
	if s.mode != ModeLogs {
		return ErrInvalidTransition
	}
	return s.logs.Edit(text)
}

// DeleteLog removes the selected note.
func (s *Session) DeleteLog() error {
	if s.mode != ModeLogs {
		return ErrInvalidTransition
	}
	return s.logs.Delete()
}

func (s *Session) SelectNext() error {
	if s.mode != ModeLogs || s.logs.Len() == 0 {
		return ErrInvalidTransition
	}
	s.logs.SelectNext()
	return nil
}

func (s *Session) SelectPrev() error {
	if s.mode != ModeLogs || s.logs.Len() == 0 {
		return ErrInvalidTransition
	}
	s.logs.SelectPrev()
	return nil
}

func (s *Session) notify(p webhook.Payload) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(p)
}
