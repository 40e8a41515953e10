package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"workwatch/internal"
	"workwatch/internal/config"
	"workwatch/internal/history"
	"workwatch/internal/session"
	"workwatch/internal/webhook"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "workwatch",
	Short: "WorkWatch - personal time tracking TUI",
	Long: `WorkWatch is a terminal time tracker: clock in, jot down activity
logs while you work, and clock out. Each clock-in and clock-out can
post a notification to a Discord-style webhook.

Configuration comes from the environment (or a .env file):
  WORKWATCH_USERNAME  display name (defaults to Anonymous)
  WORKWATCH_WEBHOOK   webhook URL (unset disables notifications)
  WORKWATCH_DB        session archive path (set empty to disable)
  WORKWATCH_LOG       log file path (unset disables file logging)`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, warnings := config.Load()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "WorkWatch Warning: %s\n", w)
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	if closeLog != nil {
		defer closeLog()
	}

	var archive *history.Repository
	if cfg.DatabasePath != "" {
		archive, err = history.NewRepository(cfg.DatabasePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "WorkWatch Warning: session archive disabled: %v\n", err)
			archive = nil
		} else {
			defer archive.Close()
		}
	}

	var notifier *webhook.Notifier
	if cfg.WebhookURL != "" {
		notifier = webhook.NewNotifier(webhook.NewHTTPTransport(cfg.WebhookURL), logger)
		defer notifier.Close()
	}

	sess := session.New(cfg.Username, sessionNotifier(notifier), sessionRecorder(archive, logger))
	model := internal.NewModel(sess, archive)

	p := tea.NewProgram(model, tea.WithAltScreen())

	if notifier != nil {
		go func() {
			for err := range notifier.Errors() {
				p.Send(internal.MsgNotifyErr{Err: err})
			}
		}()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	go func() {
		for range ticker.C {
			p.Send(internal.MsgTick{})
		}
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running program: %w", err)
	}
	return nil
}

// sessionNotifier avoids handing the session a typed-nil interface.
func sessionNotifier(n *webhook.Notifier) session.Notifier {
	if n == nil {
		return nil
	}
	return n
}

// loggedRecorder reports archive failures through the logger; a failed
// write never affects the clock-out itself.
type loggedRecorder struct {
	repo   *history.Repository
	logger *slog.Logger
}

func (r *loggedRecorder) Record(rec *history.Record) error {
	if err := r.repo.Record(rec); err != nil {
		r.logger.Warn("failed to archive session", "error", err)
		return err
	}
	return nil
}

func sessionRecorder(repo *history.Repository, logger *slog.Logger) session.Recorder {
	if repo == nil {
		return nil
	}
	return &loggedRecorder{repo: repo, logger: logger}
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, nil))
	return logger, func() { f.Close() }, nil
}
