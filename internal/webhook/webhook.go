package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"workwatch/internal/worklog"
)

const (
	// botName is the sender name shown by the receiving chat service.
	botName = "WorkWatch"

	embedColor  = 0x00ff88
	sendTimeout = 10 * time.Second
	queueSize   = 16
)

type Event string

const (
	EventClockIn  Event = "clock_in"
	EventClockOut Event = "clock_out"
)

// Payload is an immutable snapshot of session data captured at dispatch
// time. Elapsed and Logs are set only for clock-out events.
type Payload struct {
	Username string
	Event    Event
	At       time.Time
	Elapsed  *time.Duration
	Logs     []worklog.Entry
}

// Wire format expected by the Discord webhook receiver: a sender name
// plus a single embed. These field names are a fixed contract.
type message struct {
	Username string  `json:"username"`
	Embeds   []embed `json:"embeds"`
}

type embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       int    `json:"color"`
}

// Transport delivers a rendered notification body to the endpoint.
type Transport interface {
	Send(ctx context.Context, body []byte) error
}

// HTTPTransport posts JSON bodies to a webhook URL.
type HTTPTransport struct {
	url    string
	client *http.Client
}

func NewHTTPTransport(url string) *HTTPTransport {
	return &HTTPTransport{
		url: url,
		client: &http.Client{
			Timeout: sendTimeout,
		},
	}
}

func (t *HTTPTransport) Send(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

// Notifier dispatches payloads through a background worker so the caller
// never waits on network I/O. Failed sends are logged and reported on
// Errors(); they are never retried.
type Notifier struct {
	transport Transport
	logger    *slog.Logger
	queue     chan Payload
	errs      chan error
	done      chan struct{}
}

func NewNotifier(transport Transport, logger *slog.Logger) *Notifier {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	n := &Notifier{
		transport: transport,
		logger:    logger,
		queue:     make(chan Payload, queueSize),
		errs:      make(chan error, queueSize),
		done:      make(chan struct{}),
	}
	go n.worker()
	return n
}

// Notify queues a payload for delivery and returns immediately. If the
// queue is full the payload is dropped; a late or dropped notification
// has no effect on local state.
func (n *Notifier) Notify(p Payload) {
	select {
	case n.queue <- p:
	default:
		n.report(fmt.Errorf("notification queue full, dropped %s event", p.Event))
	}
}

// Errors exposes delivery failures for the UI to surface as transient
// warnings. The channel closes when the notifier shuts down.
func (n *Notifier) Errors() <-chan error {
	return n.errs
}

// Close stops the worker after draining queued payloads.
func (n *Notifier) Close() {
	close(n.queue)
	<-n.done
}

func (n *Notifier) worker() {
	defer close(n.done)
	defer close(n.errs)
	for p := range n.queue {
		body, err := Render(p)
		if err != nil {
			n.report(fmt.Errorf("failed to render %s notification: %w", p.Event, err))
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		err = n.transport.Send(ctx, body)
		cancel()
		if err != nil {
			n.report(fmt.Errorf("%s notification: %w", p.Event, err))
		}
	}
}

func (n *Notifier) report(err error) {
	n.logger.Warn("webhook delivery failed", "error", err)
	select {
	case n.errs <- err:
	default:
	}
}

// Render builds the JSON body for a payload.
func Render(p Payload) ([]byte, error) {
	var title string
	var desc strings.Builder

	date := p.At.Format("01/02/2006")
	clock := p.At.Format("15:04:05 (UTC-0700)")

	switch p.Event {
	case EventClockOut:
		title = fmt.Sprintf("%s has clocked out!", p.Username)
		var elapsed time.Duration
		if p.Elapsed != nil {
			elapsed = *p.Elapsed
		}
		fmt.Fprintf(&desc, "\nDate: %s\nTime: %s\n\nTotal Logged Time: %s\n\n",
			date, clock, FormatVerbose(elapsed))
		if len(p.Logs) == 0 {
			desc.WriteString("No logs to display.")
		} else {
			desc.WriteString("Logs:\n")
			for i, e := range p.Logs {
				if i > 0 {
					desc.WriteByte('\n')
				}
				fmt.Fprintf(&desc, "[%s] %s", e.At.Format("15:04:05"), e.Text)
			}
		}
	default:
		title = fmt.Sprintf("%s has clocked in!", p.Username)
		fmt.Fprintf(&desc, "\nDate: %s\nTime: %s", date, clock)
	}

	return json.Marshal(message{
		Username: botName,
		Embeds: []embed{{
			Title:       title,
			Description: desc.String(),
			Color:       embedColor,
		}},
	})
}

// FormatVerbose renders a duration as spelled-out units, largest first.
func FormatVerbose(d time.Duration) string {
	total := int(d.Seconds())
	sec := total % 60
	min := (total / 60) % 60
	hr := (total / 3600) % 24
	days := total / 86400

	switch {
	case days > 0:
		return fmt.Sprintf("%d Days, %d Hours, %d Minutes, %d Seconds", days, hr, min, sec)
	case hr > 0:
		return fmt.Sprintf("%d Hours, %d Minutes, %d Seconds", hr, min, sec)
	case min > 0:
		return fmt.Sprintf("%d Minutes, %d Seconds", min, sec)
	default:
		return fmt.Sprintf("%d Seconds", sec)
	}
}
