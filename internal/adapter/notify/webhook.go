package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

const (
	schemaVersion = "1"
	userAgent     = "thanksmetoo/v1"
)

// ErrQueueFull is returned by Send when the worker queue has no room.
var ErrQueueFull = errors.New("webhook send queue full")

// Envelope is the JSON body POSTed to the webhook endpoint.
type Envelope struct {
	Type          string              `json:"type"`
	SchemaVersion string              `json:"schemaVersion"`
	Timestamp     string              `json:"timestamp"`
	Data          domain.Notification `json:"data"`
}

type webhookWork struct {
	ctx      context.Context
	envelope Envelope
}

// WebhookSender POSTs notifications from a fixed pool of workers.
// Failed deliveries are logged and counted; they are not retried.
type WebhookSender struct {
	httpClient *http.Client
	log        *slog.Logger
	url        string
	workers    int
	sendCh     chan webhookWork
	wg         sync.WaitGroup
	now        func() time.Time
}

// NewWebhookSender creates a WebhookSender. Returns an error if the URL is invalid.
func NewWebhookSender(log *slog.Logger, cfg config.NotifyConfig) (*WebhookSender, error) {
	if cfg.WebhookURL == "" {
		return nil, fmt.Errorf("webhook URL is required")
	}
	u, err := url.Parse(cfg.WebhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("webhook URL must use http or https scheme, got %q", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("webhook URL must include a host")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	workers := max(cfg.Workers, 1)
	queue := max(cfg.QueueSize, 1)

	return &WebhookSender{
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("sender", "webhook"),
		url:        cfg.WebhookURL,
		workers:    workers,
		sendCh:     make(chan webhookWork, queue),
		now:        time.Now,
	}, nil
}

// Name returns the channel name.
func (ws *WebhookSender) Name() string { return "webhook" }

// Start launches the workers. Non-blocking.
func (ws *WebhookSender) Start(ctx context.Context) {
	for range ws.workers {
		ws.wg.Add(1)
		go ws.worker(ctx)
	}
	ws.log.InfoContext(ctx, "webhook sender started",
		slog.String("url", RedactURL(ws.url)),
		slog.Int("workers", ws.workers),
	)
}

// Close waits for all workers to finish draining queued notifications.
// Call after the context passed to Start is cancelled.
func (ws *WebhookSender) Close() {
	ws.wg.Wait()
}

// Send enqueues n for delivery. The request context's values are kept but
// its cancellation is not, so delivery outlives the request.
func (ws *WebhookSender) Send(ctx context.Context, n domain.Notification) error {
	if !n.Type.IsValid() {
		sendTotal.WithLabelValues(ws.Name(), "rejected").Inc()
		return fmt.Errorf("unknown notification type %q", n.Type)
	}

	select {
	case ws.sendCh <- webhookWork{ctx: context.WithoutCancel(ctx), envelope: ws.envelope(n)}:
		return nil
	default:
		sendTotal.WithLabelValues(ws.Name(), "dropped").Inc()
		return ErrQueueFull
	}
}

func (ws *WebhookSender) envelope(n domain.Notification) Envelope {
	return Envelope{
		Type:          n.Type.String(),
		SchemaVersion: schemaVersion,
		Timestamp:     ws.now().UTC().Format(time.RFC3339),
		Data:          n,
	}
}

// worker drains the send channel. On context cancellation it drains the
// remaining buffered items before exiting.
func (ws *WebhookSender) worker(ctx context.Context) {
	defer ws.wg.Done()
	for {
		select {
		case <-ctx.Done():
			for {
				select {
				case work := <-ws.sendCh:
					ws.deliver(work)
				default:
					return
				}
			}
		case work := <-ws.sendCh:
			ws.deliver(work)
		}
	}
}

func (ws *WebhookSender) deliver(work webhookWork) {
	ctx, cancel := context.WithTimeout(work.ctx, ws.httpClient.Timeout)
	defer cancel()

	if err := ws.doPost(ctx, work.envelope); err != nil {
		sendTotal.WithLabelValues(ws.Name(), "error").Inc()
		ws.log.WarnContext(ctx, "webhook send failed",
			slog.String("url", RedactURL(ws.url)),
			slog.String("thanks_key", work.envelope.Data.ThanksKey),
			slog.String("error", err.Error()),
		)
		return
	}
	sendTotal.WithLabelValues(ws.Name(), "success").Inc()
}

// doPost executes a single HTTP POST request.
func (ws *WebhookSender) doPost(ctx context.Context, envelope Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ws.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := ws.httpClient.Do(req)
	duration := time.Since(start).Seconds()
	if err != nil {
		sendDuration.WithLabelValues("error").Observe(duration)
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		sendDuration.WithLabelValues("success").Observe(duration)
		return nil
	}

	sendDuration.WithLabelValues("error").Observe(duration)
	return fmt.Errorf("webhook returned HTTP %d", resp.StatusCode)
}

// RedactURL masks credentials in a URL for safe logging: the userinfo
// password and every query parameter value.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			q.Set(key, "REDACTED")
		}
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}
