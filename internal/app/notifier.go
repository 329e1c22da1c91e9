package app

import (
	"context"
	"log/slog"

	"github.com/Wikia/thanksmetoo/internal/adapter/notify"
	"github.com/Wikia/thanksmetoo/internal/config"
	"github.com/Wikia/thanksmetoo/internal/domain"
)

// Sender is the transmission channel handed to the thanks service.
type Sender interface {
	Name() string
	Send(ctx context.Context, n domain.Notification) error
}

// newNotifier returns the webhook sender when a URL is configured and the
// log sender otherwise. The returned close func blocks until queued
// deliveries drain and must be called after ctx is cancelled.
func newNotifier(ctx context.Context, logger *slog.Logger, cfg config.NotifyConfig) (Sender, func(), error) {
	if cfg.WebhookURL == "" {
		logger.WarnContext(ctx, "notify.webhook_url not set, notifications are only logged")
		return notify.NewLogSender(logger), func() {}, nil
	}

	ws, err := notify.NewWebhookSender(logger, cfg)
	if err != nil {
		return nil, nil, err
	}
	ws.Start(ctx)
	return ws, ws.Close, nil
}
