package notify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Wikia/thanksmetoo/internal/domain"
)

// LogSender writes notifications to the log. Used when no webhook is
// configured.
type LogSender struct {
	log *slog.Logger
}

// NewLogSender creates a LogSender.
func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log.With("sender", "log")}
}

// Name returns the channel name.
func (s *LogSender) Name() string { return "log" }

// Send logs n.
func (s *LogSender) Send(ctx context.Context, n domain.Notification) error {
	if !n.Type.IsValid() {
		sendTotal.WithLabelValues(s.Name(), "rejected").Inc()
		return fmt.Errorf("unknown notification type %q", n.Type)
	}
	s.log.InfoContext(ctx, "thanks notification",
		slog.String("type", n.Type.String()),
		slog.String("agent", n.Agent.Name),
		slog.String("recipient", n.Recipient.Name),
		slog.String("target", n.TargetText),
		slog.String("thanks_key", n.ThanksKey),
	)
	sendTotal.WithLabelValues(s.Name(), "success").Inc()
	return nil
}
