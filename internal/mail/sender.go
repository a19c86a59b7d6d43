package mail

import (
	"context"
	"log/slog"
)

// Sender is the outbound email collaborator. The only shipped
// implementation logs instead of delivering.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type LogSender struct {
	Log *slog.Logger
}

func (s *LogSender) Send(_ context.Context, to, subject, body string) error {
	s.Log.Info("sending email", "to", to, "subject", subject, "body", body)
	return nil
}
