package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/openhired/jobboard/internal/mailer"
)

// notify dispatches a transactional email without blocking the request.
// Failures are logged, never propagated: mail is not part of any
// business transaction.
func notify(logger *zap.Logger, mail mailer.Sender, to, subject, body string) {
	if mail == nil || to == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := mail.Send(ctx, to, subject, body); err != nil {
			logger.Warn("send mail failed",
				zap.String("to", to),
				zap.String("subject", subject),
				zap.Error(err))
		}
	}()
}
