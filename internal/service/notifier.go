package service

import (
	"context"

	"github.com/kurobe2240/NFT-EC/internal/platform/logger"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notifier is the user-facing notification surface. Notify is fire-and-forget:
// implementations must swallow their own failures and never panic, so callers
// can report outcomes without a second error path.
type Notifier interface {
	Notify(ctx context.Context, message string, severity Severity)
}

type logNotifier struct {
	log logger.Logger
}

// NewLogNotifier returns a Notifier that writes notifications to the
// application log. Used when no message broker is configured.
func NewLogNotifier(log logger.Logger) Notifier {
	return &logNotifier{log: log}
}

func (n *logNotifier) Notify(_ context.Context, message string, severity Severity) {
	switch severity {
	case SeverityError:
		n.log.Errorf("notification: %s", message)
	case SeverityWarning:
		n.log.Warnf("notification: %s", message)
	default:
		n.log.Infof("notification [%s]: %s", severity, message)
	}
}
