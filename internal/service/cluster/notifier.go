package cluster

import (
	"context"

	"go.uber.org/zap"
)

// Outcome is the user-facing result class of a data fetch. The dashboard
// gives each a distinct visual treatment, so an empty-but-successful
// fetch is never confused with a failed one.
type Outcome string

const (
	OutcomeLoaded Outcome = "loaded"
	OutcomeEmpty  Outcome = "empty"
	OutcomeFailed Outcome = "failed"
)

// Event describes one fetch outcome for the presentation layer.
type Event struct {
	Outcome   Outcome
	Operation string
	EntityID  string
	Count     int
	Err       error
}

// Notifier receives fetch-outcome events. Implementations must be safe
// for concurrent use.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// zapNotifier logs outcome events; the HTTP layer translates the same
// outcomes into response notices.
type zapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier creates a notifier that records outcomes in the
// structured log.
func NewZapNotifier(logger *zap.Logger) Notifier {
	return &zapNotifier{logger: logger}
}

func (n *zapNotifier) Notify(ctx context.Context, event Event) {
	fields := []zap.Field{
		zap.String("operation", event.Operation),
		zap.String("entityID", event.EntityID),
		zap.Int("count", event.Count),
	}
	switch event.Outcome {
	case OutcomeFailed:
		n.logger.Warn("fetch failed", append(fields, zap.Error(event.Err))...)
	case OutcomeEmpty:
		n.logger.Info("no data found", fields...)
	default:
		n.logger.Info("data loaded", fields...)
	}
}
