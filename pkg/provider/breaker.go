package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/sony/gobreaker"
)

// BreakerCompleter wraps a Completer with a circuit breaker so a flapping
// upstream stops being called until it recovers. Callers see the breaker's
// open-state error like any other completion failure.
type BreakerCompleter struct {
	inner  Completer
	cb     *gobreaker.CircuitBreaker
	logger *slog.Logger
}

// NewBreakerCompleter wraps inner. The breaker trips after 5 consecutive
// failures and probes again after 30 seconds.
func NewBreakerCompleter(inner Completer, logger *slog.Logger) *BreakerCompleter {
	settings := gobreaker.Settings{
		Name:    "chat-completions",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"name", name, "from", from.String(), "to", to.String())
		},
	}
	return &BreakerCompleter{
		inner:  inner,
		cb:     gobreaker.NewCircuitBreaker(settings),
		logger: logger,
	}
}

// Complete executes the wrapped call through the breaker.
func (b *BreakerCompleter) Complete(ctx context.Context, messages []Message) (string, error) {
	out, err := b.cb.Execute(func() (any, error) {
		return b.inner.Complete(ctx, messages)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}
