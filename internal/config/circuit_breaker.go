package config

import (
	"time"

	"github.com/sony/gobreaker"

	"github.com/kerem/hostelhub/internal/pkg/logger"
)

// NewCircuitBreaker creates a circuit breaker with standard settings for
// outbound SaaS calls (mail provider, geocoder). The name uniquely
// identifies the breaker instance in logs.
func NewCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state change")
		},
	})
}
