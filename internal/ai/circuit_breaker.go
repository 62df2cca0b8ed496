package ai

import (
	"github.com/DANNY1169/resume-role-classifier/internal/config"
	"github.com/DANNY1169/resume-role-classifier/internal/errors"

	"github.com/sony/gobreaker/v2"
)

// CircuitBreaker guards calls to the Gemini API. A nil value is valid
// and means the breaker is disabled: Execute passes straight through.
type CircuitBreaker[T any] struct {
	cb *gobreaker.CircuitBreaker[T]
}

// NewCircuitBreaker builds a breaker for one AI operation (embedding
// or summary). Returns nil when the breaker is disabled in config.
func NewCircuitBreaker[T any](operation string, cfg *config.OperationAIConfig, logger *errors.Logger) *CircuitBreaker[T] {
	bc := cfg.CircuitBreaker
	if !bc.Enabled {
		return nil
	}

	settings := gobreaker.Settings{
		Name:        "AI-" + operation,
		MaxRequests: bc.MaxRequests,
		Interval:    bc.Interval,
		Timeout:     bc.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < bc.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= bc.FailureThreshold
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				"name", name,
				"operation_type", operation,
				"from", from.String(),
				"to", to.String(),
				"max_requests", bc.MaxRequests,
				"failure_threshold", bc.FailureThreshold)
		},
	}

	return &CircuitBreaker[T]{cb: gobreaker.NewCircuitBreaker[T](settings)}
}

// Execute runs fn under the breaker, or directly when disabled.
func (cb *CircuitBreaker[T]) Execute(fn func() (T, error)) (T, error) {
	if cb == nil || cb.cb == nil {
		return fn()
	}
	return cb.cb.Execute(fn)
}

// GetStats reports the breaker state for the /stats and /health
// endpoints.
func (cb *CircuitBreaker[T]) GetStats() map[string]any {
	if cb == nil || cb.cb == nil {
		return map[string]any{"enabled": false}
	}
	return map[string]any{
		"name":    cb.cb.Name(),
		"state":   cb.cb.State().String(),
		"counts":  cb.cb.Counts(),
		"enabled": true,
	}
}

// IsHealthy reports whether calls are currently being let through.
// A disabled breaker counts as healthy.
func (cb *CircuitBreaker[T]) IsHealthy() bool {
	if cb == nil || cb.cb == nil {
		return true
	}
	return cb.cb.State() == gobreaker.StateClosed
}
