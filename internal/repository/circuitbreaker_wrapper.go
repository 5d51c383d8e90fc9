package repository

import (
	"context"
	"errors"

	"github.com/guttosm/feeding-service/internal/circuitbreaker"
)

// FeedingTargetsRepositoryWithCircuitBreaker wraps FeedingTargetsRepository with circuit breaker protection.
// ErrCircuitOpen is returned to callers unchanged so the API can answer 503.
type FeedingTargetsRepositoryWithCircuitBreaker struct {
	repo           FeedingTargetsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewFeedingTargetsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewFeedingTargetsRepositoryWithCircuitBreaker(repo FeedingTargetsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *FeedingTargetsRepositoryWithCircuitBreaker {
	return &FeedingTargetsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// IsExpectedError reports feeding target errors that must not trip a breaker.
func IsExpectedError(err error) bool {
	return errors.Is(err, ErrFeedingTargetNotFound)
}

// Save stores a new target version with circuit breaker protection.
func (r *FeedingTargetsRepositoryWithCircuitBreaker) Save(ctx context.Context, target *FeedingTarget) (*FeedingTarget, error) {
	var result *FeedingTarget
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Save(ctx, target)
		return cbErr
	})
	return result, err
}

// GetActive returns the dog's active target with circuit breaker protection.
func (r *FeedingTargetsRepositoryWithCircuitBreaker) GetActive(ctx context.Context, dogID string) (*FeedingTarget, error) {
	var result *FeedingTarget
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx, dogID)
		return cbErr
	})
	return result, err
}

// History returns the dog's targets with circuit breaker protection.
func (r *FeedingTargetsRepositoryWithCircuitBreaker) History(ctx context.Context, dogID string, limit int) ([]FeedingTarget, error) {
	var result []FeedingTarget
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.History(ctx, dogID, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *FeedingTargetsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           LogsRepositoryInterface
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo LogsRepositoryInterface, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// Entries are dropped while the circuit is open.
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*LogEntryDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error) {
	var result []*LogEntryDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
