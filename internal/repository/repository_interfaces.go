package repository

import "context"

// FeedingTargetsRepositoryInterface defines the feeding targets store.
type FeedingTargetsRepositoryInterface interface {
	// Save deactivates the dog's current target and inserts target as the new active version.
	Save(ctx context.Context, target *FeedingTarget) (*FeedingTarget, error)
	// GetActive returns ErrFeedingTargetNotFound when the dog has no active target.
	GetActive(ctx context.Context, dogID string) (*FeedingTarget, error)
	History(ctx context.Context, dogID string, limit int) ([]FeedingTarget, error)
}

// LogsRepositoryInterface defines the interface for logs repository operations.
type LogsRepositoryInterface interface {
	Create(ctx context.Context, entry *LogEntryDocument) error
	CreateMany(ctx context.Context, entries []*LogEntryDocument) error
	Query(ctx context.Context, opts LogQueryOptions) ([]*LogEntryDocument, error)
	Count(ctx context.Context, opts LogQueryOptions) (int64, error)
}
