package usecase

import "time"

const (
	// DefaultPageSize bounds list reads when callers pass no limit.
	DefaultPageSize = 20

	// MaxPageSize caps a single list read.
	MaxPageSize = 100

	// ReplayPageSize is the batch size used when replaying a full
	// transaction log during reconciliation.
	ReplayPageSize = 1000

	// IdempotencyKeyTTL is how long idempotency keys are cached.
	IdempotencyKeyTTL = 24 * time.Hour
)

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
