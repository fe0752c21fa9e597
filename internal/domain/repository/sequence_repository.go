package repository

import "context"

// SequenceRepository hands out monotonically increasing numbers per scope.
// Next must be safe under concurrent callers on the same scope.
type SequenceRepository interface {
	Next(ctx context.Context, scope string) (int64, error)
}
