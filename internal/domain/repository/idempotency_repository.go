package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
)

// IdempotencyRepository persists idempotency keys for mutating endpoints
type IdempotencyRepository interface {
	Create(ctx context.Context, key *entity.IdempotencyKey) error
	GetByKey(ctx context.Context, key string, userID uuid.UUID) (*entity.IdempotencyKey, error)
	Update(ctx context.Context, key *entity.IdempotencyKey) error
	DeleteExpired(ctx context.Context) error
}
