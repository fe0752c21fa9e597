package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/restrobill/restrobill-api/internal/domain/entity"
)

// UserRepository defines data access for users
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByMobile(ctx context.Context, mobileNo string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	CountByFranchise(ctx context.Context, franchiseID uuid.UUID) (int64, error)
}
