package contract

import (
	"context"

	"bookstore-be/internal/entity"
	"bookstore-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

type ProfileRepository interface {
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
	// UpdateOldCart mirrors the serialized session cart onto the profile so it
	// can be restored on the user's next login.
	UpdateOldCart(ctx context.Context, userId uuid.UUID, snapshot string) error
}
