package repository

import (
	"context"

	"github.com/lucka79/objednavkyApl-sub002/internal/domain/entity"
)

// UserRepository account persistence for auth.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
