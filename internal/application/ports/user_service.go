package ports

import (
	"context"

	"users-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	CreateUser(ctx context.Context, u user.User) (*user.User, error)
	UpdateUser(ctx context.Context, uuid user.UUID, patch user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
}
