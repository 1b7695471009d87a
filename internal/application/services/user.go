package services

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"users-api/internal/application/ports"
	domain "users-api/internal/domain/user"
)

// UserService forwards validated input to the repository and returns its
// results and errors unchanged.
type UserService struct {
	userRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository: userRepository,
		mCounter:       mCounter,
	}
}

func (us *UserService) FindUserByID(ctx context.Context, uuid domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, uuid)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	users, err := us.userRepository.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	return users, nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User) (*domain.User, error) {
	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) UpdateUser(ctx context.Context, uuid domain.UUID, patch domain.Patch) (*domain.User, error) {
	uRet, err := us.userRepository.UpdateUser(ctx, uuid, patch)
	if err != nil {
		return nil, err
	}

	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) DeleteUser(ctx context.Context, uuid domain.UUID) error {
	if err := us.userRepository.DeleteUser(ctx, uuid); err != nil {
		return err
	}

	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}
