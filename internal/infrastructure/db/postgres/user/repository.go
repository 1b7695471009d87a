package user

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"users-api/internal/domain/user"
	"users-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) user.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	rows, err := r.db.Query(ctx, SelectUsers)
	if err != nil {
		return nil, user.NewPersistenceError("fetch users", err)
	}
	defer rows.Close()

	us := make(Users, 0)
	for rows.Next() {
		u := new(User)
		if err = scanUser(rows, u); err != nil {
			return nil, user.NewPersistenceError("fetch users", err)
		}

		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, user.NewPersistenceError("fetch users", err)
	}

	return fromDBModels(us), nil
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	u := new(User)
	if err := scanUser(r.db.QueryRow(ctx, SelectUserByID, id), u); err != nil {
		return nil, user.NewPersistenceError("fetch user", mapError(err))
	}

	return fromDBModel(u), nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(
		ctx,
		InsertUser,
		uuid.New(), req.Email, req.Name, req.Password,
	), u)
	if err != nil {
		return nil, user.NewPersistenceError("create user", mapError(err))
	}

	return fromDBModel(u), nil
}

func (r *Repository) UpdateUser(ctx context.Context, id user.UUID, patch user.Patch) (*user.User, error) {
	u := new(User)

	err := scanUser(r.db.QueryRow(
		ctx,
		UpdateUserByID,
		patch.Email, patch.Name, patch.Password, id,
	), u)
	if err != nil {
		return nil, user.NewPersistenceError("update user", mapError(err))
	}

	return fromDBModel(u), nil
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) error {
	tag, err := r.db.Exec(ctx, DeleteUserByID, id)
	if err != nil {
		return user.NewPersistenceError("delete user", err)
	}
	if tag.RowsAffected() == 0 {
		return user.NewPersistenceError("delete user", user.ErrUserNotFound)
	}

	return nil
}

func scanUser(row pgx.Row, u *User) error {
	return row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Password,

		&u.CreatedAt,
		&u.UpdatedAt,
	)
}

func mapError(err error) error {
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return user.ErrUserNotFound
	case postgres.IsPgUniqueViolation(err):
		return user.ErrEmailAlreadyExists
	default:
		return err
	}
}
