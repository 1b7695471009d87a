package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID UUID
		// Password is kept in plaintext; hashing is not part of this service.
		Email    string
		Name     string
		Password string

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User

	// Patch carries a partial update, nil fields are left untouched.
	Patch struct {
		Email    *string
		Name     *string
		Password *string
	}
)
