package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		Name      string    `json:"name"`
		Password  string    `json:"password"`
		CreatedAt time.Time `json:"createdAt"`
		UpdatedAt time.Time `json:"updatedAt"`
	}
	Users []User

	ResponseData struct {
		Message string `json:"message"`
		Data    User   `json:"data"`
	}
	ResponseList struct {
		Message string `json:"message"`
		Data    Users  `json:"data"`
	}
	ResponseMessage struct {
		Message string `json:"message"`
	}
)
