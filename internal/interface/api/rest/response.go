package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"users-api/internal/domain/user"
	"users-api/internal/interface/api/rest/validator"
)

const (
	msgUserCreated  = "User created successfully"
	msgUsersGetted  = "Users getted successfully"
	msgUserGetted   = "User getted successfully"
	msgUserUpdated  = "User updated successfully"
	msgUserDeleted  = "User deleted successfully"
	msgInvalidBody  = "invalid request body"
	errorStatusCode = http.StatusBadRequest
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int      `json:"statusCode"`
	Error      string   `json:"error"`
	Message    []string `json:"message"`
}

func abortWithMessages(c *gin.Context, msgs []string) {
	c.AbortWithStatusJSON(errorStatusCode, ErrorResponse{
		StatusCode: errorStatusCode,
		Error:      http.StatusText(errorStatusCode),
		Message:    msgs,
	})
}

// errorMessages turns a validation or persistence failure into client messages.
// Unknown causes are replaced by fallback so driver details do not leak.
func errorMessages(err error, fallback string) (msgs []string, known bool) {
	if m := validator.Messages(err); m != nil {
		return m, true
	}

	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return []string{user.ErrUserNotFound.Error()}, true
	case errors.Is(err, user.ErrEmailAlreadyExists):
		return []string{user.ErrEmailAlreadyExists.Error()}, true
	default:
		return []string{fallback}, false
	}
}
