package user

type (
	CreateRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Name     string `json:"name" validate:"required,alpha"`
		Password string `json:"password" validate:"required,min=6"`
	}
	// UpdateRequest fields are optional, a nil pointer means the field was not sent.
	UpdateRequest struct {
		Email    *string `json:"email" validate:"omitempty,email"`
		Name     *string `json:"name" validate:"omitempty,alpha"`
		Password *string `json:"password" validate:"omitempty,min=6"`
	}
)
