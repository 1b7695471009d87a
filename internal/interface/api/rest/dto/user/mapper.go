package user

import (
	"users-api/internal/domain/user"
)

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.UUID,
		Email:     uDomain.Email,
		Name:      uDomain.Name,
		Password:  uDomain.Password,
		CreatedAt: uDomain.CreatedAt,
		UpdatedAt: uDomain.UpdatedAt,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(uRequest CreateRequest) user.User {
	return user.User{
		Email:    uRequest.Email,
		Name:     uRequest.Name,
		Password: uRequest.Password,
	}
}

func ToDomainPatch(uRequest UpdateRequest) user.Patch {
	return user.Patch{
		Email:    uRequest.Email,
		Name:     uRequest.Name,
		Password: uRequest.Password,
	}
}
