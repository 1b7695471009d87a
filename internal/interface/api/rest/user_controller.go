package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"users-api/internal/application/ports"
	"users-api/internal/interface/api/rest/dto/user"
	"users-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r gin.IRouter,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.POST(RouteUsers, uc.CreateUserHandler)
	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.PUT(RouteUser, uc.UpdateUserHandler)
	r.DELETE(RouteUser, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithMessages(c, []string{msgInvalidBody})
		return
	}
	if err := validator.ValidateCreate(req); err != nil {
		abortWithMessages(c, validator.Messages(err))
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToDomainUser(req))
	if err != nil {
		uc.fail(c, "CreateUser()", err, "failed to create a user")
		return
	}

	c.JSON(http.StatusCreated, user.ResponseData{
		Message: msgUserCreated,
		Data:    user.ToResponseUser(*u),
	})
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		uc.fail(c, "FindUsers()", err, "failed to get users")
		return
	}

	c.JSON(http.StatusOK, user.ResponseList{
		Message: msgUsersGetted,
		Data:    user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		abortWithMessages(c, validator.Messages(err))
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		uc.fail(c, "FindUserByID()", err, "failed to get a user")
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Message: msgUserGetted,
		Data:    user.ToResponseUser(*u),
	})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, idErr := validator.ValidateID(c.Param("id"))

	var req user.UpdateRequest
	// an empty body is an empty patch
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		abortWithMessages(c, append(validator.Messages(idErr), msgInvalidBody))
		return
	}
	if err := validator.Join(idErr, validator.ValidateUpdate(req)); err != nil {
		abortWithMessages(c, validator.Messages(err))
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, user.ToDomainPatch(req))
	if err != nil {
		uc.fail(c, "UpdateUser()", err, "failed to update a user")
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Message: msgUserUpdated,
		Data:    user.ToResponseUser(*u),
	})
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, err := validator.ValidateID(c.Param("id"))
	if err != nil {
		abortWithMessages(c, validator.Messages(err))
		return
	}

	if err = uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		uc.fail(c, "DeleteUser()", err, "failed to delete user")
		return
	}

	c.JSON(http.StatusOK, user.ResponseMessage{Message: msgUserDeleted})
}

func (uc *UserController) fail(c *gin.Context, op string, err error, fallback string) {
	msgs, known := errorMessages(err, fallback)
	if !known {
		uc.logger.Error(op+" error", zap.Error(err))
	}
	abortWithMessages(c, msgs)
}
