package usecase

import (
	"context"
	"fmt"

	"rental-service/src/internal/entity"
	"rental-service/src/internal/model"
	"rental-service/src/internal/model/converter"
	"rental-service/src/internal/repository"
	httpError "rental-service/src/pkg/http-error"
	"rental-service/src/pkg/log"
	"rental-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type UserReader interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository UserReader
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository UserReader,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
	}
}

func (c *UserUseCase) GetUser(ctx context.Context, request *model.GetUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "GetUser", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(ctx, request.ID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", err.Error(), "GetUser", request.ID)
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

var _ UserReader = (*repository.UserRepository)(nil)
