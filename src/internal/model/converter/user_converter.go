package converter

import (
	"rental-service/src/internal/entity"
	"rental-service/src/internal/model"
)

func UserToResponse(user *entity.User) *model.UserResponse {
	return &model.UserResponse{
		ID:           user.UserID,
		Name:         user.FullName,
		Email:        user.Email,
		MobileNumber: user.MobileNumber,
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}
