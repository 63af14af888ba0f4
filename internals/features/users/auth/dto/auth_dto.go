package dto

import (
	"github.com/google/uuid"

	"vtop_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName string  `json:"user_name" validate:"required,min=3,max=50"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=8"`
	Role     string  `json:"role" validate:"required,oneof=student faculty parent admin"`
	RegNo    *string `json:"reg_no,omitempty" validate:"omitempty,max=20"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	UserName string    `json:"user_name"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	RegNo    *string   `json:"reg_no,omitempty"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		ID:       u.ID,
		UserName: u.UserName,
		Email:    u.Email,
		Role:     u.Role,
		RegNo:    u.RegNo,
	}
}
