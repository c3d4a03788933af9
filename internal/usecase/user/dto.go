package user

import (
	domainUser "github.com/hgarciaospina/backend-cafe-management-system/internal/domain/user"
)

type SignUpRequest struct {
	Name          string `json:"name" validate:"required,notblank,max=255"`
	ContactNumber string `json:"contactNumber" validate:"required,notblank,phone"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required,notblank,maxbytes=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UpdateStatusRequest struct {
	ID     uint   `json:"id" validate:"required"`
	Status string `json:"status" validate:"required,oneof=true false TRUE FALSE True False"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,notblank,maxbytes=72"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" form:"email" validate:"required,email"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type UserResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Status        string `json:"status"`
}

func ToUserResponse(u *domainUser.User) UserResponse {
	status := "false"
	if u.IsActive() {
		status = "true"
	}
	return UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		ContactNumber: u.ContactNumber,
		Status:        status,
	}
}
