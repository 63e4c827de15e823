package dto

import "github.com/josiaholayin-ops/ShareMoment-backend/internal/model"

// UserResponse is the public view of a user; the password hash never
// leaves the model layer.
type UserResponse struct {
	ID          uint64 `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	Role        string `json:"role"`
}

func ToUserResponse(user *model.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
	}
}
