package dto

import "github.com/SscSPs/currency_converter/internal/core/domain"

type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:    user.UserID,
		Email: user.Email,
		Name:  user.Name,
	}
}
