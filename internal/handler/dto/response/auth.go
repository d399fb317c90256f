package response

import (
	"github.com/google/uuid"

	"resort-booking/internal/usecase/queries"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"isActive"`
}

type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	User        *UserResponse `json:"user"`
}

func FromUserView(view *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:       view.ID,
		Email:    view.Email,
		Name:     view.Name,
		Role:     view.Role,
		IsActive: view.IsActive,
	}
}
