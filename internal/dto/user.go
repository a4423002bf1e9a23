package dto

import (
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=255" example:"cashier@coop.example.org"`
	FullName string `json:"full_name" validate:"required,max=255" example:"Ben Cruz"`
	Role     string `json:"role" validate:"required,oneof=admin manager loan_officer cashier it_admin credit_investigator" example:"cashier"`
	Password string `json:"password" validate:"required,min=8" example:"password123"`
}

type User struct {
	ID        int       `json:"id" example:"2"`
	Email     string    `json:"email" example:"cashier@coop.example.org"`
	FullName  string    `json:"full_name" example:"Ben Cruz"`
	Role      string    `json:"role" example:"cashier"`
	IsActive  bool      `json:"is_active" example:"true"`
	CreatedAt time.Time `json:"created_at"`
}

func NewUser(u domain.StaffUser) User {
	return User{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

type UserResponse struct {
	Success bool `json:"success" example:"true"`
	User    User `json:"user"`
}

type UsersResponse struct {
	Success bool   `json:"success" example:"true"`
	Users   []User `json:"users"`
}

func NewUsers(users []domain.StaffUser) UsersResponse {
	out := make([]User, 0, len(users))
	for _, u := range users {
		out = append(out, NewUser(u))
	}
	return UsersResponse{Success: true, Users: out}
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"User deactivated"`
}
