package dto

import "time"

// LoginRequest carries memberNumber for members and email for staff.
type LoginRequest struct {
	MemberNumber string `json:"memberNumber" example:"M-0001"`
	Email        string `json:"email" example:"admin@coop.example.org"`
	Password     string `json:"password" validate:"required" example:"password123"`
}

type Profile struct {
	ID           int       `json:"id" example:"1"`
	Kind         string    `json:"kind" example:"member"`
	MemberNumber string    `json:"member_number,omitempty" example:"M-0001"`
	Email        *string   `json:"email,omitempty" example:"maria@example.org"`
	FullName     string    `json:"full_name" example:"Maria Santos"`
	Role         string    `json:"role,omitempty" example:"admin"`
	CreatedAt    time.Time `json:"created_at"`
}

type LoginResponse struct {
	Success bool    `json:"success" example:"true"`
	Token   string  `json:"token"`
	User    Profile `json:"user"`
}

type ProfileResponse struct {
	Success bool    `json:"success" example:"true"`
	User    Profile `json:"user"`
}
