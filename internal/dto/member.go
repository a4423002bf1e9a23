package dto

import (
	"time"

	"github.com/GlebRadaev/coopportal/internal/domain"
)

type CreateMemberRequest struct {
	MemberNumber string  `json:"member_number" validate:"required,max=32" example:"M-0004"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email,max=255" example:"ana@example.org"`
	FullName     string  `json:"full_name" validate:"required,max=255" example:"Ana Lim"`
	Password     string  `json:"password" validate:"required,min=8" example:"password123"`
}

type Member struct {
	ID           int       `json:"id" example:"4"`
	MemberNumber string    `json:"member_number" example:"M-0004"`
	Email        *string   `json:"email" example:"ana@example.org"`
	FullName     string    `json:"full_name" example:"Ana Lim"`
	IsActive     bool      `json:"is_active" example:"true"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewMember(m domain.Member) Member {
	return Member{
		ID:           m.ID,
		MemberNumber: m.MemberNumber,
		Email:        m.Email,
		FullName:     m.FullName,
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt,
	}
}

type MemberResponse struct {
	Success bool   `json:"success" example:"true"`
	Member  Member `json:"member"`
}

type MembersPageResponse struct {
	Success    bool     `json:"success" example:"true"`
	Members    []Member `json:"members"`
	Page       int      `json:"page" example:"1"`
	Limit      int      `json:"limit" example:"20"`
	Total      int      `json:"total" example:"41"`
	TotalPages int      `json:"total_pages" example:"3"`
}

func NewMembersPage(members []domain.Member, page, limit, total, totalPages int) MembersPageResponse {
	out := make([]Member, 0, len(members))
	for _, m := range members {
		out = append(out, NewMember(m))
	}
	return MembersPageResponse{Success: true, Members: out, Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
