package dto

import "time"

type CreateMemberRequest struct {
	Name        string  `json:"name" validate:"required,person-name,max=120"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
}

type UpdateMemberRequest struct {
	Name        *string `json:"name" validate:"omitempty,person-name,max=120"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,phone"`
}

type MemberResponse struct {
	ID          string    `json:"id"`
	GymID       string    `json:"gym_id"`
	Name        string    `json:"name"`
	PhoneNumber *string   `json:"phone_number,omitempty"`
	JoinDate    time.Time `json:"join_date"`
	IsActive    bool      `json:"is_active"`
}

type MemberResult struct {
	Outcome UpsertOutcome   `json:"outcome"`
	Member  *MemberResponse `json:"member"`
}
