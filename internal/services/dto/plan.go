package dto

type CreatePlanRequest struct {
	Name           string   `json:"name" validate:"required,min=1,max=120"`
	DurationMonths int      `json:"duration_months" validate:"required,min=1,max=12"`
	Price          string   `json:"price" validate:"required,money"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	Features       []string `json:"features" validate:"omitempty,max=50,dive,min=1,max=100"`
}

type UpdatePlanRequest struct {
	Name           *string  `json:"name" validate:"omitempty,min=1,max=120"`
	DurationMonths *int     `json:"duration_months" validate:"omitempty,min=1,max=12"`
	Price          *string  `json:"price" validate:"omitempty,money"`
	Description    *string  `json:"description" validate:"omitempty,max=2000"`
	Features       []string `json:"features" validate:"omitempty,max=50,dive,min=1,max=100"`
}

type PlanResponse struct {
	ID             string   `json:"id"`
	GymID          string   `json:"gym_id"`
	Name           string   `json:"name"`
	DurationMonths int      `json:"duration_months"`
	Price          string   `json:"price"`
	Description    *string  `json:"description,omitempty"`
	Features       []string `json:"features"`
	IsActive       bool     `json:"is_active"`
}

type PlanResult struct {
	Outcome UpsertOutcome `json:"outcome"`
	Plan    *PlanResponse `json:"plan"`
}
