package dto

import "time"

type CreateMembershipRequest struct {
	MemberID  string `json:"member_id" validate:"required,uuid"`
	PlanID    string `json:"plan_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"omitempty,iso-date"`
}

// EnrollRequest creates a membership and records the first payment.
// A blank AmountPaid means the full plan price.
type EnrollRequest struct {
	MemberID      string `json:"member_id" validate:"required,uuid"`
	PlanID        string `json:"plan_id" validate:"required,uuid"`
	StartDate     string `json:"start_date" validate:"omitempty,iso-date"`
	AmountPaid    string `json:"amount_paid" validate:"omitempty,money"`
	PaymentMethod string `json:"payment_method" validate:"required,payment-method"`
}

type RenewMembershipRequest struct {
	Amount        string `json:"amount" validate:"omitempty,money"`
	PaymentMethod string `json:"payment_method" validate:"required,payment-method"`
}

type MembershipResponse struct {
	ID         string    `json:"id"`
	GymID      string    `json:"gym_id"`
	MemberID   string    `json:"member_id"`
	MemberName string    `json:"member_name,omitempty"`
	PlanID     string    `json:"plan_id"`
	PlanName   string    `json:"plan_name,omitempty"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	Status     string    `json:"status"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

type BalanceResponse struct {
	MembershipID string `json:"membership_id"`
	Price        string `json:"price"`
	TotalPaid    string `json:"total_paid"`
	Balance      string `json:"balance"`
}

type EnrollmentResponse struct {
	Membership *MembershipResponse `json:"membership"`
	Payment    *PaymentResponse    `json:"payment"`
	Balance    *BalanceResponse    `json:"balance"`
}

type RenewalResponse struct {
	Previous *MembershipResponse `json:"previous"`
	Current  *MembershipResponse `json:"current"`
	Payment  *PaymentResponse    `json:"payment"`
}
