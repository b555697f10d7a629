package dto

import "time"

type CreatePaymentRequest struct {
	MembershipID  string `json:"membership_id" validate:"required,uuid"`
	Amount        string `json:"amount" validate:"required"`
	PaymentMethod string `json:"payment_method" validate:"required"`
}

type ClearBalanceRequest struct {
	PaymentMethod string `json:"payment_method" validate:"required,payment-method"`
}

type RevenueQuery struct {
	From string `form:"from" validate:"required,iso-date"`
	To   string `form:"to" validate:"required,iso-date"`
}

type PaymentResponse struct {
	ID            string     `json:"id"`
	MembershipID  string     `json:"membership_id"`
	Amount        string     `json:"amount"`
	PaymentMethod string     `json:"payment_method"`
	Status        string     `json:"status"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type RevenueSummaryResponse struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Total string `json:"total"`
}
