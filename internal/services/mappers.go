package services

import (
	"github.com/shopspring/decimal"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/billing"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

func toGymResponse(g *models.Gym) *dto.GymResponse {
	return &dto.GymResponse{
		ID:        g.ID,
		Name:      g.Name,
		Phone:     g.Phone,
		Email:     g.Email,
		IsActive:  g.IsActive,
		CreatedAt: g.CreatedAt,
	}
}

func toMemberResponse(m *models.Member) *dto.MemberResponse {
	return &dto.MemberResponse{
		ID:          m.ID,
		GymID:       m.GymID,
		Name:        m.Name,
		PhoneNumber: m.PhoneNumber,
		JoinDate:    m.JoinDate,
		IsActive:    m.IsActive,
	}
}

func toPlanResponse(p *models.Plan) *dto.PlanResponse {
	return &dto.PlanResponse{
		ID:             p.ID,
		GymID:          p.GymID,
		Name:           p.Name,
		DurationMonths: p.DurationMonths,
		Price:          billing.Format(p.Price),
		Description:    p.Description,
		Features:       p.FeatureList(),
		IsActive:       p.IsActive,
	}
}

func toMembershipResponse(m *models.Membership) *dto.MembershipResponse {
	resp := &dto.MembershipResponse{
		ID:        m.ID,
		GymID:     m.GymID,
		MemberID:  m.MemberID,
		PlanID:    m.PlanID,
		StartDate: m.StartDate,
		EndDate:   m.EndDate,
		Status:    string(m.Status),
		IsActive:  m.IsActive,
		CreatedAt: m.CreatedAt,
	}
	if m.Member != nil {
		resp.MemberName = m.Member.Name
	}
	if m.Plan != nil {
		resp.PlanName = m.Plan.Name
	}
	return resp
}

func toMembershipResponses(ms []models.Membership) []*dto.MembershipResponse {
	out := make([]*dto.MembershipResponse, 0, len(ms))
	for i := range ms {
		out = append(out, toMembershipResponse(&ms[i]))
	}
	return out
}

func toPaymentResponse(p *models.Payment) *dto.PaymentResponse {
	return &dto.PaymentResponse{
		ID:            p.ID,
		MembershipID:  p.MembershipID,
		Amount:        billing.Format(p.Amount),
		PaymentMethod: string(p.PaymentMethod),
		Status:        string(p.Status),
		PaidAt:        p.PaidAt,
		CreatedAt:     p.CreatedAt,
	}
}

func toPaymentResponses(ps []models.Payment) []*dto.PaymentResponse {
	out := make([]*dto.PaymentResponse, 0, len(ps))
	for i := range ps {
		out = append(out, toPaymentResponse(&ps[i]))
	}
	return out
}

func toBalanceResponse(membershipID string, price, paid decimal.Decimal) *dto.BalanceResponse {
	return &dto.BalanceResponse{
		MembershipID: membershipID,
		Price:        billing.Format(price),
		TotalPaid:    billing.Format(paid),
		Balance:      billing.Format(billing.Balance(price, paid)),
	}
}
