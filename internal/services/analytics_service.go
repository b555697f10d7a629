package services

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/billing"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type AnalyticsService interface {
	GetMembershipStats(ctx context.Context, db *gorm.DB, gymID string) (*dto.MembershipStatsResponse, error)
}

type analyticsService struct {
	gymRepo        repositories.GymRepository
	memberRepo     repositories.MemberRepository
	membershipRepo repositories.MembershipRepository
	paymentRepo    repositories.PaymentRepository
}

func NewAnalyticsService(
	gymRepo repositories.GymRepository,
	memberRepo repositories.MemberRepository,
	membershipRepo repositories.MembershipRepository,
	paymentRepo repositories.PaymentRepository,
) AnalyticsService {
	return &analyticsService{
		gymRepo:        gymRepo,
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
	}
}

// GetMembershipStats reads stored state as is; it does not apply pending
// status transitions.
func (s *analyticsService) GetMembershipStats(ctx context.Context, db *gorm.DB, gymID string) (*dto.MembershipStatsResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	if err := requireActiveGym(db, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	totalMembers, err := s.memberRepo.CountMembers(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	activeMemberships, err := s.membershipRepo.CountActive(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	revenue, err := s.paymentRepo.SumPaid(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	pending, err := s.pendingAmount(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	statuses, err := s.membershipRepo.StatusDistribution(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	statusDist := make(map[string]int64, len(statuses))
	for status, count := range statuses {
		statusDist[string(status)] = count
	}

	durations, err := s.membershipRepo.DurationDistribution(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	byPlan, err := s.paymentRepo.RevenueByPlan(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	planItems := make([]dto.PlanRevenueItem, 0, len(byPlan))
	for _, pr := range byPlan {
		planItems = append(planItems, dto.PlanRevenueItem{
			PlanID:   pr.PlanID,
			PlanName: pr.Name,
			Revenue:  billing.Format(pr.Total),
		})
	}

	return &dto.MembershipStatsResponse{
		TotalMembers:         totalMembers,
		ActiveMemberships:    activeMemberships,
		TotalRevenue:         billing.Format(revenue),
		PendingAmount:        billing.Format(pending),
		StatusDistribution:   statusDist,
		RevenueByPlan:        planItems,
		DurationDistribution: durations,
	}, nil
}

// pendingAmount is the sum of outstanding balances over active memberships.
func (s *analyticsService) pendingAmount(db *gorm.DB, gymID string) (decimal.Decimal, error) {
	memberships, err := s.membershipRepo.ListActiveWithPlans(db, gymID)
	if err != nil {
		return decimal.Zero, err
	}
	balances := make([]decimal.Decimal, 0, len(memberships))
	for _, m := range memberships {
		if m.Plan == nil {
			continue
		}
		paid, err := s.paymentRepo.SumForMembership(db, gymID, m.ID)
		if err != nil {
			return decimal.Zero, err
		}
		balances = append(balances, billing.Balance(m.Plan.Price, paid))
	}
	return billing.Sum(balances...), nil
}
