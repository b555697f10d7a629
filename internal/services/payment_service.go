package services

import (
	"context"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/billing"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/observability"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error)
	ClearBalance(ctx context.Context, db *gorm.DB, gymID, membershipID string, req *dto.ClearBalanceRequest) (*dto.PaymentResponse, error)
	GetTotalPaidForMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (decimal.Decimal, error)

	GetPayment(ctx context.Context, db *gorm.DB, gymID, paymentID string) (*dto.PaymentResponse, error)
	ListPaymentsByGym(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.PaymentResponse, error)
	ListPaymentsByMember(ctx context.Context, db *gorm.DB, gymID, memberID string) ([]*dto.PaymentResponse, error)
	ListPaymentsByPlan(ctx context.Context, db *gorm.DB, gymID, planID string) ([]*dto.PaymentResponse, error)
	ListPaymentsByMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) ([]*dto.PaymentResponse, error)
	GetRevenueSummary(ctx context.Context, db *gorm.DB, gymID string, query *dto.RevenueQuery) (*dto.RevenueSummaryResponse, error)
}

type paymentService struct {
	gymRepo        repositories.GymRepository
	memberRepo     repositories.MemberRepository
	planRepo       repositories.PlanRepository
	membershipRepo repositories.MembershipRepository
	paymentRepo    repositories.PaymentRepository
	policy         lifecycle.Policy
	clock          clockwork.Clock
}

func NewPaymentService(
	gymRepo repositories.GymRepository,
	memberRepo repositories.MemberRepository,
	planRepo repositories.PlanRepository,
	membershipRepo repositories.MembershipRepository,
	paymentRepo repositories.PaymentRepository,
	policy lifecycle.Policy,
	clock clockwork.Clock,
) PaymentService {
	return &paymentService{
		gymRepo:        gymRepo,
		memberRepo:     memberRepo,
		planRepo:       planRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
		policy:         policy,
		clock:          clock,
	}
}

func (s *paymentService) CreatePayment(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreatePaymentRequest) (*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, req.MembershipID); err != nil {
		return nil, err
	}
	amount, err := billing.ParseAmount(req.Amount)
	if err != nil {
		return nil, handleAmountError(err)
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return s.appendPayment(ctx, db, gymID, req.MembershipID, method, &amount)
}

// ClearBalance records a single payment for whatever is still owed.
func (s *paymentService) ClearBalance(ctx context.Context, db *gorm.DB, gymID, membershipID string, req *dto.ClearBalanceRequest) (*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	return s.appendPayment(ctx, db, gymID, membershipID, method, nil)
}

// appendPayment inserts a PAID row against an active membership. The paid
// total is read under the membership row lock in the same transaction as the
// insert. A nil amount pays the full outstanding balance.
func (s *paymentService) appendPayment(ctx context.Context, db *gorm.DB, gymID, membershipID string, method models.PaymentMethod, amount *decimal.Decimal) (*dto.PaymentResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := requireActiveGym(tx, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	m, err := s.membershipRepo.FindMembershipForUpdate(tx, gymID, membershipID)
	if err != nil {
		return nil, handlePaymentError(err)
	}

	now := s.clock.Now().UTC()
	transitions := s.policy.Sync(m, now)
	if len(transitions) > 0 {
		if err := s.membershipRepo.SaveStatus(tx, m); err != nil {
			return nil, apperrors.InternalError(err)
		}
		if !m.IsActive {
			// Keep the lapse even though the payment is refused.
			if err := tx.Commit().Error; err != nil {
				return nil, apperrors.InternalError(err)
			}
			recordTransitions(transitions, "lazy")
			return nil, apperrors.ErrActiveMembershipNotFound
		}
	}
	if !m.IsActive {
		return nil, apperrors.ErrActiveMembershipNotFound
	}

	plan, err := s.planRepo.FindPlanByID(tx, gymID, m.PlanID)
	if err != nil {
		return nil, handlePlanError(err)
	}
	paid, err := s.paymentRepo.SumForMembership(tx, gymID, m.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var value decimal.Decimal
	if amount == nil {
		value = billing.Balance(plan.Price, paid)
		if value.IsZero() {
			return nil, apperrors.ErrNoOutstandingBalance
		}
	} else {
		value = *amount
		if err := billing.CheckAgainstBalance(value, plan.Price, paid); err != nil {
			return nil, handleAmountError(err)
		}
	}

	payment := newPayment(gymID, m.ID, value, method, now)
	if err := s.paymentRepo.CreatePayment(tx, payment); err != nil {
		logger.CtxWithError(ctx, "failed to record payment", err, "membership_id", m.ID)
		return nil, handlePaymentError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.ErrPaymentFailed.WithError(err)
	}

	recordTransitions(transitions, "lazy")
	observability.RecordPayment(string(method), value.InexactFloat64())
	logger.CtxInfo(ctx, "payment recorded",
		"payment_id", payment.ID,
		"membership_id", m.ID,
		"amount", billing.Format(value),
		"method", method,
	)
	return toPaymentResponse(payment), nil
}

func (s *paymentService) GetTotalPaidForMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (decimal.Decimal, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return decimal.Zero, err
	}
	if _, err := s.membershipRepo.FindMembershipByID(db, gymID, membershipID); err != nil {
		return decimal.Zero, handleMembershipError(err)
	}
	total, err := s.paymentRepo.SumForMembership(db, gymID, membershipID)
	if err != nil {
		return decimal.Zero, apperrors.InternalError(err)
	}
	return total, nil
}

func (s *paymentService) GetPayment(ctx context.Context, db *gorm.DB, gymID, paymentID string) (*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, paymentID); err != nil {
		return nil, err
	}
	payment, err := s.paymentRepo.FindPaymentByID(db, gymID, paymentID)
	if err != nil {
		return nil, handlePaymentError(err)
	}
	return toPaymentResponse(payment), nil
}

func (s *paymentService) ListPaymentsByGym(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	if err := requireActiveGym(db, s.gymRepo, gymID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListByGym(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPaymentResponses(payments), nil
}

func (s *paymentService) ListPaymentsByMember(ctx context.Context, db *gorm.DB, gymID, memberID string) ([]*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, memberID); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.FindMemberByID(db, gymID, memberID); err != nil {
		return nil, handleMemberError(err)
	}
	payments, err := s.paymentRepo.ListByMember(db, gymID, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPaymentResponses(payments), nil
}

func (s *paymentService) ListPaymentsByPlan(ctx context.Context, db *gorm.DB, gymID, planID string) ([]*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, planID); err != nil {
		return nil, err
	}
	if _, err := s.planRepo.FindPlanByID(db, gymID, planID); err != nil {
		return nil, handlePlanError(err)
	}
	payments, err := s.paymentRepo.ListByPlan(db, gymID, planID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPaymentResponses(payments), nil
}

func (s *paymentService) ListPaymentsByMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) ([]*dto.PaymentResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}
	if _, err := s.membershipRepo.FindMembershipByID(db, gymID, membershipID); err != nil {
		return nil, handleMembershipError(err)
	}
	payments, err := s.paymentRepo.ListByMembership(db, gymID, membershipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toPaymentResponses(payments), nil
}

// GetRevenueSummary totals PAID payments created between the two calendar
// dates, both inclusive.
func (s *paymentService) GetRevenueSummary(ctx context.Context, db *gorm.DB, gymID string, query *dto.RevenueQuery) (*dto.RevenueSummaryResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	from, err := validator.ParseDate(query.From)
	if err != nil {
		return nil, err
	}
	to, err := validator.ParseDate(query.To)
	if err != nil {
		return nil, err
	}
	if to.Before(from) {
		return nil, apperrors.NewBadRequestError("'from' must not be after 'to'")
	}
	if err := requireActiveGym(db, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	total, err := s.paymentRepo.SumPaidBetween(db, gymID, from, to.AddDate(0, 0, 1))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.RevenueSummaryResponse{
		From:  from.Format(validator.DateLayout),
		To:    to.Format(validator.DateLayout),
		Total: billing.Format(total),
	}, nil
}
