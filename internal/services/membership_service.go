package services

import (
	"context"
	"errors"
	"strings"
	"time"

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

type MembershipService interface {
	CreateMembership(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreateMembershipRequest) (*dto.MembershipResponse, error)
	EnrollMember(ctx context.Context, db *gorm.DB, gymID string, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error)
	RenewMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string, req *dto.RenewMembershipRequest) (*dto.RenewalResponse, error)
	DeactivateMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.MembershipResponse, error)

	// SyncMembershipStatus applies due transitions to m in memory and reports
	// whether anything changed. It does not persist.
	SyncMembershipStatus(m *models.Membership) bool
	ListActiveMemberships(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.MembershipResponse, error)
	ListMemberMemberships(ctx context.Context, db *gorm.DB, gymID, memberID string) ([]*dto.MembershipResponse, error)
	GetMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.MembershipResponse, error)
	GetBalance(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.BalanceResponse, error)

	SweepStatuses(ctx context.Context, db *gorm.DB, batchSize int) (*SweepReport, error)
}

// SweepReport summarizes one pass of SweepStatuses.
type SweepReport struct {
	Scanned int
	Updated int
	// EnteredGrace groups, per gym, memberships that expired during this
	// pass and can still be renewed.
	EnteredGrace map[string][]models.Membership
}

type membershipService struct {
	gymRepo        repositories.GymRepository
	memberRepo     repositories.MemberRepository
	planRepo       repositories.PlanRepository
	membershipRepo repositories.MembershipRepository
	paymentRepo    repositories.PaymentRepository
	policy         lifecycle.Policy
	clock          clockwork.Clock
}

func NewMembershipService(
	gymRepo repositories.GymRepository,
	memberRepo repositories.MemberRepository,
	planRepo repositories.PlanRepository,
	membershipRepo repositories.MembershipRepository,
	paymentRepo repositories.PaymentRepository,
	policy lifecycle.Policy,
	clock clockwork.Clock,
) MembershipService {
	return &membershipService{
		gymRepo:        gymRepo,
		memberRepo:     memberRepo,
		planRepo:       planRepo,
		membershipRepo: membershipRepo,
		paymentRepo:    paymentRepo,
		policy:         policy,
		clock:          clock,
	}
}

func (s *membershipService) now() time.Time {
	return s.clock.Now().UTC()
}

func (s *membershipService) CreateMembership(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreateMembershipRequest) (*dto.MembershipResponse, error) {
	if err := validator.ValidateID(gymID, req.MemberID, req.PlanID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	m, plan, err := s.createMembership(ctx, tx, gymID, req.MemberID, req.PlanID, req.StartDate)
	if err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, handleMembershipError(err)
	}

	observability.RecordMembershipCreated(string(m.Status))
	logger.CtxInfo(ctx, "membership created", "membership_id", m.ID, "member_id", m.MemberID, "status", m.Status)

	m.Plan = plan
	return toMembershipResponse(m), nil
}

// createMembership runs the checks and insert shared by CreateMembership and
// EnrollMember inside the caller's transaction.
func (s *membershipService) createMembership(ctx context.Context, tx *gorm.DB, gymID, memberID, planID, startRaw string) (*models.Membership, *models.Plan, error) {
	if err := requireActiveGym(tx, s.gymRepo, gymID); err != nil {
		return nil, nil, err
	}
	if _, err := s.memberRepo.FindActiveMember(tx, gymID, memberID); err != nil {
		return nil, nil, handleMembershipError(err)
	}
	plan, err := s.planRepo.FindActivePlan(tx, gymID, planID)
	if err != nil {
		return nil, nil, handleMembershipError(err)
	}

	now := s.now()

	existing, err := s.membershipRepo.FindActiveForMember(tx, gymID, memberID)
	switch {
	case err == nil:
		// A stale row past its grace period no longer counts as active.
		if transitions := s.policy.Sync(existing, now); len(transitions) > 0 {
			if err := s.membershipRepo.SaveStatus(tx, existing); err != nil {
				return nil, nil, handleMembershipError(err)
			}
			recordTransitions(transitions, "lazy")
		}
		if existing.IsActive {
			return nil, nil, apperrors.ErrMembershipAlreadyActive
		}
	case !errors.Is(err, repositories.ErrMembershipNotFound):
		return nil, nil, handleMembershipError(err)
	}

	start := now
	if strings.TrimSpace(startRaw) != "" {
		if start, err = validator.ParseDate(startRaw); err != nil {
			return nil, nil, err
		}
		if err := s.policy.ValidateStart(start, now); err != nil {
			return nil, nil, handleMembershipError(err)
		}
	}

	m := s.policy.New(gymID, memberID, plan, start, now)
	if err := s.membershipRepo.CreateMembership(tx, m); err != nil {
		return nil, nil, handleMembershipError(err)
	}
	return m, plan, nil
}

// EnrollMember creates a membership and its first payment atomically.
func (s *membershipService) EnrollMember(ctx context.Context, db *gorm.DB, gymID string, req *dto.EnrollRequest) (*dto.EnrollmentResponse, error) {
	if err := validator.ValidateID(gymID, req.MemberID, req.PlanID); err != nil {
		return nil, err
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.AmountPaid) != "" {
		if _, err := billing.ParseAmount(req.AmountPaid); err != nil {
			return nil, handleAmountError(err)
		}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	m, plan, err := s.createMembership(ctx, tx, gymID, req.MemberID, req.PlanID, req.StartDate)
	if err != nil {
		return nil, err
	}

	amount, err := billing.ParseOptionalAmount(req.AmountPaid, plan.Price)
	if err != nil {
		return nil, handleAmountError(err)
	}
	if err := billing.CheckAgainstPrice(amount, plan.Price); err != nil {
		return nil, handleAmountError(err)
	}

	payment := newPayment(gymID, m.ID, amount, method, s.now())
	if err := s.paymentRepo.CreatePayment(tx, payment); err != nil {
		logger.CtxWithError(ctx, "enrollment payment failed", err, "membership_id", m.ID)
		return nil, apperrors.ErrEnrollmentFailed.WithError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.ErrEnrollmentFailed.WithError(err)
	}

	observability.RecordMembershipCreated(string(m.Status))
	observability.RecordPayment(string(method), amount.InexactFloat64())
	logger.CtxInfo(ctx, "member enrolled", "membership_id", m.ID, "amount", billing.Format(amount))

	m.Plan = plan
	return &dto.EnrollmentResponse{
		Membership: toMembershipResponse(m),
		Payment:    toPaymentResponse(payment),
		Balance:    toBalanceResponse(m.ID, plan.Price, amount),
	}, nil
}

// RenewMembership replaces an expired membership that is still inside its
// grace period. The old row is cancelled, a new one starting now is created
// and the payment is booked against the old row.
func (s *membershipService) RenewMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string, req *dto.RenewMembershipRequest) (*dto.RenewalResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}
	method, err := parseMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Amount) != "" {
		if _, err := billing.ParseAmount(req.Amount); err != nil {
			return nil, handleAmountError(err)
		}
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := requireActiveGym(tx, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	old, err := s.membershipRepo.FindMembershipForUpdate(tx, gymID, membershipID)
	if err != nil {
		if errors.Is(err, repositories.ErrMembershipNotFound) {
			return nil, apperrors.ErrActiveMembershipNotFound.WithError(err)
		}
		return nil, handleMembershipError(err)
	}

	now := s.now()
	outcome, err := s.policy.EvaluateRenewal(old, now)
	if err != nil {
		observability.RecordRenewalRejected(renewalRejectReason(err))
		return nil, handleMembershipError(err)
	}

	if outcome == lifecycle.RenewalLapsed {
		from := old.Status
		lifecycle.Cancel(old)
		if err := s.membershipRepo.SaveStatus(tx, old); err != nil {
			return nil, apperrors.ErrRenewalFailed.WithError(err)
		}
		if err := tx.Commit().Error; err != nil {
			return nil, apperrors.ErrRenewalFailed.WithError(err)
		}
		observability.RecordTransition(string(from), string(old.Status), "renewal")
		observability.RecordRenewalRejected("lapsed")
		logger.CtxInfo(ctx, "renewal refused after grace period", "membership_id", old.ID)
		return nil, apperrors.ErrRenewalPeriodExpired
	}

	plan, err := s.planRepo.FindActivePlan(tx, gymID, old.PlanID)
	if err != nil {
		return nil, handlePlanError(err)
	}

	amount, err := billing.ParseOptionalAmount(req.Amount, plan.Price)
	if err != nil {
		return nil, handleAmountError(err)
	}
	if err := billing.CheckAgainstPrice(amount, plan.Price); err != nil {
		return nil, handleAmountError(err)
	}

	// Persist the pending active -> expired flip as part of this renewal.
	transitions := s.policy.Sync(old, now)
	from := old.Status
	lifecycle.Cancel(old)
	transitions = append(transitions, lifecycle.Transition{From: from, To: old.Status})

	// The old row must leave the active set before the successor enters it.
	if err := s.membershipRepo.SaveStatus(tx, old); err != nil {
		return nil, s.renewalFailed(ctx, old.ID, err)
	}

	next := s.policy.Successor(old, plan, now)
	if err := s.membershipRepo.CreateMembership(tx, next); err != nil {
		return nil, s.renewalFailed(ctx, old.ID, err)
	}

	payment := newPayment(gymID, old.ID, amount, method, now)
	if err := s.paymentRepo.CreatePayment(tx, payment); err != nil {
		return nil, s.renewalFailed(ctx, old.ID, err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, s.renewalFailed(ctx, old.ID, err)
	}

	recordTransitions(transitions, "renewal")
	observability.RecordRenewal()
	observability.RecordMembershipCreated(string(next.Status))
	observability.RecordPayment(string(method), amount.InexactFloat64())
	logger.CtxInfo(ctx, "membership renewed", "previous_id", old.ID, "membership_id", next.ID)

	old.Plan, next.Plan = plan, plan
	return &dto.RenewalResponse{
		Previous: toMembershipResponse(old),
		Current:  toMembershipResponse(next),
		Payment:  toPaymentResponse(payment),
	}, nil
}

func (s *membershipService) renewalFailed(ctx context.Context, membershipID string, err error) error {
	logger.CtxWithError(ctx, "renewal failed", err, "membership_id", membershipID)
	return apperrors.ErrRenewalFailed.WithError(err)
}

func renewalRejectReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrStillActive):
		return "still_active"
	case errors.Is(err, lifecycle.ErrNotActive):
		return "not_active"
	}
	return "other"
}

// DeactivateMembership cancels a membership on request. Rows inside the
// window around their end date are protected because renewal wins there.
func (s *membershipService) DeactivateMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.MembershipResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	m, err := s.membershipRepo.FindMembershipForUpdate(tx, gymID, membershipID)
	if err != nil {
		return nil, handleMembershipError(err)
	}

	now := s.now()
	transitions := s.policy.Sync(m, now)
	if len(transitions) > 0 {
		if err := s.membershipRepo.SaveStatus(tx, m); err != nil {
			return nil, handleMembershipError(err)
		}
	}

	if checkErr := s.policy.CheckCancellation(m, now); checkErr != nil {
		// Keep whatever the sync above already decided.
		if len(transitions) > 0 {
			if err := tx.Commit().Error; err != nil {
				return nil, apperrors.InternalError(err)
			}
			recordTransitions(transitions, "lazy")
		}
		return nil, handleMembershipError(checkErr)
	}

	from := m.Status
	lifecycle.Cancel(m)
	if err := s.membershipRepo.SaveStatus(tx, m); err != nil {
		return nil, handleMembershipError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	recordTransitions(transitions, "lazy")
	observability.RecordTransition(string(from), string(m.Status), "cancel")
	logger.CtxInfo(ctx, "membership cancelled", "membership_id", m.ID)
	return toMembershipResponse(m), nil
}

func (s *membershipService) SyncMembershipStatus(m *models.Membership) bool {
	transitions := s.policy.Sync(m, s.now())
	recordTransitions(transitions, "lazy")
	return len(transitions) > 0
}

func (s *membershipService) ListActiveMemberships(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.MembershipResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	if err := requireActiveGym(db, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	memberships, err := s.membershipRepo.ListMemberships(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toMembershipResponses(s.syncAndPersist(ctx, db, memberships)), nil
}

func (s *membershipService) ListMemberMemberships(ctx context.Context, db *gorm.DB, gymID, memberID string) ([]*dto.MembershipResponse, error) {
	if err := validator.ValidateID(gymID, memberID); err != nil {
		return nil, err
	}
	if _, err := s.memberRepo.FindMemberByID(db, gymID, memberID); err != nil {
		return nil, handleMemberError(err)
	}

	memberships, err := s.membershipRepo.ListMembershipsForMember(db, gymID, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return toMembershipResponses(s.syncAndPersist(ctx, db, memberships)), nil
}

func (s *membershipService) GetMembership(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.MembershipResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}
	m, err := s.membershipRepo.FindMembershipByID(db, gymID, membershipID)
	if err != nil {
		return nil, handleMembershipError(err)
	}
	synced := s.syncAndPersist(ctx, db, []models.Membership{*m})
	return toMembershipResponse(&synced[0]), nil
}

// syncAndPersist applies due transitions and writes them in one batch. When
// the write fails the unsynced rows are returned and the error is only logged.
func (s *membershipService) syncAndPersist(ctx context.Context, db *gorm.DB, memberships []models.Membership) []models.Membership {
	original := make([]models.Membership, len(memberships))
	copy(original, memberships)

	now := s.now()
	var (
		changed     []*models.Membership
		transitions []lifecycle.Transition
	)
	for i := range memberships {
		if applied := s.policy.Sync(&memberships[i], now); len(applied) > 0 {
			changed = append(changed, &memberships[i])
			transitions = append(transitions, applied...)
		}
	}
	if len(changed) == 0 {
		return memberships
	}

	if err := s.persistStatuses(db, changed); err != nil {
		logger.CtxWithError(ctx, "failed to persist membership status sync", err, "count", len(changed))
		return original
	}
	recordTransitions(transitions, "lazy")
	return memberships
}

func (s *membershipService) persistStatuses(db *gorm.DB, changed []*models.Membership) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	defer tx.Rollback()

	for _, m := range changed {
		if err := s.membershipRepo.SaveStatus(tx, m); err != nil {
			return err
		}
	}
	return tx.Commit().Error
}

func (s *membershipService) GetBalance(ctx context.Context, db *gorm.DB, gymID, membershipID string) (*dto.BalanceResponse, error) {
	if err := validator.ValidateID(gymID, membershipID); err != nil {
		return nil, err
	}
	m, err := s.membershipRepo.FindMembershipByID(db, gymID, membershipID)
	if err != nil {
		return nil, handleMembershipError(err)
	}
	price, paid, err := s.priceAndPaid(db, m)
	if err != nil {
		return nil, err
	}
	return toBalanceResponse(m.ID, price, paid), nil
}

func (s *membershipService) priceAndPaid(db *gorm.DB, m *models.Membership) (decimal.Decimal, decimal.Decimal, error) {
	plan := m.Plan
	if plan == nil {
		p, err := s.planRepo.FindPlanByID(db, m.GymID, m.PlanID)
		if err != nil {
			return decimal.Zero, decimal.Zero, handlePlanError(err)
		}
		plan = p
	}
	paid, err := s.paymentRepo.SumForMembership(db, m.GymID, m.ID)
	if err != nil {
		return decimal.Zero, decimal.Zero, apperrors.InternalError(err)
	}
	return plan.Price, paid, nil
}

// SweepStatuses walks every open membership in id order and persists due
// transitions batch by batch.
func (s *membershipService) SweepStatuses(ctx context.Context, db *gorm.DB, batchSize int) (*SweepReport, error) {
	if batchSize <= 0 {
		batchSize = 200
	}
	report := &SweepReport{EnteredGrace: make(map[string][]models.Membership)}

	afterID := ""
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		batch, err := s.membershipRepo.FindOpenBatch(db, afterID, batchSize)
		if err != nil {
			return report, err
		}
		if len(batch) == 0 {
			return report, nil
		}
		afterID = batch[len(batch)-1].ID

		now := s.now()
		var (
			changed     []*models.Membership
			transitions []lifecycle.Transition
		)
		for i := range batch {
			m := &batch[i]
			applied := s.policy.Sync(m, now)
			if len(applied) == 0 {
				continue
			}
			changed = append(changed, m)
			transitions = append(transitions, applied...)
			if s.policy.InGrace(m, now) {
				report.EnteredGrace[m.GymID] = append(report.EnteredGrace[m.GymID], *m)
			}
		}

		if err := s.persistStatuses(db, changed); err != nil {
			return report, err
		}
		recordTransitions(transitions, "sweep")

		report.Scanned += len(batch)
		report.Updated += len(changed)

		if len(batch) < batchSize {
			return report, nil
		}
	}
}

func recordTransitions(transitions []lifecycle.Transition, trigger string) {
	for _, t := range transitions {
		observability.RecordTransition(string(t.From), string(t.To), trigger)
	}
}

func parseMethod(raw string) (models.PaymentMethod, error) {
	method := models.PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	if !method.Valid() {
		return "", apperrors.ErrInvalidPaymentMethod
	}
	return method, nil
}

func newPayment(gymID, membershipID string, amount decimal.Decimal, method models.PaymentMethod, now time.Time) *models.Payment {
	paidAt := now
	return &models.Payment{
		BaseModel:     models.BaseModel{CreatedAt: now},
		GymID:         gymID,
		MembershipID:  membershipID,
		Amount:        amount,
		PaymentMethod: method,
		Status:        models.PaymentStatusPaid,
		PaidAt:        &paidAt,
	}
}
