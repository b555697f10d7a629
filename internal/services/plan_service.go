package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type PlanService interface {
	CreatePlan(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreatePlanRequest) (*dto.PlanResult, error)
	ListPlans(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.PlanResponse, error)
	GetPlan(ctx context.Context, db *gorm.DB, gymID, planID string) (*dto.PlanResponse, error)
	UpdatePlan(ctx context.Context, db *gorm.DB, gymID, planID string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	DeactivatePlan(ctx context.Context, db *gorm.DB, gymID, planID string) (*dto.PlanResponse, error)
}

type planService struct {
	gymRepo  repositories.GymRepository
	planRepo repositories.PlanRepository
	clock    clockwork.Clock
}

func NewPlanService(gymRepo repositories.GymRepository, planRepo repositories.PlanRepository, clock clockwork.Clock) PlanService {
	return &planService{gymRepo: gymRepo, planRepo: planRepo, clock: clock}
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, apperrors.ErrInvalidPrice
	}
	if err := validator.ValidatePrice(price); err != nil {
		return decimal.Zero, err
	}
	return price.Round(2), nil
}

func normalizeDescription(desc *string) *string {
	if desc == nil {
		return nil
	}
	d := strings.TrimSpace(*desc)
	if d == "" {
		return nil
	}
	return &d
}

// CreatePlan adds a plan to the catalog. An inactive plan with the same name
// is reactivated with the submitted terms instead of inserting a new row.
func (s *planService) CreatePlan(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreatePlanRequest) (*dto.PlanResult, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewBadRequestError("Plan name is required")
	}
	if err := validator.ValidateDurationMonths(req.DurationMonths); err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	desc := normalizeDescription(req.Description)
	if err := validator.ValidateDescription(desc); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := requireActiveGym(tx, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	taken, err := s.planRepo.ActiveNameTaken(tx, gymID, name, "")
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if taken {
		return nil, apperrors.ErrPlanNameExists
	}

	outcome := dto.OutcomeCreated
	plan, err := s.planRepo.FindInactiveByName(tx, gymID, name)
	switch {
	case err == nil:
		outcome = dto.OutcomeReactivated
		plan.DurationMonths = req.DurationMonths
		plan.Price = price
		plan.Description = desc
		plan.Features = models.EncodeFeatures(req.Features)
		plan.IsActive = true
		if err := s.planRepo.UpdatePlan(tx, plan); err != nil {
			return nil, handlePlanError(err)
		}
	case errors.Is(err, repositories.ErrPlanNotFound):
		plan = &models.Plan{
			BaseModel:      models.BaseModel{CreatedAt: s.clock.Now().UTC()},
			GymID:          gymID,
			Name:           name,
			DurationMonths: req.DurationMonths,
			Price:          price,
			Description:    desc,
			Features:       models.EncodeFeatures(req.Features),
			IsActive:       true,
		}
		if err := s.planRepo.CreatePlan(tx, plan); err != nil {
			return nil, handlePlanError(err)
		}
	default:
		return nil, handlePlanError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, handlePlanError(err)
	}

	logger.CtxInfo(ctx, "plan saved", "plan_id", plan.ID, "outcome", outcome)
	return &dto.PlanResult{Outcome: outcome, Plan: toPlanResponse(plan)}, nil
}

func (s *planService) ListPlans(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.PlanResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	if err := requireActiveGym(db, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	plans, err := s.planRepo.ListActivePlans(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.PlanResponse, 0, len(plans))
	for i := range plans {
		out = append(out, toPlanResponse(&plans[i]))
	}
	return out, nil
}

func (s *planService) GetPlan(ctx context.Context, db *gorm.DB, gymID, planID string) (*dto.PlanResponse, error) {
	if err := validator.ValidateID(gymID, planID); err != nil {
		return nil, err
	}
	plan, err := s.planRepo.FindPlanByID(db, gymID, planID)
	if err != nil {
		return nil, handlePlanError(err)
	}
	return toPlanResponse(plan), nil
}

// UpdatePlan changes catalog terms. Existing memberships keep the end date
// they were created with.
func (s *planService) UpdatePlan(ctx context.Context, db *gorm.DB, gymID, planID string, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := validator.ValidateID(gymID, planID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	plan, err := s.planRepo.FindActivePlan(tx, gymID, planID)
	if err != nil {
		return nil, handlePlanError(err)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, apperrors.NewBadRequestError("Plan name is required")
		}
		taken, err := s.planRepo.ActiveNameTaken(tx, gymID, name, plan.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrPlanNameExists
		}
		plan.Name = name
	}
	if req.DurationMonths != nil {
		if err := validator.ValidateDurationMonths(*req.DurationMonths); err != nil {
			return nil, err
		}
		plan.DurationMonths = *req.DurationMonths
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return nil, err
		}
		plan.Price = price
	}
	if req.Description != nil {
		desc := normalizeDescription(req.Description)
		if err := validator.ValidateDescription(desc); err != nil {
			return nil, err
		}
		plan.Description = desc
	}
	if req.Features != nil {
		plan.Features = models.EncodeFeatures(req.Features)
	}

	if err := s.planRepo.UpdatePlan(tx, plan); err != nil {
		return nil, handlePlanError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, handlePlanError(err)
	}
	return toPlanResponse(plan), nil
}

func (s *planService) DeactivatePlan(ctx context.Context, db *gorm.DB, gymID, planID string) (*dto.PlanResponse, error) {
	if err := validator.ValidateID(gymID, planID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	plan, err := s.planRepo.FindPlanByID(tx, gymID, planID)
	if err != nil {
		return nil, handlePlanError(err)
	}
	if !plan.IsActive {
		return nil, apperrors.ErrPlanAlreadyInactive
	}
	if err := s.planRepo.SetPlanActive(tx, gymID, planID, false); err != nil {
		return nil, handlePlanError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	plan.IsActive = false
	logger.CtxInfo(ctx, "plan deactivated", "plan_id", planID)
	return toPlanResponse(plan), nil
}
