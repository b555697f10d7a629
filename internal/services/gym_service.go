package services

import (
	"context"
	"strings"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/auth"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type GymService interface {
	RegisterGym(ctx context.Context, db *gorm.DB, req *dto.RegisterGymRequest) (*dto.GymResponse, error)
	GetGym(ctx context.Context, db *gorm.DB, gymID string) (*dto.GymResponse, error)
}

type gymService struct {
	gymRepo repositories.GymRepository
	clock   clockwork.Clock
}

func NewGymService(gymRepo repositories.GymRepository, clock clockwork.Clock) GymService {
	return &gymService{gymRepo: gymRepo, clock: clock}
}

func (s *gymService) RegisterGym(ctx context.Context, db *gorm.DB, req *dto.RegisterGymRequest) (*dto.GymResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	phone := strings.TrimSpace(req.Phone)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	exists, err := s.gymRepo.ExistsByEmailOrPhone(tx, email, phone)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrGymAlreadyExists
	}

	gym := &models.Gym{
		BaseModel:    models.BaseModel{CreatedAt: s.clock.Now().UTC()},
		Name:         strings.TrimSpace(req.Name),
		Phone:        phone,
		Email:        email,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.gymRepo.CreateGym(tx, gym); err != nil {
		return nil, handleGymError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "gym registered", "gym_id", gym.ID)
	return toGymResponse(gym), nil
}

func (s *gymService) GetGym(ctx context.Context, db *gorm.DB, gymID string) (*dto.GymResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	gym, err := s.gymRepo.FindGymByID(db, gymID)
	if err != nil {
		return nil, handleGymError(err)
	}
	return toGymResponse(gym), nil
}

// requireActiveGym is the tenant check every gym-scoped operation starts with.
func requireActiveGym(db *gorm.DB, gymRepo repositories.GymRepository, gymID string) error {
	if _, err := gymRepo.FindActiveGym(db, gymID); err != nil {
		return handleGymError(err)
	}
	return nil
}
