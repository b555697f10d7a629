package services

import (
	"context"
	"errors"
	"strings"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/logger"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/observability"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/validator"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

type MemberService interface {
	CreateMember(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreateMemberRequest) (*dto.MemberResult, error)
	ListMembers(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.MemberResponse, error)
	GetMember(ctx context.Context, db *gorm.DB, gymID, memberID string) (*dto.MemberResponse, error)
	UpdateMember(ctx context.Context, db *gorm.DB, gymID, memberID string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error)
	DeactivateMember(ctx context.Context, db *gorm.DB, gymID, memberID string) (*dto.MemberResponse, error)
}

type memberService struct {
	gymRepo        repositories.GymRepository
	memberRepo     repositories.MemberRepository
	membershipRepo repositories.MembershipRepository
	clock          clockwork.Clock
}

func NewMemberService(
	gymRepo repositories.GymRepository,
	memberRepo repositories.MemberRepository,
	membershipRepo repositories.MembershipRepository,
	clock clockwork.Clock,
) MemberService {
	return &memberService{
		gymRepo:        gymRepo,
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
		clock:          clock,
	}
}

func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	p := strings.TrimSpace(*phone)
	if p == "" {
		return nil
	}
	return &p
}

// CreateMember registers a member or, when an inactive member with the same
// phone exists, reactivates that row under the new name.
func (s *memberService) CreateMember(ctx context.Context, db *gorm.DB, gymID string, req *dto.CreateMemberRequest) (*dto.MemberResult, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	name := strings.TrimSpace(req.Name)
	phone := normalizePhone(req.PhoneNumber)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	if err := requireActiveGym(tx, s.gymRepo, gymID); err != nil {
		return nil, err
	}

	if phone != nil {
		existing, err := s.memberRepo.FindInactiveByPhone(tx, gymID, *phone)
		switch {
		case err == nil:
			existing.Name = name
			if err := s.memberRepo.UpdateMember(tx, existing); err != nil {
				return nil, handleMemberError(err)
			}
			if err := s.memberRepo.SetMemberActive(tx, gymID, existing.ID, true); err != nil {
				return nil, handleMemberError(err)
			}
			if err := tx.Commit().Error; err != nil {
				return nil, apperrors.InternalError(err)
			}
			existing.IsActive = true
			logger.CtxInfo(ctx, "member reactivated", "member_id", existing.ID)
			return &dto.MemberResult{Outcome: dto.OutcomeReactivated, Member: toMemberResponse(existing)}, nil
		case !errors.Is(err, repositories.ErrMemberNotFound):
			return nil, handleMemberError(err)
		}
	}

	member := &models.Member{
		BaseModel:   models.BaseModel{CreatedAt: s.clock.Now().UTC()},
		GymID:       gymID,
		Name:        name,
		PhoneNumber: phone,
		JoinDate:    s.clock.Now().UTC(),
		IsActive:    true,
	}
	if err := s.memberRepo.CreateMember(tx, member); err != nil {
		return nil, handleMemberError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, handleMemberError(err)
	}

	logger.CtxInfo(ctx, "member created", "member_id", member.ID)
	return &dto.MemberResult{Outcome: dto.OutcomeCreated, Member: toMemberResponse(member)}, nil
}

func (s *memberService) ListMembers(ctx context.Context, db *gorm.DB, gymID string) ([]*dto.MemberResponse, error) {
	if err := validator.ValidateID(gymID); err != nil {
		return nil, err
	}
	if _, err := s.gymRepo.FindGymByID(db, gymID); err != nil {
		return nil, handleGymError(err)
	}

	members, err := s.memberRepo.ListMembers(db, gymID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	out := make([]*dto.MemberResponse, 0, len(members))
	for i := range members {
		out = append(out, toMemberResponse(&members[i]))
	}
	return out, nil
}

func (s *memberService) GetMember(ctx context.Context, db *gorm.DB, gymID, memberID string) (*dto.MemberResponse, error) {
	if err := validator.ValidateID(gymID, memberID); err != nil {
		return nil, err
	}
	member, err := s.memberRepo.FindMemberByID(db, gymID, memberID)
	if err != nil {
		return nil, handleMemberError(err)
	}
	return toMemberResponse(member), nil
}

func (s *memberService) UpdateMember(ctx context.Context, db *gorm.DB, gymID, memberID string, req *dto.UpdateMemberRequest) (*dto.MemberResponse, error) {
	if err := validator.ValidateID(gymID, memberID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	member, err := s.memberRepo.FindActiveMember(tx, gymID, memberID)
	if err != nil {
		return nil, handleMemberError(err)
	}

	if req.Name != nil {
		member.Name = strings.TrimSpace(*req.Name)
	}
	if phone := normalizePhone(req.PhoneNumber); phone != nil {
		taken, err := s.memberRepo.PhoneTaken(tx, gymID, *phone, member.ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if taken {
			return nil, apperrors.ErrMemberPhoneExists
		}
		member.PhoneNumber = phone
	}

	if err := s.memberRepo.UpdateMember(tx, member); err != nil {
		return nil, handleMemberError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, handleMemberError(err)
	}
	return toMemberResponse(member), nil
}

// DeactivateMember soft-deletes the member and cancels its active membership
// in the same transaction. The cancellation window does not apply here.
func (s *memberService) DeactivateMember(ctx context.Context, db *gorm.DB, gymID, memberID string) (*dto.MemberResponse, error) {
	if err := validator.ValidateID(gymID, memberID); err != nil {
		return nil, err
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}
	defer tx.Rollback()

	member, err := s.memberRepo.FindMemberByID(tx, gymID, memberID)
	if err != nil {
		return nil, handleMemberError(err)
	}
	if !member.IsActive {
		return nil, apperrors.ErrMemberAlreadyInactive
	}

	if err := s.memberRepo.SetMemberActive(tx, gymID, memberID, false); err != nil {
		return nil, handleMemberError(err)
	}
	cancelled, err := s.membershipRepo.CancelActiveForMember(tx, gymID, memberID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	for i := int64(0); i < cancelled; i++ {
		observability.RecordTransition("open", string(models.MembershipStatusCancelled), "member_deactivated")
	}
	logger.CtxInfo(ctx, "member deactivated", "member_id", memberID, "memberships_cancelled", cancelled)

	member.IsActive = false
	return toMemberResponse(member), nil
}
