package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/billing"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

func handleGymError(err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrGymNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrGymNotFound.WithError(err)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrGymAlreadyExists.WithError(err)
	}
	return apperrors.InternalError(err)
}

func handleMemberError(err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrGymNotFound):
		return apperrors.ErrGymNotFound.WithError(err)
	case errors.Is(err, repositories.ErrMemberNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrMemberNotFound.WithError(err)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrMemberPhoneExists.WithError(err)
	}
	return apperrors.InternalError(err)
}

func handlePlanError(err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrGymNotFound):
		return apperrors.ErrGymNotFound.WithError(err)
	case errors.Is(err, repositories.ErrPlanNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrPlanNotFound.WithError(err)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrPlanNameExists.WithError(err)
	}
	return apperrors.InternalError(err)
}

func handleMembershipError(err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrGymNotFound):
		return apperrors.ErrGymNotFound.WithError(err)
	case errors.Is(err, repositories.ErrMemberNotFound):
		return apperrors.ErrMemberNotFound.WithError(err)
	case errors.Is(err, repositories.ErrPlanNotFound):
		return apperrors.ErrPlanNotFound.WithError(err)
	case errors.Is(err, repositories.ErrMembershipNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrMembershipNotFound.WithError(err)
	case errors.Is(err, repositories.ErrDuplicate):
		// Only the one-active-membership index can collide on insert.
		return apperrors.ErrMembershipAlreadyActive.WithError(err)
	case errors.Is(err, lifecycle.ErrNotActive):
		return apperrors.ErrActiveMembershipNotFound.WithError(err)
	case errors.Is(err, lifecycle.ErrStillActive):
		return apperrors.ErrMembershipStillActive.WithError(err)
	case errors.Is(err, lifecycle.ErrAlreadyCancelled):
		return apperrors.ErrMembershipAlreadyCancelled.WithError(err)
	case errors.Is(err, lifecycle.ErrCancelWindow):
		return apperrors.ErrCancellationWindow.WithError(err)
	case errors.Is(err, lifecycle.ErrStartTooFar):
		return apperrors.ErrStartDateTooFar.WithError(err)
	}
	return handleAmountError(err)
}

func handlePaymentError(err error) error {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, repositories.ErrGymNotFound):
		return apperrors.ErrGymNotFound.WithError(err)
	case errors.Is(err, repositories.ErrMembershipNotFound):
		return apperrors.ErrActiveMembershipNotFound.WithError(err)
	case errors.Is(err, repositories.ErrPaymentNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		return apperrors.ErrPaymentNotFound.WithError(err)
	case errors.Is(err, repositories.ErrDuplicate):
		return apperrors.ErrPaymentFailed.WithError(err)
	}
	return handleAmountError(err)
}

func handleAmountError(err error) error {
	switch {
	case errors.Is(err, billing.ErrInvalidAmount):
		return apperrors.ErrInvalidAmountFormat.WithError(err)
	case errors.Is(err, billing.ErrNonPositive):
		return apperrors.ErrAmountNotPositive.WithError(err)
	case errors.Is(err, billing.ErrExceedsPrice):
		return apperrors.ErrAmountExceedsPrice.WithError(err)
	case errors.Is(err, billing.ErrExceedsBalance):
		return apperrors.ErrAmountExceedsBalance.WithError(err)
	case errors.Is(err, billing.ErrNothingOutstanding):
		return apperrors.ErrNoOutstandingBalance.WithError(err)
	}
	return apperrors.InternalError(err)
}
