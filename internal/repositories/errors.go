package repositories

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrGymNotFound        = errors.New("gym not found")
	ErrMemberNotFound     = errors.New("member not found")
	ErrPlanNotFound       = errors.New("plan not found")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	// ErrDuplicate wraps unique constraint violations.
	ErrDuplicate = errors.New("duplicate record")
)

// translate maps gorm errors onto repository sentinels.
func translate(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicate
	default:
		return err
	}
}
