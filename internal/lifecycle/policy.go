// Package lifecycle holds the membership state machine. Every function takes
// the current time explicitly and never touches storage.
package lifecycle

import (
	"errors"
	"time"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

const day = 24 * time.Hour

var (
	ErrNotActive        = errors.New("membership is not active")
	ErrStillActive      = errors.New("membership is still active")
	ErrAlreadyCancelled = errors.New("membership already cancelled")
	ErrCancelWindow     = errors.New("membership is inside the protected cancellation window")
	ErrStartTooFar      = errors.New("start date too far in the future")
	ErrInvalidDuration  = errors.New("duration must be between 1 and 12 months")
)

// Policy holds the time windows that drive transitions.
type Policy struct {
	// Grace is how long after EndDate a renewal is still accepted.
	Grace time.Duration
	// CancelGuard is how long before EndDate explicit cancellation stops
	// being allowed.
	CancelGuard time.Duration
	// MaxFutureStart bounds how far ahead a start date may be.
	MaxFutureStart time.Duration
}

func DefaultPolicy() Policy {
	return Policy{
		Grace:          3 * day,
		CancelGuard:    3 * day,
		MaxFutureStart: 1 * day,
	}
}

// NewPolicy builds a policy from day counts, falling back to defaults for
// non-positive values.
func NewPolicy(graceDays, cancelGuardDays, maxFutureStartDays int) Policy {
	p := DefaultPolicy()
	if graceDays > 0 {
		p.Grace = time.Duration(graceDays) * day
	}
	if cancelGuardDays > 0 {
		p.CancelGuard = time.Duration(cancelGuardDays) * day
	}
	if maxFutureStartDays > 0 {
		p.MaxFutureStart = time.Duration(maxFutureStartDays) * day
	}
	return p
}

// EndDate adds calendar months. Overflowing days normalize the way
// time.AddDate does (Jan 31 + 1 month = Mar 3 or Mar 2).
func EndDate(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

func ValidateDuration(months int) error {
	if months < 1 || months > 12 {
		return ErrInvalidDuration
	}
	return nil
}

func (p Policy) GraceDeadline(end time.Time) time.Time {
	return end.Add(p.Grace)
}

// ValidateStart rejects start dates more than MaxFutureStart ahead of now.
func (p Policy) ValidateStart(start, now time.Time) error {
	if start.After(now.Add(p.MaxFutureStart)) {
		return ErrStartTooFar
	}
	return nil
}

// InitialStatus is scheduled for a future start and active otherwise.
func InitialStatus(start, now time.Time) models.MembershipStatus {
	if start.After(now) {
		return models.MembershipStatusScheduled
	}
	return models.MembershipStatusActive
}

// New builds a fresh, active-flagged membership.
func (p Policy) New(gymID, memberID string, plan *models.Plan, start, now time.Time) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{CreatedAt: now},
		GymID:     gymID,
		MemberID:  memberID,
		PlanID:    plan.ID,
		StartDate: start,
		EndDate:   EndDate(start, plan.DurationMonths),
		Status:    InitialStatus(start, now),
		IsActive:  true,
	}
}
