package lifecycle

import (
	"time"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

// Transition records one status change applied by Sync.
type Transition struct {
	From models.MembershipStatus
	To   models.MembershipStatus
}

// Sync advances m to the status implied by now and reports the transitions
// it applied. Stale rows may move through several states in one call.
//
//	scheduled -> active     when now >= start
//	active    -> expired    when now >= end
//	expired   -> cancelled  when now >  end + grace (is_active cleared)
func (p Policy) Sync(m *models.Membership, now time.Time) []Transition {
	var applied []Transition
	for {
		next, ok := p.next(m, now)
		if !ok {
			return applied
		}
		applied = append(applied, Transition{From: m.Status, To: next})
		m.Status = next
		if next == models.MembershipStatusCancelled {
			m.IsActive = false
		}
	}
}

func (p Policy) next(m *models.Membership, now time.Time) (models.MembershipStatus, bool) {
	switch m.Status {
	case models.MembershipStatusScheduled:
		if !now.Before(m.StartDate) {
			return models.MembershipStatusActive, true
		}
	case models.MembershipStatusActive:
		if !now.Before(m.EndDate) {
			return models.MembershipStatusExpired, true
		}
	case models.MembershipStatusExpired:
		if now.After(p.GraceDeadline(m.EndDate)) {
			return models.MembershipStatusCancelled, true
		}
	}
	return "", false
}

// Cancel moves m to the terminal state.
func Cancel(m *models.Membership) {
	m.Status = models.MembershipStatusCancelled
	m.IsActive = false
}

// RenewalOutcome is the decision EvaluateRenewal reaches for a renewable row.
type RenewalOutcome int

const (
	// RenewalAllowed means end <= now <= end + grace.
	RenewalAllowed RenewalOutcome = iota + 1
	// RenewalLapsed means the grace period is over; the membership must be
	// cancelled instead of renewed.
	RenewalLapsed
)

// EvaluateRenewal decides whether m can be renewed at now. It looks only at
// the dates, so a stored status that lags behind the clock does not matter.
// It does not mutate m.
func (p Policy) EvaluateRenewal(m *models.Membership, now time.Time) (RenewalOutcome, error) {
	if !m.IsActive || m.Status == models.MembershipStatusCancelled {
		return 0, ErrNotActive
	}
	if now.Before(m.EndDate) {
		return 0, ErrStillActive
	}
	if now.After(p.GraceDeadline(m.EndDate)) {
		return RenewalLapsed, nil
	}
	return RenewalAllowed, nil
}

// Successor builds the membership that replaces old on renewal. It starts at now.
func (p Policy) Successor(old *models.Membership, plan *models.Plan, now time.Time) *models.Membership {
	return &models.Membership{
		BaseModel: models.BaseModel{CreatedAt: now},
		GymID:     old.GymID,
		MemberID:  old.MemberID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   EndDate(now, plan.DurationMonths),
		Status:    models.MembershipStatusActive,
		IsActive:  true,
	}
}

// CheckCancellation rejects cancelled rows and rows inside
// [end - CancelGuard, end + Grace], where renewal takes precedence.
func (p Policy) CheckCancellation(m *models.Membership, now time.Time) error {
	if m.Status == models.MembershipStatusCancelled || !m.IsActive {
		return ErrAlreadyCancelled
	}
	windowStart := m.EndDate.Add(-p.CancelGuard)
	if !now.Before(windowStart) && !now.After(p.GraceDeadline(m.EndDate)) {
		return ErrCancelWindow
	}
	return nil
}

// InGrace reports whether m is expired but still renewable.
func (p Policy) InGrace(m *models.Membership, now time.Time) bool {
	return m.Status == models.MembershipStatusExpired &&
		!now.Before(m.EndDate) && !now.After(p.GraceDeadline(m.EndDate))
}
