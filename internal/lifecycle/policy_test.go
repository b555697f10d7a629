package lifecycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

var t0 = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

func activeMembership(start time.Time, months int) *models.Membership {
	return &models.Membership{
		StartDate: start,
		EndDate:   EndDate(start, months),
		Status:    models.MembershipStatusActive,
		IsActive:  true,
	}
}

func TestEndDate_CalendarMonths(t *testing.T) {
	assert.Equal(t, time.Date(2025, 2, 10, 9, 0, 0, 0, time.UTC), EndDate(t0, 1))
	assert.Equal(t, time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC), EndDate(t0, 12))
}

func TestValidateDuration(t *testing.T) {
	assert.ErrorIs(t, ValidateDuration(0), ErrInvalidDuration)
	assert.ErrorIs(t, ValidateDuration(13), ErrInvalidDuration)
	assert.NoError(t, ValidateDuration(1))
	assert.NoError(t, ValidateDuration(12))
}

func TestValidateStart(t *testing.T) {
	p := DefaultPolicy()
	assert.NoError(t, p.ValidateStart(t0.Add(-48*time.Hour), t0))
	assert.NoError(t, p.ValidateStart(t0.Add(24*time.Hour), t0))
	assert.ErrorIs(t, p.ValidateStart(t0.Add(25*time.Hour), t0), ErrStartTooFar)
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, models.MembershipStatusActive, InitialStatus(t0, t0))
	assert.Equal(t, models.MembershipStatusActive, InitialStatus(t0.Add(-time.Hour), t0))
	assert.Equal(t, models.MembershipStatusScheduled, InitialStatus(t0.Add(time.Hour), t0))
}

func TestSync(t *testing.T) {
	p := DefaultPolicy()
	end := EndDate(t0, 1)

	tests := []struct {
		name       string
		status     models.MembershipStatus
		now        time.Time
		wantStatus models.MembershipStatus
		wantActive bool
		wantSteps  int
	}{
		{"active before end", models.MembershipStatusActive, end.Add(-time.Second), models.MembershipStatusActive, true, 0},
		{"active at end", models.MembershipStatusActive, end, models.MembershipStatusExpired, true, 1},
		{"expired at grace deadline", models.MembershipStatusExpired, end.Add(72 * time.Hour), models.MembershipStatusExpired, true, 0},
		{"expired past grace", models.MembershipStatusExpired, end.Add(72*time.Hour + time.Second), models.MembershipStatusCancelled, false, 1},
		{"stale active past grace", models.MembershipStatusActive, end.Add(96 * time.Hour), models.MembershipStatusCancelled, false, 2},
		{"scheduled before start", models.MembershipStatusScheduled, t0.Add(-time.Hour), models.MembershipStatusScheduled, true, 0},
		{"scheduled at start", models.MembershipStatusScheduled, t0, models.MembershipStatusActive, true, 1},
		{"cancelled stays", models.MembershipStatusCancelled, end.Add(240 * time.Hour), models.MembershipStatusCancelled, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := activeMembership(t0, 1)
			m.Status = tt.status

			steps := p.Sync(m, tt.now)

			assert.Len(t, steps, tt.wantSteps)
			assert.Equal(t, tt.wantStatus, m.Status)
			assert.Equal(t, tt.wantActive, m.IsActive)
		})
	}
}

func TestSync_CancelledImpliesInactive(t *testing.T) {
	p := DefaultPolicy()
	m := activeMembership(t0, 1)

	for h := 0; h < 24*40; h += 7 {
		p.Sync(m, t0.Add(time.Duration(h)*time.Hour))
		if m.Status == models.MembershipStatusCancelled {
			assert.False(t, m.IsActive)
		} else {
			assert.True(t, m.IsActive)
		}
	}
}

func TestEvaluateRenewal(t *testing.T) {
	p := DefaultPolicy()
	end := EndDate(t0, 1)

	t.Run("before end is still active", func(t *testing.T) {
		m := activeMembership(t0, 1)
		_, err := p.EvaluateRenewal(m, end.Add(-time.Minute))
		assert.ErrorIs(t, err, ErrStillActive)
	})

	t.Run("scheduled is still active", func(t *testing.T) {
		m := activeMembership(t0.Add(12*time.Hour), 1)
		m.Status = models.MembershipStatusScheduled
		_, err := p.EvaluateRenewal(m, t0)
		assert.ErrorIs(t, err, ErrStillActive)
	})

	t.Run("inside grace with stale status", func(t *testing.T) {
		for _, now := range []time.Time{end, end.Add(24 * time.Hour), end.Add(72 * time.Hour)} {
			m := activeMembership(t0, 1)
			outcome, err := p.EvaluateRenewal(m, now)
			require.NoError(t, err)
			assert.Equal(t, RenewalAllowed, outcome)
		}
	})

	t.Run("past grace lapses", func(t *testing.T) {
		m := activeMembership(t0, 1)
		outcome, err := p.EvaluateRenewal(m, end.Add(96*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, RenewalLapsed, outcome)
	})

	t.Run("cancelled is not renewable", func(t *testing.T) {
		m := activeMembership(t0, 1)
		Cancel(m)
		_, err := p.EvaluateRenewal(m, end)
		assert.ErrorIs(t, err, ErrNotActive)
	})
}

func TestSuccessor(t *testing.T) {
	p := DefaultPolicy()
	old := activeMembership(t0, 1)
	old.GymID, old.MemberID = "g", "m"
	plan := &models.Plan{BaseModel: models.BaseModel{ID: "p"}, DurationMonths: 3}
	now := old.EndDate.Add(24 * time.Hour)

	next := p.Successor(old, plan, now)

	assert.Equal(t, now, next.StartDate)
	assert.Equal(t, EndDate(now, 3), next.EndDate)
	assert.Equal(t, models.MembershipStatusActive, next.Status)
	assert.True(t, next.IsActive)
	assert.Equal(t, "m", next.MemberID)
}

func TestCheckCancellation(t *testing.T) {
	p := DefaultPolicy()
	end := EndDate(t0, 1)

	m := activeMembership(t0, 1)
	assert.NoError(t, p.CheckCancellation(m, end.Add(-73*time.Hour)))
	assert.ErrorIs(t, p.CheckCancellation(m, end.Add(-72*time.Hour)), ErrCancelWindow)
	assert.ErrorIs(t, p.CheckCancellation(m, end.Add(72*time.Hour)), ErrCancelWindow)

	Cancel(m)
	assert.ErrorIs(t, p.CheckCancellation(m, t0), ErrAlreadyCancelled)
}

func TestNewPolicy_Defaults(t *testing.T) {
	assert.Equal(t, DefaultPolicy(), NewPolicy(0, -1, 0))
	assert.Equal(t, 5*day, NewPolicy(5, 0, 0).Grace)
}
