package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/repositories"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/testsupport"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

func TestCreateMembership_StartsActiveToday(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	resp, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{
		MemberID: member.ID,
		PlanID:   plan.ID,
	})
	require.NoError(t, err)

	now := f.clock.Now()
	assert.Equal(t, string(models.MembershipStatusActive), resp.Status)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.StartDate.Equal(now))
	assert.True(t, resp.EndDate.Equal(now.AddDate(0, 1, 0)))
	assert.Equal(t, "Monthly", resp.PlanName)
}

func TestCreateMembership_FutureStartIsScheduled(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Quarterly", 3, "270.00")

	resp, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{
		MemberID:  member.ID,
		PlanID:    plan.ID,
		StartDate: "2025-01-11",
	})
	require.NoError(t, err)

	start := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, string(models.MembershipStatusScheduled), resp.Status)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.StartDate.Equal(start))
	assert.True(t, resp.EndDate.Equal(time.Date(2025, 4, 11, 0, 0, 0, 0, time.UTC)))
}

func TestCreateMembership_Rejections(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")
	retired := f.plan(t, "Retired", 1, "50.00")
	require.NoError(t, f.db.Model(retired).Update("is_active", false).Error)

	tests := []struct {
		name    string
		gymID   string
		req     dto.CreateMembershipRequest
		wantErr error
	}{
		{"malformed member id", f.gym.ID, dto.CreateMembershipRequest{MemberID: "nope", PlanID: plan.ID}, apperrors.ErrInvalidID},
		{"unknown gym", "4b1f0b5e-6f4c-4a43-9d1e-0c6f1c7b6a01", dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID}, apperrors.ErrGymNotFound},
		{"unknown member", f.gym.ID, dto.CreateMembershipRequest{MemberID: "4b1f0b5e-6f4c-4a43-9d1e-0c6f1c7b6a02", PlanID: plan.ID}, apperrors.ErrMemberNotFound},
		{"inactive plan", f.gym.ID, dto.CreateMembershipRequest{MemberID: member.ID, PlanID: retired.ID}, apperrors.ErrPlanNotFound},
		{"start too far ahead", f.gym.ID, dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID, StartDate: "2025-01-12"}, apperrors.ErrStartDateTooFar},
		{"bad date", f.gym.ID, dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID, StartDate: "12/01/2025"}, apperrors.ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := tt.req
			_, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, tt.gymID, &req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, f.membershipCount(t, member.ID))
}

func TestCreateMembership_OneActivePerMember(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")
	req := &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID}

	_, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, req)
	require.NoError(t, err)

	_, err = f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, req)
	assert.ErrorIs(t, err, apperrors.ErrMembershipAlreadyActive)
	assert.Equal(t, int64(1), testsupport.CountActiveMemberships(t, f.db, f.gym.ID, member.ID))
}

// The partial unique index rejects a second active row even when the
// service-level check is skipped.
func TestCreateMembership_StorageRejectsSecondActiveRow(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	now := f.clock.Now().UTC()
	err = repositories.NewMembershipRepository().CreateMembership(f.db, &models.Membership{
		GymID:     f.gym.ID,
		MemberID:  member.ID,
		PlanID:    plan.ID,
		StartDate: now,
		EndDate:   lifecycle.EndDate(now, 1),
		Status:    models.MembershipStatusActive,
		IsActive:  true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, repositories.ErrDuplicate)
	assert.ErrorIs(t, handleMembershipError(err), apperrors.ErrMembershipAlreadyActive)

	assert.Equal(t, int64(1), testsupport.CountActiveMemberships(t, f.db, f.gym.ID, member.ID))
	assert.True(t, testsupport.Reload(t, f.db, created.ID).IsActive)
}

func TestCreateMembership_StaleRowPastGraceDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	first, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	f.advanceTo(first.EndDate.Add(5 * day))
	second, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	old := testsupport.Reload(t, f.db, first.ID)
	assert.Equal(t, models.MembershipStatusCancelled, old.Status)
	assert.False(t, old.IsActive)
	assert.Equal(t, string(models.MembershipStatusActive), second.Status)
	assert.Equal(t, int64(1), testsupport.CountActiveMemberships(t, f.db, f.gym.ID, member.ID))
}

func TestEnrollMember_PartialPaymentThenSettle(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	enrolled, err := f.svc.MembershipService.EnrollMember(f.ctx, f.db, f.gym.ID, &dto.EnrollRequest{
		MemberID:      member.ID,
		PlanID:        plan.ID,
		AmountPaid:    "40",
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, "40.00", enrolled.Payment.Amount)
	assert.Equal(t, "60.00", enrolled.Balance.Balance)

	_, err = f.svc.PaymentService.CreatePayment(f.ctx, f.db, f.gym.ID, &dto.CreatePaymentRequest{
		MembershipID:  enrolled.Membership.ID,
		Amount:        "60",
		PaymentMethod: "upi",
	})
	require.NoError(t, err)

	balance, err := f.svc.MembershipService.GetBalance(f.ctx, f.db, f.gym.ID, enrolled.Membership.ID)
	require.NoError(t, err)
	assert.Equal(t, "100.00", balance.TotalPaid)
	assert.Equal(t, "0.00", balance.Balance)
}

func TestEnrollMember_DefaultsToFullPrice(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	enrolled, err := f.svc.MembershipService.EnrollMember(f.ctx, f.db, f.gym.ID, &dto.EnrollRequest{
		MemberID:      member.ID,
		PlanID:        plan.ID,
		PaymentMethod: "card",
	})
	require.NoError(t, err)
	assert.Equal(t, "100.00", enrolled.Payment.Amount)
	assert.Equal(t, "0.00", enrolled.Balance.Balance)
}

func TestEnrollMember_RejectedPaymentLeavesNoMembership(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	tests := []struct {
		name    string
		amount  string
		method  string
		wantErr error
	}{
		{"overpayment", "100.01", "cash", apperrors.ErrAmountExceedsPrice},
		{"zero", "0", "cash", apperrors.ErrAmountNotPositive},
		{"negative", "-10", "cash", apperrors.ErrAmountNotPositive},
		{"garbage", "forty", "cash", apperrors.ErrInvalidAmountFormat},
		{"unknown method", "40", "cheque", apperrors.ErrInvalidPaymentMethod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.MembershipService.EnrollMember(f.ctx, f.db, f.gym.ID, &dto.EnrollRequest{
				MemberID:      member.ID,
				PlanID:        plan.ID,
				AmountPaid:    tt.amount,
				PaymentMethod: tt.method,
			})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
	assert.Zero(t, f.membershipCount(t, member.ID))
}

func TestRenewMembership_WithinGrace(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)
	assert.Equal(t, string(models.MembershipStatusActive), created.Status)

	f.advanceTo(created.EndDate.Add(day))
	now := f.clock.Now()

	renewed, err := f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "cash"})
	require.NoError(t, err)

	old := testsupport.Reload(t, f.db, created.ID)
	assert.Equal(t, models.MembershipStatusCancelled, old.Status)
	assert.False(t, old.IsActive)

	assert.Equal(t, string(models.MembershipStatusActive), renewed.Current.Status)
	assert.True(t, renewed.Current.StartDate.Equal(now))
	assert.True(t, renewed.Current.EndDate.Equal(now.AddDate(0, 1, 0)))
	assert.NotEqual(t, created.ID, renewed.Current.ID)

	payments := f.paymentsFor(t, created.ID)
	require.Len(t, payments, 1)
	assert.Equal(t, "100.00", payments[0].Amount.StringFixed(2))
	assert.Equal(t, models.PaymentStatusPaid, payments[0].Status)
	assert.Empty(t, f.paymentsFor(t, renewed.Current.ID))

	assert.Equal(t, int64(2), f.membershipCount(t, member.ID))
	assert.Equal(t, int64(1), testsupport.CountActiveMemberships(t, f.db, f.gym.ID, member.ID))
}

func TestRenewMembership_GraceBoundaries(t *testing.T) {
	for _, offset := range []time.Duration{0, 3 * day} {
		t.Run(offset.String(), func(t *testing.T) {
			f := newFixture(t)
			member := f.member(t, "Asha Rao")
			plan := f.plan(t, "Monthly", 1, "100.00")

			created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
			require.NoError(t, err)

			f.advanceTo(created.EndDate.Add(offset))
			renewed, err := f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "upi"})
			require.NoError(t, err)
			assert.True(t, renewed.Current.StartDate.Equal(f.clock.Now()))
		})
	}
}

func TestRenewMembership_AfterGraceCancels(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	f.advanceTo(created.EndDate.Add(4 * day))
	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrRenewalPeriodExpired)

	old := testsupport.Reload(t, f.db, created.ID)
	assert.Equal(t, models.MembershipStatusCancelled, old.Status)
	assert.False(t, old.IsActive)
	assert.Equal(t, int64(1), f.membershipCount(t, member.ID))
	assert.Empty(t, f.paymentsFor(t, created.ID))
}

func TestRenewMembership_Rejections(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrMembershipStillActive)

	f.advanceTo(created.EndDate.Add(day))

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{Amount: "150", PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrAmountExceedsPrice)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{Amount: "0", PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrAmountNotPositive)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "gold"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPaymentMethod)

	// Nothing above may have touched the row.
	still := testsupport.Reload(t, f.db, created.ID)
	assert.Equal(t, models.MembershipStatusActive, still.Status)
	assert.True(t, still.IsActive)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{Amount: "60", PaymentMethod: "cash"})
	require.NoError(t, err)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrActiveMembershipNotFound)
}

func TestRenewMembership_ScheduledIsStillActive(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID, StartDate: "2025-01-11"})
	require.NoError(t, err)

	_, err = f.svc.MembershipService.RenewMembership(f.ctx, f.db, f.gym.ID, created.ID, &dto.RenewMembershipRequest{PaymentMethod: "cash"})
	assert.ErrorIs(t, err, apperrors.ErrMembershipStillActive)
}

func TestDeactivateMembership(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Quarterly", 3, "270.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	resp, err := f.svc.MembershipService.DeactivateMembership(f.ctx, f.db, f.gym.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.MembershipStatusCancelled), resp.Status)
	assert.False(t, resp.IsActive)

	_, err = f.svc.MembershipService.DeactivateMembership(f.ctx, f.db, f.gym.ID, created.ID)
	assert.ErrorIs(t, err, apperrors.ErrMembershipAlreadyCancelled)
}

func TestDeactivateMembership_WindowAroundEnd(t *testing.T) {
	tests := []struct {
		name    string
		offset  time.Duration
		wantErr error
	}{
		{"just before guard", -3*day - time.Minute, nil},
		{"guard start", -3 * day, apperrors.ErrCancellationWindow},
		{"in grace", 2 * day, apperrors.ErrCancellationWindow},
		{"grace deadline", 3 * day, apperrors.ErrCancellationWindow},
		{"past grace", 3*day + time.Minute, apperrors.ErrMembershipAlreadyCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			member := f.member(t, "Asha Rao")
			plan := f.plan(t, "Monthly", 1, "100.00")

			created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
			require.NoError(t, err)

			f.advanceTo(created.EndDate.Add(tt.offset))
			_, err = f.svc.MembershipService.DeactivateMembership(f.ctx, f.db, f.gym.ID, created.ID)
			if tt.wantErr == nil {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			stored := testsupport.Reload(t, f.db, created.ID)
			assert.Equal(t, stored.Status == models.MembershipStatusCancelled, !stored.IsActive)
		})
	}
}

func TestListActiveMemberships_PersistsLazySync(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	f.advanceTo(created.EndDate.Add(day))
	list, err := f.svc.MembershipService.ListActiveMemberships(f.ctx, f.db, f.gym.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, string(models.MembershipStatusExpired), list[0].Status)
	assert.True(t, list[0].IsActive)
	assert.Equal(t, "Asha Rao", list[0].MemberName)
	assert.Equal(t, models.MembershipStatusExpired, testsupport.Reload(t, f.db, created.ID).Status)

	f.advanceTo(created.EndDate.Add(4 * day))
	list, err = f.svc.MembershipService.ListActiveMemberships(f.ctx, f.db, f.gym.ID)
	require.NoError(t, err)
	assert.Equal(t, string(models.MembershipStatusCancelled), list[0].Status)
	assert.False(t, list[0].IsActive)

	stored := testsupport.Reload(t, f.db, created.ID)
	assert.Equal(t, models.MembershipStatusCancelled, stored.Status)
	assert.False(t, stored.IsActive)
}

func TestListActiveMemberships_WriteFailureReturnsUnsynced(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	require.NoError(t, f.db.Callback().Update().Before("gorm:update").Register("test:fail_updates", func(tx *gorm.DB) {
		_ = tx.AddError(errors.New("disk full"))
	}))

	f.advanceTo(created.EndDate.Add(day))
	list, err := f.svc.MembershipService.ListActiveMemberships(f.ctx, f.db, f.gym.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, string(models.MembershipStatusActive), list[0].Status)
	assert.Equal(t, models.MembershipStatusActive, testsupport.Reload(t, f.db, created.ID).Status)
}

func TestSyncMembershipStatus(t *testing.T) {
	f := newFixture(t)
	now := f.clock.Now()
	m := &models.Membership{
		StartDate: now.AddDate(0, -1, -1),
		EndDate:   now.Add(-day),
		Status:    models.MembershipStatusActive,
		IsActive:  true,
	}

	assert.True(t, f.svc.MembershipService.SyncMembershipStatus(m))
	assert.Equal(t, models.MembershipStatusExpired, m.Status)
	assert.False(t, f.svc.MembershipService.SyncMembershipStatus(m))
}

func TestSweepStatuses(t *testing.T) {
	f := newFixture(t)
	plan := f.plan(t, "Monthly", 1, "100.00")
	now := f.clock.Now()

	seed := func(name string, start time.Time, status models.MembershipStatus) *models.Membership {
		member := f.member(t, name)
		return testsupport.CreateMembership(t, f.db, &models.Membership{
			GymID:     f.gym.ID,
			MemberID:  member.ID,
			PlanID:    plan.ID,
			StartDate: start,
			EndDate:   lifecycle.EndDate(start, 1),
			Status:    status,
			IsActive:  true,
		})
	}

	current := seed("Current Member", now.Add(-day), models.MembershipStatusActive)
	justEnded := seed("Grace Member", now.AddDate(0, -1, -1), models.MembershipStatusActive)
	lapsed := seed("Lapsed Member", now.AddDate(0, -2, 0), models.MembershipStatusActive)
	due := seed("Due Member", now.Add(-time.Hour), models.MembershipStatusScheduled)
	pending := seed("Future Member", now.Add(time.Hour), models.MembershipStatusScheduled)

	report, err := f.svc.MembershipService.SweepStatuses(f.ctx, f.db, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, report.Scanned)
	assert.Equal(t, 3, report.Updated)

	assert.Equal(t, models.MembershipStatusActive, testsupport.Reload(t, f.db, current.ID).Status)
	assert.Equal(t, models.MembershipStatusExpired, testsupport.Reload(t, f.db, justEnded.ID).Status)
	assert.Equal(t, models.MembershipStatusActive, testsupport.Reload(t, f.db, due.ID).Status)
	assert.Equal(t, models.MembershipStatusScheduled, testsupport.Reload(t, f.db, pending.ID).Status)

	gone := testsupport.Reload(t, f.db, lapsed.ID)
	assert.Equal(t, models.MembershipStatusCancelled, gone.Status)
	assert.False(t, gone.IsActive)

	require.Len(t, report.EnteredGrace[f.gym.ID], 1)
	assert.Equal(t, justEnded.ID, report.EnteredGrace[f.gym.ID][0].ID)

	again, err := f.svc.MembershipService.SweepStatuses(f.ctx, f.db, 2)
	require.NoError(t, err)
	assert.Equal(t, 4, again.Scanned)
	assert.Zero(t, again.Updated)
}
