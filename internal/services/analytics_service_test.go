package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
)

func TestGetMembershipStats(t *testing.T) {
	f := newFixture(t)
	first := enroll(t, f, "Asha Rao", "100.00", "40")
	enroll(t, f, "Ravi Kumar", "80.00", "80")
	third := enroll(t, f, "Meera Iyer", "50.00", "20")

	_, err := f.svc.MembershipService.DeactivateMembership(f.ctx, f.db, f.gym.ID, third.Membership.ID)
	require.NoError(t, err)

	_, err = f.svc.PaymentService.CreatePayment(f.ctx, f.db, f.gym.ID, &dto.CreatePaymentRequest{
		MembershipID:  first.Membership.ID,
		Amount:        "10",
		PaymentMethod: "upi",
	})
	require.NoError(t, err)

	stats, err := f.svc.AnalyticsService.GetMembershipStats(f.ctx, f.db, f.gym.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalMembers)
	assert.Equal(t, int64(2), stats.ActiveMemberships)
	assert.Equal(t, "150.00", stats.TotalRevenue)
	// Only the first membership still owes money; the cancelled one is ignored.
	assert.Equal(t, "50.00", stats.PendingAmount)
	assert.Equal(t, int64(2), stats.StatusDistribution["active"])
	assert.Equal(t, int64(1), stats.StatusDistribution["cancelled"])
	assert.Equal(t, int64(3), stats.DurationDistribution[1])
	assert.Len(t, stats.RevenueByPlan, 3)
}
