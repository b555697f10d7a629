package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/services/dto"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/testsupport"
	"github.com/AdityaRaghav22/GYM-SAAS/pkg/apperrors"
)

func strPtr(s string) *string { return &s }

func TestCreateMember_CreatedThenReactivated(t *testing.T) {
	f := newFixture(t)

	created, err := f.svc.MemberService.CreateMember(f.ctx, f.db, f.gym.ID, &dto.CreateMemberRequest{
		Name:        "Asha Rao",
		PhoneNumber: strPtr("9876543210"),
	})
	require.NoError(t, err)
	assert.Equal(t, dto.OutcomeCreated, created.Outcome)

	_, err = f.svc.MemberService.CreateMember(f.ctx, f.db, f.gym.ID, &dto.CreateMemberRequest{
		Name:        "Someone Else",
		PhoneNumber: strPtr("9876543210"),
	})
	assert.ErrorIs(t, err, apperrors.ErrMemberPhoneExists)

	_, err = f.svc.MemberService.DeactivateMember(f.ctx, f.db, f.gym.ID, created.Member.ID)
	require.NoError(t, err)

	back, err := f.svc.MemberService.CreateMember(f.ctx, f.db, f.gym.ID, &dto.CreateMemberRequest{
		Name:        "Asha R",
		PhoneNumber: strPtr("9876543210"),
	})
	require.NoError(t, err)
	assert.Equal(t, dto.OutcomeReactivated, back.Outcome)
	assert.Equal(t, created.Member.ID, back.Member.ID)
	assert.Equal(t, "Asha R", back.Member.Name)
	assert.True(t, back.Member.IsActive)
}

func TestCreateMember_SamePhoneInAnotherGym(t *testing.T) {
	f := newFixture(t)
	other := testsupport.CreateGym(t, f.db)

	_, err := f.svc.MemberService.CreateMember(f.ctx, f.db, f.gym.ID, &dto.CreateMemberRequest{Name: "Asha Rao", PhoneNumber: strPtr("9876543210")})
	require.NoError(t, err)
	_, err = f.svc.MemberService.CreateMember(f.ctx, f.db, other.ID, &dto.CreateMemberRequest{Name: "Asha Rao", PhoneNumber: strPtr("9876543210")})
	assert.NoError(t, err)
}

func TestListMembers_SortedByName(t *testing.T) {
	f := newFixture(t)
	f.member(t, "Zara Khan")
	f.member(t, "Asha Rao")
	f.member(t, "Meera Iyer")

	list, err := f.svc.MemberService.ListMembers(f.ctx, f.db, f.gym.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{"Asha Rao", "Meera Iyer", "Zara Khan"}, []string{list[0].Name, list[1].Name, list[2].Name})
}

func TestUpdateMember(t *testing.T) {
	f := newFixture(t)
	asha := testsupport.CreateMember(t, f.db, f.gym.ID, "Asha Rao", "9876543210")
	ravi := testsupport.CreateMember(t, f.db, f.gym.ID, "Ravi Kumar", "9123456780")

	_, err := f.svc.MemberService.UpdateMember(f.ctx, f.db, f.gym.ID, ravi.ID, &dto.UpdateMemberRequest{PhoneNumber: strPtr("9876543210")})
	assert.ErrorIs(t, err, apperrors.ErrMemberPhoneExists)

	updated, err := f.svc.MemberService.UpdateMember(f.ctx, f.db, f.gym.ID, asha.ID, &dto.UpdateMemberRequest{Name: strPtr("Asha Menon")})
	require.NoError(t, err)
	assert.Equal(t, "Asha Menon", updated.Name)
	assert.Equal(t, "9876543210", *updated.PhoneNumber)

	_, err = f.svc.MemberService.GetMember(f.ctx, f.db, f.gym.ID, "not-a-uuid")
	assert.ErrorIs(t, err, apperrors.ErrInvalidID)
}

func TestDeactivateMember_CancelsActiveMembership(t *testing.T) {
	f := newFixture(t)
	member := f.member(t, "Asha Rao")
	plan := f.plan(t, "Monthly", 1, "100.00")

	created, err := f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	require.NoError(t, err)

	// Inside the guard window an explicit cancel is refused, the cascade is not.
	f.advanceTo(created.EndDate.Add(-day))

	resp, err := f.svc.MemberService.DeactivateMember(f.ctx, f.db, f.gym.ID, member.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	m := testsupport.Reload(t, f.db, created.ID)
	assert.Equal(t, models.MembershipStatusCancelled, m.Status)
	assert.False(t, m.IsActive)

	_, err = f.svc.MemberService.DeactivateMember(f.ctx, f.db, f.gym.ID, member.ID)
	assert.ErrorIs(t, err, apperrors.ErrMemberAlreadyInactive)

	_, err = f.svc.MembershipService.CreateMembership(f.ctx, f.db, f.gym.ID, &dto.CreateMembershipRequest{MemberID: member.ID, PlanID: plan.ID})
	assert.ErrorIs(t, err, apperrors.ErrMemberNotFound)
}
