package services

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/lifecycle"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/testsupport"
)

const day = 24 * time.Hour

type fixture struct {
	ctx   context.Context
	db    *gorm.DB
	clock clockwork.FakeClock
	svc   *ServiceContainer
	gym   *models.Gym
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	clock := testsupport.NewClock()
	db := testsupport.NewTestDB(t, clock)
	return &fixture{
		ctx:   context.Background(),
		db:    db,
		clock: clock,
		svc:   NewServiceContainer(lifecycle.DefaultPolicy(), clock),
		gym:   testsupport.CreateGym(t, db),
	}
}

func (f *fixture) member(t *testing.T, name string) *models.Member {
	return testsupport.CreateMember(t, f.db, f.gym.ID, name, "")
}

func (f *fixture) plan(t *testing.T, name string, months int, price string) *models.Plan {
	return testsupport.CreatePlan(t, f.db, f.gym.ID, name, months, price)
}

// advanceTo moves the fake clock forward to at.
func (f *fixture) advanceTo(at time.Time) {
	f.clock.Advance(at.Sub(f.clock.Now()))
}

func (f *fixture) paymentsFor(t *testing.T, membershipID string) []models.Payment {
	t.Helper()
	var out []models.Payment
	if err := f.db.Where("membership_id = ?", membershipID).Find(&out).Error; err != nil {
		t.Fatalf("load payments: %v", err)
	}
	return out
}

func (f *fixture) membershipCount(t *testing.T, memberID string) int64 {
	t.Helper()
	var n int64
	if err := f.db.Model(&models.Membership{}).Where("member_id = ?", memberID).Count(&n).Error; err != nil {
		t.Fatalf("count memberships: %v", err)
	}
	return n
}
