// Package testsupport builds throwaway databases, clocks and fixtures for
// package tests.
package testsupport

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/AdityaRaghav22/GYM-SAAS/database"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/config"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

// Epoch is the default fake-clock start used across tests.
var Epoch = time.Date(2025, 1, 10, 9, 0, 0, 0, time.UTC)

// TestConfig returns a config wired to a private in-memory SQLite database.
func TestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Database.Driver = "sqlite"
	cfg.Database.DSN = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Issuer = "gym-saas"
	cfg.Membership.GraceDays = 3
	cfg.Membership.CancelGuardDays = 3
	cfg.Membership.MaxFutureStartDays = 1
	cfg.Membership.SweepBatchSize = 2
	return cfg
}

// NewTestDB opens a migrated in-memory database that is closed when the
// test ends. gorm stamps rows from clock.
func NewTestDB(t *testing.T, clock clockwork.Clock) *gorm.DB {
	t.Helper()
	return OpenDB(t, TestConfig(), clock)
}

func OpenDB(t *testing.T, cfg *config.Config, clock clockwork.Clock) *gorm.DB {
	t.Helper()

	db, err := database.Open(cfg, clock)
	require.NoError(t, err, "open test database")
	require.NoError(t, database.AutoMigrate(db), "migrate test database")

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func NewClock() clockwork.FakeClock {
	return clockwork.NewFakeClockAt(Epoch)
}

// CreateGym inserts an active gym with unique contact details.
func CreateGym(t *testing.T, db *gorm.DB) *models.Gym {
	t.Helper()
	suffix := uuid.NewString()[:8]
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	gym := &models.Gym{
		Name:         "Iron Temple " + suffix,
		Phone:        fmt.Sprintf("9%09d", time.Now().UnixNano()%1_000_000_000),
		Email:        "owner+" + suffix + "@example.com",
		PasswordHash: string(hash),
		IsActive:     true,
	}
	require.NoError(t, db.Create(gym).Error, "create test gym")
	return gym
}

func CreateMember(t *testing.T, db *gorm.DB, gymID, name, phone string) *models.Member {
	t.Helper()
	member := &models.Member{
		GymID:    gymID,
		Name:     name,
		JoinDate: Epoch,
		IsActive: true,
	}
	if phone != "" {
		member.PhoneNumber = &phone
	}
	require.NoError(t, db.Omit("Gym").Create(member).Error, "create test member")
	return member
}

func CreatePlan(t *testing.T, db *gorm.DB, gymID, name string, months int, price string) *models.Plan {
	t.Helper()
	plan := &models.Plan{
		GymID:          gymID,
		Name:           name,
		DurationMonths: months,
		Price:          decimal.RequireFromString(price),
		Features:       models.EncodeFeatures(nil),
		IsActive:       true,
	}
	require.NoError(t, db.Omit("Gym").Create(plan).Error, "create test plan")
	return plan
}

// CreateMembership inserts a membership row directly, bypassing service
// checks, so tests can arrange arbitrary states.
func CreateMembership(t *testing.T, db *gorm.DB, m *models.Membership) *models.Membership {
	t.Helper()
	require.NoError(t, db.Omit("Member", "Plan", "Payments").Create(m).Error, "create test membership")
	return m
}

// Reload reads the current stored state of a membership.
func Reload(t *testing.T, db *gorm.DB, id string) *models.Membership {
	t.Helper()
	var m models.Membership
	require.NoError(t, db.First(&m, "id = ?", id).Error)
	return &m
}

func CountActiveMemberships(t *testing.T, db *gorm.DB, gymID, memberID string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Membership{}).
		Where("gym_id = ? AND member_id = ? AND is_active = ?", gymID, memberID, true).
		Count(&n).Error)
	return n
}
