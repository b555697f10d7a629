package database

import (
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/AdityaRaghav22/GYM-SAAS/internal/config"
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"
)

// partialIndexes close invariants AutoMigrate cannot express through tags.
// Both Postgres and SQLite accept this syntax.
var partialIndexes = []string{
	// At most one is_active membership per member within a gym.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_memberships_one_active ON memberships (gym_id, member_id) WHERE is_active`,
	// Plan names are only reserved while the plan is active.
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_plans_gym_active_name ON plans (gym_id, name) WHERE is_active`,
	`CREATE INDEX IF NOT EXISTS idx_payments_gym_created ON payments (gym_id, created_at)`,
}

// Open connects with the configured driver. TranslateError is on so
// duplicate keys surface as gorm.ErrDuplicatedKey on every driver.
// Timestamps gorm fills itself come from clock, the same clock the
// services use. A nil clock means wall time.
func Open(cfg *config.Config, clock clockwork.Clock) (*gorm.DB, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	gormCfg := &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return clock.Now().UTC() },
	}
	if !cfg.IsDevelopment() {
		gormCfg.Logger = gormlogger.Default.LogMode(gormlogger.Warn)
	}

	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case "postgres":
		dialector = postgres.Open(cfg.Database.DSN)
	case "sqlite":
		dialector = sqlite.Open(cfg.Database.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, gormCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get *sql.DB: %w", err)
	}
	if cfg.Database.Driver == "sqlite" {
		// SQLite serializes writers; one connection avoids SQLITE_BUSY and
		// keeps in-memory databases shared.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}

	return db, nil
}

// AutoMigrate creates tables for every model plus the partial indexes.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Gym{},
		&models.Member{},
		&models.Plan{},
		&models.Membership{},
		&models.Payment{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	for _, stmt := range partialIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}
