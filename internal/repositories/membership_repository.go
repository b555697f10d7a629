package repositories

import (
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MembershipRepository interface {
	CreateMembership(db *gorm.DB, membership *models.Membership) error
	FindMembershipByID(db *gorm.DB, gymID, id string) (*models.Membership, error)
	// FindMembershipForUpdate row-locks on Postgres; SQLite ignores the lock
	// and serializes writers instead.
	FindMembershipForUpdate(db *gorm.DB, gymID, id string) (*models.Membership, error)
	FindActiveForMember(db *gorm.DB, gymID, memberID string) (*models.Membership, error)
	ListMemberships(db *gorm.DB, gymID string) ([]models.Membership, error)
	ListMembershipsForMember(db *gorm.DB, gymID, memberID string) ([]models.Membership, error)
	ListActiveWithPlans(db *gorm.DB, gymID string) ([]models.Membership, error)
	SaveStatus(db *gorm.DB, membership *models.Membership) error
	CancelActiveForMember(db *gorm.DB, gymID, memberID string) (int64, error)
	FindOpenBatch(db *gorm.DB, afterID string, limit int) ([]models.Membership, error)
	CountActive(db *gorm.DB, gymID string) (int64, error)
	StatusDistribution(db *gorm.DB, gymID string) (map[models.MembershipStatus]int64, error)
	DurationDistribution(db *gorm.DB, gymID string) (map[int]int64, error)
}

type MembershipRepositoryImpl struct{}

func NewMembershipRepository() MembershipRepository {
	return &MembershipRepositoryImpl{}
}

func (r *MembershipRepositoryImpl) CreateMembership(db *gorm.DB, membership *models.Membership) error {
	err := db.Omit(clause.Associations).Create(membership).Error
	return translate(err, ErrMembershipNotFound)
}

func (r *MembershipRepositoryImpl) FindMembershipByID(db *gorm.DB, gymID, id string) (*models.Membership, error) {
	var m models.Membership
	err := db.Preload("Plan").
		Where("id = ? AND gym_id = ?", id, gymID).
		First(&m).Error
	if err != nil {
		return nil, translate(err, ErrMembershipNotFound)
	}
	return &m, nil
}

func (r *MembershipRepositoryImpl) FindMembershipForUpdate(db *gorm.DB, gymID, id string) (*models.Membership, error) {
	var m models.Membership
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ? AND gym_id = ?", id, gymID).
		First(&m).Error
	if err != nil {
		return nil, translate(err, ErrMembershipNotFound)
	}
	return &m, nil
}

func (r *MembershipRepositoryImpl) FindActiveForMember(db *gorm.DB, gymID, memberID string) (*models.Membership, error) {
	var m models.Membership
	err := db.Where("gym_id = ? AND member_id = ? AND is_active = ?", gymID, memberID, true).
		First(&m).Error
	if err != nil {
		return nil, translate(err, ErrMembershipNotFound)
	}
	return &m, nil
}

func (r *MembershipRepositoryImpl) ListMemberships(db *gorm.DB, gymID string) ([]models.Membership, error) {
	var out []models.Membership
	err := db.Preload("Member").Preload("Plan").
		Where("gym_id = ?", gymID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *MembershipRepositoryImpl) ListMembershipsForMember(db *gorm.DB, gymID, memberID string) ([]models.Membership, error) {
	var out []models.Membership
	err := db.Preload("Plan").
		Where("gym_id = ? AND member_id = ?", gymID, memberID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *MembershipRepositoryImpl) ListActiveWithPlans(db *gorm.DB, gymID string) ([]models.Membership, error) {
	var out []models.Membership
	err := db.Preload("Plan").
		Where("gym_id = ? AND is_active = ?", gymID, true).
		Find(&out).Error
	return out, err
}

// SaveStatus writes only status and is_active.
func (r *MembershipRepositoryImpl) SaveStatus(db *gorm.DB, membership *models.Membership) error {
	result := db.Model(&models.Membership{}).
		Where("id = ?", membership.ID).
		Updates(map[string]interface{}{
			"status":    membership.Status,
			"is_active": membership.IsActive,
		})
	if result.Error != nil {
		return translate(result.Error, ErrMembershipNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrMembershipNotFound
	}
	return nil
}

func (r *MembershipRepositoryImpl) CancelActiveForMember(db *gorm.DB, gymID, memberID string) (int64, error) {
	result := db.Model(&models.Membership{}).
		Where("gym_id = ? AND member_id = ? AND is_active = ?", gymID, memberID, true).
		Updates(map[string]interface{}{
			"status":    models.MembershipStatusCancelled,
			"is_active": false,
		})
	return result.RowsAffected, result.Error
}

// FindOpenBatch pages through non-terminal memberships of every gym by id.
func (r *MembershipRepositoryImpl) FindOpenBatch(db *gorm.DB, afterID string, limit int) ([]models.Membership, error) {
	var out []models.Membership
	err := db.Preload("Member").Preload("Plan").
		Where("status <> ? AND id > ?", models.MembershipStatusCancelled, afterID).
		Order("id ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

func (r *MembershipRepositoryImpl) CountActive(db *gorm.DB, gymID string) (int64, error) {
	var count int64
	err := db.Model(&models.Membership{}).
		Where("gym_id = ? AND is_active = ?", gymID, true).
		Count(&count).Error
	return count, err
}

func (r *MembershipRepositoryImpl) StatusDistribution(db *gorm.DB, gymID string) (map[models.MembershipStatus]int64, error) {
	var rows []struct {
		Status models.MembershipStatus
		Count  int64
	}
	err := db.Model(&models.Membership{}).
		Select("status, COUNT(*) AS count").
		Where("gym_id = ?", gymID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[models.MembershipStatus]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Count
	}
	return out, nil
}

func (r *MembershipRepositoryImpl) DurationDistribution(db *gorm.DB, gymID string) (map[int]int64, error) {
	var rows []struct {
		DurationMonths int
		Count          int64
	}
	err := db.Model(&models.Membership{}).
		Select("plans.duration_months AS duration_months, COUNT(memberships.id) AS count").
		Joins("JOIN plans ON plans.id = memberships.plan_id").
		Where("memberships.gym_id = ?", gymID).
		Group("plans.duration_months").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int]int64, len(rows))
	for _, row := range rows {
		out[row.DurationMonths] = row.Count
	}
	return out, nil
}
