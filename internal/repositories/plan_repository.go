package repositories

import (
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"

	"gorm.io/gorm"
)

type PlanRepository interface {
	CreatePlan(db *gorm.DB, plan *models.Plan) error
	FindPlanByID(db *gorm.DB, gymID, id string) (*models.Plan, error)
	FindActivePlan(db *gorm.DB, gymID, id string) (*models.Plan, error)
	FindInactiveByName(db *gorm.DB, gymID, name string) (*models.Plan, error)
	ActiveNameTaken(db *gorm.DB, gymID, name, exceptID string) (bool, error)
	ListActivePlans(db *gorm.DB, gymID string) ([]models.Plan, error)
	UpdatePlan(db *gorm.DB, plan *models.Plan) error
	SetPlanActive(db *gorm.DB, gymID, id string, active bool) error
}

type PlanRepositoryImpl struct{}

func NewPlanRepository() PlanRepository {
	return &PlanRepositoryImpl{}
}

func (r *PlanRepositoryImpl) CreatePlan(db *gorm.DB, plan *models.Plan) error {
	return translate(db.Omit("Gym").Create(plan).Error, ErrPlanNotFound)
}

func (r *PlanRepositoryImpl) FindPlanByID(db *gorm.DB, gymID, id string) (*models.Plan, error) {
	var plan models.Plan
	if err := db.Where("id = ? AND gym_id = ?", id, gymID).First(&plan).Error; err != nil {
		return nil, translate(err, ErrPlanNotFound)
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) FindActivePlan(db *gorm.DB, gymID, id string) (*models.Plan, error) {
	var plan models.Plan
	err := db.Where("id = ? AND gym_id = ? AND is_active = ?", id, gymID, true).
		First(&plan).Error
	if err != nil {
		return nil, translate(err, ErrPlanNotFound)
	}
	return &plan, nil
}

// FindInactiveByName returns the most recently deactivated plan with name.
func (r *PlanRepositoryImpl) FindInactiveByName(db *gorm.DB, gymID, name string) (*models.Plan, error) {
	var plan models.Plan
	err := db.Where("gym_id = ? AND name = ? AND is_active = ?", gymID, name, false).
		Order("updated_at DESC").
		First(&plan).Error
	if err != nil {
		return nil, translate(err, ErrPlanNotFound)
	}
	return &plan, nil
}

func (r *PlanRepositoryImpl) ActiveNameTaken(db *gorm.DB, gymID, name, exceptID string) (bool, error) {
	var count int64
	q := db.Model(&models.Plan{}).Where("gym_id = ? AND name = ? AND is_active = ?", gymID, name, true)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *PlanRepositoryImpl) ListActivePlans(db *gorm.DB, gymID string) ([]models.Plan, error) {
	var plans []models.Plan
	err := db.Where("gym_id = ? AND is_active = ?", gymID, true).
		Order("name ASC").
		Find(&plans).Error
	return plans, err
}

// UpdatePlan persists every mutable field, including is_active, so a
// reactivation can update price and duration in one statement.
func (r *PlanRepositoryImpl) UpdatePlan(db *gorm.DB, plan *models.Plan) error {
	err := db.Model(plan).
		Select("name", "duration_months", "price", "description", "features", "is_active").
		Updates(plan).Error
	return translate(err, ErrPlanNotFound)
}

func (r *PlanRepositoryImpl) SetPlanActive(db *gorm.DB, gymID, id string, active bool) error {
	result := db.Model(&models.Plan{}).
		Where("id = ? AND gym_id = ?", id, gymID).
		Update("is_active", active)
	if result.Error != nil {
		return translate(result.Error, ErrPlanNotFound)
	}
	if result.RowsAffected == 0 {
		return ErrPlanNotFound
	}
	return nil
}
