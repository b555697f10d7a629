package repositories

import (
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"

	"gorm.io/gorm"
)

type GymRepository interface {
	CreateGym(db *gorm.DB, gym *models.Gym) error
	FindGymByID(db *gorm.DB, id string) (*models.Gym, error)
	FindActiveGym(db *gorm.DB, id string) (*models.Gym, error)
	ExistsByEmailOrPhone(db *gorm.DB, email, phone string) (bool, error)
}

type GymRepositoryImpl struct{}

func NewGymRepository() GymRepository {
	return &GymRepositoryImpl{}
}

func (r *GymRepositoryImpl) CreateGym(db *gorm.DB, gym *models.Gym) error {
	return translate(db.Create(gym).Error, ErrGymNotFound)
}

func (r *GymRepositoryImpl) FindGymByID(db *gorm.DB, id string) (*models.Gym, error) {
	var gym models.Gym
	if err := db.Where("id = ?", id).First(&gym).Error; err != nil {
		return nil, translate(err, ErrGymNotFound)
	}
	return &gym, nil
}

func (r *GymRepositoryImpl) FindActiveGym(db *gorm.DB, id string) (*models.Gym, error) {
	var gym models.Gym
	if err := db.Where("id = ? AND is_active = ?", id, true).First(&gym).Error; err != nil {
		return nil, translate(err, ErrGymNotFound)
	}
	return &gym, nil
}

func (r *GymRepositoryImpl) ExistsByEmailOrPhone(db *gorm.DB, email, phone string) (bool, error) {
	var count int64
	err := db.Model(&models.Gym{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error
	return count > 0, err
}
