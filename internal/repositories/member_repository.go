package repositories

import (
	"github.com/AdityaRaghav22/GYM-SAAS/internal/models"

	"gorm.io/gorm"
)

type MemberRepository interface {
	CreateMember(db *gorm.DB, member *models.Member) error
	FindMemberByID(db *gorm.DB, gymID, id string) (*models.Member, error)
	FindActiveMember(db *gorm.DB, gymID, id string) (*models.Member, error)
	FindInactiveByPhone(db *gorm.DB, gymID, phone string) (*models.Member, error)
	PhoneTaken(db *gorm.DB, gymID, phone, exceptID string) (bool, error)
	ListMembers(db *gorm.DB, gymID string) ([]models.Member, error)
	UpdateMember(db *gorm.DB, member *models.Member) error
	SetMemberActive(db *gorm.DB, gymID, id string, active bool) error
	CountMembers(db *gorm.DB, gymID string) (int64, error)
}

type MemberRepositoryImpl struct{}

func NewMemberRepository() MemberRepository {
	return &MemberRepositoryImpl{}
}

func (r *MemberRepositoryImpl) CreateMember(db *gorm.DB, member *models.Member) error {
	return translate(db.Omit("Gym").Create(member).Error, ErrMemberNotFound)
}

func (r *MemberRepositoryImpl) FindMemberByID(db *gorm.DB, gymID, id string) (*models.Member, error) {
	var member models.Member
	if err := db.Where("id = ? AND gym_id = ?", id, gymID).First(&member).Error; err != nil {
		return nil, translate(err, ErrMemberNotFound)
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindActiveMember(db *gorm.DB, gymID, id string) (*models.Member, error) {
	var member models.Member
	err := db.Where("id = ? AND gym_id = ? AND is_active = ?", id, gymID, true).
		First(&member).Error
	if err != nil {
		return nil, translate(err, ErrMemberNotFound)
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindInactiveByPhone(db *gorm.DB, gymID, phone string) (*models.Member, error) {
	var member models.Member
	err := db.Where("gym_id = ? AND phone_number = ? AND is_active = ?", gymID, phone, false).
		First(&member).Error
	if err != nil {
		return nil, translate(err, ErrMemberNotFound)
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) PhoneTaken(db *gorm.DB, gymID, phone, exceptID string) (bool, error) {
	var count int64
	q := db.Model(&models.Member{}).Where("gym_id = ? AND phone_number = ?", gymID, phone)
	if exceptID != "" {
		q = q.Where("id <> ?", exceptID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *MemberRepositoryImpl) ListMembers(db *gorm.DB, gymID string) ([]models.Member, error) {
	var members []models.Member
	err := db.Where("gym_id = ?", gymID).Order("name ASC").Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) UpdateMember(db *gorm.DB, member *models.Member) error {
	err := db.Model(member).
		Select("name", "phone_number").
		Updates(member).Error
	return translate(err, ErrMemberNotFound)
}

func (r *MemberRepositoryImpl) SetMemberActive(db *gorm.DB, gymID, id string, active bool) error {
	result := db.Model(&models.Member{}).
		Where("id = ? AND gym_id = ?", id, gymID).
		Update("is_active", active)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) CountMembers(db *gorm.DB, gymID string) (int64, error) {
	var count int64
	err := db.Model(&models.Member{}).Where("gym_id = ?", gymID).Count(&count).Error
	return count, err
}
