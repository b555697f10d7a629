package models

import "time"

// Member phone numbers are unique per gym whether the member is active or not,
// so a returning customer is reactivated instead of duplicated.
type Member struct {
	BaseModel
	GymID       string    `gorm:"type:uuid;not null;index;uniqueIndex:uq_members_gym_phone" json:"gym_id"`
	Name        string    `gorm:"size:120;not null" json:"name"`
	PhoneNumber *string   `gorm:"size:20;uniqueIndex:uq_members_gym_phone" json:"phone_number,omitempty"`
	JoinDate    time.Time `gorm:"not null" json:"join_date"`
	IsActive    bool      `gorm:"not null;index" json:"is_active"`

	Gym *Gym `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"-"`
}
