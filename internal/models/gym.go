package models

// Gym is the tenant root. Every other record is scoped by GymID.
type Gym struct {
	BaseModel
	Name         string `gorm:"size:120;not null" json:"name"`
	Phone        string `gorm:"size:20;not null;uniqueIndex" json:"phone"`
	Email        string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	IsActive     bool   `gorm:"not null;index" json:"is_active"`
}
