package models

import "time"

// Membership binds a member to a plan for [StartDate, EndDate).
// Status cancelled always implies IsActive == false; at most one row per
// (gym, member) has IsActive == true.
type Membership struct {
	BaseModel
	GymID     string           `gorm:"type:uuid;not null;index" json:"gym_id"`
	MemberID  string           `gorm:"type:uuid;not null;index" json:"member_id"`
	PlanID    string           `gorm:"type:uuid;not null;index" json:"plan_id"`
	StartDate time.Time        `gorm:"not null" json:"start_date"`
	EndDate   time.Time        `gorm:"not null;index" json:"end_date"`
	Status    MembershipStatus `gorm:"size:20;not null;index" json:"status"`
	IsActive  bool             `gorm:"not null" json:"is_active"`

	Member   *Member   `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	Plan     *Plan     `gorm:"foreignKey:PlanID" json:"plan,omitempty"`
	Payments []Payment `gorm:"foreignKey:MembershipID;constraint:OnDelete:CASCADE" json:"-"`
}
