package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Plan names are unique per gym among active plans only; the partial index
// is created in database.AutoMigrate.
type Plan struct {
	BaseModel
	GymID          string          `gorm:"type:uuid;not null;index" json:"gym_id"`
	Name           string          `gorm:"size:120;not null" json:"name"`
	DurationMonths int             `gorm:"not null" json:"duration_months"`
	Price          decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	Description    *string         `gorm:"type:text" json:"description,omitempty"`
	Features       datatypes.JSON  `json:"features,omitempty"`
	IsActive       bool            `gorm:"not null;index" json:"is_active"`

	Gym *Gym `gorm:"foreignKey:GymID;constraint:OnDelete:CASCADE" json:"-"`
}

// FeatureList decodes Features; a malformed column yields an empty list.
func (p *Plan) FeatureList() []string {
	if len(p.Features) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(p.Features, &out); err != nil {
		return []string{}
	}
	return out
}

func EncodeFeatures(features []string) datatypes.JSON {
	if features == nil {
		features = []string{}
	}
	raw, _ := json.Marshal(features)
	return datatypes.JSON(raw)
}
