package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// Good is a tracked stock item. The threshold pair is present iff the
// discipline is numeric_threshold; three-level goods keep both columns null.
type Good struct {
	ID            uuid.UUID          `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name          string             `gorm:"type:text;not null" json:"name"`
	Unit          string             `gorm:"type:text;not null" json:"unit"`
	Category      enums.GoodCategory `gorm:"type:good_category;not null" json:"category"`
	Discipline    enums.Discipline   `gorm:"type:measurement_discipline;not null" json:"discipline"`
	ThresholdLow  *int               `gorm:"type:integer" json:"thresholdLow,omitempty"`
	ThresholdHigh *int               `gorm:"type:integer" json:"thresholdHigh,omitempty"`
	CreatedAt     time.Time          `gorm:"type:timestamptz;default:now()" json:"createdAt"`
	UpdatedAt     time.Time          `gorm:"type:timestamptz;default:now()" json:"updatedAt"`
}
