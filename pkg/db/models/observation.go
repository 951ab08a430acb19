package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// Observation is one append-only entry in a good's stock log. Rows are
// immutable once inserted; corrections are new rows. Exactly one of
// Level/Quantity is set, matching the good's discipline; the write path
// enforces this through inventory.Measurement.
//
// The id is a bigserial so that the "latest observation" tie-break on equal
// timestamps follows insertion order.
type Observation struct {
	ID         int64                   `gorm:"primaryKey;autoIncrement" json:"id"`
	GoodID     uuid.UUID               `gorm:"type:uuid;not null;index:idx_observations_good_recorded,priority:1" json:"goodId"`
	Level      *enums.ObservationLevel `gorm:"type:observation_level" json:"level,omitempty"`
	Quantity   *int                    `gorm:"type:integer" json:"quantity,omitempty"`
	RecordedBy uuid.UUID               `gorm:"type:uuid;not null" json:"recordedBy"`
	RecordedAt time.Time               `gorm:"type:timestamptz;not null;index:idx_observations_good_recorded,priority:2" json:"recordedAt"`
}
