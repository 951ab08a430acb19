package inventory

import (
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// GoodStatus is the derived current-state view of one tracked good. It is
// recomputed from the observation log on every query and never cached.
type GoodStatus struct {
	Good            models.Good             `json:"good"`
	CurrentQuantity *int                    `json:"currentQuantity,omitempty"`
	CurrentLevel    *enums.ObservationLevel `json:"currentLevel,omitempty"`
	Status          enums.StockStatus       `json:"status"`
	LastUpdated     time.Time               `json:"lastUpdated"`
	UpdatedByName   string                  `json:"updatedByName"`
}

// HistoryParams configures the audit-trail query.
type HistoryParams struct {
	GoodID *uuid.UUID
	Limit  int
}

// HistoryEntry is one observation enriched with display names for the audit view.
type HistoryEntry struct {
	Observation models.Observation `json:"observation"`
	GoodName    string             `json:"goodName"`
	RecordedBy  string             `json:"recordedByName"`
}
