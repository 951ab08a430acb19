package alerts

import (
	"fmt"
	"strings"
	"time"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

const timestampLayout = "2006-01-02 15:04 MST"

// ComposeInput carries everything the alert message needs. Exactly one of
// Level/Quantity is set, matching the good's discipline.
type ComposeInput struct {
	Good         models.Good
	Status       enums.StockStatus
	Level        *enums.ObservationLevel
	Quantity     *int
	ObserverName string
	RecordedAt   time.Time
}

// Compose renders the human-readable alert pushed to the team channel.
func Compose(input ComposeInput) string {
	var statusText string
	switch input.Status {
	case enums.StockStatusLow:
		statusText = "⚠️ low"
	case enums.StockStatusHigh:
		statusText = "🔴 high"
	default:
		return ""
	}

	var reading, bounds string
	if input.Quantity != nil {
		reading = fmt.Sprintf("%d%s", *input.Quantity, input.Good.Unit)
		if input.Good.ThresholdLow != nil && input.Good.ThresholdHigh != nil {
			bounds = fmt.Sprintf("low %d%s / high %d%s",
				*input.Good.ThresholdLow, input.Good.Unit,
				*input.Good.ThresholdHigh, input.Good.Unit)
		}
	} else if input.Level != nil {
		reading = input.Level.Descriptor()
		bounds = "three-level management"
	}

	lines := []string{
		"[Stock Alert]",
		fmt.Sprintf("- %s (%s): %s", input.Good.Name, input.Good.Category.Label(), reading),
		fmt.Sprintf("- Status: %s", statusText),
		fmt.Sprintf("- Bounds: %s", bounds),
		fmt.Sprintf("- Updated by: %s (%s)", input.ObserverName, input.RecordedAt.UTC().Format(timestampLayout)),
	}
	return strings.Join(lines, "\n")
}
