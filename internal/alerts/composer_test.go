package alerts

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/caterstock/caterstock-backend/pkg/db/models"
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

func intPtr(v int) *int { return &v }

func TestComposeNumericLow(t *testing.T) {
	t.Parallel()

	quantity := 2
	message := Compose(ComposeInput{
		Good: models.Good{
			ID:            uuid.New(),
			Name:          "Eggs",
			Unit:          "pcs",
			Category:      enums.GoodCategoryFood,
			Discipline:    enums.DisciplineNumericThreshold,
			ThresholdLow:  intPtr(5),
			ThresholdHigh: intPtr(50),
		},
		Status:       enums.StockStatusLow,
		Quantity:     &quantity,
		ObserverName: "Staff",
		RecordedAt:   time.Date(2026, 8, 10, 9, 30, 0, 0, time.UTC),
	})

	lines := strings.Split(message, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), message)
	}
	if lines[0] != "[Stock Alert]" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if lines[1] != "- Eggs (food): 2pcs" {
		t.Fatalf("unexpected reading line: %q", lines[1])
	}
	if lines[2] != "- Status: ⚠️ low" {
		t.Fatalf("unexpected status line: %q", lines[2])
	}
	if lines[3] != "- Bounds: low 5pcs / high 50pcs" {
		t.Fatalf("unexpected bounds line: %q", lines[3])
	}
	if !strings.Contains(lines[4], "Staff") || !strings.Contains(lines[4], "2026-08-10 09:30") {
		t.Fatalf("unexpected updated-by line: %q", lines[4])
	}
}

func TestComposeThreeLevelHigh(t *testing.T) {
	t.Parallel()

	level := enums.ObservationLevelHigh
	message := Compose(ComposeInput{
		Good: models.Good{
			ID:         uuid.New(),
			Name:       "Oolong tea",
			Unit:       "bottles",
			Category:   enums.GoodCategoryDrink,
			Discipline: enums.DisciplineThreeLevel,
		},
		Status:       enums.StockStatusHigh,
		Level:        &level,
		ObserverName: "Manager",
		RecordedAt:   time.Date(2026, 8, 10, 18, 0, 0, 0, time.UTC),
	})

	if !strings.Contains(message, "- Oolong tea (drinks): overstocked") {
		t.Fatalf("expected level descriptor in reading line: %q", message)
	}
	if !strings.Contains(message, "- Status: 🔴 high") {
		t.Fatalf("expected high status marker: %q", message)
	}
	if !strings.Contains(message, "- Bounds: three-level management") {
		t.Fatalf("expected three-level bounds line: %q", message)
	}
}

func TestComposeNormalStatusIsEmpty(t *testing.T) {
	t.Parallel()

	quantity := 25
	message := Compose(ComposeInput{
		Good:     models.Good{Name: "Eggs", Unit: "pcs", Category: enums.GoodCategoryFood},
		Status:   enums.StockStatusNormal,
		Quantity: &quantity,
	})
	if message != "" {
		t.Fatalf("normal status must not compose a message, got %q", message)
	}
}
