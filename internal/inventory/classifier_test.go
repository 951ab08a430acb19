package inventory

import (
	"testing"

	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
)

func TestClassifyThreeLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		level enums.ObservationLevel
		want  enums.StockStatus
	}{
		{enums.ObservationLevelLow, enums.StockStatusLow},
		{enums.ObservationLevelSufficient, enums.StockStatusNormal},
		{enums.ObservationLevelHigh, enums.StockStatusHigh},
	}

	for _, tc := range cases {
		if got := ClassifyThreeLevel(tc.level); got != tc.want {
			t.Fatalf("ClassifyThreeLevel(%s) = %s, want %s", tc.level, got, tc.want)
		}
	}
}

func TestClassifyNumericBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		quantity int
		want     enums.StockStatus
	}{
		{"below low bound", 4, enums.StockStatusLow},
		{"exactly low bound", 5, enums.StockStatusNormal},
		{"inside band", 25, enums.StockStatusNormal},
		{"exactly high bound", 50, enums.StockStatusNormal},
		{"above high bound", 51, enums.StockStatusHigh},
		{"zero", 0, enums.StockStatusLow},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ClassifyNumeric(tc.quantity, 5, 50)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("ClassifyNumeric(%d, 5, 50) = %s, want %s", tc.quantity, got, tc.want)
			}
		})
	}
}

func TestClassifyNumericEqualBounds(t *testing.T) {
	t.Parallel()

	// A degenerate band where low == high still has a normal point.
	got, err := ClassifyNumeric(7, 7, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != enums.StockStatusNormal {
		t.Fatalf("ClassifyNumeric(7, 7, 7) = %s, want normal", got)
	}
}

func TestClassifyNumericInvertedThresholds(t *testing.T) {
	t.Parallel()

	_, err := ClassifyNumeric(10, 50, 5)
	if err == nil {
		t.Fatal("expected error for inverted thresholds")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error code: %v", err)
	}
}
