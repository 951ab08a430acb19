package inventory

import (
	"fmt"

	"github.com/caterstock/caterstock-backend/pkg/enums"
	pkgerrors "github.com/caterstock/caterstock-backend/pkg/errors"
)

// ClassifyThreeLevel maps a discrete reading onto the unified status scale.
// Total over the level enum.
func ClassifyThreeLevel(level enums.ObservationLevel) enums.StockStatus {
	switch level {
	case enums.ObservationLevelLow:
		return enums.StockStatusLow
	case enums.ObservationLevelHigh:
		return enums.StockStatusHigh
	default:
		return enums.StockStatusNormal
	}
}

// ClassifyNumeric resolves a counted quantity against the good's thresholds.
// A quantity equal to either bound is normal; only strictly outside the band
// is low/high. An inverted threshold pair is rejected: creation validates it,
// but a good edited after creation could still carry one.
func ClassifyNumeric(quantity, thresholdLow, thresholdHigh int) (enums.StockStatus, error) {
	if thresholdLow > thresholdHigh {
		return "", pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("inverted threshold configuration: low %d > high %d", thresholdLow, thresholdHigh))
	}
	switch {
	case quantity < thresholdLow:
		return enums.StockStatusLow, nil
	case quantity > thresholdHigh:
		return enums.StockStatusHigh, nil
	default:
		return enums.StockStatusNormal, nil
	}
}
