package inventory

import (
	"github.com/caterstock/caterstock-backend/pkg/enums"
)

// Measurement is the tagged reading accepted by the write path. Exactly one of
// level/quantity is carried, fixed by the constructor, so a caller cannot hand
// the store a mixed or empty observation.
type Measurement struct {
	discipline enums.Discipline
	level      enums.ObservationLevel
	quantity   int
}

// LevelMeasurement wraps a three-level reading.
func LevelMeasurement(level enums.ObservationLevel) Measurement {
	return Measurement{discipline: enums.DisciplineThreeLevel, level: level}
}

// QuantityMeasurement wraps a counted reading.
func QuantityMeasurement(quantity int) Measurement {
	return Measurement{discipline: enums.DisciplineNumericThreshold, quantity: quantity}
}

// Discipline returns the measurement kind the reading belongs to.
func (m Measurement) Discipline() enums.Discipline {
	return m.discipline
}

// Level returns the discrete reading; valid only for three-level measurements.
func (m Measurement) Level() enums.ObservationLevel {
	return m.level
}

// Quantity returns the counted reading; valid only for numeric measurements.
func (m Measurement) Quantity() int {
	return m.quantity
}
