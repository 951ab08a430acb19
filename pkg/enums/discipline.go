package enums

import "fmt"

// Discipline maps to the measurement_discipline enum in Postgres. It decides
// whether a good is assessed on a three-level scale or against numeric thresholds.
type Discipline string

const (
	DisciplineThreeLevel       Discipline = "three_level"
	DisciplineNumericThreshold Discipline = "numeric_threshold"
)

var validDisciplines = []Discipline{
	DisciplineThreeLevel,
	DisciplineNumericThreshold,
}

// IsValid checks whether the given discipline matches the canonical enum.
func (d Discipline) IsValid() bool {
	for _, candidate := range validDisciplines {
		if candidate == d {
			return true
		}
	}
	return false
}

// ParseDiscipline converts raw strings into Discipline.
func ParseDiscipline(value string) (Discipline, error) {
	for _, candidate := range validDisciplines {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid measurement discipline %q", value)
}
