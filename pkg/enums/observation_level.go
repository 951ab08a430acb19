package enums

import "fmt"

// ObservationLevel is the discrete reading recorded for three-level goods.
type ObservationLevel string

const (
	ObservationLevelLow        ObservationLevel = "low"
	ObservationLevelSufficient ObservationLevel = "sufficient"
	ObservationLevelHigh       ObservationLevel = "high"
)

var validObservationLevels = []ObservationLevel{
	ObservationLevelLow,
	ObservationLevelSufficient,
	ObservationLevelHigh,
}

// IsValid checks whether the given level matches the canonical enum.
func (o ObservationLevel) IsValid() bool {
	for _, candidate := range validObservationLevels {
		if candidate == o {
			return true
		}
	}
	return false
}

// Descriptor returns the wording used for the level in alert messages.
func (o ObservationLevel) Descriptor() string {
	switch o {
	case ObservationLevelLow:
		return "running low"
	case ObservationLevelSufficient:
		return "sufficient"
	case ObservationLevelHigh:
		return "overstocked"
	default:
		return string(o)
	}
}

// ParseObservationLevel converts raw strings into ObservationLevel.
func ParseObservationLevel(value string) (ObservationLevel, error) {
	for _, candidate := range validObservationLevels {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid observation level %q", value)
}
