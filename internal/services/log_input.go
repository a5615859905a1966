package services

import (
	"errors"
	"strings"
	"time"
)

const MaxSymptomNameLength = 80

// Sanity bounds for basal thermometer readings in °C.
const (
	minPlausibleCelsius = 34.0
	maxPlausibleCelsius = 42.0
)

var (
	ErrInvalidLogRange        = errors.New("period end date before start date")
	ErrInvalidFlowIntensity   = errors.New("invalid flow intensity")
	ErrInvalidSymptomName     = errors.New("invalid symptom name")
	ErrImplausibleTemperature = errors.New("implausible temperature reading")
)

type PeriodLogInput struct {
	StartDate     time.Time
	EndDate       time.Time
	FlowIntensity string
}

// NormalizePeriodLogInput is the validation boundary in front of the engine:
// it rejects inverted ranges and unknown flow values and pins both dates to
// calendar midnights in the configured location. The engine itself assumes
// input that went through here.
func NormalizePeriodLogInput(input PeriodLogInput, location *time.Location) (PeriodLogInput, error) {
	input.StartDate = DateAtLocation(input.StartDate, location)
	input.EndDate = DateAtLocation(input.EndDate, location)

	if input.EndDate.Before(input.StartDate) {
		return input, ErrInvalidLogRange
	}
	if !IsValidFlowIntensity(input.FlowIntensity) {
		return input, ErrInvalidFlowIntensity
	}
	return input, nil
}

func IsValidFlowIntensity(flow string) bool {
	switch flow {
	case IntensityLight, IntensityMedium, IntensityHeavy:
		return true
	default:
		return false
	}
}

func NormalizeSymptomName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > MaxSymptomNameLength {
		return "", ErrInvalidSymptomName
	}
	return name, nil
}

func ValidateTemperature(celsius float64) error {
	if celsius < minPlausibleCelsius || celsius > maxPlausibleCelsius {
		return ErrImplausibleTemperature
	}
	return nil
}
