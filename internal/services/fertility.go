package services

import "time"

const (
	WindowHighlyFertile = "highly-fertile"
	WindowFertile       = "fertile"
	WindowLessFertile   = "less-fertile"
	WindowInfertile     = "infertile"
)

// Base daily conception probabilities per window, before confidence scaling.
const (
	highlyFertileBaseProbability = 0.3
	fertileBaseProbability       = 0.2
	lessFertileBaseProbability   = 0.1
)

type FertilityWindow struct {
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Type        string    `json:"type"`
	Probability float64   `json:"probability"`
}

// ComputeFertilityWindows lays out the graded windows around a predicted
// ovulation date. Probabilities are the per-window base scaled by the
// forecast confidence (0-1); confidence is clamped so a miscalibrated caller
// cannot produce probabilities above the base.
func ComputeFertilityWindows(ovulation time.Time, confidence float64) []FertilityWindow {
	day := DateOnly(ovulation)
	confidence = clampFloat(confidence, 0, 1)

	return []FertilityWindow{
		{
			Start:       AddDays(day, -5),
			End:         AddDays(day, -4),
			Type:        WindowLessFertile,
			Probability: lessFertileBaseProbability * confidence,
		},
		{
			Start:       AddDays(day, -3),
			End:         AddDays(day, -1),
			Type:        WindowHighlyFertile,
			Probability: highlyFertileBaseProbability * confidence,
		},
		{
			Start:       day,
			End:         AddDays(day, 1),
			Type:        WindowFertile,
			Probability: fertileBaseProbability * confidence,
		},
	}
}

// ConceptionProbabilityOn returns the graded probability for a date, zero
// when the date falls in no window.
func ConceptionProbabilityOn(date time.Time, windows []FertilityWindow) float64 {
	day := DateOnly(date)
	for _, window := range windows {
		if BetweenInclusive(day, window.Start, window.End) {
			return window.Probability
		}
	}
	return 0
}

// PhaseRelativeToOvulation classifies a date against the ovulation anchor:
// the ovulation day itself, luteal for up to 14 days after, follicular
// otherwise (including the 5 days leading in). The day right after ovulation
// still belongs to the fertile window, so luteal starts one day later; no
// date inside a fertility window ever classifies as luteal.
func PhaseRelativeToOvulation(date time.Time, ovulation time.Time) string {
	day := DateOnly(date)
	anchor := DateOnly(ovulation)

	if SameCalendarDay(day, anchor) {
		return PhaseOvulation
	}
	diff := DaysBetween(anchor, day)
	if diff > 1 && diff <= LutealPhaseDays {
		return PhaseLuteal
	}
	return PhaseFollicular
}

// IsDateInFertileWindow and IsOvulationDay are the convenience pair consumers
// use for "today" badges. Membership is purely positional: a low-confidence
// forecast zeroes the probabilities but the window spans still stand.
func IsDateInFertileWindow(date time.Time, windows []FertilityWindow) bool {
	day := DateOnly(date)
	for _, window := range windows {
		if BetweenInclusive(day, window.Start, window.End) {
			return true
		}
	}
	return false
}

func IsOvulationDay(date time.Time, ovulation time.Time) bool {
	return !ovulation.IsZero() && SameCalendarDay(DateOnly(date), DateOnly(ovulation))
}
