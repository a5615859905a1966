package services

import (
	"sort"
	"time"

	"github.com/lunora-app/lunora/internal/models"
)

const (
	DayPhasePeriod    = "period"
	DayPhaseFertile   = "fertile"
	DayPhaseOvulation = "ovulation"
	DayPhaseUnknown   = "unknown"
)

const (
	IntensityNone   = "none"
	IntensityLight  = models.FlowLight
	IntensityMedium = models.FlowMedium
	IntensityHeavy  = models.FlowHeavy
)

const (
	// Luteal phase is modeled as a fixed 14 days; ovulation sits that many
	// days before the following period start.
	LutealPhaseDays = 14

	// Fertile days projected before each ovulation day.
	fertileDaysBeforeOvulation = 5

	// Future cycles materialized by a single projection run.
	projectionHorizonCycles = 3

	recentCycleWindow = 6
	recentCycleDecay  = 0.8
)

type CycleDay struct {
	Date         time.Time `json:"date"`
	Phase        string    `json:"phase"`
	Intensity    string    `json:"intensity"`
	IsPrediction bool      `json:"is_prediction"`
}

type PhaseRange struct {
	Phase string    `json:"phase"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type CyclePrediction struct {
	NextPeriodStart    time.Time    `json:"next_period_start"`
	NextPeriodEnd      time.Time    `json:"next_period_end"`
	Confidence         float64      `json:"confidence"`
	BasedOnCycleCount  int          `json:"based_on_cycle_count"`
	AverageCycleLength int          `json:"average_cycle_length"`
	StandardDeviation  float64      `json:"standard_deviation"`
	RegularityScore    float64      `json:"regularity_score"`
	Phases             []PhaseRange `json:"phases_prediction"`
}

// ProjectCycleDays turns the log history into an ascending day-by-day
// projection: logged periods first, then three predicted cycles starting at
// or after fromDate. Logged days always win over predicted days that land on
// the same date. An empty history yields an empty projection.
func ProjectCycleDays(logs []models.PeriodLog, fromDate time.Time) []CycleDay {
	if len(logs) == 0 {
		return []CycleDay{}
	}

	from := DateOnly(fromDate)
	sorted := SortLogsAscending(logs)
	stats := AnalyzeCycles(sorted)

	days := make([]CycleDay, 0, 64)
	seen := make(map[string]bool)

	for _, log := range sorted {
		span := DaysBetween(log.StartDate, log.EndDate) + 1
		for offset := 0; offset < span; offset++ {
			day := AddDays(log.StartDate, offset)
			key := DayKey(day)
			if seen[key] {
				continue
			}
			seen[key] = true
			days = append(days, CycleDay{
				Date:         day,
				Phase:        DayPhasePeriod,
				Intensity:    taperedIntensity(offset, span),
				IsPrediction: false,
			})
		}
	}

	cycleLength := forecastCycleLength(stats)
	periodLength := stats.AveragePeriodLength
	anchor := nextPeriodAnchor(sorted[len(sorted)-1].StartDate, cycleLength, from)

	addProjected := func(day time.Time, phase string, intensity string) {
		key := DayKey(day)
		if seen[key] {
			return
		}
		seen[key] = true
		days = append(days, CycleDay{
			Date:         day,
			Phase:        phase,
			Intensity:    intensity,
			IsPrediction: true,
		})
	}

	for cycle := 0; cycle < projectionHorizonCycles; cycle++ {
		cycleStart := AddDays(anchor, cycle*cycleLength)
		for offset := 0; offset < periodLength; offset++ {
			addProjected(AddDays(cycleStart, offset), DayPhasePeriod, taperedIntensity(offset, periodLength))
		}

		ovulation := AddDays(cycleStart, cycleLength-LutealPhaseDays)
		for offset := fertileDaysBeforeOvulation; offset >= 1; offset-- {
			addProjected(AddDays(ovulation, -offset), DayPhaseFertile, IntensityNone)
		}
		addProjected(ovulation, DayPhaseOvulation, IntensityNone)
	}

	sort.Slice(days, func(i, j int) bool {
		return days[i].Date.Before(days[j].Date)
	})
	return days
}

// PredictNextCycle summarises the forecast: the next period span at or after
// fromDate, per-phase date ranges for that cycle, and a 0-100 confidence.
// It never fails; with no usable cycle history it reports defaults and a
// zero confidence and leaves the threshold check to the caller.
func PredictNextCycle(logs []models.PeriodLog, fromDate time.Time) CyclePrediction {
	stats := AnalyzeCycles(logs)
	prediction := CyclePrediction{
		BasedOnCycleCount:  len(logs),
		AverageCycleLength: stats.AverageCycleLength,
		StandardDeviation:  stats.StandardDeviation,
		RegularityScore:    stats.RegularityScore,
		Confidence:         predictionConfidence(stats),
		Phases:             []PhaseRange{},
	}
	if len(logs) == 0 {
		return prediction
	}

	from := DateOnly(fromDate)
	sorted := SortLogsAscending(logs)
	cycleLength := forecastCycleLength(stats)

	start := nextPeriodAnchor(sorted[len(sorted)-1].StartDate, cycleLength, from)
	periodEnd := AddDays(start, stats.AveragePeriodLength-1)
	ovulation := AddDays(start, cycleLength-LutealPhaseDays)

	prediction.NextPeriodStart = start
	prediction.NextPeriodEnd = periodEnd
	prediction.Phases = []PhaseRange{
		{Phase: "menstrual", Start: start, End: periodEnd},
		{Phase: "follicular", Start: AddDays(periodEnd, 1), End: AddDays(ovulation, -1)},
		{Phase: "ovulation", Start: ovulation, End: ovulation},
		{Phase: "luteal", Start: AddDays(ovulation, 1), End: AddDays(start, cycleLength-1)},
	}
	return prediction
}

// nextPeriodAnchor projects the most recent logged start forward by whole
// cycle lengths until it is not before fromDate. When fromDate is not past
// the last logged start, the logged start itself is the anchor, so the first
// projected period is never in the past relative to fromDate.
func nextPeriodAnchor(lastStart time.Time, cycleLength int, fromDate time.Time) time.Time {
	anchor := DateOnly(lastStart)
	if !fromDate.After(anchor) || cycleLength <= 0 {
		return anchor
	}
	for anchor.Before(fromDate) {
		anchor = AddDays(anchor, cycleLength)
	}
	return anchor
}

// forecastCycleLength prefers an exponentially weighted average of the most
// recent cycle lengths once at least three plausible cycles exist; older
// cycles decay by 0.8 per step. With thinner history it falls back to the
// plain mean already rounded into the statistics.
func forecastCycleLength(stats CycleStatistics) int {
	history := stats.CycleLengthHistory
	if len(history) < 3 {
		return stats.AverageCycleLength
	}
	if len(history) > recentCycleWindow {
		history = history[len(history)-recentCycleWindow:]
	}

	var weightedSum, weightTotal float64
	weight := 1.0
	for i := len(history) - 1; i >= 0; i-- {
		weightedSum += weight * float64(history[i])
		weightTotal += weight
		weight *= recentCycleDecay
	}
	return roundToInt(weightedSum / weightTotal)
}

// predictionConfidence blends the regularity score with a cycle-count factor
// and a variation penalty, each held inside [0,1], then scales to 0-100.
func predictionConfidence(stats CycleStatistics) float64 {
	base := stats.RegularityScore / 100

	countFactor := clampFloat(float64(len(stats.CycleLengthHistory)-3)/9, 0, 1)
	countBlend := 0.7 + 0.3*countFactor

	variationPenalty := 0.8
	if mean := meanInts(stats.CycleLengthHistory); mean > 0 {
		variationPenalty = 0.8 + 0.2*clampFloat(1-stats.StandardDeviation/mean, 0, 1)
	}

	return clampFloat(base*countBlend*variationPenalty*100, 0, 100)
}

// taperedIntensity grades flow across a period span: heavy at the start,
// medium through the middle, light at the end.
func taperedIntensity(offset int, span int) string {
	if span <= 0 {
		return IntensityNone
	}
	position := float64(offset) / float64(span)
	switch {
	case position < 1.0/3:
		return IntensityHeavy
	case position < 2.0/3:
		return IntensityMedium
	default:
		return IntensityLight
	}
}
