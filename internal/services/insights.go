package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/lunora-app/lunora/internal/models"
)

const (
	InsightKindPrediction  = "prediction"
	InsightKindRegularity  = "regularity"
	InsightKindSymptom     = "symptom"
	InsightKindTemperature = "temperature"
)

// Minimum biphasic shift treated as a real post-ovulation temperature rise.
const biphasicShiftCelsius = 0.2

type Insight struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// SymptomFrequency counts how often one symptom was logged and in which
// phase it shows up most.
type SymptomFrequency struct {
	Name          string `json:"name"`
	Count         int    `json:"count"`
	DominantPhase string `json:"dominant_phase"`
}

// BuildInsights composes the derived statistics, the next-cycle forecast and
// the symptom/temperature series into plain-language observations. It is a
// thin aggregation layer: everything hard happens in the analyzer and
// predictor.
func BuildInsights(logs []models.PeriodLog, symptoms []models.SymptomEntry, temperatures []models.TemperatureReading, now time.Time) []Insight {
	insights := make([]Insight, 0, 4)
	today := DateOnly(now)

	stats := AnalyzeCycles(logs)
	prediction := PredictNextCycle(logs, today)

	if !prediction.NextPeriodStart.IsZero() {
		daysUntil := DaysBetween(today, prediction.NextPeriodStart)
		insights = append(insights, Insight{
			Kind: InsightKindPrediction,
			Text: fmt.Sprintf("Next period expected around %s (in %d days, %.0f%% confidence).",
				prediction.NextPeriodStart.Format(dayLayout), daysUntil, prediction.Confidence),
		})
	}

	if len(stats.CycleLengthHistory) >= 2 {
		switch {
		case stats.RegularityScore >= 80:
			insights = append(insights, Insight{
				Kind: InsightKindRegularity,
				Text: fmt.Sprintf("Your cycles are very regular (average %d days, score %.0f/100).",
					stats.AverageCycleLength, stats.RegularityScore),
			})
		case stats.RegularityScore >= 40:
			insights = append(insights, Insight{
				Kind: InsightKindRegularity,
				Text: fmt.Sprintf("Your cycles vary somewhat (±%.1f days around a %d-day average).",
					stats.StandardDeviation, stats.AverageCycleLength),
			})
		default:
			insights = append(insights, Insight{
				Kind: InsightKindRegularity,
				Text: "Your cycle lengths vary a lot; predictions carry low confidence.",
			})
		}
	}

	if frequency, ok := topSymptomFrequency(logs, symptoms); ok {
		text := fmt.Sprintf("%s is your most logged symptom (%d times", frequency.Name, frequency.Count)
		if frequency.DominantPhase != PhaseUnknown {
			text += fmt.Sprintf(", mostly in the %s phase", frequency.DominantPhase)
		}
		insights = append(insights, Insight{Kind: InsightKindSymptom, Text: text + ")."})
	}

	if rise, ok := lutealTemperatureShift(logs, temperatures); ok {
		insights = append(insights, Insight{
			Kind: InsightKindTemperature,
			Text: fmt.Sprintf("Your basal temperature rises about %.1f°C after ovulation, a typical biphasic pattern.", rise),
		})
	}

	return insights
}

// SymptomFrequencies aggregates the symptom series by name, most frequent
// first, tagging each with the phase it lands in most often.
func SymptomFrequencies(logs []models.PeriodLog, symptoms []models.SymptomEntry) []SymptomFrequency {
	counts := make(map[string]int)
	phaseCounts := make(map[string]map[string]int)
	for _, entry := range symptoms {
		counts[entry.Name]++
		phase := ObservedPhase(entry.Date, logs)
		if phaseCounts[entry.Name] == nil {
			phaseCounts[entry.Name] = make(map[string]int)
		}
		phaseCounts[entry.Name][phase]++
	}

	frequencies := make([]SymptomFrequency, 0, len(counts))
	for name, count := range counts {
		frequencies = append(frequencies, SymptomFrequency{
			Name:          name,
			Count:         count,
			DominantPhase: dominantPhase(phaseCounts[name]),
		})
	}
	sort.Slice(frequencies, func(i, j int) bool {
		if frequencies[i].Count == frequencies[j].Count {
			return frequencies[i].Name < frequencies[j].Name
		}
		return frequencies[i].Count > frequencies[j].Count
	})
	return frequencies
}

func topSymptomFrequency(logs []models.PeriodLog, symptoms []models.SymptomEntry) (SymptomFrequency, bool) {
	frequencies := SymptomFrequencies(logs, symptoms)
	if len(frequencies) == 0 {
		return SymptomFrequency{}, false
	}
	return frequencies[0], true
}

func dominantPhase(counts map[string]int) string {
	best := PhaseUnknown
	bestCount := 0
	for phase, count := range counts {
		if phase == PhaseUnknown {
			continue
		}
		if count > bestCount || (count == bestCount && phase < best) {
			best = phase
			bestCount = count
		}
	}
	if bestCount == 0 {
		return PhaseUnknown
	}
	return best
}

// lutealTemperatureShift compares mean basal temperature in follicular vs
// luteal days and reports the rise when it looks biphasic.
func lutealTemperatureShift(logs []models.PeriodLog, temperatures []models.TemperatureReading) (float64, bool) {
	var follicularSum, lutealSum float64
	var follicularCount, lutealCount int

	for _, reading := range temperatures {
		switch ObservedPhase(reading.Date, logs) {
		case PhaseFollicular, PhaseMenstrual:
			follicularSum += reading.Celsius
			follicularCount++
		case PhaseLuteal:
			lutealSum += reading.Celsius
			lutealCount++
		}
	}
	if follicularCount < 3 || lutealCount < 3 {
		return 0, false
	}

	rise := lutealSum/float64(lutealCount) - follicularSum/float64(follicularCount)
	if rise < biphasicShiftCelsius {
		return 0, false
	}
	return rise, true
}
