package services

import (
	"math"
	"sort"

	"github.com/lunora-app/lunora/internal/models"
)

// Physiologically plausible bounds. Candidates outside these ranges are
// dropped from averaging entirely so a single mistyped date cannot drag the
// mean around.
const (
	MinPlausibleCycleDays  = 21
	MaxPlausibleCycleDays  = 35
	MinPlausiblePeriodDays = 3
	MaxPlausiblePeriodDays = 10
)

// Cycles with a variation coefficient at or above this are scored fully
// irregular.
const fullyIrregularVariation = 0.3

type CycleStatistics struct {
	AverageCycleLength  int     `json:"average_cycle_length"`
	AveragePeriodLength int     `json:"average_period_length"`
	RegularityScore     float64 `json:"regularity_score"`
	StandardDeviation   float64 `json:"standard_deviation"`
	CycleLengthHistory  []int   `json:"cycle_length_history"`
}

// AnalyzeCycles derives aggregate cycle statistics from the raw log set. It
// never fails: with too little history it falls back to the documented 28/5
// defaults and a zero regularity score.
func AnalyzeCycles(logs []models.PeriodLog) CycleStatistics {
	stats := CycleStatistics{
		AverageCycleLength:  models.DefaultCycleLength,
		AveragePeriodLength: models.DefaultPeriodLength,
		CycleLengthHistory:  []int{},
	}
	if len(logs) == 0 {
		return stats
	}

	sorted := SortLogsAscending(logs)

	stats.CycleLengthHistory = PlausibleCycleLengths(sorted)
	if len(stats.CycleLengthHistory) > 0 {
		stats.AverageCycleLength = roundToInt(meanInts(stats.CycleLengthHistory))
	}

	periodLengths := make([]int, 0, len(sorted))
	for _, log := range sorted {
		length := DaysBetween(log.StartDate, log.EndDate) + 1
		if length < MinPlausiblePeriodDays || length > MaxPlausiblePeriodDays {
			continue
		}
		periodLengths = append(periodLengths, length)
	}
	if len(periodLengths) > 0 {
		stats.AveragePeriodLength = roundToInt(meanInts(periodLengths))
	}

	if len(stats.CycleLengthHistory) >= 2 {
		mean := meanInts(stats.CycleLengthHistory)
		stats.StandardDeviation = stddevInts(stats.CycleLengthHistory, mean)
		variation := stats.StandardDeviation / mean
		stats.RegularityScore = clampFloat(100*(1-variation/fullyIrregularVariation), 0, 100)
	}

	return stats
}

// PlausibleCycleLengths returns the start-to-start day gaps between
// chronologically adjacent logs, keeping only gaps inside the plausible
// range. Input must already be sorted ascending by start date.
func PlausibleCycleLengths(sorted []models.PeriodLog) []int {
	lengths := make([]int, 0)
	for i := 1; i < len(sorted); i++ {
		gap := DaysBetween(sorted[i-1].StartDate, sorted[i].StartDate)
		if gap < MinPlausibleCycleDays || gap > MaxPlausibleCycleDays {
			continue
		}
		lengths = append(lengths, gap)
	}
	return lengths
}

// SortLogsAscending returns a copy of the logs ordered by start date, oldest
// first. The input slice is never mutated.
func SortLogsAscending(logs []models.PeriodLog) []models.PeriodLog {
	sorted := make([]models.PeriodLog, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}

func meanInts(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	var total int
	for _, value := range values {
		total += value
	}
	return float64(total) / float64(len(values))
}

func stddevInts(values []int, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sum float64
	for _, value := range values {
		diff := float64(value) - mean
		sum += diff * diff
	}
	return math.Sqrt(sum / float64(len(values)))
}

func roundToInt(value float64) int {
	return int(math.Round(value))
}

func clampFloat(value float64, low float64, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
