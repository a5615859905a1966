package services

import (
	"time"

	"github.com/lunora-app/lunora/internal/models"
)

const (
	PhaseMenstrual  = "menstrual"
	PhaseFollicular = "follicular"
	PhaseOvulation  = "ovulation"
	PhaseLuteal     = "luteal"
	PhaseUnknown    = "unknown"
)

// PhaseStrategy names one of the two phase models. The observed strategy is
// driven by the statistically derived windows; the fixed strategy uses the
// classic day-of-cycle boundaries. They produce different answers by design
// and must never be mixed inside one call site.
type PhaseStrategy string

const (
	StrategyObserved      PhaseStrategy = "observed"
	StrategyFixedCalendar PhaseStrategy = "fixed"
)

func ParsePhaseStrategy(value string) (PhaseStrategy, bool) {
	switch PhaseStrategy(value) {
	case StrategyObserved, "":
		return StrategyObserved, true
	case StrategyFixedCalendar:
		return StrategyFixedCalendar, true
	default:
		return StrategyObserved, false
	}
}

// ClassifyDay assigns a cycle phase to one date using the chosen strategy.
func ClassifyDay(date time.Time, logs []models.PeriodLog, strategy PhaseStrategy) string {
	if strategy == StrategyFixedCalendar {
		return fixedStrategyPhase(date, logs)
	}
	return ObservedPhase(date, logs)
}

// ObservedPhase matches historical dates against the logs directly and
// classifies everything else relative to the statistically predicted
// ovulation of the cycle the date falls in.
func ObservedPhase(date time.Time, logs []models.PeriodLog) string {
	if len(logs) == 0 {
		return PhaseUnknown
	}

	day := DateOnly(date)
	sorted := SortLogsAscending(logs)

	for _, log := range sorted {
		if BetweenInclusive(day, DateOnly(log.StartDate), DateOnly(log.EndDate)) {
			return PhaseMenstrual
		}
	}

	firstStart := DateOnly(sorted[0].StartDate)
	if day.Before(firstStart) {
		return PhaseUnknown
	}

	stats := AnalyzeCycles(sorted)
	cycleLength := forecastCycleLength(stats)
	if cycleLength <= 0 {
		return PhaseUnknown
	}

	anchor := firstStart
	for _, log := range sorted {
		start := DateOnly(log.StartDate)
		if start.After(day) {
			break
		}
		anchor = start
	}

	cycleStart := cycleStartContaining(anchor, cycleLength, day)
	if BetweenInclusive(day, cycleStart, AddDays(cycleStart, stats.AveragePeriodLength-1)) {
		return PhaseMenstrual
	}

	ovulation := AddDays(cycleStart, cycleLength-LutealPhaseDays)
	return PhaseRelativeToOvulation(day, ovulation)
}

// FixedCalendarPhase is the day-of-cycle approximation: day 1-5 menstrual,
// 6-12 follicular, 13-16 ovulation, everything after luteal. The day of
// cycle wraps with the cycle length so future dates project into their own
// cycle.
func FixedCalendarPhase(lastPeriodStart time.Time, cycleLength int, date time.Time) string {
	if lastPeriodStart.IsZero() || cycleLength <= 0 {
		return PhaseUnknown
	}

	day := DateOnly(date)
	start := DateOnly(lastPeriodStart)
	if day.Before(start) {
		return PhaseUnknown
	}

	dayOfCycle := DaysBetween(start, day)%cycleLength + 1
	switch {
	case dayOfCycle <= 5:
		return PhaseMenstrual
	case dayOfCycle <= 12:
		return PhaseFollicular
	case dayOfCycle <= 16:
		return PhaseOvulation
	default:
		return PhaseLuteal
	}
}

func fixedStrategyPhase(date time.Time, logs []models.PeriodLog) string {
	if len(logs) == 0 {
		return PhaseUnknown
	}
	sorted := SortLogsAscending(logs)
	stats := AnalyzeCycles(sorted)
	return FixedCalendarPhase(sorted[len(sorted)-1].StartDate, stats.AverageCycleLength, date)
}

// cycleStartContaining projects the last logged start forward by whole cycle
// lengths to the start of the cycle containing day.
func cycleStartContaining(lastStart time.Time, cycleLength int, day time.Time) time.Time {
	start := DateOnly(lastStart)
	if day.Before(start) {
		return start
	}
	elapsed := DaysBetween(start, day)
	return AddDays(start, (elapsed/cycleLength)*cycleLength)
}
