package services

import (
	"reflect"
	"testing"

	"github.com/lunora-app/lunora/internal/models"
)

func TestProjectCycleDaysEmptyHistory(t *testing.T) {
	t.Parallel()

	days := ProjectCycleDays(nil, mustParseDay(t, "2024-02-10"))
	if len(days) != 0 {
		t.Fatalf("expected empty projection without logs, got %d days", len(days))
	}
}

func TestProjectCycleDaysIsDeterministic(t *testing.T) {
	t.Parallel()

	logs := scenarioLogs(t)
	from := mustParseDay(t, "2024-02-10")

	first := ProjectCycleDays(logs, from)
	second := ProjectCycleDays(logs, from)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("expected identical output across repeated calls")
	}
}

func TestProjectCycleDaysMaterializesLoggedPeriods(t *testing.T) {
	t.Parallel()

	days := ProjectCycleDays(scenarioLogs(t), mustParseDay(t, "2024-02-10"))

	byDate := make(map[string]CycleDay, len(days))
	for _, day := range days {
		byDate[DayKey(day.Date)] = day
	}

	logged := byDate["2024-01-03"]
	if logged.Phase != DayPhasePeriod || logged.IsPrediction {
		t.Fatalf("expected logged period day, got %+v", logged)
	}

	// Intensity tapers across the 5-day span.
	wantIntensity := map[string]string{
		"2024-01-01": IntensityHeavy,
		"2024-01-02": IntensityHeavy,
		"2024-01-03": IntensityMedium,
		"2024-01-04": IntensityMedium,
		"2024-01-05": IntensityLight,
	}
	for date, want := range wantIntensity {
		if got := byDate[date].Intensity; got != want {
			t.Fatalf("expected %s intensity on %s, got %s", want, date, got)
		}
	}
}

func TestProjectCycleDaysAnchorsFutureOfFromDate(t *testing.T) {
	t.Parallel()

	from := mustParseDay(t, "2024-02-10")
	days := ProjectCycleDays(scenarioLogs(t), from)

	for _, day := range days {
		if !day.IsPrediction {
			continue
		}
		if day.Date.Before(from) {
			t.Fatalf("projected day %s is before fromDate", DayKey(day.Date))
		}
	}

	byDate := make(map[string]CycleDay, len(days))
	for _, day := range days {
		byDate[DayKey(day.Date)] = day
	}

	next := byDate["2024-02-26"]
	if next.Phase != DayPhasePeriod || !next.IsPrediction {
		t.Fatalf("expected predicted period start on 2024-02-26, got %+v", next)
	}

	// Ovulation precedes the following projected start by 14 days:
	// 2024-03-25 - 14 = 2024-03-11.
	ovulation := byDate["2024-03-11"]
	if ovulation.Phase != DayPhaseOvulation {
		t.Fatalf("expected ovulation on 2024-03-11, got %+v", ovulation)
	}
	for _, date := range []string{"2024-03-06", "2024-03-07", "2024-03-08", "2024-03-09", "2024-03-10"} {
		if byDate[date].Phase != DayPhaseFertile {
			t.Fatalf("expected fertile day on %s, got %+v", date, byDate[date])
		}
	}
}

func TestProjectCycleDaysLoggedDaysWinOverProjections(t *testing.T) {
	t.Parallel()

	// fromDate not past the last logged start, so the first projected cycle
	// lands exactly on the logged 2024-01-29 period.
	days := ProjectCycleDays(scenarioLogs(t), mustParseDay(t, "2024-01-20"))

	for _, day := range days {
		if DayKey(day.Date) == "2024-01-29" {
			if day.IsPrediction {
				t.Fatal("expected logged day to take precedence over projection")
			}
			return
		}
	}
	t.Fatal("expected 2024-01-29 in projection")
}

func TestProjectCycleDaysCoversThreeFutureCycles(t *testing.T) {
	t.Parallel()

	days := ProjectCycleDays(scenarioLogs(t), mustParseDay(t, "2024-02-10"))

	starts := map[string]bool{}
	for _, day := range days {
		if day.IsPrediction && day.Phase == DayPhasePeriod {
			starts[DayKey(day.Date)] = true
		}
	}

	for _, start := range []string{"2024-02-26", "2024-03-25", "2024-04-22"} {
		if !starts[start] {
			t.Fatalf("expected projected period day on %s", start)
		}
	}
}

func TestPredictNextCycleScenario(t *testing.T) {
	t.Parallel()

	prediction := PredictNextCycle(scenarioLogs(t), mustParseDay(t, "2024-02-10"))

	if got := DayKey(prediction.NextPeriodStart); got != "2024-02-26" {
		t.Fatalf("expected next period start 2024-02-26, got %s", got)
	}
	if got := DayKey(prediction.NextPeriodEnd); got != "2024-03-01" {
		t.Fatalf("expected next period end 2024-03-01, got %s", got)
	}
	if prediction.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle length 28, got %d", prediction.AverageCycleLength)
	}
	if prediction.BasedOnCycleCount != 2 {
		t.Fatalf("expected basedOnCycleCount 2, got %d", prediction.BasedOnCycleCount)
	}

	wantPhases := map[string][2]string{
		"menstrual":  {"2024-02-26", "2024-03-01"},
		"follicular": {"2024-03-02", "2024-03-10"},
		"ovulation":  {"2024-03-11", "2024-03-11"},
		"luteal":     {"2024-03-12", "2024-03-24"},
	}
	if len(prediction.Phases) != len(wantPhases) {
		t.Fatalf("expected %d phase ranges, got %d", len(wantPhases), len(prediction.Phases))
	}
	for _, phase := range prediction.Phases {
		want, known := wantPhases[phase.Phase]
		if !known {
			t.Fatalf("unexpected phase %q", phase.Phase)
		}
		if DayKey(phase.Start) != want[0] || DayKey(phase.End) != want[1] {
			t.Fatalf("phase %s: expected %s..%s, got %s..%s",
				phase.Phase, want[0], want[1], DayKey(phase.Start), DayKey(phase.End))
		}
	}
}

func TestPredictNextCycleSingleLog(t *testing.T) {
	t.Parallel()

	logs := []models.PeriodLog{periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium)}
	prediction := PredictNextCycle(logs, mustParseDay(t, "2024-01-10"))

	if prediction.BasedOnCycleCount != 1 {
		t.Fatalf("expected basedOnCycleCount 1, got %d", prediction.BasedOnCycleCount)
	}
	if prediction.Confidence != 0 {
		t.Fatalf("expected zero confidence from a single log, got %f", prediction.Confidence)
	}
	if got := DayKey(prediction.NextPeriodStart); got != "2024-01-29" {
		t.Fatalf("expected default 28-day projection to 2024-01-29, got %s", got)
	}
}

func TestPredictNextCycleEmptyHistory(t *testing.T) {
	t.Parallel()

	prediction := PredictNextCycle(nil, mustParseDay(t, "2024-01-10"))

	if prediction.BasedOnCycleCount != 0 {
		t.Fatalf("expected basedOnCycleCount 0, got %d", prediction.BasedOnCycleCount)
	}
	if !prediction.NextPeriodStart.IsZero() {
		t.Fatalf("expected zero next period start, got %s", DayKey(prediction.NextPeriodStart))
	}
	if prediction.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default average, got %d", prediction.AverageCycleLength)
	}
}

func TestPredictionConfidenceMonotonicInCycleCount(t *testing.T) {
	t.Parallel()

	// Perfectly regular 28-day histories of growing length: regularity is
	// pinned at 100, so confidence must never decrease as cycles accumulate.
	previous := -1.0
	base := mustParseDay(t, "2023-01-02")
	for cycles := 3; cycles <= 12; cycles++ {
		logs := make([]models.PeriodLog, 0, cycles+1)
		for i := 0; i <= cycles; i++ {
			start := base.AddDate(0, 0, i*28)
			logs = append(logs, models.PeriodLog{
				StartDate:     start,
				EndDate:       start.AddDate(0, 0, 4),
				FlowIntensity: models.FlowMedium,
			})
		}

		prediction := PredictNextCycle(logs, base.AddDate(0, 0, cycles*28+1))
		if prediction.Confidence < previous {
			t.Fatalf("confidence decreased from %.2f to %.2f at %d cycles",
				previous, prediction.Confidence, cycles)
		}
		previous = prediction.Confidence
	}
}

func TestForecastCycleLengthWeightsRecentCycles(t *testing.T) {
	t.Parallel()

	// Two 35-day cycles followed by a 21-day cycle: the weighted average
	// leans toward the recent short cycle (29) where the plain mean says 30.
	logs := []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium),
		periodLog(t, "2024-02-05", "2024-02-09", models.FlowMedium),
		periodLog(t, "2024-03-11", "2024-03-15", models.FlowMedium),
		periodLog(t, "2024-04-01", "2024-04-05", models.FlowMedium),
	}

	prediction := PredictNextCycle(logs, mustParseDay(t, "2024-04-02"))
	if got := DayKey(prediction.NextPeriodStart); got != "2024-04-30" {
		t.Fatalf("expected weighted 29-day projection to 2024-04-30, got %s", got)
	}
}
