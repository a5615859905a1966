package services

import (
	"testing"

	"github.com/lunora-app/lunora/internal/models"
)

func TestAnalyzeCyclesDefaultsOnEmptyHistory(t *testing.T) {
	t.Parallel()

	stats := AnalyzeCycles(nil)

	if stats.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected default cycle length %d, got %d", models.DefaultCycleLength, stats.AverageCycleLength)
	}
	if stats.AveragePeriodLength != models.DefaultPeriodLength {
		t.Fatalf("expected default period length %d, got %d", models.DefaultPeriodLength, stats.AveragePeriodLength)
	}
	if stats.RegularityScore != 0 {
		t.Fatalf("expected zero regularity without history, got %f", stats.RegularityScore)
	}
	if len(stats.CycleLengthHistory) != 0 {
		t.Fatalf("expected empty cycle history, got %v", stats.CycleLengthHistory)
	}
}

func TestAnalyzeCyclesTwoCycleScenario(t *testing.T) {
	t.Parallel()

	stats := AnalyzeCycles(scenarioLogs(t))

	if stats.AverageCycleLength != 28 {
		t.Fatalf("expected average cycle length 28, got %d", stats.AverageCycleLength)
	}
	if stats.AveragePeriodLength != 5 {
		t.Fatalf("expected average period length 5, got %d", stats.AveragePeriodLength)
	}
	if len(stats.CycleLengthHistory) != 1 || stats.CycleLengthHistory[0] != 28 {
		t.Fatalf("expected cycle history [28], got %v", stats.CycleLengthHistory)
	}
}

func TestAnalyzeCyclesDiscardsImplausibleCycleLength(t *testing.T) {
	t.Parallel()

	// Gaps of 28, 29 and 60 days; the 60-day outlier must not influence the
	// average at all.
	logs := []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium),
		periodLog(t, "2024-01-29", "2024-02-02", models.FlowMedium),
		periodLog(t, "2024-02-27", "2024-03-02", models.FlowMedium),
		periodLog(t, "2024-04-27", "2024-05-01", models.FlowMedium),
	}

	stats := AnalyzeCycles(logs)

	if len(stats.CycleLengthHistory) != 2 {
		t.Fatalf("expected two surviving cycle lengths, got %v", stats.CycleLengthHistory)
	}
	if stats.AverageCycleLength != 28 && stats.AverageCycleLength != 29 {
		t.Fatalf("expected average 28 or 29 after outlier rejection, got %d", stats.AverageCycleLength)
	}
}

func TestAnalyzeCyclesFallsBackWhenNoCandidateSurvives(t *testing.T) {
	t.Parallel()

	// The only gap is 60 days, so filtering leaves nothing to average.
	logs := []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium),
		periodLog(t, "2024-03-01", "2024-03-05", models.FlowMedium),
	}

	stats := AnalyzeCycles(logs)

	if stats.AverageCycleLength != models.DefaultCycleLength {
		t.Fatalf("expected fallback to %d, got %d", models.DefaultCycleLength, stats.AverageCycleLength)
	}
}

func TestAnalyzeCyclesDiscardsImplausiblePeriodLength(t *testing.T) {
	t.Parallel()

	// A 1-day and a 14-day span are filtered; only the 5-day span counts.
	logs := []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-01", models.FlowLight),
		periodLog(t, "2024-01-29", "2024-02-02", models.FlowMedium),
		periodLog(t, "2024-02-26", "2024-03-10", models.FlowHeavy),
	}

	stats := AnalyzeCycles(logs)

	if stats.AveragePeriodLength != 5 {
		t.Fatalf("expected average period length 5, got %d", stats.AveragePeriodLength)
	}
}

func TestRegularityScore(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		starts    []string
		wantScore float64
	}{
		{
			name:      "identical lengths score 100",
			starts:    []string{"2024-01-01", "2024-01-29", "2024-02-26", "2024-03-25"},
			wantScore: 100,
		},
		{
			name: "alternating 21 and 35 day cycles score low",
			// mean 28, stddev 7, variation 0.25 -> 100 * (1 - 0.25/0.3)
			starts:    []string{"2024-01-01", "2024-01-22", "2024-02-26", "2024-03-18", "2024-04-22"},
			wantScore: 100 * (1 - 0.25/0.3),
		},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			logs := make([]models.PeriodLog, 0, len(testCase.starts))
			for _, start := range testCase.starts {
				day := mustParseDay(t, start)
				logs = append(logs, models.PeriodLog{
					StartDate:     day,
					EndDate:       day.AddDate(0, 0, 4),
					FlowIntensity: models.FlowMedium,
				})
			}

			stats := AnalyzeCycles(logs)
			if diff := stats.RegularityScore - testCase.wantScore; diff > 0.001 || diff < -0.001 {
				t.Fatalf("expected regularity %.3f, got %.3f", testCase.wantScore, stats.RegularityScore)
			}
		})
	}
}

func TestAnalyzeCyclesIgnoresInputOrder(t *testing.T) {
	t.Parallel()

	logs := scenarioLogs(t)
	reversed := []models.PeriodLog{logs[1], logs[0]}

	if AnalyzeCycles(logs).AverageCycleLength != AnalyzeCycles(reversed).AverageCycleLength {
		t.Fatal("expected analyzer to sort logs before computing deltas")
	}
}
