package services

import (
	"strings"
	"testing"

	"github.com/lunora-app/lunora/internal/models"
)

func symptomOn(t *testing.T, date string, name string) models.SymptomEntry {
	t.Helper()
	return models.SymptomEntry{Date: mustParseDay(t, date), Name: name}
}

func readingOn(t *testing.T, date string, celsius float64) models.TemperatureReading {
	t.Helper()
	return models.TemperatureReading{Date: mustParseDay(t, date), Celsius: celsius}
}

func TestBuildInsightsPredictionAndRegularity(t *testing.T) {
	t.Parallel()

	insights := BuildInsights(scenarioLogs(t), nil, nil, mustParseDay(t, "2024-02-10"))

	kinds := make(map[string]string, len(insights))
	for _, insight := range insights {
		kinds[insight.Kind] = insight.Text
	}

	prediction, found := kinds[InsightKindPrediction]
	if !found {
		t.Fatal("expected a prediction insight")
	}
	if !strings.Contains(prediction, "2024-02-26") {
		t.Fatalf("expected prediction text to name 2024-02-26, got %q", prediction)
	}

	// Only one cycle length survives, so no regularity verdict yet.
	if _, found := kinds[InsightKindRegularity]; found {
		t.Fatal("expected no regularity insight from a single cycle")
	}
}

func TestBuildInsightsRegularCycles(t *testing.T) {
	t.Parallel()

	logs := []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium),
		periodLog(t, "2024-01-29", "2024-02-02", models.FlowMedium),
		periodLog(t, "2024-02-26", "2024-03-01", models.FlowMedium),
	}

	insights := BuildInsights(logs, nil, nil, mustParseDay(t, "2024-03-05"))

	var regularity string
	for _, insight := range insights {
		if insight.Kind == InsightKindRegularity {
			regularity = insight.Text
		}
	}
	if !strings.Contains(regularity, "very regular") {
		t.Fatalf("expected a very-regular verdict, got %q", regularity)
	}
}

func TestBuildInsightsEmptyHistory(t *testing.T) {
	t.Parallel()

	insights := BuildInsights(nil, nil, nil, mustParseDay(t, "2024-02-10"))
	if len(insights) != 0 {
		t.Fatalf("expected no insights without data, got %v", insights)
	}
}

func TestSymptomFrequenciesOrderAndDominantPhase(t *testing.T) {
	t.Parallel()

	logs := scenarioLogs(t)
	symptoms := []models.SymptomEntry{
		// Luteal days of the first logged cycle (ovulation 2024-01-15).
		symptomOn(t, "2024-01-20", "Cramps"),
		symptomOn(t, "2024-01-22", "Cramps"),
		symptomOn(t, "2024-01-24", "Cramps"),
		symptomOn(t, "2024-01-10", "Headache"),
	}

	frequencies := SymptomFrequencies(logs, symptoms)

	if len(frequencies) != 2 {
		t.Fatalf("expected two symptom groups, got %d", len(frequencies))
	}
	if frequencies[0].Name != "Cramps" || frequencies[0].Count != 3 {
		t.Fatalf("expected Cramps first with count 3, got %+v", frequencies[0])
	}
	if frequencies[0].DominantPhase != PhaseLuteal {
		t.Fatalf("expected Cramps dominated by luteal phase, got %s", frequencies[0].DominantPhase)
	}
	if frequencies[1].Name != "Headache" || frequencies[1].Count != 1 {
		t.Fatalf("expected Headache second with count 1, got %+v", frequencies[1])
	}
}

func TestBuildInsightsBiphasicTemperature(t *testing.T) {
	t.Parallel()

	logs := scenarioLogs(t)
	temperatures := []models.TemperatureReading{
		// Follicular days before the 2024-02-12 ovulation.
		readingOn(t, "2024-02-03", 36.4),
		readingOn(t, "2024-02-04", 36.5),
		readingOn(t, "2024-02-05", 36.4),
		// Luteal days after it.
		readingOn(t, "2024-02-15", 36.8),
		readingOn(t, "2024-02-16", 36.9),
		readingOn(t, "2024-02-17", 36.8),
	}

	insights := BuildInsights(logs, nil, temperatures, mustParseDay(t, "2024-02-18"))

	found := false
	for _, insight := range insights {
		if insight.Kind == InsightKindTemperature {
			found = true
			if !strings.Contains(insight.Text, "0.4") {
				t.Fatalf("expected a 0.4 degree rise, got %q", insight.Text)
			}
		}
	}
	if !found {
		t.Fatal("expected a temperature insight")
	}
}

func TestTemperatureShiftNeedsEnoughReadings(t *testing.T) {
	t.Parallel()

	temperatures := []models.TemperatureReading{
		readingOn(t, "2024-02-03", 36.4),
		readingOn(t, "2024-02-15", 36.9),
	}

	if _, ok := lutealTemperatureShift(scenarioLogs(t), temperatures); ok {
		t.Fatal("expected no verdict from two readings")
	}
}
