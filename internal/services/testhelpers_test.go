package services

import (
	"testing"
	"time"

	"github.com/lunora-app/lunora/internal/models"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.ParseInLocation("2006-01-02", value, time.UTC)
	if err != nil {
		t.Fatalf("parse day %q: %v", value, err)
	}
	return day
}

func periodLog(t *testing.T, start string, end string, flow string) models.PeriodLog {
	t.Helper()
	return models.PeriodLog{
		StartDate:     mustParseDay(t, start),
		EndDate:       mustParseDay(t, end),
		FlowIntensity: flow,
	}
}

// scenarioLogs is the two-cycle history used across the engine tests: a
// 28-day gap with two 5-day periods.
func scenarioLogs(t *testing.T) []models.PeriodLog {
	t.Helper()
	return []models.PeriodLog{
		periodLog(t, "2024-01-01", "2024-01-05", models.FlowMedium),
		periodLog(t, "2024-01-29", "2024-02-02", models.FlowHeavy),
	}
}
