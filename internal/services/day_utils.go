package services

import "time"

const dayLayout = "2006-01-02"

// DateOnly truncates a timestamp to midnight in its own location. Every value
// that enters the engine goes through this so day arithmetic never sees a
// time-of-day component.
func DateOnly(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, value.Location())
}

// DateAtLocation re-reads a timestamp as a calendar day in the given location.
func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// DaysBetween returns the whole calendar days from a to b (negative when b is
// before a). Both civil dates are re-read as UTC midnights before
// subtracting, so DST transitions never shorten a day.
func DaysBetween(a time.Time, b time.Time) int {
	return int(utcMidnight(b).Sub(utcMidnight(a)).Hours() / 24)
}

func utcMidnight(value time.Time) time.Time {
	year, month, day := value.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func AddDays(value time.Time, days int) time.Time {
	return DateOnly(value.AddDate(0, 0, days))
}

func SameCalendarDay(a time.Time, b time.Time) bool {
	return a.Format(dayLayout) == b.Format(dayLayout)
}

func BetweenInclusive(day time.Time, start time.Time, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return (day.Equal(start) || day.After(start)) && (day.Equal(end) || day.Before(end))
}

func DayKey(value time.Time) string {
	return value.Format(dayLayout)
}
