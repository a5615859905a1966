package services

import (
	"strconv"

	"github.com/lunora-app/lunora/internal/models"
)

var ExportCSVHeaders = []string{
	"Start date",
	"End date",
	"Period days",
	"Flow",
	"Cycle length",
}

// BuildExportRows flattens the log history into CSV rows, oldest first. The
// cycle length column is the gap to the following logged start and stays
// empty on the most recent row.
func BuildExportRows(logs []models.PeriodLog) [][]string {
	sorted := SortLogsAscending(logs)

	rows := make([][]string, 0, len(sorted))
	for index, log := range sorted {
		cycleLength := ""
		if index+1 < len(sorted) {
			cycleLength = strconv.Itoa(DaysBetween(log.StartDate, sorted[index+1].StartDate))
		}

		rows = append(rows, []string{
			log.StartDate.Format(dayLayout),
			log.EndDate.Format(dayLayout),
			strconv.Itoa(DaysBetween(log.StartDate, log.EndDate) + 1),
			log.FlowIntensity,
			cycleLength,
		})
	}
	return rows
}
