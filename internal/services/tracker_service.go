package services

import (
	"errors"
	"time"

	"github.com/lunora-app/lunora/internal/models"
)

var ErrPeriodLogNotFound = errors.New("period log not found")

type PeriodLogRepository interface {
	ListByUser(userID uint) ([]models.PeriodLog, error)
	FindByIDForUser(logID uint, userID uint) (models.PeriodLog, bool, error)
	Create(log *models.PeriodLog) error
	Delete(log *models.PeriodLog) error
}

type SymptomReader interface {
	ListByUser(userID uint) ([]models.SymptomEntry, error)
	Create(entry *models.SymptomEntry) error
}

type TemperatureReader interface {
	ListByUser(userID uint) ([]models.TemperatureReading, error)
	Create(reading *models.TemperatureReading) error
}

// TrackerService is the seam between storage and the pure engine. It holds no
// state beyond its collaborators: every call re-reads the log set and
// re-derives everything, so there is nothing to go stale between requests.
type TrackerService struct {
	logs         PeriodLogRepository
	symptoms     SymptomReader
	temperatures TemperatureReader
	location     *time.Location
}

func NewTrackerService(logs PeriodLogRepository, symptoms SymptomReader, temperatures TemperatureReader, location *time.Location) *TrackerService {
	if location == nil {
		location = time.UTC
	}
	return &TrackerService{
		logs:         logs,
		symptoms:     symptoms,
		temperatures: temperatures,
		location:     location,
	}
}

func (service *TrackerService) ListPeriodLogs(userID uint) ([]models.PeriodLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *TrackerService) AddPeriodLog(userID uint, input PeriodLogInput) (models.PeriodLog, error) {
	normalized, err := NormalizePeriodLogInput(input, service.location)
	if err != nil {
		return models.PeriodLog{}, err
	}

	log := models.PeriodLog{
		UserID:        userID,
		StartDate:     normalized.StartDate,
		EndDate:       normalized.EndDate,
		FlowIntensity: normalized.FlowIntensity,
	}
	if err := service.logs.Create(&log); err != nil {
		return models.PeriodLog{}, err
	}
	return log, nil
}

// ReplacePeriodLog supersedes an existing record: the old row is deleted and
// a fresh one created, so records stay effectively immutable.
func (service *TrackerService) ReplacePeriodLog(userID uint, logID uint, input PeriodLogInput) (models.PeriodLog, error) {
	normalized, err := NormalizePeriodLogInput(input, service.location)
	if err != nil {
		return models.PeriodLog{}, err
	}

	existing, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return models.PeriodLog{}, err
	}
	if !found {
		return models.PeriodLog{}, ErrPeriodLogNotFound
	}
	if err := service.logs.Delete(&existing); err != nil {
		return models.PeriodLog{}, err
	}

	replacement := models.PeriodLog{
		UserID:        userID,
		StartDate:     normalized.StartDate,
		EndDate:       normalized.EndDate,
		FlowIntensity: normalized.FlowIntensity,
	}
	if err := service.logs.Create(&replacement); err != nil {
		return models.PeriodLog{}, err
	}
	return replacement, nil
}

func (service *TrackerService) DeletePeriodLog(userID uint, logID uint) error {
	existing, found, err := service.logs.FindByIDForUser(logID, userID)
	if err != nil {
		return err
	}
	if !found {
		return ErrPeriodLogNotFound
	}
	return service.logs.Delete(&existing)
}

func (service *TrackerService) CycleOverview(userID uint, asOf time.Time) (CycleStatistics, CyclePrediction, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return CycleStatistics{}, CyclePrediction{}, err
	}
	today := DateAtLocation(asOf, service.location)
	return AnalyzeCycles(logs), PredictNextCycle(logs, today), nil
}

func (service *TrackerService) Calendar(userID uint, from time.Time) ([]CycleDay, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return ProjectCycleDays(logs, DateAtLocation(from, service.location)), nil
}

// FertilityStatus reports the graded windows around the next predicted
// ovulation plus the convenience pair for the given date.
func (service *TrackerService) FertilityStatus(userID uint, date time.Time) ([]FertilityWindow, bool, bool, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, false, false, err
	}

	day := DateAtLocation(date, service.location)
	prediction := PredictNextCycle(logs, day)
	if prediction.NextPeriodStart.IsZero() {
		return []FertilityWindow{}, false, false, nil
	}

	// The ovulation relevant to the queried day precedes the next period
	// start; the ovulation inside prediction.Phases belongs to the cycle
	// after it.
	ovulation := AddDays(prediction.NextPeriodStart, -LutealPhaseDays)
	windows := ComputeFertilityWindows(ovulation, prediction.Confidence/100)
	return windows, IsDateInFertileWindow(day, windows), IsOvulationDay(day, ovulation), nil
}

func (service *TrackerService) ClassifyDay(userID uint, date time.Time, strategy PhaseStrategy) (string, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return PhaseUnknown, err
	}
	return ClassifyDay(DateAtLocation(date, service.location), logs, strategy), nil
}

func (service *TrackerService) Insights(userID uint, now time.Time) ([]Insight, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	symptoms, err := service.symptoms.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	temperatures, err := service.temperatures.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return BuildInsights(logs, symptoms, temperatures, DateAtLocation(now, service.location)), nil
}

func (service *TrackerService) AddSymptom(userID uint, date time.Time, name string) (models.SymptomEntry, error) {
	normalized, err := NormalizeSymptomName(name)
	if err != nil {
		return models.SymptomEntry{}, err
	}
	entry := models.SymptomEntry{
		UserID: userID,
		Date:   DateAtLocation(date, service.location),
		Name:   normalized,
	}
	if err := service.symptoms.Create(&entry); err != nil {
		return models.SymptomEntry{}, err
	}
	return entry, nil
}

func (service *TrackerService) AddTemperature(userID uint, date time.Time, celsius float64) (models.TemperatureReading, error) {
	if err := ValidateTemperature(celsius); err != nil {
		return models.TemperatureReading{}, err
	}
	reading := models.TemperatureReading{
		UserID:  userID,
		Date:    DateAtLocation(date, service.location),
		Celsius: celsius,
	}
	if err := service.temperatures.Create(&reading); err != nil {
		return models.TemperatureReading{}, err
	}
	return reading, nil
}

func (service *TrackerService) ExportRows(userID uint) ([][]string, error) {
	logs, err := service.logs.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return BuildExportRows(logs), nil
}
