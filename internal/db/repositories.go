package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	PeriodLogs   *PeriodLogRepository
	Symptoms     *SymptomRepository
	Temperatures *TemperatureRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		PeriodLogs:   NewPeriodLogRepository(database),
		Symptoms:     NewSymptomRepository(database),
		Temperatures: NewTemperatureRepository(database),
	}
}
