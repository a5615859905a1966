package db

import (
	"github.com/lunora-app/lunora/internal/models"
	"gorm.io/gorm"
)

type TemperatureRepository struct {
	database *gorm.DB
}

func NewTemperatureRepository(database *gorm.DB) *TemperatureRepository {
	return &TemperatureRepository{database: database}
}

func (repo *TemperatureRepository) ListByUser(userID uint) ([]models.TemperatureReading, error) {
	readings := make([]models.TemperatureReading, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&readings).Error; err != nil {
		return nil, err
	}
	return readings, nil
}

func (repo *TemperatureRepository) Create(reading *models.TemperatureReading) error {
	return repo.database.Create(reading).Error
}
