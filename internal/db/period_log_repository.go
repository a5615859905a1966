package db

import (
	"github.com/lunora-app/lunora/internal/models"
	"gorm.io/gorm"
)

type PeriodLogRepository struct {
	database *gorm.DB
}

func NewPeriodLogRepository(database *gorm.DB) *PeriodLogRepository {
	return &PeriodLogRepository{database: database}
}

func (repo *PeriodLogRepository) ListByUser(userID uint) ([]models.PeriodLog, error) {
	logs := make([]models.PeriodLog, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("start_date ASC, id ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (repo *PeriodLogRepository) FindByIDForUser(logID uint, userID uint) (models.PeriodLog, bool, error) {
	entry := models.PeriodLog{}
	result := repo.database.
		Where("id = ? AND user_id = ?", logID, userID).
		Limit(1).
		Find(&entry)
	if result.Error != nil {
		return models.PeriodLog{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.PeriodLog{}, false, nil
	}
	return entry, true, nil
}

func (repo *PeriodLogRepository) Create(log *models.PeriodLog) error {
	return repo.database.Create(log).Error
}

func (repo *PeriodLogRepository) Delete(log *models.PeriodLog) error {
	return repo.database.Delete(log).Error
}
