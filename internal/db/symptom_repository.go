package db

import (
	"github.com/lunora-app/lunora/internal/models"
	"gorm.io/gorm"
)

type SymptomRepository struct {
	database *gorm.DB
}

func NewSymptomRepository(database *gorm.DB) *SymptomRepository {
	return &SymptomRepository{database: database}
}

func (repo *SymptomRepository) ListByUser(userID uint) ([]models.SymptomEntry, error) {
	entries := make([]models.SymptomEntry, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("date ASC, id ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (repo *SymptomRepository) Create(entry *models.SymptomEntry) error {
	return repo.database.Create(entry).Error
}
