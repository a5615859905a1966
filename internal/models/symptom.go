package models

import "time"

// SymptomEntry is one symptom observed on a calendar day.
type SymptomEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"-"`
	Date      time.Time `gorm:"type:date;not null" json:"date"`
	Name      string    `gorm:"not null" json:"name"`
	CreatedAt time.Time `json:"-"`
}

// TemperatureReading is a basal body temperature measured on waking.
type TemperatureReading struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  uint      `gorm:"not null;index" json:"-"`
	Date    time.Time `gorm:"type:date;not null" json:"date"`
	Celsius float64   `gorm:"not null" json:"celsius"`
}

func KnownSymptomNames() []string {
	return []string{
		"Cramps",
		"Headache",
		"Mood swings",
		"Bloating",
		"Fatigue",
		"Breast tenderness",
		"Acne",
		"Back pain",
		"Nausea",
		"Spotting",
		"Irritability",
		"Insomnia",
		"Food cravings",
	}
}
