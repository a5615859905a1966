package models

import "time"

const (
	FlowLight  = "light"
	FlowMedium = "medium"
	FlowHeavy  = "heavy"
)

const (
	DefaultCycleLength  = 28
	DefaultPeriodLength = 5
)

// PeriodLog is one logged bleeding span. Records are immutable: edits replace
// the row wholesale, they never patch it in place.
type PeriodLog struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"not null;index" json:"-"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	FlowIntensity string    `gorm:"not null;default:medium" json:"flow_intensity"`
	CreatedAt     time.Time `json:"-"`
	UpdatedAt     time.Time `json:"-"`
}
