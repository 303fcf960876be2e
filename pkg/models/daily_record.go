package models

import (
	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyRecord is the footprint a user logged for one day.
type DailyRecord struct {
	DefaultModel
	UserID    uuid.UUID        `json:"userId" gorm:"uniqueIndex:daily_record_user_date" example:"5f2a9a3e-7d53-4f1a-9a0f-3a7c2c1e8b11"` // ID of the user the record belongs to
	User      User             `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Date      types.Date       `json:"date" gorm:"uniqueIndex:daily_record_user_date" swaggertype:"string" example:"2025-03-14"` // Day of the record
	Total     decimal.Decimal  `json:"total" gorm:"type:TEXT" swaggertype:"string" example:"528.52"`                             // Total footprint in kgCO2e, offsets included
	Emissions footprint.Result `json:"emissions" gorm:"serializer:json"`                                                         // Per-category emissions
	Input     footprint.Input  `json:"input" gorm:"serializer:json"`                                                             // The activity data the footprint was calculated from
}

func (DailyRecord) Self() string {
	return "Daily record"
}

// NewDailyRecord calculates the footprint of an input for a user and day.
func NewDailyRecord(userID uuid.UUID, date types.Date, in footprint.Input) DailyRecord {
	result := footprint.Calculate(in)

	return DailyRecord{
		UserID:    userID,
		Date:      date,
		Total:     result.Total,
		Emissions: result,
		Input:     in,
	}
}

// BeforeSave recalculates the emissions and the total from the input, so
// that a stored record always matches its activity data.
func (r *DailyRecord) BeforeSave(_ *gorm.DB) error {
	if r.Date.IsZero() {
		return ErrDailyRecordNoDate
	}

	r.Emissions = footprint.Calculate(r.Input)
	r.Total = r.Emissions.Total
	return nil
}

// MonthSummary aggregates the daily records of a user for a month.
type MonthSummary struct {
	Month      types.Month      `json:"month" swaggertype:"string" example:"2025-03"` // The month
	Total      decimal.Decimal  `json:"total" swaggertype:"string" example:"4231.77"` // Sum of all daily totals
	DaysLogged int              `json:"daysLogged" example:"12"`                      // Number of days with a record
	Emissions  footprint.Result `json:"emissions"`                                    // Per-category sums
	Days       []DayTotal       `json:"days"`                                         // Totals of each logged day
}

// DayTotal is the total of a single day.
type DayTotal struct {
	Date  types.Date      `json:"date" swaggertype:"string" example:"2025-03-14"`
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"528.52"`
}

// RankingEntry is the monthly total of one user.
type RankingEntry struct {
	Position int             `json:"position" example:"1"` // 1-based position in the full ranking
	UserID   uuid.UUID       `json:"userId" example:"5f2a9a3e-7d53-4f1a-9a0f-3a7c2c1e8b11"`
	Username string          `json:"username" example:"greenhouse"`
	Total    decimal.Decimal `json:"total" swaggertype:"string" example:"4231.77"`
	Days     int             `json:"days" example:"12"` // Number of days with a record
}

// Summarize builds the summary of a month from its records and the
// total calculated by the store.
func Summarize(month types.Month, total decimal.Decimal, records []DailyRecord) MonthSummary {
	summary := MonthSummary{
		Month:      month,
		Total:      total,
		DaysLogged: len(records),
		Days:       make([]DayTotal, 0, len(records)),
	}

	for _, r := range records {
		summary.Emissions = summary.Emissions.Add(r.Emissions)
		summary.Days = append(summary.Days, DayTotal{Date: r.Date, Total: r.Total})
	}

	return summary
}
