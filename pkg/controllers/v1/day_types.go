package v1

import (
	"github.com/ecoechos/backend/pkg/achievement"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/models"
)

type DayResponse struct {
	Data models.DailyRecord `json:"data"` // Data for the daily record
}

// Month is the summary of a month with the classification of its total.
type Month struct {
	models.MonthSummary
	Feedback    Feedback             `json:"feedback"`    // Classification of the monthly total
	Equivalents footprint.Equivalent `json:"equivalents"` // The monthly total in tangible terms
}

type MonthResponse struct {
	Data Month `json:"data"`
}

type AchievementResponse struct {
	Data achievement.Summary `json:"data"`
}
