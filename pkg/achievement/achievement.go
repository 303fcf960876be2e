// Package achievement evaluates the goals a user reached in a month.
package achievement

import (
	"fmt"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/models"
)

type Key string

const (
	Started         Key = "started"
	BronzeStreak    Key = "bronzeStreak"
	SilverStreak    Key = "silverStreak"
	GoldStreak      Key = "goldStreak"
	PublicTransport Key = "publicTransport"
	Electrified     Key = "electrified"
	Planter         Key = "planter"
)

// Days needed for the streak achievements.
const (
	BronzeDays = 5
	SilverDays = 10
	GoldDays   = 20
)

type Achievement struct {
	Key      Key    `json:"key" example:"bronzeStreak"`
	Title    string `json:"title" example:"Bronze streak"`
	Achieved bool   `json:"achieved" example:"true"`
	Details  string `json:"details,omitempty" example:"7 day(s) logged"`
}

// Summary is the result of evaluating a month.
type Summary struct {
	Month        types.Month   `json:"month" swaggertype:"string" example:"2025-03"`
	DaysLogged   int           `json:"daysLogged" example:"7"`
	Achievements []Achievement `json:"achievements"`
}

// Evaluate checks all achievements against the records of a month.
// Records outside the month are ignored.
func Evaluate(month types.Month, records []models.DailyRecord) Summary {
	var (
		days              int
		publicKm, fuelKm  float64
		electric, planted bool
	)

	for _, r := range records {
		if !month.Contains(r.Date) {
			continue
		}

		days++
		publicKm += r.Input.BusKm + r.Input.MetroKm
		fuelKm += r.Input.FuelVehicleKm
		electric = electric || r.Input.ElectricVehicleKm > 0
		planted = planted || r.Input.TreesPlantedPerMonth > 0 || r.Input.CarbonCreditsKg > 0
	}

	return Summary{
		Month:      month,
		DaysLogged: days,
		Achievements: []Achievement{
			{Key: Started, Title: "Logging started", Achieved: days >= 1, Details: fmt.Sprintf("%d day(s) logged", days)},
			{Key: BronzeStreak, Title: "Bronze streak", Achieved: days >= BronzeDays},
			{Key: SilverStreak, Title: "Silver streak", Achieved: days >= SilverDays},
			{Key: GoldStreak, Title: "Gold streak", Achieved: days >= GoldDays},
			{Key: PublicTransport, Title: "Public transport fan", Achieved: publicKm > fuelKm},
			{Key: Electrified, Title: "Electrified", Achieved: electric},
			{Key: Planter, Title: "Planter", Achieved: planted},
		},
	}
}

// Achieved returns the keys of all reached achievements.
func (s Summary) Achieved() []Key {
	keys := make([]Key, 0, len(s.Achievements))
	for _, a := range s.Achievements {
		if a.Achieved {
			keys = append(keys, a.Key)
		}
	}
	return keys
}
