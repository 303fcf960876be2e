package achievement_test

import (
	"testing"
	"time"

	"github.com/ecoechos/backend/internal/types"
	"github.com/ecoechos/backend/pkg/achievement"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/ecoechos/backend/pkg/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var march = types.NewMonth(2025, time.March)

func days(n int, in footprint.Input) []models.DailyRecord {
	userID := uuid.New()
	records := make([]models.DailyRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.NewDailyRecord(userID, types.NewDate(2025, time.March, i), in))
	}
	return records
}

func TestEvaluateEmpty(t *testing.T) {
	s := achievement.Evaluate(march, nil)

	assert.Equal(t, "2025-03", s.Month.String())
	assert.Equal(t, 0, s.DaysLogged)
	require.Len(t, s.Achievements, 7)
	assert.Empty(t, s.Achieved())
	assert.Equal(t, "0 day(s) logged", s.Achievements[0].Details)
}

func TestEvaluateStreaks(t *testing.T) {
	tests := []struct {
		days     int
		achieved []achievement.Key
	}{
		{1, []achievement.Key{achievement.Started}},
		{4, []achievement.Key{achievement.Started}},
		{5, []achievement.Key{achievement.Started, achievement.BronzeStreak}},
		{10, []achievement.Key{achievement.Started, achievement.BronzeStreak, achievement.SilverStreak}},
		{20, []achievement.Key{achievement.Started, achievement.BronzeStreak, achievement.SilverStreak, achievement.GoldStreak}},
		{31, []achievement.Key{achievement.Started, achievement.BronzeStreak, achievement.SilverStreak, achievement.GoldStreak}},
	}

	for _, tt := range tests {
		s := achievement.Evaluate(march, days(tt.days, footprint.Input{}))
		assert.Equal(t, tt.days, s.DaysLogged)
		assert.Equal(t, tt.achieved, s.Achieved(), "%d days", tt.days)
	}
}

func TestEvaluatePublicTransport(t *testing.T) {
	records := append(
		days(2, footprint.Input{BusKm: 10, MetroKm: 5}),
		days(1, footprint.Input{FuelVehicleKm: 29})...,
	)
	assert.Contains(t, achievement.Evaluate(march, records).Achieved(), achievement.PublicTransport)

	records = append(records, days(1, footprint.Input{FuelVehicleKm: 1})...)
	assert.NotContains(t, achievement.Evaluate(march, records).Achieved(), achievement.PublicTransport, "equal distances are not enough")
}

func TestEvaluateElectrifiedAndPlanter(t *testing.T) {
	s := achievement.Evaluate(march, days(1, footprint.Input{ElectricVehicleKm: 3}))
	assert.Contains(t, s.Achieved(), achievement.Electrified)
	assert.NotContains(t, s.Achieved(), achievement.Planter)

	s = achievement.Evaluate(march, days(1, footprint.Input{CarbonCreditsKg: 5}))
	assert.Contains(t, s.Achieved(), achievement.Planter)

	s = achievement.Evaluate(march, days(1, footprint.Input{TreesPlantedPerMonth: 1}))
	assert.Contains(t, s.Achieved(), achievement.Planter)
}

func TestEvaluateIgnoresOtherMonths(t *testing.T) {
	april := models.NewDailyRecord(uuid.New(), types.NewDate(2025, time.April, 1), footprint.Input{ElectricVehicleKm: 3})

	s := achievement.Evaluate(march, []models.DailyRecord{april})
	assert.Equal(t, 0, s.DaysLogged)
	assert.Empty(t, s.Achieved())
}
