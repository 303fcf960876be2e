package footprint

import (
	"github.com/shopspring/decimal"
)

// Tier classifies a monthly total.
type Tier string

const (
	TierLight    Tier = "light"
	TierModerate Tier = "moderate"
	TierHeavy    Tier = "heavy"
	TierAlarming Tier = "alarming"
	TierCritical Tier = "critical"
)

// Upper bounds of the tiers in kgCO2e, inclusive.
var tierBounds = []struct {
	tier  Tier
	bound decimal.Decimal
}{
	{TierLight, decimal.NewFromInt(150)},
	{TierModerate, decimal.NewFromInt(400)},
	{TierHeavy, decimal.NewFromInt(800)},
	{TierAlarming, decimal.NewFromInt(1500)},
}

// Feedback returns the tier of a total.
func Feedback(total decimal.Decimal) Tier {
	for _, t := range tierBounds {
		if total.LessThanOrEqual(t.bound) {
			return t.tier
		}
	}
	return TierCritical
}

var (
	carKmFactor = decimal.RequireFromString("0.232")
	treeMonth   = decimal.NewFromInt(21)
)

// Equivalent expresses a total in more tangible terms.
type Equivalent struct {
	CarKm decimal.Decimal `json:"carKm" swaggertype:"string" example:"2170.3"` // Distance in km an average gasoline car covers for the same emissions
	Trees decimal.Decimal `json:"trees" swaggertype:"string" example:"24"`     // Trees that need a month to absorb the emissions
}

// Equivalents converts a total in kgCO2e. Non-positive totals are
// all zero.
func Equivalents(total decimal.Decimal) Equivalent {
	if !total.IsPositive() {
		return Equivalent{CarKm: decimal.Zero, Trees: decimal.Zero}
	}

	return Equivalent{
		CarKm: total.Div(carKmFactor).Round(1),
		Trees: total.Div(treeMonth).Ceil(),
	}
}
