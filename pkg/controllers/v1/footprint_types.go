package v1

import (
	"github.com/ecoechos/backend/pkg/emission"
	"github.com/ecoechos/backend/pkg/footprint"
	"github.com/shopspring/decimal"
)

// Feedback classifies a total in the language the client asked for.
type Feedback struct {
	Tier     footprint.Tier `json:"tier" example:"heavy" enums:"light,moderate,heavy,alarming,critical"`
	Language string         `json:"language" example:"en"` // Language of the message
	Message  string         `json:"message" example:"Heavy footprint: 503.51 kgCO2e. Time to review your habits."`
}

func newFeedback(l footprint.Localizer, total decimal.Decimal) Feedback {
	return Feedback{
		Tier:     footprint.Feedback(total),
		Language: l.Language(),
		Message:  l.Headline(total),
	}
}

// Footprint is the result of a calculation.
type Footprint struct {
	Result      footprint.Result             `json:"result"`      // Emissions per category and total
	Categories  []footprint.CategoryEmission `json:"categories"`  // Emissions of each category
	Feedback    Feedback                     `json:"feedback"`    // Classification of the total
	Advice      []footprint.Advice           `json:"advice"`      // Tips for the highest categories
	Equivalents footprint.Equivalent         `json:"equivalents"` // The total in tangible terms
}

type FootprintResponse struct {
	Data Footprint `json:"data"`
}

type FactorListResponse struct {
	Data []emission.Factor `json:"data"` // Emission factors in kgCO2e per unit
}

type FactorQueryFilter struct {
	Group string `form:"group"` // Only return factors of this group
}

type CategoryTips struct {
	Category emission.Group `json:"category" example:"transport"`
	Tips     []string       `json:"tips"`
}

type TipListResponse struct {
	Data []CategoryTips `json:"data"`
}
