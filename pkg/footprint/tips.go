package footprint

import (
	"github.com/ecoechos/backend/pkg/emission"
	"github.com/shopspring/decimal"
)

var tips = map[emission.Group][]string{
	emission.GroupEnergy: {
		"Replace remaining incandescent and halogen bulbs with LEDs.",
		"Unplug chargers and appliances on standby, or use a switchable power strip.",
		"Run the washing machine and dishwasher only with full loads.",
		"Consider a rooftop solar installation or a renewable electricity tariff.",
		"Cook with lids on pots and use a pressure cooker to save gas.",
	},
	emission.GroupTransport: {
		"Walk or cycle for trips under three kilometres.",
		"Use the bus or metro for your daily commute.",
		"Share rides with colleagues or neighbours.",
		"Keep tyres inflated and drive smoothly to cut fuel use.",
		"Replace short flights with train or bus journeys where possible.",
	},
	emission.GroupFood: {
		"Swap beef for chicken, fish or legumes a few times a week.",
		"Plan meals and shop with a list to avoid food waste.",
		"Prefer seasonal and local vegetables.",
		"Try one fully plant-based day per week.",
		"Eat less cheese, it has a high footprint per kilogram.",
	},
	emission.GroupHousing: {
		"Set the air conditioning to 24 °C or higher.",
		"Use fans before switching on the air conditioning.",
		"Insulate windows and doors to keep heat in or out.",
		"Heat and cool only the rooms you use.",
		"Take shorter showers if you use an electric heater.",
	},
	emission.GroupConsumption: {
		"Keep phones and laptops longer before upgrading.",
		"Buy refurbished electronics instead of new ones.",
		"Repair clothes and shop second-hand.",
		"Choose efficient appliances with a good energy label when replacing one.",
		"Ask yourself whether you need an item before buying it.",
	},
	emission.GroupWaste: {
		"Separate recyclables from general waste.",
		"Compost food scraps and garden waste.",
		"Carry a reusable bag, bottle and cup.",
		"Return old electronics to a collection point.",
		"Avoid single-use and heavily packaged products.",
	},
	emission.GroupLifestyle: {
		"Stream in standard definition when high definition adds nothing.",
		"Download music and series instead of streaming them repeatedly.",
		"Bundle online orders to reduce deliveries.",
		"Choose events closer to home to avoid flights.",
		"Pick the slower shipping option, it often means fewer trips.",
	},
}

// Tips returns the reduction tips for a category.
func Tips(category emission.Group) []string {
	out := make([]string, len(tips[category]))
	copy(out, tips[category])
	return out
}

// Advice is a set of reduction tips for a category with high emissions.
type Advice struct {
	Category  emission.Group  `json:"category" example:"transport"`
	Emissions decimal.Decimal `json:"emissions" swaggertype:"string" example:"312.4"`
	Tips      []string        `json:"tips"`
}

// Picker returns an index in [0, n).
type Picker func(n int) int

var (
	adviceThreshold  = decimal.NewFromInt(50)
	adviceCategories = 2
	tipsPerCategory  = 2
)

// Advise returns tips for the two highest categories above 50 kgCO2e.
// With a nil picker, the first tips of each category are used.
func Advise(r Result, pick Picker) []Advice {
	if pick == nil {
		pick = func(int) int { return 0 }
	}

	out := []Advice{}
	for _, c := range r.Top(adviceCategories, adviceThreshold) {
		remaining := Tips(c.Category)
		chosen := make([]string, 0, tipsPerCategory)

		for len(chosen) < tipsPerCategory && len(remaining) > 0 {
			idx := pick(len(remaining))
			chosen = append(chosen, remaining[idx])
			remaining = append(remaining[:idx], remaining[idx+1:]...)
		}

		out = append(out, Advice{Category: c.Category, Emissions: c.Emissions, Tips: chosen})
	}

	return out
}
