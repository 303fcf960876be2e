// Package footprint computes carbon footprints from household activity data.
package footprint

import (
	"sort"

	"github.com/ecoechos/backend/pkg/emission"
	"github.com/shopspring/decimal"
)

var (
	daysPerMonth   = decimal.NewFromInt(30)
	monthsPerYear  = decimal.NewFromInt(12)
	categoryGroups = []emission.Group{
		emission.GroupEnergy,
		emission.GroupTransport,
		emission.GroupFood,
		emission.GroupHousing,
		emission.GroupConsumption,
		emission.GroupWaste,
		emission.GroupLifestyle,
	}
)

// Result holds the emissions in kgCO2e per category.
//
// Offsets are not a category, they are subtracted from the total.
type Result struct {
	Energy      decimal.Decimal `json:"energy" swaggertype:"string" example:"19.81"`
	Transport   decimal.Decimal `json:"transport" swaggertype:"string" example:"78.9"`
	Food        decimal.Decimal `json:"food" swaggertype:"string" example:"123.7"`
	Housing     decimal.Decimal `json:"housing" swaggertype:"string" example:"138"`
	Consumption decimal.Decimal `json:"consumption" swaggertype:"string" example:"22.5"`
	Waste       decimal.Decimal `json:"waste" swaggertype:"string" example:"41.4"`
	Lifestyle   decimal.Decimal `json:"lifestyle" swaggertype:"string" example:"79.2"`
	Offsets     decimal.Decimal `json:"offsets" swaggertype:"string" example:"0"`
	Total       decimal.Decimal `json:"total" swaggertype:"string" example:"503.51"`
}

// CategoryEmission is the emissions of a single category.
type CategoryEmission struct {
	Category  emission.Group  `json:"category" example:"food"`
	Emissions decimal.Decimal `json:"emissions" swaggertype:"string" example:"123.7"`
}

// Calculate computes the footprint of an input.
func Calculate(in Input) Result {
	r := Result{
		Energy:      Energy(in),
		Transport:   Transport(in),
		Food:        Food(in),
		Housing:     Housing(in),
		Consumption: Consumption(in),
		Waste:       Waste(in),
		Lifestyle:   Lifestyle(in),
		Offsets:     Offsets(in),
	}

	r.Total = decimal.Sum(r.Energy, r.Transport, r.Food, r.Housing, r.Consumption, r.Waste, r.Lifestyle, r.Offsets)
	return r
}

// Category returns the emissions of a category.
func (r Result) Category(g emission.Group) decimal.Decimal {
	switch g {
	case emission.GroupEnergy:
		return r.Energy
	case emission.GroupTransport:
		return r.Transport
	case emission.GroupFood:
		return r.Food
	case emission.GroupHousing:
		return r.Housing
	case emission.GroupConsumption:
		return r.Consumption
	case emission.GroupWaste:
		return r.Waste
	case emission.GroupLifestyle:
		return r.Lifestyle
	case emission.GroupOffsets:
		return r.Offsets
	}
	return decimal.Zero
}

// Categories returns the seven categories in table order.
func (r Result) Categories() []CategoryEmission {
	out := make([]CategoryEmission, 0, len(categoryGroups))
	for _, g := range categoryGroups {
		out = append(out, CategoryEmission{Category: g, Emissions: r.Category(g)})
	}
	return out
}

// Top returns up to n categories with emissions strictly above the
// threshold, largest first.
func (r Result) Top(n int, threshold decimal.Decimal) []CategoryEmission {
	var out []CategoryEmission
	for _, c := range r.Categories() {
		if c.Emissions.GreaterThan(threshold) {
			out = append(out, c)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Emissions.GreaterThan(out[j].Emissions)
	})

	if len(out) > n {
		out = out[:n]
	}
	return out
}

// Add returns the category-wise sum of two results.
func (r Result) Add(o Result) Result {
	return Result{
		Energy:      r.Energy.Add(o.Energy),
		Transport:   r.Transport.Add(o.Transport),
		Food:        r.Food.Add(o.Food),
		Housing:     r.Housing.Add(o.Housing),
		Consumption: r.Consumption.Add(o.Consumption),
		Waste:       r.Waste.Add(o.Waste),
		Lifestyle:   r.Lifestyle.Add(o.Lifestyle),
		Offsets:     r.Offsets.Add(o.Offsets),
		Total:       r.Total.Add(o.Total),
	}
}

func qty(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v)
}

func count(v int) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}

// Energy is household electricity and cooking gas.
func Energy(in Input) decimal.Decimal {
	return emission.Electricity.Times(qty(in.ElectricityKWh)).
		Add(emission.CookingGas.Times(qty(in.GasCylinders)))
}

// Transport is private vehicles, public transport and flights.
func Transport(in Input) decimal.Decimal {
	return decimal.Sum(fuelVehicle(in), electricVehicle(in),
		emission.Bus.Times(qty(in.BusKm)),
		emission.Metro.Times(qty(in.MetroKm)),
		emission.DomesticFlight.Times(qty(in.DomesticFlightKm)),
		emission.InternationalFlight.Times(qty(in.InternationalFlightKm)),
	)
}

// fuelVehicle converts distance to litres through the fuel economy.
// Unknown fuels do not contribute.
func fuelVehicle(in Input) decimal.Decimal {
	factor, ok := emission.FuelFactor(in.FuelType)
	if !ok {
		return decimal.Zero
	}
	economy, _ := emission.FuelEconomy(in.FuelType)

	return factor.Times(qty(in.FuelVehicleKm)).Div(economy)
}

func electricVehicle(in Input) decimal.Decimal {
	factor, ok := emission.ElectricVehicleFactor(in.ElectricVehicleType)
	if !ok {
		return decimal.Zero
	}
	return factor.Times(qty(in.ElectricVehicleKm))
}

// Food is the diet of the household.
func Food(in Input) decimal.Decimal {
	return decimal.Sum(
		emission.Beef.Times(qty(in.BeefKg)),
		emission.Pork.Times(qty(in.PorkKg)),
		emission.Chicken.Times(qty(in.ChickenKg)),
		emission.Fish.Times(qty(in.FishKg)),
		emission.Milk.Times(qty(in.MilkLitres)),
		emission.Cheese.Times(qty(in.CheeseKg)),
		emission.Eggs.Times(count(in.EggDozens)),
		emission.Rice.Times(qty(in.RiceKg)),
		emission.Beans.Times(qty(in.BeansKg)),
		emission.Vegetables.Times(qty(in.VegetablesKg)),
	)
}

// Housing is the size of the home plus monthly climate control.
func Housing(in Input) decimal.Decimal {
	return decimal.Sum(
		emission.Room.Times(count(in.Rooms)),
		emission.AirConditioning.Times(qty(in.AirConditioningHoursPerDay).Mul(daysPerMonth)),
		emission.Heater.Times(qty(in.HeaterHoursPerDay).Mul(daysPerMonth)),
	)
}

// Consumption is the embodied emissions of goods bought.
func Consumption(in Input) decimal.Decimal {
	return decimal.Sum(
		emission.Phone.Times(count(in.Phones)),
		emission.Laptop.Times(count(in.Laptops)),
		emission.Fridge.Times(count(in.Fridges)),
		emission.Television.Times(count(in.Televisions)),
		emission.ElectricVehicle.Times(count(in.ElectricVehicles)),
		emission.Clothing.Times(count(in.ClothingPieces)),
	)
}

// Waste is household waste. Composting reduces it.
func Waste(in Input) decimal.Decimal {
	return decimal.Sum(
		emission.TrashBag.Times(qty(in.TrashBags)),
		emission.Recyclable.Times(qty(in.RecyclableKg)),
		emission.Electronic.Times(qty(in.ElectronicWasteKg)),
		emission.Compost.Times(qty(in.CompostKg)),
	)
}

// Lifestyle is event travel spread over the year, streaming and
// online shopping.
func Lifestyle(in Input) decimal.Decimal {
	return decimal.Sum(
		emission.EventFlight.Times(count(in.EventFlightsPerYear)).Div(monthsPerYear),
		emission.Streaming.Times(qty(in.StreamingHoursPerDay).Mul(daysPerMonth)),
		emission.OnlineOrder.Times(count(in.OnlineOrdersPerMonth)),
	)
}

// Offsets is the (negative) sum of trees planted and carbon credits.
func Offsets(in Input) decimal.Decimal {
	return emission.TreePlanted.Times(qty(in.TreesPlantedPerMonth)).
		Add(emission.CarbonCredit.Times(qty(in.CarbonCreditsKg)))
}
