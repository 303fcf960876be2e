// Package emission holds the emission factor table.
//
// Every factor is the amount of CO2 equivalent, in kilograms, emitted
// per unit of activity. Negative factors remove emissions.
package emission

import (
	"github.com/shopspring/decimal"
)

// Group is a category of factors.
type Group string

const (
	GroupEnergy      Group = "energy"
	GroupTransport   Group = "transport"
	GroupFood        Group = "food"
	GroupHousing     Group = "housing"
	GroupConsumption Group = "consumption"
	GroupWaste       Group = "waste"
	GroupLifestyle   Group = "lifestyle"
	GroupOffsets     Group = "offsets"
)

// Factor is a single emission coefficient.
type Factor struct {
	Group Group           `json:"group" example:"energy"`                     // Category the factor belongs to
	Name  string          `json:"name" example:"electricity"`                 // Name of the activity
	Unit  string          `json:"unit" example:"kWh"`                         // Unit of the activity
	Value decimal.Decimal `json:"value" example:"0.065" swaggertype:"string"` // kgCO2e per unit
}

// Times returns the emissions for a quantity of the factor's unit.
func (f Factor) Times(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(f.Value)
}

func factor(g Group, name, unit, value string) Factor {
	return Factor{Group: g, Name: name, Unit: unit, Value: decimal.RequireFromString(value)}
}

var (
	Electricity = factor(GroupEnergy, "electricity", "kWh", "0.065")
	CookingGas  = factor(GroupEnergy, "cookingGas", "13 kg LPG cylinder", "3.02")
	Gasoline    = factor(GroupEnergy, "gasoline", "litre", "2.32")
	Ethanol     = factor(GroupEnergy, "ethanol", "litre", "0.55")
	Diesel      = factor(GroupEnergy, "diesel", "litre", "2.68")

	ElectricCar         = factor(GroupTransport, "electricCar", "km", "0.06")
	Motorcycle          = factor(GroupTransport, "motorcycle", "km", "0.09")
	Bus                 = factor(GroupTransport, "bus", "km", "0.11")
	Metro               = factor(GroupTransport, "metro", "km", "0.035")
	DomesticFlight      = factor(GroupTransport, "domesticFlight", "km", "0.14")
	InternationalFlight = factor(GroupTransport, "internationalFlight", "km", "0.19")

	Beef       = factor(GroupFood, "beef", "kg", "26.5")
	Pork       = factor(GroupFood, "pork", "kg", "7.0")
	Chicken    = factor(GroupFood, "chicken", "kg", "9.5")
	Fish       = factor(GroupFood, "fish", "kg", "4.8")
	Milk       = factor(GroupFood, "milk", "litre", "1.1")
	Cheese     = factor(GroupFood, "cheese", "kg", "13.0")
	Eggs       = factor(GroupFood, "eggs", "dozen", "1.5")
	Rice       = factor(GroupFood, "rice", "kg", "1.8")
	Beans      = factor(GroupFood, "beans", "kg", "1.1")
	Vegetables = factor(GroupFood, "vegetables", "kg", "0.85")

	Room            = factor(GroupHousing, "room", "room", "15.0")
	AirConditioning = factor(GroupHousing, "airConditioning", "hour", "1.3")
	Heater          = factor(GroupHousing, "heater", "hour", "1.9")

	Phone           = factor(GroupConsumption, "phone", "device", "75")
	Laptop          = factor(GroupConsumption, "laptop", "device", "390")
	Fridge          = factor(GroupConsumption, "fridge", "device", "2900")
	Television      = factor(GroupConsumption, "television", "device", "950")
	ElectricVehicle = factor(GroupConsumption, "electricVehicle", "vehicle", "1900")
	Clothing        = factor(GroupConsumption, "clothing", "piece", "7.5")

	TrashBag   = factor(GroupWaste, "trashBag", "100 l bag", "5.0")
	Recyclable = factor(GroupWaste, "recyclable", "kg", "0.6")
	Electronic = factor(GroupWaste, "electronic", "kg", "2.4")
	Compost    = factor(GroupWaste, "compost", "kg", "-0.2")

	EventFlight = factor(GroupLifestyle, "eventFlight", "flight per year", "480")
	Streaming   = factor(GroupLifestyle, "streaming", "hour", "0.4")
	OnlineOrder = factor(GroupLifestyle, "onlineOrder", "order", "3.8")

	TreePlanted  = factor(GroupOffsets, "treePlanted", "tree per month", "-21.0")
	CarbonCredit = factor(GroupOffsets, "carbonCredit", "kg", "-1.0")
)

var table = []Factor{
	Electricity, CookingGas, Gasoline, Ethanol, Diesel,
	ElectricCar, Motorcycle, Bus, Metro, DomesticFlight, InternationalFlight,
	Beef, Pork, Chicken, Fish, Milk, Cheese, Eggs, Rice, Beans, Vegetables,
	Room, AirConditioning, Heater,
	Phone, Laptop, Fridge, Television, ElectricVehicle, Clothing,
	TrashBag, Recyclable, Electronic, Compost,
	EventFlight, Streaming, OnlineOrder,
	TreePlanted, CarbonCredit,
}

var groups = []Group{
	GroupEnergy, GroupTransport, GroupFood, GroupHousing,
	GroupConsumption, GroupWaste, GroupLifestyle, GroupOffsets,
}

// All returns a copy of the full table, ordered by group.
func All() []Factor {
	out := make([]Factor, len(table))
	copy(out, table)
	return out
}

// Groups returns all groups in table order.
func Groups() []Group {
	out := make([]Group, len(groups))
	copy(out, groups)
	return out
}

// ByGroup returns the factors of a single group.
func ByGroup(g Group) []Factor {
	var out []Factor
	for _, f := range table {
		if f.Group == g {
			out = append(out, f)
		}
	}
	return out
}

// Lookup finds a factor by group and name.
func Lookup(g Group, name string) (Factor, bool) {
	for _, f := range table {
		if f.Group == g && f.Name == name {
			return f, true
		}
	}
	return Factor{}, false
}
