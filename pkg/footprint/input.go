package footprint

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/ecoechos/backend/pkg/emission"
	"golang.org/x/exp/slices"
)

var ErrInvalidInput = errors.New("invalid footprint input")

// Input is the activity data of a household for one period.
//
// Monthly quantities are used as given. Per-day hours are scaled to a
// 30 day month and yearly flights to a single month.
type Input struct {
	// Energy
	ElectricityKWh float64 `json:"electricityKwh" yaml:"electricity_kwh" example:"150"` // Electricity used in kWh
	GasCylinders   float64 `json:"gasCylinders" yaml:"gas_cylinders" example:"1"`       // 13 kg LPG cylinders used

	// Transport
	FuelVehicleKm         float64                      `json:"fuelVehicleKm" yaml:"fuel_vehicle_km" example:"300"`                                    // Distance driven with a combustion car or motorcycle
	FuelType              emission.Fuel                `json:"fuelType" yaml:"fuel_type" example:"gasoline" enums:"gasoline,ethanol,diesel"`          // Fuel of the combustion vehicle
	ElectricVehicleKm     float64                      `json:"electricVehicleKm" yaml:"electric_vehicle_km" example:"0"`                              // Distance driven with an electric vehicle
	ElectricVehicleType   emission.ElectricVehicleType `json:"electricVehicleType" yaml:"electric_vehicle_type" example:"car" enums:"car,motorcycle"` // Type of the electric vehicle
	BusKm                 float64                      `json:"busKm" yaml:"bus_km" example:"40"`                                                      // Distance travelled by bus
	MetroKm               float64                      `json:"metroKm" yaml:"metro_km" example:"60"`                                                  // Distance travelled by metro
	DomesticFlightKm      float64                      `json:"domesticFlightKm" yaml:"domestic_flight_km" example:"0"`                                // Distance flown on domestic flights
	InternationalFlightKm float64                      `json:"internationalFlightKm" yaml:"international_flight_km" example:"0"`                      // Distance flown on international flights

	// Food
	BeefKg       float64 `json:"beefKg" yaml:"beef_kg" example:"2"`
	PorkKg       float64 `json:"porkKg" yaml:"pork_kg" example:"1"`
	ChickenKg    float64 `json:"chickenKg" yaml:"chicken_kg" example:"3"`
	FishKg       float64 `json:"fishKg" yaml:"fish_kg" example:"1"`
	MilkLitres   float64 `json:"milkLitres" yaml:"milk_litres" example:"8"`
	CheeseKg     float64 `json:"cheeseKg" yaml:"cheese_kg" example:"0.5"`
	EggDozens    int     `json:"eggDozens" yaml:"egg_dozens" example:"2"`
	RiceKg       float64 `json:"riceKg" yaml:"rice_kg" example:"5"`
	BeansKg      float64 `json:"beansKg" yaml:"beans_kg" example:"3"`
	VegetablesKg float64 `json:"vegetablesKg" yaml:"vegetables_kg" example:"10"`

	// Housing
	Rooms                      int     `json:"rooms" yaml:"rooms" example:"4"`                                               // Rooms of the home
	AirConditioningHoursPerDay float64 `json:"airConditioningHoursPerDay" yaml:"air_conditioning_hours_per_day" example:"2"` // Daily air conditioning use
	HeaterHoursPerDay          float64 `json:"heaterHoursPerDay" yaml:"heater_hours_per_day" example:"0"`                    // Daily heater use

	// Consumption, as devices bought in the period
	Phones           int `json:"phones" yaml:"phones" example:"0"`
	Laptops          int `json:"laptops" yaml:"laptops" example:"0"`
	Fridges          int `json:"fridges" yaml:"fridges" example:"0"`
	Televisions      int `json:"televisions" yaml:"televisions" example:"0"`
	ElectricVehicles int `json:"electricVehicles" yaml:"electric_vehicles" example:"0"`
	ClothingPieces   int `json:"clothingPieces" yaml:"clothing_pieces" example:"3"`

	// Waste
	TrashBags         float64 `json:"trashBags" yaml:"trash_bags" example:"8"` // 100 l bags of mixed waste
	RecyclableKg      float64 `json:"recyclableKg" yaml:"recyclable_kg" example:"4"`
	ElectronicWasteKg float64 `json:"electronicWasteKg" yaml:"electronic_waste_kg" example:"0"`
	CompostKg         float64 `json:"compostKg" yaml:"compost_kg" example:"5"`

	// Lifestyle
	EventFlightsPerYear  int     `json:"eventFlightsPerYear" yaml:"event_flights_per_year" example:"1"`
	StreamingHoursPerDay float64 `json:"streamingHoursPerDay" yaml:"streaming_hours_per_day" example:"2"`
	OnlineOrdersPerMonth int     `json:"onlineOrdersPerMonth" yaml:"online_orders_per_month" example:"4"`

	// Offsets
	TreesPlantedPerMonth float64 `json:"treesPlantedPerMonth" yaml:"trees_planted_per_month" example:"0"`
	CarbonCreditsKg      float64 `json:"carbonCreditsKg" yaml:"carbon_credits_kg" example:"0"`
}

// NewInput returns an Input with defaults set. Decode requests into it so
// that omitted fields keep their defaults.
func NewInput() Input {
	return Input{
		FuelType:            emission.FuelGasoline,
		ElectricVehicleType: emission.ElectricVehicleCar,
		Rooms:               1,
	}
}

// Validate checks that all quantities are finite and non-negative and
// that vehicle types are known.
func (in Input) Validate() error {
	var problems []string

	for _, q := range in.quantities() {
		switch {
		case math.IsNaN(q.value) || math.IsInf(q.value, 0):
			problems = append(problems, fmt.Sprintf("%s must be a finite number", q.name))
		case q.value < 0:
			problems = append(problems, fmt.Sprintf("%s must not be negative", q.name))
		}
	}

	if in.FuelType != "" && !slices.Contains(emission.Fuels, in.FuelType) {
		problems = append(problems, fmt.Sprintf("fuelType '%s' is not one of gasoline, ethanol, diesel", in.FuelType))
	}

	if in.ElectricVehicleType != "" && !slices.Contains(emission.ElectricVehicleTypes, in.ElectricVehicleType) {
		problems = append(problems, fmt.Sprintf("electricVehicleType '%s' is not one of car, motorcycle", in.ElectricVehicleType))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(problems, ", "))
	}

	return nil
}

type quantity struct {
	name  string
	value float64
}

func (in Input) quantities() []quantity {
	return []quantity{
		{"electricityKwh", in.ElectricityKWh},
		{"gasCylinders", in.GasCylinders},
		{"fuelVehicleKm", in.FuelVehicleKm},
		{"electricVehicleKm", in.ElectricVehicleKm},
		{"busKm", in.BusKm},
		{"metroKm", in.MetroKm},
		{"domesticFlightKm", in.DomesticFlightKm},
		{"internationalFlightKm", in.InternationalFlightKm},
		{"beefKg", in.BeefKg},
		{"porkKg", in.PorkKg},
		{"chickenKg", in.ChickenKg},
		{"fishKg", in.FishKg},
		{"milkLitres", in.MilkLitres},
		{"cheeseKg", in.CheeseKg},
		{"eggDozens", float64(in.EggDozens)},
		{"riceKg", in.RiceKg},
		{"beansKg", in.BeansKg},
		{"vegetablesKg", in.VegetablesKg},
		{"rooms", float64(in.Rooms)},
		{"airConditioningHoursPerDay", in.AirConditioningHoursPerDay},
		{"heaterHoursPerDay", in.HeaterHoursPerDay},
		{"phones", float64(in.Phones)},
		{"laptops", float64(in.Laptops)},
		{"fridges", float64(in.Fridges)},
		{"televisions", float64(in.Televisions)},
		{"electricVehicles", float64(in.ElectricVehicles)},
		{"clothingPieces", float64(in.ClothingPieces)},
		{"trashBags", in.TrashBags},
		{"recyclableKg", in.RecyclableKg},
		{"electronicWasteKg", in.ElectronicWasteKg},
		{"compostKg", in.CompostKg},
		{"eventFlightsPerYear", float64(in.EventFlightsPerYear)},
		{"streamingHoursPerDay", in.StreamingHoursPerDay},
		{"onlineOrdersPerMonth", float64(in.OnlineOrdersPerMonth)},
		{"treesPlantedPerMonth", in.TreesPlantedPerMonth},
		{"carbonCreditsKg", in.CarbonCreditsKg},
	}
}
