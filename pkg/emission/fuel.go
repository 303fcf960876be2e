package emission

import "github.com/shopspring/decimal"

// Fuel is the fuel of a combustion vehicle.
type Fuel string

const (
	FuelGasoline Fuel = "gasoline"
	FuelEthanol  Fuel = "ethanol"
	FuelDiesel   Fuel = "diesel"
)

// Fuels lists the supported fuels.
var Fuels = []Fuel{FuelGasoline, FuelEthanol, FuelDiesel}

// economy is the average distance in km a car covers with one litre.
var economy = map[Fuel]decimal.Decimal{
	FuelGasoline: decimal.NewFromInt(10),
	FuelEthanol:  decimal.NewFromInt(7),
	FuelDiesel:   decimal.NewFromInt(12),
}

var fuelFactors = map[Fuel]Factor{
	FuelGasoline: Gasoline,
	FuelEthanol:  Ethanol,
	FuelDiesel:   Diesel,
}

// FuelEconomy returns the km per litre for a fuel.
func FuelEconomy(f Fuel) (decimal.Decimal, bool) {
	e, ok := economy[f]
	return e, ok
}

// FuelFactor returns the per-litre factor for a fuel.
func FuelFactor(f Fuel) (Factor, bool) {
	factor, ok := fuelFactors[f]
	return factor, ok
}

// ElectricVehicleType is the kind of an electric vehicle.
type ElectricVehicleType string

const (
	ElectricVehicleCar        ElectricVehicleType = "car"
	ElectricVehicleMotorcycle ElectricVehicleType = "motorcycle"
)

// ElectricVehicleTypes lists the supported electric vehicle types.
var ElectricVehicleTypes = []ElectricVehicleType{ElectricVehicleCar, ElectricVehicleMotorcycle}

// ElectricVehicleFactor returns the per-km factor for an electric vehicle.
//
// Electric motorcycles use the motorcycle factor.
func ElectricVehicleFactor(t ElectricVehicleType) (Factor, bool) {
	switch t {
	case ElectricVehicleCar:
		return ElectricCar, true
	case ElectricVehicleMotorcycle:
		return Motorcycle, true
	}
	return Factor{}, false
}
