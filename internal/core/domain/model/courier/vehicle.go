package courier

import (
	"fmt"
	"slices"
	"strings"

	"logistics/internal/pkg/errs"
	"logistics/internal/pkg/guard"
)

// VehicleType is the class of vehicle a courier drives.
type VehicleType int

const (
	VehicleTypeUnknown VehicleType = iota
	Motorcycle
	Car
	Van
	Truck
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleTypeUnknown: "unknown",
		Motorcycle:         "motorcycle",
		Car:                "car",
		Van:                "van",
		Truck:              "truck",
	}
}

func ParseVehicleType(code string) (VehicleType, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for v, str := range getVehicleTypeStrings() {
		if v != VehicleTypeUnknown && str == code {
			return v, nil
		}
	}
	return VehicleTypeUnknown, errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%q is not a valid vehicle type", code))
}

func (v VehicleType) Validate() error {
	if v < Motorcycle || v > Truck {
		return errs.NewValueIsInvalidErrorWithCause("vehicle type", fmt.Errorf("%d is not a valid vehicle type", v))
	}
	return nil
}

func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "unknown"
}

var ErrVehicleIsNotConstructed = errs.NewValueIsRequiredError("vehicle must be created via NewVehicle")

// Vehicle is a courier's vehicle and the heaviest package it may carry, in kilograms.
type Vehicle struct {
	vehicleType VehicleType
	maxWeight   float64
	guard       guard.ConstructorGuard
}

func NewVehicle(vehicleType VehicleType, maxWeight float64) (Vehicle, error) {
	if err := vehicleType.Validate(); err != nil {
		return Vehicle{}, err
	}
	if maxWeight <= 0 {
		return Vehicle{}, errs.NewValueIsInvalidErrorWithCause("max weight", fmt.Errorf("%v is not greater than 0", maxWeight))
	}

	return Vehicle{
		vehicleType: vehicleType,
		maxWeight:   maxWeight,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (v Vehicle) Validate() error {
	return v.guard.Validate(ErrVehicleIsNotConstructed)
}

func (v Vehicle) Type() VehicleType {
	return v.vehicleType
}

func (v Vehicle) MaxWeight() float64 {
	return v.maxWeight
}

// CanLift reports whether weight is within the payload limit.
func (v Vehicle) CanLift(weight float64) bool {
	return weight <= v.maxWeight
}

// CapabilityTable maps a package size to the vehicle types allowed to carry it.
type CapabilityTable struct {
	allowed map[PackageSize][]VehicleType
}

// NewCapabilityTable copies the given mapping. Every size must allow at least one
// vehicle type.
func NewCapabilityTable(allowed map[PackageSize][]VehicleType) (CapabilityTable, error) {
	copied := make(map[PackageSize][]VehicleType, len(allowed))
	for _, size := range AllPackageSizes() {
		vehicles := allowed[size]
		if len(vehicles) == 0 {
			return CapabilityTable{}, errs.NewValueIsRequiredError("vehicle types for " + size.String())
		}
		copied[size] = slices.Clone(vehicles)
	}
	return CapabilityTable{allowed: copied}, nil
}

// DefaultCapabilityTable lets any vehicle carry small and medium parcels and keeps
// motorcycles off large and bulk ones.
func DefaultCapabilityTable() CapabilityTable {
	return CapabilityTable{
		allowed: map[PackageSize][]VehicleType{
			Small:  {Motorcycle, Car, Van, Truck},
			Medium: {Motorcycle, Car, Van, Truck},
			Large:  {Car, Van, Truck},
			Bulk:   {Car, Van, Truck},
		},
	}
}

// RequiredVehicles returns the vehicle types able to carry size, or nil for an
// unknown size.
func (t CapabilityTable) RequiredVehicles(size PackageSize) []VehicleType {
	return slices.Clone(t.allowed[size])
}

func (t CapabilityTable) Allows(size PackageSize, vehicleType VehicleType) bool {
	return slices.Contains(t.allowed[size], vehicleType)
}
