package courier_test

import (
	"testing"

	"logistics/internal/core/domain/model/courier"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackageSizeForWeight(t *testing.T) {
	tests := []struct {
		weight float64
		want   courier.PackageSize
	}{
		{0.2, courier.Small},
		{5, courier.Small},
		{5.01, courier.Medium},
		{20, courier.Medium},
		{20.5, courier.Large},
		{50, courier.Large},
		{50.1, courier.Bulk},
		{60, courier.Bulk},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, courier.PackageSizeForWeight(tt.weight), "weight %v", tt.weight)
	}
}

func TestDefaultCapabilityTable_RequiredVehicles(t *testing.T) {
	table := courier.DefaultCapabilityTable()

	assert.Equal(t, []courier.VehicleType{courier.Motorcycle, courier.Car, courier.Van, courier.Truck},
		table.RequiredVehicles(courier.Small))
	assert.Equal(t, []courier.VehicleType{courier.Car, courier.Van, courier.Truck},
		table.RequiredVehicles(courier.Bulk))
	assert.NotContains(t, table.RequiredVehicles(courier.Large), courier.Motorcycle)
	assert.Nil(t, table.RequiredVehicles(courier.PackageSizeUnknown))

	// larger sizes never allow a vehicle a smaller size forbids
	sizes := courier.AllPackageSizes()
	for i := 1; i < len(sizes); i++ {
		for _, v := range table.RequiredVehicles(sizes[i]) {
			assert.Contains(t, table.RequiredVehicles(sizes[i-1]), v)
		}
	}
}

func TestCapabilityTable_IsCopied(t *testing.T) {
	table := courier.DefaultCapabilityTable()
	vehicles := table.RequiredVehicles(courier.Bulk)
	vehicles[0] = courier.Motorcycle

	assert.False(t, table.Allows(courier.Bulk, courier.Motorcycle))
}

func TestNewCapabilityTable(t *testing.T) {
	_, err := courier.NewCapabilityTable(map[courier.PackageSize][]courier.VehicleType{
		courier.Small: {courier.Motorcycle},
	})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	table, err := courier.NewCapabilityTable(map[courier.PackageSize][]courier.VehicleType{
		courier.Small:  {courier.Motorcycle},
		courier.Medium: {courier.Car},
		courier.Large:  {courier.Van},
		courier.Bulk:   {courier.Truck},
	})
	require.NoError(t, err)
	assert.True(t, table.Allows(courier.Bulk, courier.Truck))
	assert.False(t, table.Allows(courier.Bulk, courier.Van))
}

func TestNewVehicle(t *testing.T) {
	_, err := courier.NewVehicle(courier.VehicleTypeUnknown, 10)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = courier.NewVehicle(courier.Car, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	v, err := courier.NewVehicle(courier.Car, 200)
	require.NoError(t, err)
	assert.True(t, v.CanLift(200))
	assert.False(t, v.CanLift(200.5))
}

func TestDriverType_ServesLeg(t *testing.T) {
	tests := []struct {
		driver courier.DriverType
		leg    route.LegType
		want   bool
	}{
		{courier.LineHaulDriver, route.LineHaul, true},
		{courier.AllRoundDriver, route.LineHaul, false},
		{courier.PickupDriver, route.LineHaul, false},
		{courier.PickupDriver, route.Pickup, true},
		{courier.PickupDriver, route.Delivery, false},
		{courier.DeliveryDriver, route.Delivery, true},
		{courier.AllRoundDriver, route.Pickup, true},
		{courier.AllRoundDriver, route.Delivery, true},
		{courier.LineHaulDriver, route.Pickup, false},
		{courier.LineHaulDriver, route.Delivery, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.driver.ServesLeg(tt.leg), "%s on %s", tt.driver, tt.leg)
	}
}

func TestEnumParsing(t *testing.T) {
	vt, err := courier.ParseVehicleType("Truck")
	require.NoError(t, err)
	assert.Equal(t, courier.Truck, vt)

	dt, err := courier.ParseDriverType("all_round")
	require.NoError(t, err)
	assert.Equal(t, courier.AllRoundDriver, dt)

	st, err := courier.ParseStatus("offline")
	require.NoError(t, err)
	assert.Equal(t, courier.Offline, st)

	ps, err := courier.ParsePackageSize("BULK")
	require.NoError(t, err)
	assert.Equal(t, courier.Bulk, ps)

	_, err = courier.ParseVehicleType("bicycle")
	require.Error(t, err)
	_, err = courier.ParseDriverType("")
	require.Error(t, err)
	_, err = courier.ParseStatus("sleeping")
	require.Error(t, err)
	_, err = courier.ParsePackageSize("huge")
	require.Error(t, err)
}
