package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeg_Lifecycle(t *testing.T) {
	seller := endpoint(t, "Seller", "Malolos, Bulacan")
	buyer := endpoint(t, "Buyer", "Malolos, Bulacan")
	legs, err := route.NewChain(seller).To(route.Delivery, buyer).Legs()
	require.NoError(t, err)
	leg := legs[0]

	assert.Equal(t, route.Pending, leg.Status())
	assert.Nil(t, leg.CourierID())

	first, second := kernel.NewUUID(), kernel.NewUUID()
	require.NoError(t, leg.Assign(first))
	require.NoError(t, leg.Assign(second))
	assert.True(t, second.IsEqual(*leg.CourierID()))

	require.NoError(t, leg.Start())
	require.Error(t, leg.Assign(first))
	require.NoError(t, leg.Complete())
	assert.Equal(t, route.Completed, leg.Status())
	require.Error(t, leg.Fail())
}

func TestLeg_AssignRejectsNilCourier(t *testing.T) {
	legs, err := route.NewChain(endpoint(t, "", "A")).To(route.Delivery, endpoint(t, "", "B")).Legs()
	require.NoError(t, err)

	require.ErrorIs(t, legs[0].Assign(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
	assert.Equal(t, route.Pending, legs[0].Status())
}

func TestRestoreLeg(t *testing.T) {
	from := endpoint(t, "", "A")
	to := endpoint(t, "", "B")
	courierID := kernel.NewUUID()

	leg, err := route.RestoreLeg(2, route.Delivery, from, to, route.InTransit, &courierID)
	require.NoError(t, err)
	assert.Equal(t, 2, leg.Number())
	assert.Equal(t, route.InTransit, leg.Status())

	_, err = route.RestoreLeg(1, route.Delivery, from, to, route.Assigned, nil)
	require.Error(t, err)

	_, err = route.RestoreLeg(0, route.LegTypeUnknown, route.Endpoint{}, to, route.Pending, nil)
	require.Error(t, err)
}

func TestRestoreLeg_LineHaulNeedsHubs(t *testing.T) {
	_, err := route.RestoreLeg(1, route.LineHaul, endpoint(t, "", "A"), endpoint(t, "", "B"), route.Pending, nil)
	require.Error(t, err)

	mnl := hubEndpoint(t, defaultHub(t, "HUB-MNL"))
	ceb := hubEndpoint(t, defaultHub(t, "HUB-CEB"))
	_, err = route.RestoreLeg(1, route.LineHaul, mnl, ceb, route.Pending, nil)
	require.NoError(t, err)
}

func TestEndpoint(t *testing.T) {
	_, err := route.NewEndpoint(" ", "", nil)
	require.ErrorIs(t, err, route.ErrEndpointIsEmpty)

	e := endpoint(t, "", "Malolos, Bulacan")
	assert.Equal(t, "Malolos, Bulacan", e.Name())
	assert.False(t, e.IsHub())

	h := hubEndpoint(t, defaultHub(t, "HUB-BUL"))
	assert.True(t, h.IsHub())
	assert.Equal(t, "HUB-BUL", h.HubCode())
	assert.Equal(t, "Malolos, Bulacan", h.Address())
	require.NotNil(t, h.Coordinates())
	assert.True(t, h.IsEqual(hubEndpoint(t, defaultHub(t, "HUB-BUL"))))
	assert.False(t, h.IsEqual(e))

	var zero route.Endpoint
	require.ErrorIs(t, zero.Validate(), route.ErrEndpointIsNotConstructed)
}
