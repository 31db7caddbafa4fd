package route_test

import (
	"testing"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

func endpoint(t *testing.T, name, address string) route.Endpoint {
	t.Helper()
	e, err := route.NewEndpoint(name, address, nil)
	require.NoError(t, err)
	return e
}

func hubEndpoint(t *testing.T, h *hub.Hub) route.Endpoint {
	t.Helper()
	e, err := route.HubEndpoint(h)
	require.NoError(t, err)
	return e
}

func defaultHub(t *testing.T, code string) *hub.Hub {
	t.Helper()
	d := hub.NewDirectory(hub.DefaultHubs(), hub.DefaultRoutingTable())
	h, ok := d.Get(code)
	require.True(t, ok)
	return h
}
