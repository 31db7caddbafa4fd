package hub_test

import (
	"testing"

	"logistics/internal/core/domain/model/hub"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultDirectory() hub.Directory {
	return hub.NewDirectory(hub.DefaultHubs(), hub.DefaultRoutingTable())
}

func TestDirectory_FindHubForLocation_RoutingTable(t *testing.T) {
	d := defaultDirectory()
	tests := []struct {
		city, province string
		want           string
	}{
		{"Malolos", "Bulacan", "HUB-BUL"},
		{"Angeles", "Pampanga", "HUB-PAM"},
		{"Tarlac City", "Tarlac", "HUB-PAM"},
		{"Cabanatuan", "", "HUB-NE"},
		{"Cebu City", "Cebu", "HUB-CEB"},
		{"Davao City", "Davao del Sur", "HUB-DVO"},
		{"CAGAYAN DE ORO", "Misamis Oriental", "HUB-CDO"},
		{"Makati", "Metro Manila", "HUB-MNL"},
	}

	for _, tt := range tests {
		t.Run(tt.city, func(t *testing.T) {
			h := d.FindHubForLocation(tt.city, tt.province)
			require.NotNil(t, h)
			assert.Equal(t, tt.want, h.Code())
		})
	}
}

func TestDirectory_FindHubForLocation_CoverageKeywords(t *testing.T) {
	d := defaultDirectory()

	h := d.FindHubForLocation("Bacolod", "")

	require.NotNil(t, h)
	assert.Equal(t, "HUB-ILO", h.Code())
}

func TestDirectory_FindHubForLocation_FallsBackToDefault(t *testing.T) {
	d := defaultDirectory()

	for _, in := range [][2]string{{"Baguio", "Benguet"}, {"", ""}, {"   ", "\t"}} {
		h := d.FindHubForLocation(in[0], in[1])
		require.NotNil(t, h)
		assert.Equal(t, hub.DefaultSortingHubCode, h.Code())
	}
}

func TestDirectory_InactiveHubsAreIgnored(t *testing.T) {
	hubs := hub.DefaultHubs()
	for _, h := range hubs {
		if h.Code() == "HUB-BUL" {
			h.Deactivate()
		}
	}
	d := hub.NewDirectory(hubs, hub.DefaultRoutingTable())

	h := d.FindHubForLocation("Malolos", "Bulacan")

	require.NotNil(t, h)
	assert.Equal(t, hub.DefaultSortingHubCode, h.Code())
	_, ok := d.Get("HUB-BUL")
	assert.False(t, ok)
	assert.Len(t, d.Hubs(), 7)
}

func TestDirectory_MissingDefaultHubReturnsNil(t *testing.T) {
	var hubs []*hub.Hub
	for _, h := range hub.DefaultHubs() {
		if h.Code() != hub.DefaultSortingHubCode {
			hubs = append(hubs, h)
		}
	}
	d := hub.NewDirectory(hubs, hub.DefaultRoutingTable())

	assert.Nil(t, d.FindHubForLocation("Baguio", "Benguet"))
	assert.Nil(t, d.DefaultHub())
	assert.NotNil(t, d.FindHubForLocation("Malolos", "Bulacan"))
}

func TestDirectory_RoutingTableWinsOverCoverage(t *testing.T) {
	d := defaultDirectory()

	// "san fernando" is a HUB-PAM coverage keyword, the province entry still decides first.
	h := d.FindHubForLocation("San Fernando", "Cebu")

	require.NotNil(t, h)
	assert.Equal(t, "HUB-CEB", h.Code())
}

func TestDirectory_Get(t *testing.T) {
	d := defaultDirectory()

	h, ok := d.Get("hub-ceb")

	require.True(t, ok)
	assert.Equal(t, "HUB-CEB", h.Code())
	hubs := d.Hubs()
	assert.Equal(t, "HUB-BUL", hubs[0].Code())
}
