package hub

import (
	"slices"
	"strings"
)

// Directory is a read-only snapshot of the active hubs plus the routing table.
// It is safe for concurrent use once built.
type Directory struct {
	byCode map[string]*Hub
	// ordered by code for deterministic coverage matching
	ordered []*Hub
	table   RoutingTable
}

// NewDirectory indexes the active hubs. Inactive and unconstructed hubs are ignored.
func NewDirectory(hubs []*Hub, table RoutingTable) Directory {
	d := Directory{
		byCode: make(map[string]*Hub, len(hubs)),
		table:  table,
	}
	for _, h := range hubs {
		if h.Validate() != nil || !h.IsActive() {
			continue
		}
		d.byCode[h.Code()] = h
	}

	d.ordered = make([]*Hub, 0, len(d.byCode))
	for _, h := range d.byCode {
		d.ordered = append(d.ordered, h)
	}
	slices.SortFunc(d.ordered, func(a, b *Hub) int {
		return strings.Compare(a.Code(), b.Code())
	})

	return d
}

// FindHubForLocation resolves the hub serving a city/province pair. First match wins:
//  1. a routing table keyword contained in the city or province
//  2. a coverage keyword of an active hub, hubs checked in code order
//  3. the default sorting hub
//
// It returns nil only when nothing matched and the default hub is missing or inactive.
func (d Directory) FindHubForLocation(city, province string) *Hub {
	city = strings.ToLower(strings.TrimSpace(city))
	province = strings.ToLower(strings.TrimSpace(province))

	for _, entry := range d.table.entries {
		if !containsKeyword(entry.Keyword, city, province) {
			continue
		}
		if h, ok := d.byCode[entry.HubCode]; ok {
			return h
		}
	}

	for _, h := range d.ordered {
		if h.Covers(city, province) {
			return h
		}
	}

	return d.DefaultHub()
}

// DefaultHub returns the default sorting hub, or nil when it is missing or inactive.
func (d Directory) DefaultHub() *Hub {
	return d.byCode[d.table.defaultHubCode]
}

// Get returns an active hub by code.
func (d Directory) Get(code string) (*Hub, bool) {
	h, ok := d.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return h, ok
}

// Hubs returns the active hubs ordered by code.
func (d Directory) Hubs() []*Hub {
	return slices.Clone(d.ordered)
}

func containsKeyword(keyword string, parts ...string) bool {
	if keyword == "" {
		return false
	}
	for _, part := range parts {
		if part != "" && strings.Contains(part, keyword) {
			return true
		}
	}
	return false
}
