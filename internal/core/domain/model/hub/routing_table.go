package hub

import "slices"

// DefaultSortingHubCode is the hub every unmatched location falls back to.
const DefaultSortingHubCode = "HUB-MNL"

// RoutingEntry maps a lower-case province or city keyword to a hub code.
type RoutingEntry struct {
	Keyword string
	HubCode string
}

// RoutingTable is the fixed province -> hub mapping consulted before hub coverage
// keywords. Entries are checked in order, so more specific keywords come first.
type RoutingTable struct {
	entries        []RoutingEntry
	defaultHubCode string
}

func NewRoutingTable(entries []RoutingEntry, defaultHubCode string) RoutingTable {
	return RoutingTable{
		entries:        slices.Clone(entries),
		defaultHubCode: defaultHubCode,
	}
}

// DefaultRoutingTable returns the Philippine province -> hub mapping.
func DefaultRoutingTable() RoutingTable {
	return NewRoutingTable([]RoutingEntry{
		{Keyword: "metro manila", HubCode: "HUB-MNL"},
		{Keyword: "nueva ecija", HubCode: "HUB-NE"},
		{Keyword: "cabanatuan", HubCode: "HUB-NE"},
		{Keyword: "aurora", HubCode: "HUB-NE"},
		{Keyword: "bulacan", HubCode: "HUB-BUL"},
		{Keyword: "malolos", HubCode: "HUB-BUL"},
		{Keyword: "pampanga", HubCode: "HUB-PAM"},
		{Keyword: "angeles", HubCode: "HUB-PAM"},
		{Keyword: "tarlac", HubCode: "HUB-PAM"},
		{Keyword: "bataan", HubCode: "HUB-PAM"},
		{Keyword: "zambales", HubCode: "HUB-PAM"},
		{Keyword: "cebu", HubCode: "HUB-CEB"},
		{Keyword: "bohol", HubCode: "HUB-CEB"},
		{Keyword: "leyte", HubCode: "HUB-CEB"},
		{Keyword: "iloilo", HubCode: "HUB-ILO"},
		{Keyword: "negros", HubCode: "HUB-ILO"},
		{Keyword: "capiz", HubCode: "HUB-ILO"},
		{Keyword: "aklan", HubCode: "HUB-ILO"},
		{Keyword: "davao", HubCode: "HUB-DVO"},
		{Keyword: "cotabato", HubCode: "HUB-DVO"},
		{Keyword: "cagayan de oro", HubCode: "HUB-CDO"},
		{Keyword: "misamis", HubCode: "HUB-CDO"},
		{Keyword: "bukidnon", HubCode: "HUB-CDO"},
	}, DefaultSortingHubCode)
}

func (t RoutingTable) Entries() []RoutingEntry {
	return slices.Clone(t.entries)
}

func (t RoutingTable) DefaultHubCode() string {
	return t.defaultHubCode
}
