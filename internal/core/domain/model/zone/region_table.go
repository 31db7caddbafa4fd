package zone

import (
	"maps"
	"slices"
)

// RegionTable is the static classification data used by the Classifier.
// Keywords are lower-case and matched as substrings.
//
// Regions is keyed by the zone a keyword list selects. Only Metro, CentralRegion,
// IslandGroupA and IslandGroupB are consulted; adding a region means adding one key here
// and one step to Classifier.Classify.
type RegionTable struct {
	Regions map[ShippingZone][]string
	// SubBarangayMarkers are prefixes of a leading address segment that names a
	// sub-city unit (barangay, purok, street block) instead of the city itself.
	SubBarangayMarkers []string
	// CountryMarkers are trailing segments skipped when extracting the province.
	CountryMarkers []string
}

// DefaultRegionTable returns the Philippine classification table. Each call returns a
// fresh copy, so callers may modify the result without affecting other users.
func DefaultRegionTable() RegionTable {
	return RegionTable{
		Regions: map[ShippingZone][]string{ //nolint:exhaustive // only keyword-driven zones
			Metro: {
				"metro manila", "national capital region", "manila", "quezon city", "makati",
				"pasig", "taguig", "mandaluyong", "pasay", "paranaque", "parañaque",
				"las pinas", "las piñas", "muntinlupa", "marikina", "caloocan", "malabon",
				"navotas", "valenzuela", "san juan", "pateros",
			},
			CentralRegion: {
				"central luzon", "bulacan", "pampanga", "tarlac", "nueva ecija", "bataan",
				"zambales", "aurora", "angeles", "olongapo", "cabanatuan", "malolos", "meycauayan",
			},
			IslandGroupA: {
				"visayas", "cebu", "bohol", "iloilo", "negros", "leyte", "samar", "capiz",
				"aklan", "antique", "guimaras", "siquijor", "biliran", "bacolod", "tacloban",
				"dumaguete", "mandaue", "lapu-lapu", "ormoc",
			},
			IslandGroupB: {
				"mindanao", "davao", "zamboanga", "cagayan de oro", "misamis", "bukidnon",
				"cotabato", "sultan kudarat", "sarangani", "general santos", "surigao",
				"agusan", "lanao", "maguindanao", "sulu", "basilan", "tawi-tawi", "dinagat",
				"camiguin", "butuan", "iligan", "dipolog",
			},
		},
		SubBarangayMarkers: []string{
			"brgy", "barangay", "bgy", "purok", "sitio", "blk", "block", "lot", "phase", "zone",
		},
		CountryMarkers: []string{"philippines", "ph", "pilipinas"},
	}
}

func (t RegionTable) clone() RegionTable {
	regions := maps.Clone(t.Regions)
	for z, keywords := range regions {
		regions[z] = slices.Clone(keywords)
	}
	return RegionTable{
		Regions:            regions,
		SubBarangayMarkers: slices.Clone(t.SubBarangayMarkers),
		CountryMarkers:     slices.Clone(t.CountryMarkers),
	}
}

// Keywords returns the keyword list for a zone, or nil when the table has none.
func (t RegionTable) Keywords(z ShippingZone) []string {
	return t.Regions[z]
}
