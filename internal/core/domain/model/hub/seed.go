package hub

import "logistics/internal/core/domain/model/kernel"

type seedHub struct {
	code, name, city, province string
	lat, lng                   float64
	keywords                   []string
}

var seedHubs = []seedHub{
	{"HUB-MNL", "Manila Sorting Hub", "Pasig", "Metro Manila", 14.5764, 121.0851,
		[]string{"manila", "quezon city", "makati", "pasig", "taguig", "caloocan", "cavite", "laguna", "rizal"}},
	{"HUB-BUL", "Bulacan Hub", "Malolos", "Bulacan", 14.8527, 120.8160,
		[]string{"meycauayan", "marilao", "baliwag", "san jose del monte"}},
	{"HUB-PAM", "Pampanga Hub", "San Fernando", "Pampanga", 15.0286, 120.6898,
		[]string{"san fernando", "mabalacat", "olongapo", "balanga"}},
	{"HUB-NE", "Nueva Ecija Hub", "Cabanatuan", "Nueva Ecija", 15.4865, 120.9667,
		[]string{"gapan", "san jose city", "baler"}},
	{"HUB-CEB", "Cebu Hub", "Mandaue", "Cebu", 10.3236, 123.9223,
		[]string{"mandaue", "lapu-lapu", "tagbilaran", "tacloban", "ormoc"}},
	{"HUB-ILO", "Iloilo Hub", "Iloilo City", "Iloilo", 10.7202, 122.5621,
		[]string{"bacolod", "roxas", "kalibo", "antique", "guimaras"}},
	{"HUB-DVO", "Davao Hub", "Davao City", "Davao del Sur", 7.1907, 125.4553,
		[]string{"tagum", "digos", "general santos", "koronadal"}},
	{"HUB-CDO", "Cagayan de Oro Hub", "Cagayan de Oro", "Misamis Oriental", 8.4542, 124.6319,
		[]string{"iligan", "malaybalay", "ozamiz", "camiguin"}},
}

// DefaultHubs returns the hub network referenced by DefaultRoutingTable. It seeds an
// empty database and backs tests.
func DefaultHubs() []*Hub {
	hubs := make([]*Hub, 0, len(seedHubs))
	for _, s := range seedHubs {
		point, err := kernel.NewGeoPoint(s.lat, s.lng)
		if err != nil {
			panic(err)
		}
		address, err := kernel.NewLocation("", s.city, s.province, &point)
		if err != nil {
			panic(err)
		}
		h, err := NewHub(s.code, s.name, address, s.keywords)
		if err != nil {
			panic(err)
		}
		hubs = append(hubs, h)
	}
	return hubs
}
