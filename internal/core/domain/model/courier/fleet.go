package courier

import "strings"

// Fleet is a read-only snapshot of couriers used for one dispatch decision.
type Fleet struct {
	couriers []*Courier
}

func NewFleet(couriers []*Courier) Fleet {
	out := make([]*Courier, 0, len(couriers))
	for _, c := range couriers {
		if c.Validate() == nil {
			out = append(out, c)
		}
	}
	return Fleet{couriers: out}
}

// AtHub returns couriers whose home hub is hubCode, in snapshot order.
func (f Fleet) AtHub(hubCode string) []*Courier {
	var out []*Courier
	for _, c := range f.couriers {
		if strings.EqualFold(c.HomeHubCode(), hubCode) {
			out = append(out, c)
		}
	}
	return out
}

func (f Fleet) Len() int {
	return len(f.couriers)
}
