package zone

import (
	"strings"
	"unicode"
)

// Classifier maps a seller/buyer location pair to a ShippingZone. Classify is a total
// function: it never fails and falls back to OtherRegion.
//
// Matching is case-insensitive and substring based. A province name that appears inside
// an unrelated street name can produce a false positive; that approximation is accepted
// until addresses arrive as structured region/province/city identifiers.
type Classifier struct {
	table RegionTable
}

// NewClassifier returns a Classifier bound to a private copy of the table. Later changes
// to the caller's table do not reach the classifier.
func NewClassifier(table RegionTable) Classifier {
	return Classifier{table: table.clone()}
}

// Classify returns the zone for a pair of free-text locations, applying in order:
//  1. equal non-empty city tokens            -> SameCity
//  2. equal non-empty province tokens        -> SameProvince
//  3. buyer in the metro list                -> Metro
//  4. buyer and seller in the central list   -> CentralRegion
//  5. buyer in island group A, then B        -> IslandGroupA / IslandGroupB
//  6. anything else, including blank input   -> OtherRegion
func (c Classifier) Classify(sellerLocation, buyerLocation string) ShippingZone {
	seller := strings.ToLower(strings.TrimSpace(sellerLocation))
	buyer := strings.ToLower(strings.TrimSpace(buyerLocation))
	if seller == "" || buyer == "" {
		return OtherRegion
	}

	sellerCity, sellerProvince := c.Tokens(seller)
	buyerCity, buyerProvince := c.Tokens(buyer)

	if sellerCity != "" && sellerCity == buyerCity {
		return SameCity
	}
	if sellerProvince != "" && sellerProvince == buyerProvince {
		return SameProvince
	}

	if c.matches(Metro, buyer) {
		return Metro
	}
	if c.matches(CentralRegion, buyer) && c.matches(CentralRegion, seller) {
		return CentralRegion
	}
	if c.matches(IslandGroupA, buyer) {
		return IslandGroupA
	}
	if c.matches(IslandGroupB, buyer) {
		return IslandGroupB
	}

	return OtherRegion
}

// DeliveryTier classifies the pair and maps the zone to its tier.
func (c Classifier) DeliveryTier(sellerLocation, buyerLocation string) DeliveryTier {
	return DeliveryTierFor(c.Classify(sellerLocation, buyerLocation))
}

// Tokens extracts the lower-case city and province tokens from a comma separated
// address. The city is the first segment, or the second when the first is a
// sub-barangay marker such as "Brgy. San Jose" or a house number. The province is the
// last segment after dropping trailing country markers. Either token may be empty.
func (c Classifier) Tokens(location string) (string, string) {
	segments := splitSegments(location)
	if len(segments) == 0 {
		return "", ""
	}

	city := segments[0]
	if len(segments) > 1 && c.isSubBarangay(city) {
		city = segments[1]
	}

	for len(segments) > 1 && c.isCountry(segments[len(segments)-1]) {
		segments = segments[:len(segments)-1]
	}
	province := segments[len(segments)-1]
	if c.isCountry(province) {
		province = ""
	}

	return city, province
}

func (c Classifier) matches(z ShippingZone, text string) bool {
	for _, keyword := range c.table.Keywords(z) {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func (c Classifier) isSubBarangay(segment string) bool {
	if segment == "" {
		return false
	}
	if unicode.IsDigit([]rune(segment)[0]) {
		return true
	}
	for _, marker := range c.table.SubBarangayMarkers {
		if !strings.HasPrefix(segment, marker) {
			continue
		}
		rest := segment[len(marker):]
		if rest == "" || !unicode.IsLetter([]rune(rest)[0]) {
			return true
		}
	}
	return false
}

func (c Classifier) isCountry(segment string) bool {
	for _, marker := range c.table.CountryMarkers {
		if segment == marker {
			return true
		}
	}
	return false
}

func splitSegments(location string) []string {
	raw := strings.Split(strings.ToLower(location), ",")
	segments := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}
