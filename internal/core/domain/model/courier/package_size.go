package courier

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// PackageSize is derived from weight and decides which vehicles may carry a parcel.
type PackageSize int

const (
	PackageSizeUnknown PackageSize = iota
	Small
	Medium
	Large
	Bulk
)

// Upper weight bounds in kilograms, inclusive.
const (
	SmallMaxWeight  = 5.0
	MediumMaxWeight = 20.0
	LargeMaxWeight  = 50.0
)

func getPackageSizeStrings() map[PackageSize]string {
	return map[PackageSize]string{
		PackageSizeUnknown: "unknown",
		Small:              "small",
		Medium:             "medium",
		Large:              "large",
		Bulk:               "bulk",
	}
}

func AllPackageSizes() []PackageSize {
	return []PackageSize{Small, Medium, Large, Bulk}
}

// PackageSizeForWeight applies the fixed thresholds: up to 5kg small, up to 20kg
// medium, up to 50kg large, anything heavier bulk.
func PackageSizeForWeight(weight float64) PackageSize {
	switch {
	case weight <= SmallMaxWeight:
		return Small
	case weight <= MediumMaxWeight:
		return Medium
	case weight <= LargeMaxWeight:
		return Large
	default:
		return Bulk
	}
}

func ParsePackageSize(code string) (PackageSize, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for s, str := range getPackageSizeStrings() {
		if s != PackageSizeUnknown && str == code {
			return s, nil
		}
	}
	return PackageSizeUnknown, errs.NewValueIsInvalidErrorWithCause("package size", fmt.Errorf("%q is not a valid package size", code))
}

func (s PackageSize) Validate() error {
	if s < Small || s > Bulk {
		return errs.NewValueIsInvalidErrorWithCause("package size", fmt.Errorf("%d is not a valid package size", s))
	}
	return nil
}

func (s PackageSize) String() string {
	if str, ok := getPackageSizeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
