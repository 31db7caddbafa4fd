package fee

import (
	"fmt"

	"logistics/internal/core/domain/model/zone"
	"logistics/internal/pkg/errs"
)

// Row is one line of the fee table.
type Row struct {
	Fee float64
	// EstimatedDays is the customer-facing range, e.g. "2-3".
	EstimatedDays string
}

// Table is the immutable zone -> fee lookup. Build it once with DefaultTable or NewTable
// and share it; Quote never mutates it.
type Table struct {
	rows         map[zone.ShippingZone]Row
	minimumOrder float64
}

// DefaultTable returns the PHP fee schedule.
func DefaultTable() Table {
	return Table{
		rows: map[zone.ShippingZone]Row{ //nolint:exhaustive // ZoneUnknown falls back to OtherRegion
			zone.SameCity:      {Fee: 50, EstimatedDays: "1-2"},
			zone.SameProvince:  {Fee: 80, EstimatedDays: "2-3"},
			zone.CentralRegion: {Fee: 100, EstimatedDays: "2-4"},
			zone.Metro:         {Fee: 120, EstimatedDays: "2-4"},
			zone.OtherRegion:   {Fee: 150, EstimatedDays: "3-5"},
			zone.IslandGroupA:  {Fee: 180, EstimatedDays: "5-7"},
			zone.IslandGroupB:  {Fee: 220, EstimatedDays: "5-8"},
		},
	}
}

// NewTable builds a table from explicit rows. The OtherRegion row is mandatory because
// every unknown zone is priced with it.
func NewTable(rows map[zone.ShippingZone]Row, minimumOrder float64) (Table, error) {
	if _, ok := rows[zone.OtherRegion]; !ok {
		return Table{}, errs.NewValueIsRequiredError("fee row for " + zone.OtherRegion.String())
	}
	if minimumOrder < 0 {
		return Table{}, errs.NewValueIsInvalidErrorWithCause("minimum order",
			fmt.Errorf("%v is negative", minimumOrder))
	}

	copied := make(map[zone.ShippingZone]Row, len(rows))
	for z, row := range rows {
		if row.Fee < 0 {
			return Table{}, errs.NewValueIsInvalidErrorWithCause("fee",
				fmt.Errorf("%s fee %v is negative", z, row.Fee))
		}
		copied[z] = row
	}

	return Table{rows: copied, minimumOrder: minimumOrder}, nil
}

// Row returns the row for z, falling back to the OtherRegion row.
func (t Table) Row(z zone.ShippingZone) Row {
	if row, ok := t.rows[z]; ok {
		return row
	}
	return t.rows[zone.OtherRegion]
}

// Quote prices a shipment for the given zone and order subtotal.
func (t Table) Quote(z zone.ShippingZone, subtotal float64) Quote {
	if _, ok := t.rows[z]; !ok {
		z = zone.OtherRegion
	}
	row := t.Row(z)

	return Quote{
		Fee:           row.Fee,
		MinimumOrder:  t.minimumOrder,
		MeetsMinimum:  subtotal >= t.minimumOrder,
		EstimatedDays: row.EstimatedDays,
		Zone:          z,
		ZoneName:      z.DisplayName(),
	}
}
