package queries

import (
	"context"
	"database/sql"

	"logistics/internal/core/domain/model/hub"
	"logistics/internal/core/domain/model/kernel"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// readActiveHubs loads the active hub network ordered by code.
func readActiveHubs(ctx context.Context, db *gorm.DB) ([]*hub.Hub, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			code,
			name,
			address_line,
			address_city,
			address_province,
			address_lat,
			address_lng,
			coverage_keywords
		FROM hubs
		WHERE active
		ORDER BY code
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hubs := make([]*hub.Hub, 0)
	for rows.Next() {
		var (
			code, name           string
			line, city, province string
			lat, lng             sql.NullFloat64
			keywords             pq.StringArray
		)
		err = rows.Scan(&code, &name, &line, &city, &province, &lat, &lng, &keywords)
		if err != nil {
			return nil, err
		}

		address, locErr := locationFromColumns(line, city, province, lat, lng)
		if locErr != nil {
			return nil, locErr
		}

		h, hubErr := hub.RestoreHub(code, name, address, keywords, true)
		if hubErr != nil {
			return nil, hubErr
		}
		hubs = append(hubs, h)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return hubs, nil
}

func pointFromColumns(lat, lng sql.NullFloat64) (*kernel.GeoPoint, error) {
	if !lat.Valid || !lng.Valid {
		return nil, nil //nolint:nilnil // a missing point is not an error
	}
	point, err := kernel.NewGeoPoint(lat.Float64, lng.Float64)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

func locationFromColumns(line, city, province string, lat, lng sql.NullFloat64) (kernel.Location, error) {
	point, err := pointFromColumns(lat, lng)
	if err != nil {
		return kernel.Location{}, err
	}
	return kernel.NewLocation(line, city, province, point)
}
