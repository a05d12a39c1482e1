package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"placebot/internal/models"
)

// Repository implements gazetteer lookups against PostgreSQL/PostGIS.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

const locationColumns = `
	id,
	name,
	entity_type,
	country,
	admin_district,
	locality,
	neighborhood,
	postal_code,
	street_address,
	ST_Y(geom::geometry) as latitude,
	ST_X(geom::geometry) as longitude
`

// SearchLocationsByText performs a full-text search on the locations table.
func (r *Repository) SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error) {
	sql := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE full_address_tsvector @@ plainto_tsquery('simple', $1)
		ORDER BY ts_rank(full_address_tsvector, plainto_tsquery('simple', $1)) DESC
		LIMIT 10
	`

	rows, err := r.db.Query(ctx, sql, query)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute search query: %w", err)
	}
	defer rows.Close()

	locations := []models.Location{}
	for rows.Next() {
		loc, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan location: %w", err)
		}
		locations = append(locations, *loc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return locations, nil
}

// FindNearestLocation performs a spatial query to find the nearest location
// to the given coordinates, limited to a 10km radius.
func (r *Repository) FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error) {
	sql := `
		SELECT ` + locationColumns + `
		FROM locations
		WHERE ST_DWithin(geom, ST_SetSRID(ST_MakePoint($2, $1), 4326), 10000)
		ORDER BY geom::geometry <-> ST_SetSRID(ST_MakePoint($2, $1), 4326)
		LIMIT 1
	`

	rows, err := r.db.Query(ctx, sql, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute spatial query: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("repository: error iterating rows: %w", err)
		}
		return nil, nil
	}

	loc, err := scanLocation(rows)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to scan location: %w", err)
	}

	return loc, nil
}

func scanLocation(rows pgx.Rows) (*models.Location, error) {
	var (
		loc  models.Location
		addr models.Address
		pt   models.GeoPoint
	)
	err := rows.Scan(
		&loc.ID,
		&loc.Name,
		&loc.EntityType,
		&addr.Country,
		&addr.AdminDistrict,
		&addr.Locality,
		&addr.Neighborhood,
		&addr.PostalCode,
		&addr.StreetAddress,
		&pt.Latitude,
		&pt.Longitude,
	)
	if err != nil {
		return nil, err
	}
	loc.Address = &addr
	loc.Point = &pt
	return &loc, nil
}
