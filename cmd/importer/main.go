package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5"

	"placebot/internal/config"
)

// LocationRecord is one gazetteer row as read from the CSV source.
// Expected column order: name, entity_type, country, admin_district,
// locality, neighborhood, postal_code, street_address, lat, lon.
type LocationRecord struct {
	Name          string
	EntityType    string
	Country       string
	AdminDistrict string
	Locality      string
	Neighborhood  string
	PostalCode    string
	StreetAddress string
	Lat           float64
	Lon           float64
}

const recordColumns = 10

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	records, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d records\n", len(records))

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	err = insertRecords(conn, records)
	if err != nil {
		fmt.Printf("Error inserting records: %v\n", err)
		os.Exit(1)
	}

	err = verifyImport(conn, len(records))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d records\n", len(records))
}

func parseCSV(filePath string) ([]LocationRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	// Skip header
	_, err = reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var records []LocationRecord
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < recordColumns {
			return nil, fmt.Errorf("invalid record length: %d, expected at least %d columns", len(record), recordColumns)
		}

		lat, err := strconv.ParseFloat(record[8], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[8])
		}

		lon, err := strconv.ParseFloat(record[9], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[9])
		}

		location := LocationRecord{
			Name:          record[0],
			EntityType:    record[1],
			Country:       record[2],
			AdminDistrict: record[3],
			Locality:      record[4],
			Neighborhood:  record[5],
			PostalCode:    record[6],
			StreetAddress: record[7],
			Lat:           lat,
			Lon:           lon,
		}

		records = append(records, location)
	}

	return records, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS locations (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255),
		entity_type VARCHAR(64),
		country VARCHAR(255),
		admin_district VARCHAR(255),
		locality VARCHAR(255),
		neighborhood VARCHAR(255),
		postal_code VARCHAR(32),
		street_address VARCHAR(255),
		full_address_tsvector TSVECTOR GENERATED ALWAYS AS (
			to_tsvector('simple',
				coalesce(name, '') || ' ' ||
				coalesce(street_address, '') || ' ' ||
				coalesce(neighborhood, '') || ' ' ||
				coalesce(locality, '') || ' ' ||
				coalesce(admin_district, '') || ' ' ||
				coalesce(postal_code, '') || ' ' ||
				coalesce(country, ''))
		) STORED,
		geom GEOGRAPHY(POINT, 4326)
	);
	CREATE INDEX IF NOT EXISTS locations_geom_idx ON locations USING GIST (geom);
	CREATE INDEX IF NOT EXISTS locations_full_address_tsvector_idx ON locations USING GIN (full_address_tsvector);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRecords(conn *pgx.Conn, records []LocationRecord) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"locations"},
		[]string{"name", "entity_type", "country", "admin_district", "locality", "neighborhood", "postal_code", "street_address", "geom"},
		pgx.CopyFromSlice(len(records), func(i int) ([]interface{}, error) {
			r := records[i]
			geom := fmt.Sprintf("SRID=4326;POINT(%f %f)", r.Lon, r.Lat) // PostGIS format: lon lat
			return []interface{}{r.Name, r.EntityType, r.Country, r.AdminDistrict, r.Locality, r.Neighborhood, r.PostalCode, r.StreetAddress, geom}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM locations").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count records: %w", err)
	}

	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}

	// Check a sample geom
	var geom string
	err = conn.QueryRow(context.Background(), "SELECT ST_AsText(geom) FROM locations LIMIT 1").Scan(&geom)
	if err != nil {
		return fmt.Errorf("failed to check geom: %w", err)
	}

	fmt.Printf("Sample geom: %s\n", geom)
	return nil
}
