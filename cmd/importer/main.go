package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"ramen-review-api/internal/address"
	"ramen-review-api/internal/config"
	"ramen-review-api/internal/models"

	"github.com/jackc/pgx/v5"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	flag.Parse()

	if *file == "" {
		fmt.Println("Error: --file flag is required")
		os.Exit(1)
	}

	fmt.Printf("Starting import from file: %s\n", *file)

	restaurants, err := parseCSV(*file)
	if err != nil {
		fmt.Printf("Error parsing CSV: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Parsed %d restaurants\n", len(restaurants))

	// Load config
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Connect to DB
	conn, err := pgx.Connect(context.Background(), cfg.DBSource)
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(context.Background())

	// Ensure table exists
	err = createTableIfNotExists(conn)
	if err != nil {
		fmt.Printf("Error creating table: %v\n", err)
		os.Exit(1)
	}

	// Insert records
	err = insertRestaurants(conn, restaurants)
	if err != nil {
		fmt.Printf("Error inserting restaurants: %v\n", err)
		os.Exit(1)
	}

	// Verify data
	err = verifyImport(conn, len(restaurants))
	if err != nil {
		fmt.Printf("Error verifying import: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully imported %d restaurants\n", len(restaurants))
}

// parseCSV reads rows of google_id,name,address,lat,lng and parses each
// address into prefecture, city, and postal code.
func parseCSV(filePath string) ([]models.Restaurant, error) {
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

	var restaurants []models.Restaurant
	for {
		record, err := reader.Read()
		if err != nil {
			if err.Error() == "EOF" {
				break
			}
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		if len(record) < 5 {
			return nil, fmt.Errorf("invalid record length: %d, expected at least 5 columns", len(record))
		}

		lat, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude: %s", record[3])
		}

		lng, err := strconv.ParseFloat(record[4], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude: %s", record[4])
		}

		parsed := address.Parse(record[2])

		restaurants = append(restaurants, models.Restaurant{
			GoogleID:   record[0],
			Name:       record[1],
			Prefecture: parsed.Prefecture,
			City:       parsed.City,
			PostalCode: parsed.PostalCode,
			Address:    parsed.StandardizedAddress,
			Latitude:   lat,
			Longitude:  lng,
		})
	}

	return restaurants, nil
}

func createTableIfNotExists(conn *pgx.Conn) error {
	query := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		google_id VARCHAR(255) UNIQUE,
		name VARCHAR(255) NOT NULL,
		prefecture VARCHAR(255),
		city VARCHAR(255),
		postal_code VARCHAR(16),
		address TEXT,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	);
	CREATE INDEX IF NOT EXISTS restaurants_prefecture_idx ON restaurants (prefecture);
	`
	_, err := conn.Exec(context.Background(), query)
	return err
}

func insertRestaurants(conn *pgx.Conn, restaurants []models.Restaurant) error {
	// Use CopyFrom for bulk insert
	_, err := conn.CopyFrom(
		context.Background(),
		pgx.Identifier{"restaurants"},
		[]string{"google_id", "name", "prefecture", "city", "postal_code", "address", "latitude", "longitude"},
		pgx.CopyFromSlice(len(restaurants), func(i int) ([]interface{}, error) {
			r := restaurants[i]
			var googleID interface{}
			if r.GoogleID != "" {
				googleID = r.GoogleID
			}
			return []interface{}{googleID, r.Name, r.Prefecture, r.City, r.PostalCode, r.Address, r.Latitude, r.Longitude}, nil
		}),
	)
	return err
}

func verifyImport(conn *pgx.Conn, expectedCount int) error {
	var count int
	err := conn.QueryRow(context.Background(), "SELECT COUNT(*) FROM restaurants").Scan(&count)
	if err != nil {
		return fmt.Errorf("failed to count restaurants: %w", err)
	}

	if count < expectedCount {
		return fmt.Errorf("restaurant count mismatch: expected at least %d, got %d", expectedCount, count)
	}

	// Check a sample parsed prefecture
	var prefecture string
	err = conn.QueryRow(context.Background(), "SELECT prefecture FROM restaurants LIMIT 1").Scan(&prefecture)
	if err != nil {
		return fmt.Errorf("failed to check prefecture: %w", err)
	}

	fmt.Printf("Sample prefecture: %s\n", prefecture)
	return nil
}
