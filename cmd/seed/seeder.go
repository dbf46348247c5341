package main

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

func dbFromContext(c *cli.Context) (*sql.DB, error) {
	db, ok := c.Context.Value(dbKey).(*sql.DB)
	if !ok || db == nil {
		return nil, fmt.Errorf("database connection not initialized")
	}
	return db, nil
}

func seedRestaurant(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}

	var id int64
	err = db.QueryRowContext(c.Context, `
        INSERT INTO restaurants (name, email, phone, primary_color, secondary_color, font_family, created_at, updated_at)
        VALUES ($1, $2, $3, '#1a1a2e', '#e94560', 'Inter', NOW(), NOW())
        RETURNING id
    `, c.String("name"), nullIfEmpty(c.String("email")), nullIfEmpty(c.String("phone"))).Scan(&id)
	if err != nil {
		return fmt.Errorf("failed to insert restaurant: %w", err)
	}

	log.Printf("created restaurant %q with id %d", c.String("name"), id)
	return nil
}

// seedInventory loads every CSV in the data dir. Expected columns:
// name,unit,category,current_quantity,min_quantity,cost_per_unit,expiry_date,supplier
func seedInventory(c *cli.Context) error {
	db, err := dbFromContext(c)
	if err != nil {
		return err
	}
	restaurantID := c.Int64("restaurant-id")
	dataDir := c.String("data-dir")

	files, err := filepath.Glob(filepath.Join(dataDir, "*.csv"))
	if err != nil {
		return fmt.Errorf("failed to list seed files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no CSV files found in %s", dataDir)
	}

	total := 0
	for _, file := range files {
		n, err := seedInventoryFile(c, db, restaurantID, file)
		if err != nil {
			return fmt.Errorf("failed seeding %s: %w", file, err)
		}
		log.Printf("seeded %d items from %s", n, filepath.Base(file))
		total += n
	}

	log.Printf("done: %d items seeded for restaurant %d", total, restaurantID)
	return nil
}

func seedInventoryFile(c *cli.Context, db *sql.DB, restaurantID int64, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("failed to read header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	field := func(record []string, column string) string {
		idx, ok := columns[column]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, err
		}

		name := field(record, "name")
		if name == "" {
			continue
		}

		categoryID, err := ensureCategory(c, db, restaurantID, field(record, "category"))
		if err != nil {
			return count, err
		}

		currentQty, _ := strconv.ParseFloat(field(record, "current_quantity"), 64)
		minQty, _ := strconv.ParseFloat(field(record, "min_quantity"), 64)

		var cost sql.NullFloat64
		if v := field(record, "cost_per_unit"); v != "" {
			parsed, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return count, fmt.Errorf("invalid cost_per_unit %q for %s", v, name)
			}
			cost = sql.NullFloat64{Float64: parsed, Valid: true}
		}

		_, err = db.ExecContext(c.Context, `
            INSERT INTO inventory_items (
                restaurant_id, name, unit, category_id,
                current_quantity, min_quantity, cost_per_unit,
                expiry_date, supplier, created_at, updated_at
            ) VALUES ($1, $2, $3, $4, $5, $6, $7, NULLIF($8, '')::date, $9, NOW(), NOW())
            ON CONFLICT (restaurant_id, name) DO NOTHING
        `, restaurantID, name, field(record, "unit"), categoryID,
			currentQty, minQty, cost,
			field(record, "expiry_date"), nullIfEmpty(field(record, "supplier")))
		if err != nil {
			return count, fmt.Errorf("failed to insert %s: %w", name, err)
		}
		count++
	}

	return count, nil
}

func ensureCategory(c *cli.Context, db *sql.DB, restaurantID int64, name string) (sql.NullInt64, error) {
	if name == "" {
		return sql.NullInt64{}, nil
	}

	var id int64
	err := db.QueryRowContext(c.Context, `
        INSERT INTO categories (restaurant_id, name, created_at)
        VALUES ($1, $2, NOW())
        ON CONFLICT (restaurant_id, name) DO UPDATE SET name = EXCLUDED.name
        RETURNING id
    `, restaurantID, name).Scan(&id)
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("failed to ensure category %q: %w", name, err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}
