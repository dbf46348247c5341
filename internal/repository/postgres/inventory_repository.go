package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type inventoryRepository struct {
	db *sqlx.DB
}

func NewInventoryRepository(db *sqlx.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) GetItems(ctx context.Context, restaurantID int64) ([]domain.InventoryItem, error) {
	query := `
        SELECT
            i.id, i.restaurant_id, i.name, i.unit,
            c.name AS category_name,
            i.current_quantity, i.min_quantity, i.cost_per_unit,
            i.expiry_date, i.supplier, i.created_at, i.updated_at
        FROM inventory_items i
        LEFT JOIN categories c ON i.category_id = c.id
        WHERE i.restaurant_id = $1
        ORDER BY i.id
    `

	var items []domain.InventoryItem
	if err := r.db.SelectContext(ctx, &items, query, restaurantID); err != nil {
		return nil, fmt.Errorf("error getting inventory items: %w", err)
	}
	return items, nil
}

func (r *inventoryRepository) GetConsumption(ctx context.Context, restaurantID int64, since time.Time) ([]domain.ConsumptionRecord, error) {
	query := `
        SELECT
            ch.id, ch.restaurant_id, ch.item_id,
            ch.consumption_date, ch.quantity_consumed,
            i.name AS item_name,
            i.unit AS item_unit,
            i.cost_per_unit AS item_cost_per_unit
        FROM consumption_history ch
        LEFT JOIN inventory_items i ON ch.item_id = i.id
        WHERE ch.restaurant_id = $1
          AND ch.consumption_date >= $2
        ORDER BY ch.consumption_date DESC, ch.id DESC
    `

	var records []domain.ConsumptionRecord
	if err := r.db.SelectContext(ctx, &records, query, restaurantID, since); err != nil {
		return nil, fmt.Errorf("error getting consumption history: %w", err)
	}
	return records, nil
}

func (r *inventoryRepository) GetAlerts(ctx context.Context, restaurantID int64) ([]domain.Alert, error) {
	query := `
        SELECT id, restaurant_id, item_id, alert_type, is_read, created_at
        FROM alerts
        WHERE restaurant_id = $1
        ORDER BY created_at DESC
    `

	var alerts []domain.Alert
	if err := r.db.SelectContext(ctx, &alerts, query, restaurantID); err != nil {
		return nil, fmt.Errorf("error getting alerts: %w", err)
	}
	return alerts, nil
}

func (r *inventoryRepository) GetRestockSuggestions(ctx context.Context, restaurantID int64) ([]domain.RestockSuggestion, error) {
	query := `
        SELECT
            rs.id, rs.restaurant_id, rs.item_id,
            rs.suggested_quantity, rs.days_until_stockout, rs.avg_daily_consumption,
            i.name AS item_name,
            i.current_quantity AS item_current_quantity
        FROM restock_suggestions rs
        LEFT JOIN inventory_items i ON rs.item_id = i.id
        WHERE rs.restaurant_id = $1
        ORDER BY rs.id
    `

	var suggestions []domain.RestockSuggestion
	if err := r.db.SelectContext(ctx, &suggestions, query, restaurantID); err != nil {
		return nil, fmt.Errorf("error getting restock suggestions: %w", err)
	}
	return suggestions, nil
}

// UpsertItems writes imported inventory rows keyed on (restaurant_id, name).
// Categories referenced by name are created on the fly.
func (r *inventoryRepository) UpsertItems(ctx context.Context, restaurantID int64, items []domain.InventoryItem) (int, error) {
	upsertItem := `
        INSERT INTO inventory_items (
            restaurant_id, name, unit, category_id,
            current_quantity, min_quantity, cost_per_unit,
            expiry_date, supplier, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
        ON CONFLICT (restaurant_id, name)
        DO UPDATE SET
            unit = EXCLUDED.unit,
            category_id = EXCLUDED.category_id,
            current_quantity = EXCLUDED.current_quantity,
            min_quantity = EXCLUDED.min_quantity,
            cost_per_unit = EXCLUDED.cost_per_unit,
            expiry_date = EXCLUDED.expiry_date,
            supplier = EXCLUDED.supplier,
            updated_at = NOW()
    `

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, upsertItem)
	if err != nil {
		return 0, fmt.Errorf("could not prepare upsert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for _, item := range items {
		categoryID, err := resolveCategoryID(ctx, tx, restaurantID, item.CategoryName)
		if err != nil {
			return 0, err
		}

		if _, err := stmt.ExecContext(ctx,
			restaurantID,
			item.Name,
			item.Unit,
			categoryID,
			item.CurrentQuantity,
			item.MinQuantity,
			nullableFloat(item.CostPerUnit),
			nullableTime(item.ExpiryDate),
			nullableString(item.Supplier),
		); err != nil {
			return 0, fmt.Errorf("failed to upsert item %q: %w", item.Name, err)
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("could not commit transaction: %w", err)
	}

	log.Debug().Int64("restaurant_id", restaurantID).Int("items", count).Msg("inventory import: items upserted")
	return count, nil
}

func resolveCategoryID(ctx context.Context, tx *sqlx.Tx, restaurantID int64, name *string) (sql.NullInt64, error) {
	if name == nil || *name == "" {
		return sql.NullInt64{}, nil
	}

	var id int64
	err := tx.QueryRowContext(ctx,
		`SELECT id FROM categories WHERE restaurant_id = $1 AND name = $2`,
		restaurantID, *name,
	).Scan(&id)
	if err == sql.ErrNoRows {
		err = tx.QueryRowContext(ctx,
			`INSERT INTO categories (restaurant_id, name, created_at) VALUES ($1, $2, NOW()) RETURNING id`,
			restaurantID, *name,
		).Scan(&id)
	}
	if err != nil {
		return sql.NullInt64{}, fmt.Errorf("failed to resolve category %q: %w", *name, err)
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func nullableString(v *string) sql.NullString {
	if v == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *v, Valid: true}
}

func nullableTime(v *time.Time) sql.NullTime {
	if v == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *v, Valid: true}
}
