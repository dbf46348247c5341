package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/jmoiron/sqlx"
)

// ErrRestaurantNotFound is returned when the tenant row does not exist.
var ErrRestaurantNotFound = errors.New("restaurant not found")

type restaurantRepository struct {
	db *sqlx.DB
}

func NewRestaurantRepository(db *sqlx.DB) repository.RestaurantRepository {
	return &restaurantRepository{db: db}
}

func (r *restaurantRepository) GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error) {
	query := `
        SELECT id, name, email, phone, address, description,
               logo_url, primary_color, secondary_color, font_family,
               created_at, updated_at
        FROM restaurants
        WHERE id = $1
    `

	var restaurant domain.Restaurant
	if err := r.db.GetContext(ctx, &restaurant, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("error getting restaurant: %w", err)
	}
	return &restaurant, nil
}

func (r *restaurantRepository) GetMembers(ctx context.Context, restaurantID int64) ([]domain.RestaurantMember, error) {
	query := `
        SELECT id, user_id, restaurant_id, role, created_at
        FROM restaurant_members
        WHERE restaurant_id = $1
        ORDER BY created_at
    `

	var members []domain.RestaurantMember
	if err := r.db.SelectContext(ctx, &members, query, restaurantID); err != nil {
		return nil, fmt.Errorf("error getting restaurant members: %w", err)
	}
	return members, nil
}

// UpdateBranding writes only the fields present in the update. A fully
// empty update is a no-op.
func (r *restaurantRepository) UpdateBranding(ctx context.Context, id int64, update domain.BrandingUpdate) error {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	add := func(column string, value *string) {
		if value == nil {
			return
		}
		args = append(args, *value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	add("primary_color", update.PrimaryColor)
	add("secondary_color", update.SecondaryColor)
	add("font_family", update.FontFamily)

	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE restaurants SET %s, updated_at = NOW() WHERE id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating branding: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}

func (r *restaurantRepository) SetLogoURL(ctx context.Context, id int64, logoURL *string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE restaurants SET logo_url = $1, updated_at = NOW() WHERE id = $2`,
		nullableString(logoURL), id,
	)
	if err != nil {
		return fmt.Errorf("error updating logo url: %w", err)
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return ErrRestaurantNotFound
	}
	return nil
}
