// internal/repository/restaurant_repository.go
package repository

import (
	"context"

	"github.com/cozinhapro/backoffice/internal/domain"
)

// RestaurantRepository reads tenant rows and writes branding fields. User
// identity and membership creation live upstream; this side only consumes
// them.
type RestaurantRepository interface {
	GetRestaurant(ctx context.Context, id int64) (*domain.Restaurant, error)
	GetMembers(ctx context.Context, restaurantID int64) ([]domain.RestaurantMember, error)
	UpdateBranding(ctx context.Context, id int64, update domain.BrandingUpdate) error
	SetLogoURL(ctx context.Context, id int64, logoURL *string) error
}
