// internal/service/customization_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/repository"
	"github.com/cozinhapro/backoffice/internal/storage"
	"github.com/rs/zerolog/log"
)

// maxLogoSize caps logo uploads at 5 MiB.
const maxLogoSize = 5 << 20

var (
	// ErrStorageUnavailable is returned for logo operations when no
	// object storage is configured.
	ErrStorageUnavailable = errors.New("object storage is not configured")

	// ErrLogoTooLarge is returned when an upload exceeds maxLogoSize.
	ErrLogoTooLarge = fmt.Errorf("logo exceeds the %d byte limit", maxLogoSize)

	// ErrUnsupportedLogoType is returned for non-image uploads.
	ErrUnsupportedLogoType = errors.New("logo must be a png, jpeg, webp or svg image")
)

var logoExtensions = map[string]string{
	"image/png":     "png",
	"image/jpeg":    "jpg",
	"image/webp":    "webp",
	"image/svg+xml": "svg",
}

// CustomizationService manages per-restaurant branding: colors, fonts and
// the logo asset. Storage may be nil, in which case branding still works
// and only logo uploads are rejected.
type CustomizationService struct {
	repo    repository.RestaurantRepository
	storage storage.ObjectStorage
}

func NewCustomizationService(repo repository.RestaurantRepository, objectStorage storage.ObjectStorage) *CustomizationService {
	return &CustomizationService{repo: repo, storage: objectStorage}
}

// GetSettings returns the tenant row including its branding fields.
func (s *CustomizationService) GetSettings(ctx context.Context, restaurantID int64) (*domain.Restaurant, error) {
	return s.repo.GetRestaurant(ctx, restaurantID)
}

// UpdateBranding applies the given branding fields and returns the
// updated settings.
func (s *CustomizationService) UpdateBranding(ctx context.Context, restaurantID int64, update domain.BrandingUpdate) (*domain.Restaurant, error) {
	if err := s.repo.UpdateBranding(ctx, restaurantID, update); err != nil {
		return nil, err
	}
	return s.repo.GetRestaurant(ctx, restaurantID)
}

// UploadLogo stores the logo in object storage and records its public URL
// on the tenant row.
func (s *CustomizationService) UploadLogo(ctx context.Context, restaurantID int64, data io.Reader, size int64, contentType string) (string, error) {
	if s.storage == nil {
		return "", ErrStorageUnavailable
	}
	if size > maxLogoSize {
		return "", ErrLogoTooLarge
	}
	ext, ok := logoExtensions[contentType]
	if !ok {
		return "", ErrUnsupportedLogoType
	}

	key := path.Join("restaurants", fmt.Sprintf("%d", restaurantID), "logo."+ext)
	if err := s.storage.PutObject(ctx, key, data, size, contentType); err != nil {
		return "", fmt.Errorf("failed to upload logo: %w", err)
	}

	url := s.storage.PublicURL(key)
	if err := s.repo.SetLogoURL(ctx, restaurantID, &url); err != nil {
		return "", err
	}

	log.Info().Int64("restaurant_id", restaurantID).Str("key", key).Msg("logo uploaded")
	return url, nil
}

// DeleteLogo removes the stored logo and clears the tenant's logo URL.
func (s *CustomizationService) DeleteLogo(ctx context.Context, restaurantID int64) error {
	if s.storage == nil {
		return ErrStorageUnavailable
	}

	restaurant, err := s.repo.GetRestaurant(ctx, restaurantID)
	if err != nil {
		return err
	}
	if restaurant.LogoURL == nil {
		return nil
	}

	prefix := path.Join("restaurants", fmt.Sprintf("%d", restaurantID)) + "/"
	objects, err := s.storage.ListObjects(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to list logo objects: %w", err)
	}
	for _, object := range objects {
		if err := s.storage.RemoveObject(ctx, object.Key); err != nil {
			return fmt.Errorf("failed to remove logo object: %w", err)
		}
	}

	return s.repo.SetLogoURL(ctx, restaurantID, nil)
}
