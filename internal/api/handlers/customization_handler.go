package handlers

import (
	"errors"
	"net/http"

	"github.com/cozinhapro/backoffice/internal/api/middleware"
	"github.com/cozinhapro/backoffice/internal/domain"
	"github.com/cozinhapro/backoffice/internal/repository/postgres"
	"github.com/cozinhapro/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type CustomizationHandler struct {
	service *service.CustomizationService
}

func NewCustomizationHandler(service *service.CustomizationService) *CustomizationHandler {
	return &CustomizationHandler{service: service}
}

// GetSettings returns the restaurant's profile and branding fields.
func (h *CustomizationHandler) GetSettings(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	settings, err := h.service.GetSettings(c.Request.Context(), restaurantID)
	if err != nil {
		if errors.Is(err, postgres.ErrRestaurantNotFound) {
			errorResponse(c, http.StatusNotFound, "restaurant not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to load settings")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateBranding applies color and font changes and returns the updated
// settings.
func (h *CustomizationHandler) UpdateBranding(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var update domain.BrandingUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	settings, err := h.service.UpdateBranding(c.Request.Context(), restaurantID, update)
	if err != nil {
		if errors.Is(err, postgres.ErrRestaurantNotFound) {
			errorResponse(c, http.StatusNotFound, "restaurant not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to update branding")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UploadLogo stores a logo image and returns its public URL.
func (h *CustomizationHandler) UploadLogo(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	file, err := c.FormFile("logo")
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "logo file is required")
		return
	}

	src, err := file.Open()
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "failed to read logo file")
		return
	}
	defer src.Close()

	url, err := h.service.UploadLogo(c.Request.Context(), restaurantID, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStorageUnavailable):
			errorResponse(c, http.StatusServiceUnavailable, "logo storage is not configured")
		case errors.Is(err, service.ErrLogoTooLarge), errors.Is(err, service.ErrUnsupportedLogoType):
			errorResponse(c, http.StatusBadRequest, err.Error())
		default:
			errorResponse(c, http.StatusInternalServerError, "failed to upload logo")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"logo_url": url})
}

// DeleteLogo removes the stored logo and clears the logo URL.
func (h *CustomizationHandler) DeleteLogo(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	if err := h.service.DeleteLogo(c.Request.Context(), restaurantID); err != nil {
		if errors.Is(err, service.ErrStorageUnavailable) {
			errorResponse(c, http.StatusServiceUnavailable, "logo storage is not configured")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to delete logo")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
