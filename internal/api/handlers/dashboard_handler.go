package handlers

import (
	"net/http"

	"github.com/cozinhapro/backoffice/internal/api/middleware"
	"github.com/cozinhapro/backoffice/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardHandler struct {
	service *service.DashboardService
}

func NewDashboardHandler(service *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{service: service}
}

// GetDashboard returns the full snapshot: stats plus reports.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	snapshot, err := h.service.GetSnapshot(c.Request.Context(), restaurantID)
	if err != nil {
		if snapshot != nil {
			// Serve the previous snapshot rather than an empty dashboard.
			log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("serving stale dashboard snapshot")
			c.JSON(http.StatusOK, snapshot)
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// GetStats returns only the stats section of the snapshot.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	snapshot, err := h.service.GetSnapshot(c.Request.Context(), restaurantID)
	if err != nil && snapshot == nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load dashboard stats")
		return
	}

	c.JSON(http.StatusOK, snapshot.Stats)
}

// GetReports returns only the reports section of the snapshot.
func (h *DashboardHandler) GetReports(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	snapshot, err := h.service.GetSnapshot(c.Request.Context(), restaurantID)
	if err != nil && snapshot == nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load dashboard reports")
		return
	}

	c.JSON(http.StatusOK, snapshot.Reports)
}

// Refresh recomputes the snapshot, bypassing the cache.
func (h *DashboardHandler) Refresh(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	if err := h.service.Invalidate(c.Request.Context(), restaurantID); err != nil {
		log.Warn().Err(err).Int64("restaurant_id", restaurantID).Msg("dashboard cache invalidation failed")
	}

	snapshot, err := h.service.Refresh(c.Request.Context(), restaurantID)
	if err != nil {
		if snapshot != nil {
			c.JSON(http.StatusOK, snapshot)
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to refresh dashboard")
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
