package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/cozinhapro/backoffice/internal/api/middleware"
	"github.com/cozinhapro/backoffice/internal/pricing"
	"github.com/cozinhapro/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	service *service.PricingService
}

func NewPricingHandler(service *service.PricingService) *PricingHandler {
	return &PricingHandler{service: service}
}

// GetPricing returns the pricing rows together with the summary header.
func (h *PricingHandler) GetPricing(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	items, err := h.service.GetItems(c.Request.Context(), restaurantID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load pricing")
		return
	}
	summary, err := h.service.GetSummary(c.Request.Context(), restaurantID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load pricing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "summary": summary})
}

// GetItems returns the pricing rows for the restaurant.
func (h *PricingHandler) GetItems(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	items, err := h.service.GetItems(c.Request.Context(), restaurantID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load pricing items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": items, "total": len(items)})
}

// GetSummary returns the aggregated pricing header.
func (h *PricingHandler) GetSummary(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	summary, err := h.service.GetSummary(c.Request.Context(), restaurantID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load pricing summary")
		return
	}

	c.JSON(http.StatusOK, summary)
}

type updatePriceRequest struct {
	Price float64 `json:"price" binding:"required"`
}

// UpdatePrice sets a manual sale price for one item. The change is a
// preview only and is discarded on the next pricing reload.
func (h *PricingHandler) UpdatePrice(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	itemID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid item id")
		return
	}

	var req updatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if req.Price <= 0 {
		errorResponse(c, http.StatusBadRequest, "price must be positive")
		return
	}

	item, err := h.service.UpdatePrice(c.Request.Context(), restaurantID, itemID, req.Price)
	if err != nil {
		if errors.Is(err, pricing.ErrItemNotFound) {
			errorResponse(c, http.StatusNotFound, "pricing item not found")
			return
		}
		errorResponse(c, http.StatusInternalServerError, "failed to update price")
		return
	}

	c.JSON(http.StatusOK, item)
}

type recalculateRequest struct {
	Markup       *float64 `json:"markup"`
	ProfitTarget *float64 `json:"profit_target"`
}

// Recalculate reprices every item, either at an explicit markup
// multiplier or at the markup implied by a profit target.
func (h *PricingHandler) Recalculate(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var req recalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	switch {
	case req.ProfitTarget != nil:
		updated, markup, err := h.service.RecalculateForProfitTarget(c.Request.Context(), restaurantID, *req.ProfitTarget)
		if err != nil {
			if errors.Is(err, pricing.ErrInvalidProfitTarget) {
				errorResponse(c, http.StatusBadRequest, err.Error())
				return
			}
			errorResponse(c, http.StatusInternalServerError, "failed to recalculate prices")
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated, "markup": markup})
	case req.Markup != nil:
		if *req.Markup <= 0 {
			errorResponse(c, http.StatusBadRequest, "markup must be positive")
			return
		}
		updated, err := h.service.RecalculateAll(c.Request.Context(), restaurantID, *req.Markup)
		if err != nil {
			errorResponse(c, http.StatusInternalServerError, "failed to recalculate prices")
			return
		}
		c.JSON(http.StatusOK, gin.H{"updated": updated, "markup": *req.Markup})
	default:
		errorResponse(c, http.StatusBadRequest, "either markup or profit_target is required")
	}
}

type applyCategoryRequest struct {
	Category string  `json:"category" binding:"required"`
	Markup   float64 `json:"markup" binding:"required"`
}

// ApplyToCategory reprices the items in one category.
func (h *PricingHandler) ApplyToCategory(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	var req applyCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if strings.TrimSpace(req.Category) == "" {
		errorResponse(c, http.StatusBadRequest, "category is required")
		return
	}
	if req.Markup <= 0 {
		errorResponse(c, http.StatusBadRequest, "markup must be positive")
		return
	}

	updated, err := h.service.ApplyToCategory(c.Request.Context(), restaurantID, req.Category, req.Markup)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to apply category markup")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated, "category": req.Category, "markup": req.Markup})
}

// Reload rebuilds the pricing book from current inventory costs,
// discarding manual overrides.
func (h *PricingHandler) Reload(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	if err := h.service.Reload(c.Request.Context(), restaurantID); err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to reload pricing")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}
