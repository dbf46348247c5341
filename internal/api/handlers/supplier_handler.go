package handlers

import (
	"net/http"
	"strings"

	"github.com/cozinhapro/backoffice/internal/api/middleware"
	"github.com/cozinhapro/backoffice/internal/service"
	"github.com/gin-gonic/gin"
)

type SupplierHandler struct {
	service *service.SupplierService
}

func NewSupplierHandler(service *service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

// GetSuppliers lists the suppliers derived from inventory rows.
func (h *SupplierHandler) GetSuppliers(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)

	suppliers, err := h.service.GetSuppliers(c.Request.Context(), restaurantID)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load suppliers")
		return
	}

	c.JSON(http.StatusOK, gin.H{"suppliers": suppliers, "total": len(suppliers)})
}

// GetSupplierPurchases lists the purchases attributed to one supplier,
// matched case-insensitively by name.
func (h *SupplierHandler) GetSupplierPurchases(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)
	supplier := strings.TrimSpace(c.Param("name"))
	if supplier == "" {
		errorResponse(c, http.StatusBadRequest, "supplier name is required")
		return
	}

	purchases, err := h.service.GetPurchasesBySupplier(c.Request.Context(), restaurantID, supplier)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load purchases")
		return
	}

	total, err := h.service.TotalSpent(c.Request.Context(), restaurantID, supplier)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to total purchases")
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier, "purchases": purchases, "total_spent": total})
}

// GetPurchases lists the derived purchase history, optionally filtered to
// one supplier via ?supplier=.
func (h *SupplierHandler) GetPurchases(c *gin.Context) {
	restaurantID := middleware.RestaurantID(c)
	supplier := strings.TrimSpace(c.Query("supplier"))

	purchases, err := h.service.GetPurchasesBySupplier(c.Request.Context(), restaurantID, supplier)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to load purchases")
		return
	}

	total, err := h.service.TotalSpent(c.Request.Context(), restaurantID, supplier)
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, "failed to total purchases")
		return
	}

	c.JSON(http.StatusOK, gin.H{"purchases": purchases, "total_spent": total})
}
