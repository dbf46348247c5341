// internal/api/api.go
package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/cozinhapro/backoffice/internal/api/handlers"
	"github.com/cozinhapro/backoffice/internal/api/middleware"
	"github.com/cozinhapro/backoffice/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Services struct {
	DashboardService     *service.DashboardService
	PricingService       *service.PricingService
	SupplierService      *service.SupplierService
	CustomizationService *service.CustomizationService
}

func NewRouter(services *Services, allowedOrigins []string) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	defaultOrigins := []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	corsConfig := cors.Config{
		AllowOrigins:     defaultOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.TenantHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) > 0 {
		normalizedOrigins, allowAll := normalizeAllowedOrigins(allowedOrigins)
		if allowAll {
			corsConfig.AllowOrigins = nil
			corsConfig.AllowOriginFunc = func(origin string) bool { return true }
		} else if len(normalizedOrigins) > 0 {
			corsConfig.AllowOrigins = normalizedOrigins
		}
	}
	router.Use(cors.New(corsConfig))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	apiGroup := router.Group("/api/v1")
	apiGroup.Use(middleware.Tenant())

	if services != nil {
		if services.DashboardService != nil {
			dashboardHandler := handlers.NewDashboardHandler(services.DashboardService)
			dashboardGroup := apiGroup.Group("/dashboard")
			{
				dashboardGroup.GET("", dashboardHandler.GetDashboard)
				dashboardGroup.GET("/stats", dashboardHandler.GetStats)
				dashboardGroup.GET("/reports", dashboardHandler.GetReports)
				dashboardGroup.POST("/refresh", dashboardHandler.Refresh)
			}
		}

		if services.PricingService != nil {
			pricingHandler := handlers.NewPricingHandler(services.PricingService)
			pricingGroup := apiGroup.Group("/pricing")
			{
				pricingGroup.GET("", pricingHandler.GetPricing)
				pricingGroup.GET("/items", pricingHandler.GetItems)
				pricingGroup.GET("/summary", pricingHandler.GetSummary)
				pricingGroup.PUT("/items/:id/price", pricingHandler.UpdatePrice)
				pricingGroup.POST("/recalculate", pricingHandler.Recalculate)
				pricingGroup.POST("/category", pricingHandler.ApplyToCategory)
				pricingGroup.POST("/reload", pricingHandler.Reload)
			}
		}

		if services.SupplierService != nil {
			supplierHandler := handlers.NewSupplierHandler(services.SupplierService)
			apiGroup.GET("/suppliers", supplierHandler.GetSuppliers)
			apiGroup.GET("/suppliers/:name/purchases", supplierHandler.GetSupplierPurchases)
			apiGroup.GET("/purchases", supplierHandler.GetPurchases)
		}

		if services.CustomizationService != nil {
			customizationHandler := handlers.NewCustomizationHandler(services.CustomizationService)
			customizationGroup := apiGroup.Group("/customization")
			{
				customizationGroup.GET("", customizationHandler.GetSettings)
				customizationGroup.PUT("", customizationHandler.UpdateBranding)
				customizationGroup.POST("/logo", customizationHandler.UploadLogo)
				customizationGroup.DELETE("/logo", customizationHandler.DeleteLogo)
			}
		}
	}

	return router
}

func normalizeAllowedOrigins(origins []string) ([]string, bool) {
	var (
		parsed   []string
		allowAll bool
	)
	for _, origin := range origins {
		parts := strings.Split(origin, ",")
		for _, part := range parts {
			trimmed := strings.TrimSpace(part)
			if trimmed == "" {
				continue
			}
			if trimmed == "*" {
				allowAll = true
				continue
			}
			parsed = append(parsed, trimmed)
		}
	}
	return parsed, allowAll
}
