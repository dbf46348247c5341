// internal/api/middleware/tenant.go
package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// TenantHeader carries the restaurant id resolved by the upstream
// identity layer.
const TenantHeader = "X-Restaurant-ID"

const tenantContextKey = "restaurant_id"

// Tenant resolves the restaurant id from the request header and rejects
// requests without one. Every route under it is scoped to that tenant.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + TenantHeader + " header"})
			return
		}

		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid " + TenantHeader + " header"})
			return
		}

		c.Set(tenantContextKey, id)
		c.Next()
	}
}

// RestaurantID returns the tenant id set by the Tenant middleware.
func RestaurantID(c *gin.Context) int64 {
	return c.GetInt64(tenantContextKey)
}
