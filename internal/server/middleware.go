package server

import (
	"net/http"
	"strings"
	"time"

	"auctionhouse/internal/auth"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	})
}

// AuthRequired validates the Authorization bearer token and stores the
// resolved user id in the request context. The core trusts this identity
// once resolved; issuing tokens is not this service's job.
func AuthRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			utils.JSONError(c, http.StatusUnauthorized, "missing or invalid authorization header")
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(secret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.JSONError(c, http.StatusUnauthorized, "invalid token")
			c.Abort()
			return
		}

		c.Set(helpers.UserIDKey, claims.UserID)
		c.Next()
	}
}
