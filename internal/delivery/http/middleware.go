package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware handles CORS for the dashboard. The scrape endpoint is
// called straight from the browser, so preflight OPTIONS requests get a
// bodyless 204 with the same headers every response carries.
func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		if allowed, value := resolveOrigin(origin, allowedOrigins); allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", value)
			c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With, X-Client-Info, Apikey")
			c.Writer.Header().Set("Access-Control-Max-Age", "3600")
		}

		// Handle preflight requests
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

// resolveOrigin returns whether the origin is allowed and the header value
// to send back. A "*" entry allows everything.
func resolveOrigin(origin string, allowedOrigins []string) (bool, string) {
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			return true, "*"
		}
		if strings.HasSuffix(allowed, "*") {
			prefix := strings.TrimSuffix(allowed, "*")
			if strings.HasPrefix(origin, prefix) {
				return true, origin
			}
		} else if origin == allowed {
			return true, origin
		}
	}
	return false, ""
}

// LoggerMiddleware logs requests (simple version for now)
func LoggerMiddleware() gin.HandlerFunc {
	return gin.Logger()
}

// RecoveryMiddleware converts any panic in the pipeline into the standard
// failure envelope so the dashboard never sees an unhandled fault.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		message := "internal server error"
		switch v := recovered.(type) {
		case error:
			message = v.Error()
		case string:
			message = v
		default:
			message = fmt.Sprintf("%v", recovered)
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
		})
	})
}
