package api

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v6"
	"github.com/didip/tollbooth/v6/limiter"
	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware throttles a route group per client IP. Used on the auth
// endpoints to slow down credential stuffing and code guessing.
func RateLimitMiddleware(rps float64) gin.HandlerFunc {
	if rps <= 0 {
		rps = 5
	}
	lmt := tollbooth.NewLimiter(rps, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"X-Forwarded-For", "RemoteAddr", "X-Real-IP"})

	return func(c *gin.Context) {
		if httpError := tollbooth.LimitByRequest(lmt, c.Writer, c.Request); httpError != nil {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, APIError{
				Code:    ErrCodeRateLimited,
				Message: "too many requests, slow down",
			})
			return
		}
		c.Next()
	}
}
