package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/models"
)

// Recovery converts panics into the uniform error envelope so no
// failure escapes to the transport layer unwrapped.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[recover] %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, models.Response{
					Status:  models.StatusError,
					Message: "Internal Server Error",
					Data:    nil,
				})
			}
		}()
		c.Next()
	}
}
