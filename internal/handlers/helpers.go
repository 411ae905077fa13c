package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/models"
)

func respondSuccess(c *gin.Context, code int, message string, data any) {
	c.JSON(code, models.Response{Status: models.StatusSuccess, Message: message, Data: data})
}

// respondFail reports a client fault (validation, not found).
func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, models.Response{Status: models.StatusFail, Message: message, Data: nil})
}

// respondError reports a server fault. The message stays generic; the
// cause goes to the log, not the wire.
func respondError(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, models.Response{Status: models.StatusError, Message: message, Data: nil})
}
