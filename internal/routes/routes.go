package routes

import (
	"github.com/gin-gonic/gin"

	"shopdesk/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	clientHandler *handlers.ClientHandler,
	paymentHandler *handlers.PaymentHandler,
	exportHandler *handlers.ExportHandler,
	pageHandler *handlers.PageHandler,
) *gin.Engine {

	// ---- API
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Create)
		clients.DELETE("", clientHandler.Delete)
		clients.GET("/export/pdf", exportHandler.ClientListPDF)
	}
	r.GET("/payments", paymentHandler.List)

	// ---- Dashboard pages
	dashboard := r.Group("/dashboard")
	{
		dashboard.GET("/clients", pageHandler.ClientList)
		dashboard.GET("/clients/new", pageHandler.NewClient)
		dashboard.POST("/clients/new", pageHandler.CreateClient)
	}

	return r
}
