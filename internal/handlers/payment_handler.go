package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/models"
	"shopdesk/internal/services"
)

type PaymentHandler struct {
	Service *services.PaymentService
}

func NewPaymentHandler(service *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: service}
}

// List godoc
// @Summary      List payment types
// @Description  Returns the read-only payment type catalog
// @Tags         Payments
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /payments [get]
func (h *PaymentHandler) List(c *gin.Context) {
	payments, err := h.Service.List()
	if err != nil {
		log.Printf("[payment][list] %v", err)
		respondError(c, "Internal Server Error")
		return
	}
	if payments == nil {
		payments = []*models.Payment{}
	}
	respondSuccess(c, http.StatusOK, "Payments fetched successfully", payments)
}
