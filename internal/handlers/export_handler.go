package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/pdf"
	"shopdesk/internal/services"
)

type ExportHandler struct {
	Clients   *services.ClientService
	Generator pdf.Generator
}

func NewExportHandler(clients *services.ClientService, generator pdf.Generator) *ExportHandler {
	return &ExportHandler{Clients: clients, Generator: generator}
}

// ClientListPDF godoc
// @Summary      Export the client list as PDF
// @Tags         Clients
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  models.Response
// @Router       /clients/export/pdf [get]
func (h *ExportHandler) ClientListPDF(c *gin.Context) {
	clients, err := h.Clients.List()
	if err != nil {
		log.Printf("[export][clients] list: %v", err)
		respondError(c, "Internal Server Error")
		return
	}
	doc, err := h.Generator.ClientList(clients)
	if err != nil {
		log.Printf("[export][clients] pdf: %v", err)
		respondError(c, "Internal Server Error")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="clients.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
