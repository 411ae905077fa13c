package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/models"
	"shopdesk/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

type shopPayload struct {
	ShopName string `json:"shopName"`
	Address  struct {
		Name string  `json:"name"`
		City string  `json:"city"`
		Lat  float64 `json:"lat"`
		Long float64 `json:"long"`
	} `json:"address"`
}

type createClientRequest struct {
	FirstName    string        `json:"firstName"`
	LastName     string        `json:"lastName"`
	NID          string        `json:"nid"`
	BRNNumber    string        `json:"brnNumber"`
	PhoneNumber  string        `json:"phoneNumber"`
	MobileNumber string        `json:"mobileNumber"`
	Email        string        `json:"email"`
	Shops        []shopPayload `json:"shops"`
	DeliveryDay  string        `json:"deliveryDateTime"`
	Payments     []string      `json:"payments"`
}

type deleteClientRequest struct {
	ID string `json:"id"`
}

// List godoc
// @Summary      List clients
// @Description  Returns all clients with shop and payment references resolved
// @Tags         Clients
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      500  {object}  models.Response
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.Service.List()
	if err != nil {
		log.Printf("[client][list] %v", err)
		respondError(c, "Internal Server Error")
		return
	}
	if clients == nil {
		clients = []*models.Client{}
	}
	respondSuccess(c, http.StatusOK, "Clients fetched successfully", clients)
}

// Create godoc
// @Summary      Create a client
// @Description  Persists the first shop sub-object, then the client referencing it
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        client  body      createClientRequest  true  "Client payload"
// @Success      201     {object}  models.Response
// @Failure      400     {object}  models.Response
// @Failure      500     {object}  models.Response
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	paymentIDs, ok := parsePaymentIDs(req.Payments)
	if !ok {
		respondFail(c, http.StatusBadRequest, "Invalid payment id")
		return
	}

	client := &models.Client{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		NID:          req.NID,
		BRNNumber:    req.BRNNumber,
		PhoneNumber:  req.PhoneNumber,
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		DeliveryDay:  req.DeliveryDay,
	}

	// Only the first shop sub-object is used.
	var shop *models.Shop
	if len(req.Shops) > 0 {
		first := req.Shops[0]
		shop = &models.Shop{
			ShopName: first.ShopName,
			Address: models.Address{
				Name: first.Address.Name,
				City: first.Address.City,
				Lat:  first.Address.Lat,
				Long: first.Address.Long,
			},
		}
	}

	created, err := h.Service.Create(client, shop, paymentIDs)
	if err != nil {
		var orphaned *services.OrphanedShopError
		if errors.As(err, &orphaned) {
			log.Printf("[client][create] %v", orphaned)
			respondError(c, "Client creation failed; shop record orphaned")
			return
		}
		log.Printf("[client][create] %v", err)
		respondError(c, "Internal Server Error")
		return
	}
	respondSuccess(c, http.StatusCreated, "Client created successfully", created)
}

// Delete godoc
// @Summary      Delete a client
// @Tags         Clients
// @Accept       json
// @Produce      json
// @Param        client  body      deleteClientRequest  true  "Client id"
// @Success      200     {object}  models.Response
// @Failure      400     {object}  models.Response
// @Failure      404     {object}  models.Response
// @Failure      500     {object}  models.Response
// @Router       /clients [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	var req deleteClientRequest
	// A malformed or empty body is equivalent to a missing id.
	_ = c.ShouldBindJSON(&req)

	err := h.Service.Delete(req.ID)
	switch {
	case err == nil:
		respondSuccess(c, http.StatusOK, "Client deleted successfully", nil)
	case errors.Is(err, services.ErrClientIDRequired):
		respondFail(c, http.StatusBadRequest, "Client id is required")
	case errors.Is(err, services.ErrInvalidClientID):
		respondFail(c, http.StatusBadRequest, "Invalid client id")
	case errors.Is(err, services.ErrClientNotFound):
		respondFail(c, http.StatusNotFound, "Client not found")
	default:
		log.Printf("[client][delete] id=%q: %v", req.ID, err)
		respondError(c, "Internal Server Error")
	}
}

// parsePaymentIDs converts wire payment ids to storage ids. Empty
// entries are dropped; a non-numeric id fails the whole payload.
func parsePaymentIDs(raw []string) ([]int64, bool) {
	var ids []int64
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}
