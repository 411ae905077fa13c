package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"shopdesk/internal/apiclient"
	"shopdesk/internal/models"
	"shopdesk/internal/services"
	"shopdesk/internal/table"
	"shopdesk/internal/view"
)

var deliveryDays = []string{"Mon", "Tue", "Wed", "Thurs", "Fri", "Sat", "Sun"}

const createErrorMessage = "An error occurred while trying to create a new client. " +
	"Please try again or verify the values you are inputting."

// PageHandler serves the server-rendered dashboard pages. The creation
// form goes through the typed API client, same as any other caller of
// the clients API.
type PageHandler struct {
	Clients  *services.ClientService
	Payments *services.PaymentService
	API      *apiclient.Client
	Views    *view.Renderer
}

func NewPageHandler(clients *services.ClientService, payments *services.PaymentService, api *apiclient.Client, views *view.Renderer) *PageHandler {
	return &PageHandler{Clients: clients, Payments: payments, API: api, Views: views}
}

func escape(s string) template.HTML {
	return template.HTML(template.HTMLEscapeString(s))
}

func clientColumns() []table.Column[*models.Client] {
	return []table.Column[*models.Client]{
		{Title: "Name", DataIndex: "firstName", Render: func(_ any, rec *models.Client) template.HTML {
			return escape(rec.FullName())
		}},
		{Title: "Shop", DataIndex: "shops", Render: func(_ any, rec *models.Client) template.HTML {
			if len(rec.Shops) == 0 {
				return ""
			}
			return escape(rec.Shops[0].ShopName)
		}},
		{Title: "Mobile", DataIndex: "mobileNumber"},
		{Title: "Delivery", DataIndex: "deliveryDateTime"},
		{Title: "Payment", DataIndex: "payments", Render: func(_ any, rec *models.Client) template.HTML {
			if len(rec.Payments) == 0 {
				return ""
			}
			return escape(rec.Payments[0].Value)
		}},
	}
}

// ClientList renders the clients table. ?selected=<id> marks a row.
func (h *PageHandler) ClientList(c *gin.Context) {
	clients, err := h.Clients.List()
	if err != nil {
		log.Printf("[pages][clients] list: %v", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	list := &table.List[*models.Client]{
		Columns: clientColumns(),
		Key: func(rec *models.Client) string {
			return strconv.FormatInt(rec.ID, 10)
		},
	}
	if key := c.Query("selected"); key != "" {
		list.Click(clients, key)
	}

	var buf bytes.Buffer
	if err := list.Render(&buf, clients, table.Options{}); err != nil {
		log.Printf("[pages][clients] render table: %v", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	h.renderPage(c, http.StatusOK, "clients.html", map[string]any{
		"Title": "Clients",
		"Table": template.HTML(buf.String()),
	})
}

// NewClient renders the empty creation form with the payment catalog.
func (h *PageHandler) NewClient(c *gin.Context) {
	payments, err := h.Payments.List()
	if err != nil {
		log.Printf("[pages][clients][new] payments: %v", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}
	h.renderPage(c, http.StatusOK, "clients_new.html", h.formData(url.Values{}, payments, "", false))
}

// CreateClient handles the form submission. Payment selection is the
// only required field; everything else passes through as submitted.
func (h *PageHandler) CreateClient(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "bad form")
		return
	}
	form := c.Request.PostForm

	payments, err := h.Payments.List()
	if err != nil {
		log.Printf("[pages][clients][new] payments: %v", err)
		c.String(http.StatusInternalServerError, "server error")
		return
	}

	payment := strings.TrimSpace(form.Get("payment"))
	if payment == "" {
		h.renderPage(c, http.StatusUnprocessableEntity, "clients_new.html",
			h.formData(form, payments, "", true))
		return
	}

	// Seven day toggles post under one name; the last write wins.
	var deliveryDay string
	if days := form["delivery_day"]; len(days) > 0 {
		deliveryDay = days[len(days)-1]
	}

	lat, _ := strconv.ParseFloat(form.Get("lat"), 64)
	long, _ := strconv.ParseFloat(form.Get("long"), 64)

	params := apiclient.CreateClientParams{
		FirstName:    form.Get("firstName"),
		LastName:     form.Get("lastName"),
		NID:          form.Get("nid"),
		BRNNumber:    form.Get("brnNumber"),
		PhoneNumber:  form.Get("phoneNumber"),
		MobileNumber: form.Get("mobileNumber"),
		Email:        form.Get("email"),
		Shops: []apiclient.ShopParams{{
			ShopName: form.Get("shopName"),
			Address: models.Address{
				Name: form.Get("addressName"),
				City: form.Get("addressCity"),
				Lat:  lat,
				Long: long,
			},
		}},
		DeliveryDay: deliveryDay,
		Payments:    []string{payment},
	}

	res, err := h.API.CreateClient(c.Request.Context(), params)
	if err != nil || res.Status != models.StatusSuccess {
		if err != nil {
			log.Printf("[pages][clients][new] create: %v", err)
		} else {
			log.Printf("[pages][clients][new] create rejected: %s", res.Message)
		}
		h.renderPage(c, http.StatusOK, "clients_new.html",
			h.formData(form, payments, createErrorMessage, false))
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/clients")
}

func (h *PageHandler) formData(form url.Values, payments []*models.Payment, modalError string, paymentRequired bool) map[string]any {
	return map[string]any{
		"Title":           "Add client",
		"Form":            form,
		"Payments":        payments,
		"DeliveryDays":    deliveryDays,
		"SelectedPayment": form.Get("payment"),
		"ModalError":      modalError,
		"PaymentRequired": paymentRequired,
	}
}

func (h *PageHandler) renderPage(c *gin.Context, code int, name string, data map[string]any) {
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(code)
	if err := h.Views.Render(c.Writer, name, data); err != nil {
		log.Printf("[pages] render %s: %v", name, err)
	}
}
