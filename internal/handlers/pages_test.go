package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopdesk/internal/apiclient"
	"shopdesk/internal/models"
	"shopdesk/internal/services"
	"shopdesk/internal/view"
)

type pageFixture struct {
	router  *gin.Engine
	clients *memClientRepo
	shops   *memShopRepo
	api     *httptest.Server

	// last payload the stub API received
	received *apiclient.CreateClientParams
}

// newPageFixture wires the page handler against in-memory storage and
// a stub clients API that answers with apiStatus.
func newPageFixture(t *testing.T, apiStatus string) *pageFixture {
	t.Helper()
	f := &pageFixture{}

	f.shops = newMemShopRepo()
	f.clients = newMemClientRepo(f.shops)
	clientSvc := services.NewClientService(f.clients, f.shops, nil, nil)
	paymentSvc := services.NewPaymentService(&memPaymentRepo{payments: []*models.Payment{
		{ID: 1, Value: "Cash"},
		{ID: 2, Value: "Credit Card"},
	}})

	f.api = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var params apiclient.CreateClientParams
		_ = json.NewDecoder(r.Body).Decode(&params)
		f.received = &params

		w.Header().Set("Content-Type", "application/json")
		if apiStatus == models.StatusSuccess {
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"status":"success","message":"Client created successfully","data":{"id":"1","shops":[],"payments":[]}}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"Internal Server Error","data":null}`))
	}))
	t.Cleanup(f.api.Close)

	h := NewPageHandler(clientSvc, paymentSvc, apiclient.New(f.api.URL), view.New("../../templates"))

	f.router = gin.New()
	f.router.GET("/dashboard/clients", h.ClientList)
	f.router.GET("/dashboard/clients/new", h.NewClient)
	f.router.POST("/dashboard/clients/new", h.CreateClient)
	return f
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestNewClientFormRendersCatalog(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/clients/new", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Cash")
	assert.Contains(t, body, "Credit Card")
	assert.Contains(t, body, `name="delivery_day"`)
}

func TestSubmitWithoutPaymentIsRejected(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	form := url.Values{"firstName": {"Ada"}}
	rec := postForm(f.router, "/dashboard/clients/new", form)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required")
	// The form stays populated.
	assert.Contains(t, rec.Body.String(), `value="Ada"`)
	// The API was never called.
	assert.Nil(t, f.received)
}

func TestSubmitWithPaymentOnlySucceeds(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	form := url.Values{"payment": {"1"}}
	rec := postForm(f.router, "/dashboard/clients/new", form)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard/clients", rec.Header().Get("Location"))

	require.NotNil(t, f.received)
	assert.Equal(t, []string{"1"}, f.received.Payments)
	// One shop is always submitted, pinned at 0,0 by default.
	require.Len(t, f.received.Shops, 1)
	assert.Equal(t, 0.0, f.received.Shops[0].Address.Lat)
	assert.Equal(t, 0.0, f.received.Shops[0].Address.Long)
}

func TestSubmitComposesPayload(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	form := url.Values{
		"firstName":    {"Ada"},
		"lastName":     {"Lovelace"},
		"shopName":     {"Corner Shop"},
		"addressName":  {"Main St"},
		"addressCity":  {"Townsville"},
		"lat":          {"1.5"},
		"long":         {"2.5"},
		"delivery_day": {"Mon", "Fri"},
		"payment":      {"2"},
	}
	rec := postForm(f.router, "/dashboard/clients/new", form)
	require.Equal(t, http.StatusSeeOther, rec.Code)

	require.NotNil(t, f.received)
	assert.Equal(t, "Ada", f.received.FirstName)
	require.Len(t, f.received.Shops, 1)
	assert.Equal(t, "Corner Shop", f.received.Shops[0].ShopName)
	assert.Equal(t, 1.5, f.received.Shops[0].Address.Lat)
	assert.Equal(t, 2.5, f.received.Shops[0].Address.Long)
	// Seven toggles share one field; the last write wins.
	assert.Equal(t, "Fri", f.received.DeliveryDay)
	assert.Equal(t, []string{"2"}, f.received.Payments)
}

func TestSubmitAPIFailureShowsModal(t *testing.T) {
	f := newPageFixture(t, models.StatusError)

	form := url.Values{"firstName": {"Ada"}, "payment": {"1"}}
	rec := postForm(f.router, "/dashboard/clients/new", form)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "An error occurred while trying to create a new client")
	// Dismissal closes the dialog only; the form stays populated.
	assert.Contains(t, body, "Try again")
	assert.Contains(t, body, `value="Ada"`)
}

func TestClientListPageRendersTable(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	_, err := services.NewClientService(f.clients, f.shops, nil, nil).Create(
		&models.Client{FirstName: "Ada", MobileNumber: "555"},
		&models.Shop{ShopName: "Corner Shop"},
		[]int64{1},
	)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/clients", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "table-container")
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "Corner Shop")
	assert.Contains(t, body, "Cash")
	assert.NotContains(t, body, "table-row selected")
}

func TestClientListPageSelection(t *testing.T) {
	f := newPageFixture(t, models.StatusSuccess)

	created, err := services.NewClientService(f.clients, f.shops, nil, nil).Create(
		&models.Client{FirstName: "Ada"}, nil, nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/dashboard/clients?selected=1", nil)
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), created.ID)
	assert.Contains(t, rec.Body.String(), "table-row selected")
}
