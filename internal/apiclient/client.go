// Package apiclient is a typed HTTP client for the clients API.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"shopdesk/internal/models"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type ShopParams struct {
	ShopName string         `json:"shopName"`
	Address  models.Address `json:"address"`
}

type CreateClientParams struct {
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	NID          string       `json:"nid"`
	BRNNumber    string       `json:"brnNumber"`
	PhoneNumber  string       `json:"phoneNumber"`
	MobileNumber string       `json:"mobileNumber"`
	Email        string       `json:"email"`
	Shops        []ShopParams `json:"shops"`
	DeliveryDay  string       `json:"deliveryDateTime"`
	Payments     []string     `json:"payments"`
}

// CreateClientResult carries the envelope verdict plus the created
// client when the call succeeded.
type CreateClientResult struct {
	Status  string
	Message string
	Client  *models.Client
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// CreateClient posts a create payload. A non-success envelope is not
// an error; callers branch on Status.
func (c *Client) CreateClient(ctx context.Context, params CreateClientParams) (*CreateClientResult, error) {
	env, err := c.do(ctx, http.MethodPost, "/clients", params)
	if err != nil {
		return nil, err
	}
	res := &CreateClientResult{Status: env.Status, Message: env.Message}
	if env.Status == models.StatusSuccess && len(env.Data) > 0 && string(env.Data) != "null" {
		var created models.Client
		if err := json.Unmarshal(env.Data, &created); err != nil {
			return nil, fmt.Errorf("decode created client: %w", err)
		}
		res.Client = &created
	}
	return res, nil
}

func (c *Client) ListClients(ctx context.Context) ([]models.Client, error) {
	env, err := c.do(ctx, http.MethodGet, "/clients", nil)
	if err != nil {
		return nil, err
	}
	if env.Status != models.StatusSuccess {
		return nil, fmt.Errorf("list clients: %s", env.Message)
	}
	var clients []models.Client
	if err := json.Unmarshal(env.Data, &clients); err != nil {
		return nil, fmt.Errorf("decode clients: %w", err)
	}
	return clients, nil
}

func (c *Client) DeleteClient(ctx context.Context, id string) error {
	env, err := c.do(ctx, http.MethodDelete, "/clients", map[string]string{"id": id})
	if err != nil {
		return err
	}
	if env.Status != models.StatusSuccess {
		return fmt.Errorf("delete client: %s", env.Message)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, payload any) (*envelope, error) {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &env, nil
}
