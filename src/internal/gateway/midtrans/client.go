package midtrans

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	sandboxSnapURL    = "https://app.sandbox.midtrans.com/snap/v1/transactions"
	productionSnapURL = "https://app.midtrans.com/snap/v1/transactions"
)

type Config struct {
	ServerKey  string
	ClientKey  string
	Production bool
}

// Gateway creates hosted-payment transactions. Satisfied by Client;
// usecases depend on the interface so tests can fake the gateway.
type Gateway interface {
	CreateTransaction(ctx context.Context, req *SnapRequest) (*SnapTransaction, error)
}

type Client struct {
	cfg     Config
	snapURL string
	client  *http.Client
}

func NewClient(cfg Config) *Client {
	url := sandboxSnapURL
	if cfg.Production {
		url = productionSnapURL
	}
	return &Client{
		cfg:     cfg,
		snapURL: url,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type TransactionDetails struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
}

type CustomerDetails struct {
	FirstName string `json:"first_name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type ItemDetail struct {
	ID       string `json:"id"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
	Name     string `json:"name"`
}

type Callbacks struct {
	Finish string `json:"finish,omitempty"`
}

type SnapRequest struct {
	TransactionDetails TransactionDetails `json:"transaction_details"`
	CustomerDetails    CustomerDetails    `json:"customer_details"`
	ItemDetails        []ItemDetail       `json:"item_details,omitempty"`
	Callbacks          *Callbacks         `json:"callbacks,omitempty"`
	Expiry             *Expiry            `json:"expiry,omitempty"`
}

type Expiry struct {
	Unit     string `json:"unit"`
	Duration int64  `json:"duration"`
}

type SnapTransaction struct {
	Token       string `json:"token"`
	RedirectURL string `json:"redirect_url"`
}

func (c *Client) CreateTransaction(ctx context.Context, req *SnapRequest) (*SnapTransaction, error) {
	if c.cfg.ServerKey == "" {
		return nil, errors.New("midtrans: server key not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.snapURL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.SetBasicAuth(c.cfg.ServerKey, "")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		var apiErr struct {
			ErrorMessages []string `json:"error_messages"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, fmt.Errorf("midtrans: create transaction failed: %s %v", resp.Status, apiErr.ErrorMessages)
	}

	var out SnapTransaction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errors.New("midtrans: empty snap token")
	}
	return &out, nil
}
