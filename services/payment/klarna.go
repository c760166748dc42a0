package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// CheckoutClient is the capability interface for the payment provider's
// order-creation endpoint.
type CheckoutClient interface {
	CreateOrder(ctx context.Context, params OrderParams) (*CheckoutOrder, error)
}

// OrderParams describes a single-line checkout order.
type OrderParams struct {
	AmountMinor  int64 // minor currency units (öre)
	Service      string
	CustomerName string
	Reference    string // merchant-side line reference
}

// CheckoutOrder is the provider's answer: its order id plus the renderable
// checkout artifact, or a hosted redirect URL when the snippet was not
// granted.
type CheckoutOrder struct {
	OrderID     string
	HTMLSnippet string
	RedirectURL string
}

// UpstreamError reports a non-2xx answer from the payment provider; the
// body is surfaced verbatim. Requests failing this way are not retried.
type UpstreamError struct {
	Upstream string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Upstream, e.Status, e.Body)
}

// KlarnaClient implements CheckoutClient against the Klarna checkout API.
type KlarnaClient struct {
	baseURL    string
	username   string
	password   string
	publicURL  string
	httpClient *http.Client
}

func NewKlarnaClient(baseURL, username, password, publicURL string, timeout time.Duration) *KlarnaClient {
	return &KlarnaClient{
		baseURL:    baseURL,
		username:   username,
		password:   password,
		publicURL:  publicURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type klarnaOrderLine struct {
	Type           string `json:"type"`
	Reference      string `json:"reference"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPrice      int64  `json:"unit_price"`
	TotalAmount    int64  `json:"total_amount"`
	TotalTaxAmount int64  `json:"total_tax_amount"`
	TaxRate        int    `json:"tax_rate"`
}

type klarnaMerchantURLs struct {
	Terms        string `json:"terms"`
	Checkout     string `json:"checkout"`
	Confirmation string `json:"confirmation"`
	Push         string `json:"push"`
}

type klarnaOrderRequest struct {
	PurchaseCountry  string             `json:"purchase_country"`
	PurchaseCurrency string             `json:"purchase_currency"`
	Locale           string             `json:"locale"`
	OrderAmount      int64              `json:"order_amount"`
	OrderTaxAmount   int64              `json:"order_tax_amount"`
	OrderLines       []klarnaOrderLine  `json:"order_lines"`
	MerchantURLs     klarnaMerchantURLs `json:"merchant_urls"`
}

type klarnaOrderResponse struct {
	OrderID     string `json:"order_id"`
	HTMLSnippet string `json:"html_snippet"`
	RedirectURL string `json:"redirect_url"`
}

// CreateOrder posts a checkout order. The merchant callback URLs carry
// Klarna's {checkout.order.id} placeholder so the provider substitutes its
// own order id before calling back.
func (k *KlarnaClient) CreateOrder(ctx context.Context, p OrderParams) (*CheckoutOrder, error) {
	payload := klarnaOrderRequest{
		PurchaseCountry:  "SE",
		PurchaseCurrency: "SEK",
		Locale:           "sv-SE",
		OrderAmount:      p.AmountMinor,
		OrderTaxAmount:   0,
		OrderLines: []klarnaOrderLine{{
			Type:        "physical",
			Reference:   p.Reference,
			Name:        p.Service,
			Quantity:    1,
			UnitPrice:   p.AmountMinor,
			TotalAmount: p.AmountMinor,
			TaxRate:     0,
		}},
		MerchantURLs: klarnaMerchantURLs{
			Terms:        k.publicURL + "/terms",
			Checkout:     k.publicURL + "/checkout?order_id={checkout.order.id}",
			Confirmation: k.publicURL + "/confirmation?order_id={checkout.order.id}",
			Push:         k.publicURL + "/klarna/push?order_id={checkout.order.id}",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal klarna order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, k.baseURL+"/checkout/v3/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build klarna request: %w", err)
	}
	req.SetBasicAuth(k.username, k.password)
	req.Header.Set("Content-Type", "application/json")

	resp, err := k.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("klarna request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read klarna response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{Upstream: "klarna", Status: resp.StatusCode, Body: string(respBody)}
	}

	var order klarnaOrderResponse
	if err := json.Unmarshal(respBody, &order); err != nil {
		return nil, fmt.Errorf("failed to decode klarna response: %w", err)
	}
	return &CheckoutOrder{
		OrderID:     order.OrderID,
		HTMLSnippet: order.HTMLSnippet,
		RedirectURL: order.RedirectURL,
	}, nil
}
