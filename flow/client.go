package flow

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/payrelay/flowgate/flow/models"
)

// GatewayError is the single failure category for gateway calls: transport
// failures, non-2xx responses and malformed or incomplete bodies all collapse
// into it. Status and body are kept for diagnostic logging only and must not
// be exposed verbatim to API consumers. No layer retries a failed call.
type GatewayError struct {
	StatusCode int
	Body       string
	Err        error
}

func (e *GatewayError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gateway call failed: status=%d", e.StatusCode)
	}
	return "gateway call failed"
}

func (e *GatewayError) Unwrap() error { return e.Err }

// Client performs outbound calls to the payment gateway. Writes are
// URL-encoded forms, reads are query strings; every call carries apiKey and s.
type Client struct {
	Base   string
	HTTP   *http.Client
	logger *slog.Logger
}

func NewClient(base string, hc *http.Client, logger *slog.Logger) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{Base: strings.TrimRight(base, "/"), HTTP: hc, logger: logger}
}

// CreateOrder submits a signed payload to the gateway's order-creation
// endpoint. The payment link is the returned base url with the token appended
// as a query parameter; the token is not re-encoded, it is a fixed-format
// string on the gateway side.
func (c *Client) CreateOrder(ctx context.Context, payload url.Values) (models.CreateOrderResult, error) {
	target := c.Base + "/payment/create"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(payload.Encode()))
	if err != nil {
		return models.CreateOrderResult{}, fmt.Errorf("building create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Error("gateway create call failed", "err", err)
		return models.CreateOrderResult{}, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		gerr := &GatewayError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		c.logger.Error("gateway rejected order creation",
			slog.Int("status", gerr.StatusCode),
			slog.String("body", gerr.Body),
		)
		return models.CreateOrderResult{}, gerr
	}

	var payment struct {
		URL       string `json:"url"`
		Token     string `json:"token"`
		FlowOrder int64  `json:"flowOrder"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payment); err != nil {
		return models.CreateOrderResult{}, &GatewayError{StatusCode: resp.StatusCode, Err: err}
	}
	if payment.URL == "" || payment.Token == "" || payment.FlowOrder == 0 {
		return models.CreateOrderResult{}, &GatewayError{StatusCode: resp.StatusCode, Body: "incomplete create response"}
	}

	return models.CreateOrderResult{
		PaymentLink: payment.URL + "?token=" + payment.Token,
		FlowOrder:   payment.FlowOrder,
	}, nil
}

// GetStatus queries the gateway for the state of an order identified by
// token. The signed set is exactly {apiKey, token}.
func (c *Client) GetStatus(ctx context.Context, token string, creds Credentials) (models.PaymentStatus, error) {
	form, err := Signed(StatusParams(token, creds.APIKey), creds.SecretKey)
	if err != nil {
		return models.PaymentStatus{}, err
	}

	u, err := url.Parse(c.Base + "/payment/getStatus")
	if err != nil {
		return models.PaymentStatus{}, fmt.Errorf("parse base: %w", err)
	}
	u.RawQuery = form.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return models.PaymentStatus{}, fmt.Errorf("building status request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.logger.Error("gateway status call failed", "err", err)
		return models.PaymentStatus{}, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(resp.Body)
		gerr := &GatewayError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
		c.logger.Error("gateway rejected status query",
			slog.Int("status", gerr.StatusCode),
			slog.String("body", gerr.Body),
		)
		return models.PaymentStatus{}, gerr
	}

	var status models.PaymentStatus
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return models.PaymentStatus{}, &GatewayError{StatusCode: resp.StatusCode, Err: err}
	}

	return status, nil
}
