// Package paystack is a minimal client for the two Paystack transaction
// endpoints the site uses: initialize and verify.
package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codevine/trainhub/internal/pkg/env"
)

const defaultAPIBaseURL = "https://api.paystack.co"

// TransactionSuccess is the provider-side status of a completed payment.
const TransactionSuccess = "success"

type Client struct {
	SecretKey  string
	PublicKey  string
	APIBaseURL string

	HTTPClient *http.Client
}

// NewClientFromEnv builds a client from the PAYSTACK_* environment keys.
func NewClientFromEnv() *Client {
	return &Client{
		SecretKey:  strings.TrimSpace(env.GetEnv("PAYSTACK_SECRET_KEY", "")),
		PublicKey:  strings.TrimSpace(env.GetEnv("PAYSTACK_PUBLIC_KEY", "")),
		APIBaseURL: strings.TrimRight(env.GetEnv("PAYSTACK_API_BASE_URL", defaultAPIBaseURL), "/"),
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// InitializeRequest starts a hosted checkout for an event listing fee.
type InitializeRequest struct {
	Email       string
	AmountCents int64
	Reference   string
	CallbackURL string
}

// InitializeResponse carries the checkout redirect details.
type InitializeResponse struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// VerifyResponse is the provider's view of a transaction after verification.
type VerifyResponse struct {
	Status      string
	AmountCents int64
	PaidAt      string
	RawJSON     string
}

type apiEnvelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) InitializeTransaction(ctx context.Context, req InitializeRequest) (*InitializeResponse, error) {
	if strings.TrimSpace(c.SecretKey) == "" {
		return nil, errors.New("PAYSTACK_SECRET_KEY is not configured")
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Reference) == "" {
		return nil, errors.New("email and reference are required")
	}

	body, err := json.Marshal(map[string]any{
		"email":        req.Email,
		"amount":       req.AmountCents,
		"reference":    req.Reference,
		"callback_url": req.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	envelope, err := c.do(ctx, http.MethodPost, "/transaction/initialize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var data struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("decode initialize response: %w", err)
	}

	return &InitializeResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// VerifyTransaction asks the provider for the authoritative state of a
// transaction. Callers must only treat Status == TransactionSuccess as paid.
func (c *Client) VerifyTransaction(ctx context.Context, reference string) (*VerifyResponse, error) {
	if strings.TrimSpace(c.SecretKey) == "" {
		return nil, errors.New("PAYSTACK_SECRET_KEY is not configured")
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errors.New("reference is required")
	}

	envelope, err := c.do(ctx, http.MethodGet, "/transaction/verify/"+reference, nil)
	if err != nil {
		return nil, err
	}

	var data struct {
		Status string `json:"status"`
		Amount int64  `json:"amount"`
		PaidAt string `json:"paid_at"`
	}
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("decode verify response: %w", err)
	}

	return &VerifyResponse{
		Status:      data.Status,
		AmountCents: data.Amount,
		PaidAt:      data.PaidAt,
		RawJSON:     string(envelope.Data),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader) (*apiEnvelope, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.APIBaseURL+path, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.SecretKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("paystack %s %s returned %d: %s", method, path, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var envelope apiEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("decode paystack response: %w", err)
	}
	if !envelope.Status {
		return nil, fmt.Errorf("paystack %s %s rejected: %s", method, path, envelope.Message)
	}
	return &envelope, nil
}
