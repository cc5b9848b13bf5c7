package paystack

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	return &Client{
		SecretKey:  "sk_test_x",
		APIBaseURL: server.URL,
		HTTPClient: server.Client(),
	}, server
}

func TestInitializeTransaction(t *testing.T) {
	t.Run("posts the transaction and decodes the redirect", func(t *testing.T) {
		var gotAuth string
		var gotBody map[string]any
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			raw, _ := io.ReadAll(r.Body)
			require.NoError(t, json.Unmarshal(raw, &gotBody))
			fmt.Fprint(w, `{"status":true,"message":"Authorization URL created","data":{"authorization_url":"https://checkout.paystack.com/abc123","access_code":"abc123","reference":"ref-1"}}`)
		})
		defer server.Close()

		resp, err := client.InitializeTransaction(context.Background(), InitializeRequest{
			Email:       "organizer@example.com",
			AmountCents: 500000,
			Reference:   "ref-1",
			CallbackURL: "http://localhost:4000/api/payments/verify",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://checkout.paystack.com/abc123", resp.AuthorizationURL)
		assert.Equal(t, "ref-1", resp.Reference)
		assert.Equal(t, "Bearer sk_test_x", gotAuth)
		assert.Equal(t, "organizer@example.com", gotBody["email"])
		assert.Equal(t, float64(500000), gotBody["amount"])
	})

	t.Run("requires a secret key", func(t *testing.T) {
		client := &Client{HTTPClient: http.DefaultClient}
		_, err := client.InitializeTransaction(context.Background(), InitializeRequest{
			Email:     "organizer@example.com",
			Reference: "ref-1",
		})
		assert.Error(t, err)
	})
}

func TestVerifyTransaction(t *testing.T) {
	t.Run("decodes a successful verification", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/transaction/verify/ref-1", r.URL.Path)
			fmt.Fprint(w, `{"status":true,"message":"Verification successful","data":{"status":"success","amount":500000,"paid_at":"2026-02-01T10:00:00Z"}}`)
		})
		defer server.Close()

		resp, err := client.VerifyTransaction(context.Background(), "ref-1")
		require.NoError(t, err)
		assert.Equal(t, TransactionSuccess, resp.Status)
		assert.Equal(t, int64(500000), resp.AmountCents)
		assert.NotEmpty(t, resp.RawJSON)
	})

	t.Run("surfaces a rejected envelope as an error", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"status":false,"message":"Transaction reference not found"}`)
		})
		defer server.Close()

		_, err := client.VerifyTransaction(context.Background(), "nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Transaction reference not found")
	})

	t.Run("surfaces non-2xx responses as errors", func(t *testing.T) {
		client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"status":false,"message":"Invalid key"}`)
		})
		defer server.Close()

		_, err := client.VerifyTransaction(context.Background(), "ref-1")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
	})

	t.Run("requires a reference", func(t *testing.T) {
		client := &Client{SecretKey: "sk_test_x", HTTPClient: http.DefaultClient}
		_, err := client.VerifyTransaction(context.Background(), "  ")
		assert.Error(t, err)
	})
}
