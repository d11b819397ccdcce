package payment

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func TestAmountInCents(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{price: 80, want: 8000},
		{price: 19.99, want: 1999},
		{price: 0.1, want: 10},
	}
	for _, tt := range tests {
		got, err := AmountInCents(tt.price)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	for _, bad := range []float64{0, -5} {
		_, err := AmountInCents(bad)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func testGateway(t *testing.T, handler http.HandlerFunc) *StripeGateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(srv.URL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})
	backends := &stripe.Backends{API: backend, Connect: backend, Uploads: backend}
	return NewStripeGateway("sk_test_123", "usd", backends, zap.NewNop())
}

func TestCreatePaymentIntent(t *testing.T) {
	var form url.Values
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ = url.ParseQuery(string(body))
		assert.Equal(t, "/v1/payment_intents", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pi_1","object":"payment_intent","client_secret":"pi_1_secret_x","amount":8000,"currency":"usd"}`))
	})

	pi, err := gw.CreatePaymentIntent(context.Background(), 80)
	require.NoError(t, err)

	assert.Equal(t, "pi_1", pi.ID)
	assert.Equal(t, "pi_1_secret_x", pi.ClientSecret)
	assert.Equal(t, int64(8000), pi.Amount)
	assert.Equal(t, "8000", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "card", form.Get("payment_method_types[0]"))
}

func TestCreatePaymentIntentProviderError(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"type":"invalid_request_error","message":"Amount must be at least 50 cents"}}`))
	})

	_, err := gw.CreatePaymentIntent(context.Background(), 80)
	assert.Error(t, err)
}

func TestCreatePaymentIntentRejectsInvalidPrice(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("provider must not be called")
	})

	_, err := gw.CreatePaymentIntent(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
