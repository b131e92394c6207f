package bridge_fields

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testConfig(base string) Config {
	return Config{
		SandboxURL:      base,
		RelaySandboxURL: base,
		CardsURL:        base,
		RelayCardsURL:   base,
		BearerToken:     "test-token",
	}
}

func TestInvokeSuccessEnvelopePassesThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/cardholder/register_cardholder_synchronously", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("token"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"status":"success","message":"Cardholder registered successfully","data":{"cardholder_id":"abc123"}}`))
	}))
	defer srv.Close()

	env := Invoke[RegisterCardholderResponse](context.Background(), testConfig(srv.URL), OpRegisterCardholderSync, map[string]string{"first_name": "Amina"}, nil)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.Equal(t, "Cardholder registered successfully", env.Message)
	if assert.NotNil(t, env.Data) {
		assert.Equal(t, "abc123", env.Data.CardholderID)
	}
}

func TestInvokeErrorBodyBecomesErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"invalid BVN"}`))
	}))
	defer srv.Close()

	env := Invoke[RegisterCardholderResponse](context.Background(), testConfig(srv.URL), OpRegisterCardholderSync, nil, nil)
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "invalid BVN", env.Message)
	assert.Nil(t, env.Data)
}

func TestInvokeUnparseableErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`<html>upstream broke</html>`))
	}))
	defer srv.Close()

	env := Invoke[any](context.Background(), testConfig(srv.URL), OpGetIssuingWalletBalance, nil, nil)
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "Unknown error occurred", env.Message)
}

func TestInvokeEmptySuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	env := Invoke[any](context.Background(), testConfig(srv.URL), OpMockDebitTransaction, nil, nil)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.Equal(t, "", env.Message)
	assert.Nil(t, env.Data)
}

func TestInvokeUnparseableSuccessBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	env := Invoke[any](context.Background(), testConfig(srv.URL), OpMockDebitTransaction, nil, nil)
	assert.Equal(t, StatusSuccess, env.Status)
	assert.Nil(t, env.Data)
}

func TestInvokeNoAuthSkipsTokenHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("token"))
		assert.Equal(t, "tok_1", r.URL.Query().Get("token"))
		w.Write([]byte(`{"status":"success","message":"ok","data":{"card_id":"card_1"}}`))
	}))
	defer srv.Close()

	query := url.Values{"token": {"tok_1"}}
	env := Invoke[CardDetailsResponse](context.Background(), testConfig(srv.URL), OpGetCardDetailsFromToken, nil, query)
	assert.Equal(t, StatusSuccess, env.Status)
}

func TestInvokeTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	env := Invoke[any](context.Background(), testConfig(srv.URL), OpGetIssuingWalletBalance, nil, nil)
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "An error occurred while processing your request", env.Message)
}

func TestFxRatesSkipsUnparseableEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/fx-rate", r.URL.Path)
		w.Write([]byte(`{"status":"success","message":"rates","data":{"NGN":"1500.25","GHS":"15.5","XYZ":"not-a-number"}}`))
	}))
	defer srv.Close()

	env := FxRates(context.Background(), testConfig(srv.URL))
	assert.Equal(t, StatusSuccess, env.Status)
	if assert.NotNil(t, env.Data) {
		assert.Equal(t, 1500.25, env.Data.Rates["NGN"])
		assert.Equal(t, 15.5, env.Data.Rates["GHS"])
		_, present := env.Data.Rates["XYZ"]
		assert.False(t, present)
	}
}

func TestFxRatesUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"message":"rate limited"}`))
	}))
	defer srv.Close()

	env := FxRates(context.Background(), testConfig(srv.URL))
	assert.Equal(t, StatusError, env.Status)
	assert.Equal(t, "rate limited", env.Message)
	assert.Nil(t, env.Data)
}

func TestBaseURLSelection(t *testing.T) {
	cfg := Config{
		SandboxURL:      "https://sandbox.example",
		RelaySandboxURL: "https://relay-sandbox.example",
		CardsURL:        "https://cards.example",
		RelayCardsURL:   "https://relay-cards.example",
	}
	assert.Equal(t, "https://sandbox.example", cfg.BaseURL(HostSandbox))
	assert.Equal(t, "https://relay-sandbox.example", cfg.BaseURL(HostRelaySandbox))
	assert.Equal(t, "https://cards.example", cfg.BaseURL(HostCards))
	assert.Equal(t, "https://relay-cards.example", cfg.BaseURL(HostRelayCards))

	// The decrypted detail lookup is the same path through the relay.
	assert.Equal(t, OpGetCardDetails.Path, OpGetCardDetailsDecrypted.Path)
	assert.Equal(t, HostRelaySandbox, OpGetCardDetailsDecrypted.Host)
	assert.True(t, OpGetCardDetailsFromToken.NoAuth)
}

func TestWithPathParam(t *testing.T) {
	op := OpDeleteCard.WithPathParam("card_1")
	assert.Equal(t, "/cards/delete_card/card_1", op.Path)
	assert.Equal(t, OpDeleteCard.Method, op.Method)

	// Ids are path escaped and the table entry itself is never mutated.
	assert.Equal(t, "/cardholder/delete_cardholder/ch%2F1", OpDeleteCardholder.WithPathParam("ch/1").Path)
	assert.Equal(t, "/cards/delete_card", OpDeleteCard.Path)
}
