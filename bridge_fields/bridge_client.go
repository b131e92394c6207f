package bridge_fields

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Bridgecard's synchronous KYC verification can take up to 45 seconds, so
// the shared client allows a little beyond that. One outbound call per
// inbound operation, no retries; duplicate protection is the caller's
// transaction_reference.
var httpClient = &http.Client{Timeout: 50 * time.Second}

const (
	msgTimeout      = "Request timeout. Please try again."
	msgGenericFault = "An error occurred while processing your request"
	msgUnknownError = "Unknown error occurred"
)

// Invoke sends one request to Bridgecard and collapses whatever comes back
// into an Envelope. The ctx is the inbound request context: if the caller
// goes away the outbound call is aborted with it. Transport failures never
// leak their cause to the caller; they are logged here and reported as a
// generic retryable error.
func Invoke[T any](ctx context.Context, cfg Config, op Operation, body any, query url.Values) Envelope[T] {
	endpoint := cfg.BaseURL(op.Host) + op.Path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			log.WithFields(logrus.Fields{"operation": op.Name, "error": err.Error()}).Error("unable to marshal request body")
			return ErrorEnvelope[T](msgGenericFault)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, op.Method, endpoint, reqBody)
	if err != nil {
		log.WithFields(logrus.Fields{"operation": op.Name, "error": err.Error()}).Error("unable to build bridgecard request")
		return ErrorEnvelope[T](msgGenericFault)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	// Bridgecard quirk: the bearer goes in a custom `token` header, not in
	// Authorization.
	if !op.NoAuth {
		req.Header.Set("token", "Bearer "+cfg.BearerToken)
	}

	res, err := httpClient.Do(req)
	if err != nil {
		log.WithFields(logrus.Fields{"operation": op.Name, "error": err.Error()}).Error("error in reaching bridgecard")
		var uerr *url.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &uerr) && uerr.Timeout()) {
			return ErrorEnvelope[T](msgTimeout)
		}
		return ErrorEnvelope[T](msgGenericFault)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		log.WithFields(logrus.Fields{"operation": op.Name, "error": err.Error()}).Error("error reading bridgecard response")
		return ErrorEnvelope[T](msgGenericFault)
	}

	log.WithFields(logrus.Fields{"operation": op.Name, "status": res.StatusCode}).Info("bridgecard response")
	return normalize[T](op, res.StatusCode, raw)
}

// normalize collapses the two response shapes Bridgecard uses, a full
// {status, message, data} body on success and a bare {message} on errors,
// into the Envelope contract. Malformed bodies degrade to generic envelopes;
// a parse failure is never surfaced as a fault.
func normalize[T any](op Operation, statusCode int, body []byte) Envelope[T] {
	if statusCode >= 200 && statusCode < 300 {
		var env Envelope[T]
		if len(body) == 0 {
			return Envelope[T]{Status: StatusSuccess}
		}
		if err := json.Unmarshal(body, &env); err != nil {
			log.WithFields(logrus.Fields{"operation": op.Name, "error": err.Error(), "body": string(body)}).Info("unparseable success body from bridgecard")
			return Envelope[T]{Status: StatusSuccess}
		}
		if env.Status == "" {
			env.Status = StatusSuccess
		}
		return env
	}

	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || eb.Message == "" {
		return ErrorEnvelope[T](msgUnknownError)
	}
	return ErrorEnvelope[T](eb.Message)
}

// FxRates fetches the currency->rate map. The data object is open ended and
// its values are strings, so each entry is parsed individually and entries
// that are not decimal are skipped rather than failing the call.
func FxRates(ctx context.Context, cfg Config) Envelope[FxRatesResponse] {
	raw := Invoke[map[string]string](ctx, cfg, OpGetFxRates, nil, nil)
	if raw.Status != StatusSuccess {
		return Envelope[FxRatesResponse]{Status: raw.Status, Message: raw.Message}
	}

	rates := make(map[string]float64)
	if raw.Data != nil {
		for code, value := range *raw.Data {
			rate, err := strconv.ParseFloat(value, 64)
			if err != nil {
				log.WithFields(logrus.Fields{"currency": code, "value": value}).Info("skipping unparseable fx rate")
				continue
			}
			rates[code] = rate
		}
	}
	return Envelope[FxRatesResponse]{Status: raw.Status, Message: raw.Message, Data: &FxRatesResponse{Rates: rates}}
}
