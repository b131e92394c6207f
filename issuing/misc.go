package issuing

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"

	"github.com/payli/payli/bridge_fields"
)

// Bridgecard rate limits the fx-rate endpoint to one call a minute, so
// successful rate lookups are cached for that window.
const (
	fxRatesCacheKey = "bridgecard:fx_rates"
	fxRatesCacheTTL = time.Minute
)

func (s *Service) GetAllCardholders(c *gin.Context) {
	page := c.Query("page")
	if n, err := strconv.Atoi(page); err != nil || n < 1 {
		badRequest(c, "Page must be greater than 0")
		return
	}

	query := url.Values{"page": {page}}
	env := bridge_fields.Invoke[bridge_fields.AllCardholdersResponse](c.Request.Context(), s.Config, bridge_fields.OpGetAllCardholders, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) GetAllCards(c *gin.Context) {
	page := c.Query("page")
	if n, err := strconv.Atoi(page); err != nil || n < 1 {
		badRequest(c, "Page must be greater than 0")
		return
	}

	query := url.Values{"page": {page}}
	env := bridge_fields.Invoke[bridge_fields.AllCardsResponse](c.Request.Context(), s.Config, bridge_fields.OpGetAllCards, nil, query)
	respond(c, http.StatusOK, env)
}

// FundIssuingWallet tops up the sandbox issuing wallet in the currency named
// by the ?currency= parameter.
func (s *Service) FundIssuingWallet(c *gin.Context) {
	currency := c.DefaultQuery("currency", bridge_fields.WalletCurrencyUSD)

	var req bridge_fields.FundIssuingWalletRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateFundIssuingWallet(&req, currency); msg != "" {
		badRequest(c, msg)
		return
	}

	query := url.Values{"currency": {currency}}
	env := bridge_fields.Invoke[any](c.Request.Context(), s.Config, bridge_fields.OpFundIssuingWallet, req, query)
	respond(c, http.StatusAccepted, env)
}

func (s *Service) GetIssuingWalletBalance(c *gin.Context) {
	env := bridge_fields.Invoke[bridge_fields.IssuingWalletBalanceResponse](c.Request.Context(), s.Config, bridge_fields.OpGetIssuingWalletBalance, nil, nil)
	respond(c, http.StatusOK, env)
}

// FxRates serves the currency conversion table, from cache when a fresh copy
// exists. Cache failures are invisible to the caller; a missing or broken
// Redis just means every request goes upstream.
func (s *Service) FxRates(c *gin.Context) {
	if cached, ok := s.cachedFxRates(); ok {
		c.JSON(http.StatusOK, cached)
		return
	}

	env := bridge_fields.FxRates(c.Request.Context(), s.Config)
	if env.Status == bridge_fields.StatusSuccess {
		s.storeFxRates(env)
	}
	respond(c, http.StatusOK, env)
}

func (s *Service) cachedFxRates() (bridge_fields.Envelope[bridge_fields.FxRatesResponse], bool) {
	var env bridge_fields.Envelope[bridge_fields.FxRatesResponse]
	if s.Redis == nil {
		return env, false
	}
	raw, err := s.Redis.Get(fxRatesCacheKey).Result()
	if err != nil {
		return env, false
	}
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		s.Logger.WithField("error", err.Error()).Info("discarding unreadable fx cache entry")
		return env, false
	}
	return env, true
}

func (s *Service) storeFxRates(env bridge_fields.Envelope[bridge_fields.FxRatesResponse]) {
	if s.Redis == nil {
		return
	}
	raw, err := json.Marshal(env)
	if err != nil {
		return
	}
	if err := s.Redis.Set(fxRatesCacheKey, raw, fxRatesCacheTTL).Err(); err != nil {
		s.Logger.WithField("error", err.Error()).Info("unable to cache fx rates")
	}
}

// GenerateCardToken mints a short lived token for retrieving card details
// without the bearer credential.
func (s *Service) GenerateCardToken(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	query := url.Values{"card_id": {cardID}}
	env := bridge_fields.Invoke[bridge_fields.CardTokenResponse](c.Request.Context(), s.Config, bridge_fields.OpGenerateCardToken, nil, query)
	respond(c, http.StatusOK, env)
}

// GetCardDetailsFromToken redeems a card token for the decrypted card
// details. This is the only unauthenticated upstream call.
func (s *Service) GetCardDetailsFromToken(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		badRequest(c, "Card token is required")
		return
	}

	query := url.Values{"token": {token}}
	env := bridge_fields.Invoke[bridge_fields.CardDetailsResponse](c.Request.Context(), s.Config, bridge_fields.OpGetCardDetailsFromToken, nil, query)
	respond(c, http.StatusOK, env)
}
