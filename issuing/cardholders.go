package issuing

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/payli/payli/bridge_fields"
)

// RegisterCardholderSync registers a cardholder and waits for Bridgecard's
// KYC verification to finish before returning. The upstream call can take the
// better part of a minute.
func (s *Service) RegisterCardholderSync(c *gin.Context) {
	var req bridge_fields.RegisterCardholderRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateCardholder(&req); msg != "" {
		badRequest(c, msg)
		return
	}

	env := bridge_fields.Invoke[bridge_fields.RegisterCardholderResponse](c.Request.Context(), s.Config, bridge_fields.OpRegisterCardholderSync, req, nil)
	respond(c, http.StatusCreated, env)
}

// RegisterCardholder is the asynchronous variant: Bridgecard acknowledges the
// registration immediately and verifies the identity in the background.
func (s *Service) RegisterCardholder(c *gin.Context) {
	var req bridge_fields.RegisterCardholderRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateCardholder(&req); msg != "" {
		badRequest(c, msg)
		return
	}

	env := bridge_fields.Invoke[bridge_fields.RegisterCardholderResponse](c.Request.Context(), s.Config, bridge_fields.OpRegisterCardholder, req, nil)
	respond(c, http.StatusCreated, env)
}

func (s *Service) GetCardholder(c *gin.Context) {
	cardholderID := c.Query("cardholder_id")
	if cardholderID == "" {
		badRequest(c, "Cardholder ID is required")
		return
	}

	query := url.Values{"cardholder_id": {cardholderID}}
	env := bridge_fields.Invoke[bridge_fields.CardholderDetailsResponse](c.Request.Context(), s.Config, bridge_fields.OpGetCardholder, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) DeleteCardholder(c *gin.Context) {
	cardholderID := c.Query("cardholder_id")
	if cardholderID == "" {
		badRequest(c, "Cardholder ID is required")
		return
	}

	// Deletion addresses the cardholder by path segment, not query.
	op := bridge_fields.OpDeleteCardholder.WithPathParam(cardholderID)
	env := bridge_fields.Invoke[any](c.Request.Context(), s.Config, op, nil, nil)
	respond(c, http.StatusOK, env)
}

// GetAllStates forwards the state list lookup for a whitelisted country.
func (s *Service) GetAllStates(c *gin.Context) {
	country, msg := bridge_fields.ValidateStatesCountry(c.Query("country"))
	if msg != "" {
		badRequest(c, msg)
		return
	}

	query := url.Values{"country": {country}}
	env := bridge_fields.Invoke[bridge_fields.StatesResponse](c.Request.Context(), s.Config, bridge_fields.OpGetAllStates, nil, query)
	respond(c, http.StatusOK, env)
}

// IdentityTypes answers locally: the accepted id_type values per country are
// a fixed catalogue, there is nothing to ask Bridgecard for.
func (s *Service) IdentityTypes(c *gin.Context) {
	data := bridge_fields.IdentityTypesByCountry
	c.JSON(http.StatusOK, bridge_fields.Envelope[map[string][]string]{
		Status:  bridge_fields.StatusSuccess,
		Message: "Supported identity types per country",
		Data:    &data,
	})
}

// SupportedCountries answers locally with the issuing countries.
func (s *Service) SupportedCountries(c *gin.Context) {
	data := bridge_fields.SupportedCountries
	c.JSON(http.StatusOK, bridge_fields.Envelope[[]string]{
		Status:  bridge_fields.StatusSuccess,
		Message: "Supported countries",
		Data:    &data,
	})
}
