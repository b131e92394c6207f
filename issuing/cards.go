package issuing

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/payli/payli/bridge_fields"
	"github.com/payli/payli/securepin"
)

// CreateCard issues a new card. When a pin key is configured and the caller
// sent a bare 4 digit pin, the pin is encrypted here before it is forwarded;
// callers that already encrypt client side pass through untouched.
func (s *Service) CreateCard(c *gin.Context) {
	var req bridge_fields.CreateCardRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateCreateCard(&req); msg != "" {
		badRequest(c, msg)
		return
	}

	if s.Config.PinKey != "" && barePinPattern.MatchString(req.Pin) {
		encrypted, err := securepin.Encrypt(req.Pin, s.Config.PinKey)
		if err != nil {
			s.Logger.WithField("error", err.Error()).Error("pin encryption failed")
			c.JSON(http.StatusInternalServerError, bridge_fields.ErrorEnvelope[any]("Unable to secure the card PIN"))
			return
		}
		req.Pin = encrypted
	}

	env := bridge_fields.Invoke[bridge_fields.CreateCardResponse](c.Request.Context(), s.Config, bridge_fields.OpCreateCard, req, nil)
	respond(c, http.StatusOK, env)
}

// ActivatePhysicalCard activates a mailed card with its envelope token.
func (s *Service) ActivatePhysicalCard(c *gin.Context) {
	var req bridge_fields.ActivatePhysicalCardRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if req.CardholderID == "" {
		badRequest(c, "Cardholder ID is required")
		return
	}
	if req.CardTokenNumber == "" {
		badRequest(c, "Card token number is required")
		return
	}

	env := bridge_fields.Invoke[bridge_fields.CreateCardResponse](c.Request.Context(), s.Config, bridge_fields.OpActivatePhysicalCard, req, nil)
	respond(c, http.StatusOK, env)
}

// GetCardDetails returns a card. With ?decrypted=true the call is routed
// through the relay host so the pan, cvv and expiry come back in the clear.
func (s *Service) GetCardDetails(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	op := bridge_fields.OpGetCardDetails
	if c.Query("decrypted") == "true" {
		op = bridge_fields.OpGetCardDetailsDecrypted
	}

	query := url.Values{"card_id": {cardID}}
	env := bridge_fields.Invoke[bridge_fields.CardDetailsResponse](c.Request.Context(), s.Config, op, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) GetCardBalance(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	query := url.Values{"card_id": {cardID}}
	env := bridge_fields.Invoke[bridge_fields.CardBalanceResponse](c.Request.Context(), s.Config, bridge_fields.OpGetCardBalance, nil, query)
	respond(c, http.StatusOK, env)
}

// FundCard tops up a card. Bridgecard processes the funding asynchronously,
// hence the 202 on acceptance.
func (s *Service) FundCard(c *gin.Context) {
	var req bridge_fields.FundCardRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateFundCard(&req); msg != "" {
		badRequest(c, msg)
		return
	}

	env := bridge_fields.Invoke[bridge_fields.FundCardResponse](c.Request.Context(), s.Config, bridge_fields.OpFundCard, req, nil)
	respond(c, http.StatusAccepted, env)
}

// UnloadCard withdraws from a card; a zero amount is accepted as a no-op.
func (s *Service) UnloadCard(c *gin.Context) {
	var req bridge_fields.UnloadCardRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if msg := bridge_fields.ValidateUnloadCard(&req); msg != "" {
		badRequest(c, msg)
		return
	}

	env := bridge_fields.Invoke[bridge_fields.FundCardResponse](c.Request.Context(), s.Config, bridge_fields.OpUnloadCard, req, nil)
	respond(c, http.StatusAccepted, env)
}

// MockDebitTransaction triggers a simulated debit; sandbox only.
func (s *Service) MockDebitTransaction(c *gin.Context) {
	var req bridge_fields.MockDebitTransactionRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if req.CardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	env := bridge_fields.Invoke[any](c.Request.Context(), s.Config, bridge_fields.OpMockDebitTransaction, req, nil)
	respond(c, http.StatusOK, env)
}

// GetCardTransactions lists a card's transactions, paginated from 1. The
// optional start_date and end_date filters are forwarded untouched.
func (s *Service) GetCardTransactions(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}
	// A missing page is a rejection, not a default.
	page := c.Query("page")
	if n, err := strconv.Atoi(page); err != nil || n < 1 {
		badRequest(c, "Page must be greater than 0")
		return
	}

	query := url.Values{"card_id": {cardID}, "page": {page}}
	if v := c.Query("start_date"); v != "" {
		query.Set("start_date", v)
	}
	if v := c.Query("end_date"); v != "" {
		query.Set("end_date", v)
	}

	env := bridge_fields.Invoke[bridge_fields.CardTransactionsResponse](c.Request.Context(), s.Config, bridge_fields.OpGetCardTransactions, nil, query)
	respond(c, http.StatusOK, env)
}

// GetCardTransaction looks up a single transaction by either our reference or
// Bridgecard's.
func (s *Service) GetCardTransaction(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}
	clientRef := c.Query("client_transaction_reference")
	bridgeRef := c.Query("bridgecard_transaction_reference")
	if clientRef == "" && bridgeRef == "" {
		badRequest(c, "Either client or bridgecard transaction reference is required")
		return
	}

	query := url.Values{"card_id": {cardID}}
	if clientRef != "" {
		query.Set("client_transaction_reference", clientRef)
	} else {
		query.Set("bridgecard_transaction_reference", bridgeRef)
	}

	env := bridge_fields.Invoke[bridge_fields.CardTransaction](c.Request.Context(), s.Config, bridge_fields.OpGetCardTransactionByID, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) GetTransactionStatus(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}
	clientRef := c.Query("client_transaction_reference")
	if clientRef == "" {
		badRequest(c, "Client transaction reference is required")
		return
	}

	query := url.Values{"card_id": {cardID}, "client_transaction_reference": {clientRef}}
	env := bridge_fields.Invoke[bridge_fields.TransactionStatusResponse](c.Request.Context(), s.Config, bridge_fields.OpGetTransactionStatus, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) FreezeCard(c *gin.Context) {
	s.cardAction(c, bridge_fields.OpFreezeCard)
}

func (s *Service) UnfreezeCard(c *gin.Context) {
	s.cardAction(c, bridge_fields.OpUnfreezeCard)
}

func (s *Service) DeleteCard(c *gin.Context) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	// Deletion addresses the card by path segment, not query.
	op := bridge_fields.OpDeleteCard.WithPathParam(cardID)
	env := bridge_fields.Invoke[bridge_fields.CardActionResponse](c.Request.Context(), s.Config, op, nil, nil)
	respond(c, http.StatusOK, env)
}

// cardAction covers the freeze/unfreeze pair: same input, same output.
func (s *Service) cardAction(c *gin.Context, op bridge_fields.Operation) {
	cardID := c.Query("card_id")
	if cardID == "" {
		badRequest(c, "Card ID is required")
		return
	}

	query := url.Values{"card_id": {cardID}}
	env := bridge_fields.Invoke[bridge_fields.CardActionResponse](c.Request.Context(), s.Config, op, nil, query)
	respond(c, http.StatusOK, env)
}

func (s *Service) GetAllCardholderCards(c *gin.Context) {
	cardholderID := c.Query("cardholder_id")
	if cardholderID == "" {
		badRequest(c, "Cardholder ID is required")
		return
	}

	query := url.Values{"cardholder_id": {cardholderID}}
	env := bridge_fields.Invoke[bridge_fields.AllCardholderCardsResponse](c.Request.Context(), s.Config, bridge_fields.OpGetAllCardholderCards, nil, query)
	respond(c, http.StatusOK, env)
}

// UpdateCardPin changes a card's pin. The same auto-encryption rule as
// CreateCard applies to bare 4 digit pins.
func (s *Service) UpdateCardPin(c *gin.Context) {
	var req bridge_fields.UpdateCardPinRequest
	if msg := bindJSON(c, &req); msg != "" {
		badRequest(c, msg)
		return
	}
	if req.CardID == "" {
		badRequest(c, "Card ID is required")
		return
	}
	if req.CardPin == "" {
		badRequest(c, "Encrypted card PIN is required")
		return
	}

	if s.Config.PinKey != "" && barePinPattern.MatchString(req.CardPin) {
		encrypted, err := securepin.Encrypt(req.CardPin, s.Config.PinKey)
		if err != nil {
			s.Logger.WithField("error", err.Error()).Error("pin encryption failed")
			c.JSON(http.StatusInternalServerError, bridge_fields.ErrorEnvelope[any]("Unable to secure the card PIN"))
			return
		}
		req.CardPin = encrypted
	}

	env := bridge_fields.Invoke[bridge_fields.CardActionResponse](c.Request.Context(), s.Config, bridge_fields.OpUpdateCardPin, req, nil)
	respond(c, http.StatusOK, env)
}

// cardOptions is the fixed issuing catalogue: what can actually be ordered,
// the funding floor per limit tier, and the transaction vocabulary.
type cardOptions struct {
	CardTypes         []string          `json:"card_types"`
	CardBrands        []string          `json:"card_brands"`
	CardCurrencies    []string          `json:"card_currencies"`
	CardLimits        map[string]string `json:"card_limits"`
	MinFunding        map[string]int    `json:"min_funding"`
	TransactionTypes  []string          `json:"transaction_types"`
	TransactionStatus []string          `json:"transaction_status"`
}

// SupportedCardOptions answers locally with the card parameters accepted at
// creation time.
func (s *Service) SupportedCardOptions(c *gin.Context) {
	data := cardOptions{
		CardTypes:      []string{bridge_fields.CardTypeVirtual, bridge_fields.CardTypePhysical},
		CardBrands:     []string{bridge_fields.CardBrandMastercard},
		CardCurrencies: []string{bridge_fields.CardCurrencyUSD},
		CardLimits: map[string]string{
			bridge_fields.CardLimit5K:  "$5,000",
			bridge_fields.CardLimit10K: "$10,000",
		},
		MinFunding: map[string]int{
			bridge_fields.CardLimit5K:  bridge_fields.MinFunding5K,
			bridge_fields.CardLimit10K: bridge_fields.MinFunding10K,
		},
		TransactionTypes:  []string{bridge_fields.TransactionDebit, bridge_fields.TransactionCredit},
		TransactionStatus: []string{bridge_fields.TransactionPending, bridge_fields.TransactionSuccessful, bridge_fields.TransactionFailed},
	}
	c.JSON(http.StatusOK, bridge_fields.Envelope[cardOptions]{
		Status:  bridge_fields.StatusSuccess,
		Message: "Supported card options",
		Data:    &data,
	})
}
