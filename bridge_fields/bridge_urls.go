package bridge_fields

import (
	"net/http"
	"net/url"
)

// Bridgecard splits its issuing surface across three hosts: the sandbox
// base, an evervault relay mirror used only when decrypted card fields must
// cross the wire, and a production-format "cards" base that the fx-rate and
// card-token endpoints live on regardless of environment. The split is not
// systematic, so every operation carries its host variant explicitly instead
// of deriving it from a flag.
type HostVariant int

const (
	HostSandbox HostVariant = iota
	HostRelaySandbox
	HostCards
	HostRelayCards
)

// BaseURL resolves a host variant against the configured bases.
func (c Config) BaseURL(v HostVariant) string {
	switch v {
	case HostRelaySandbox:
		return c.RelaySandboxURL
	case HostCards:
		return c.CardsURL
	case HostRelayCards:
		return c.RelayCardsURL
	default:
		return c.SandboxURL
	}
}

// Operation describes one Bridgecard endpoint: where it lives, how it is
// called and whether the bearer token travels with it. NoAuth is set only
// for the token based card detail retrieval; the relay host does not expect
// the bearer there. Kept per endpoint so the fragmentation stays visible.
type Operation struct {
	Name   string
	Method string
	Path   string
	Host   HostVariant
	NoAuth bool
}

// WithPathParam returns a copy of op with id appended as a path segment. The
// delete endpoints take their id in the path rather than the query string.
func (op Operation) WithPathParam(id string) Operation {
	op.Path += "/" + url.PathEscape(id)
	return op
}

var (
	OpRegisterCardholderSync = Operation{Name: "register_cardholder_sync", Method: http.MethodPost, Path: "/cardholder/register_cardholder_synchronously"}
	OpRegisterCardholder     = Operation{Name: "register_cardholder", Method: http.MethodPost, Path: "/cardholder/register_cardholder"}
	OpGetCardholder          = Operation{Name: "get_cardholder", Method: http.MethodGet, Path: "/cardholder/get_cardholder"}
	OpDeleteCardholder       = Operation{Name: "delete_cardholder", Method: http.MethodDelete, Path: "/cardholder/delete_cardholder"}
	OpGetAllStates           = Operation{Name: "get_all_states", Method: http.MethodGet, Path: "/cardholder/get_all_states"}

	OpCreateCard           = Operation{Name: "create_card", Method: http.MethodPost, Path: "/cards/create_card"}
	OpActivatePhysicalCard = Operation{Name: "activate_physical_card", Method: http.MethodPost, Path: "/cards/activate_physical_card"}
	OpGetCardDetails       = Operation{Name: "get_card_details", Method: http.MethodGet, Path: "/cards/get_card_details"}
	// Same endpoint routed through the relay so the sensitive fields come
	// back decrypted.
	OpGetCardDetailsDecrypted = Operation{Name: "get_card_details_decrypted", Method: http.MethodGet, Path: "/cards/get_card_details", Host: HostRelaySandbox}
	OpGetCardBalance          = Operation{Name: "get_card_balance", Method: http.MethodGet, Path: "/cards/get_card_balance"}
	OpFundCard                = Operation{Name: "fund_card", Method: http.MethodPatch, Path: "/cards/fund_card_asynchronously"}
	OpUnloadCard              = Operation{Name: "unload_card", Method: http.MethodPatch, Path: "/cards/unload_card_asynchronously"}
	OpMockDebitTransaction    = Operation{Name: "mock_debit_transaction", Method: http.MethodPatch, Path: "/cards/mock_debit_transaction"}
	OpGetCardTransactions     = Operation{Name: "get_card_transactions", Method: http.MethodGet, Path: "/cards/get_card_transactions"}
	OpGetCardTransactionByID  = Operation{Name: "get_card_transaction_by_id", Method: http.MethodGet, Path: "/cards/get_card_transaction_by_id"}
	OpGetTransactionStatus    = Operation{Name: "get_card_transaction_status", Method: http.MethodGet, Path: "/cards/get_card_transaction_status"}
	OpFreezeCard              = Operation{Name: "freeze_card", Method: http.MethodPatch, Path: "/cards/freeze_card"}
	OpUnfreezeCard            = Operation{Name: "unfreeze_card", Method: http.MethodPatch, Path: "/cards/unfreeze_card"}
	OpGetAllCardholderCards   = Operation{Name: "get_all_cardholder_cards", Method: http.MethodGet, Path: "/cards/get_all_cardholder_cards"}
	OpDeleteCard              = Operation{Name: "delete_card", Method: http.MethodDelete, Path: "/cards/delete_card"}
	OpUpdateCardPin           = Operation{Name: "update_card_pin", Method: http.MethodPost, Path: "/cards/update_card_pin"}

	OpGetAllCardholders       = Operation{Name: "get_all_cardholders", Method: http.MethodGet, Path: "/cards/get_all_cardholder"}
	OpGetAllCards             = Operation{Name: "get_all_cards", Method: http.MethodGet, Path: "/cards/get_all_cards"}
	OpFundIssuingWallet       = Operation{Name: "fund_issuing_wallet", Method: http.MethodPatch, Path: "/cards/fund_issuing_wallet"}
	OpGetIssuingWalletBalance = Operation{Name: "get_issuing_wallet_balance", Method: http.MethodGet, Path: "/cards/get_issuing_wallet_balance"}

	// fx-rate and token generation only exist on the production-format base.
	OpGetFxRates        = Operation{Name: "fx_rates", Method: http.MethodGet, Path: "/fx-rate", Host: HostCards}
	OpGenerateCardToken = Operation{Name: "generate_card_token", Method: http.MethodGet, Path: "/generate_token_for_card_details", Host: HostCards}
	// The one unauthenticated call; whether the missing bearer is intentional
	// is unconfirmed in Bridgecard's docs, so we reproduce it as is.
	OpGetCardDetailsFromToken = Operation{Name: "get_card_details_from_token", Method: http.MethodGet, Path: "/get_card_details_from_token", Host: HostRelayCards, NoAuth: true}
)
