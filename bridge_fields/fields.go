// Package bridge_fields holds the request and response fields for the
// Bridgecard issuing APIs, the validation rules we enforce before a request
// ever leaves this service, and the http client used to reach Bridgecard.
package bridge_fields

// Envelope is the uniform response shape used throughout the service.
// Bridgecard replies with {status, message, data} on success and a bare
// {message} on errors; everything we return to callers is collapsed into
// this one shape. Data is only meaningful when Status == StatusSuccess.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    *T     `json:"data"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorEnvelope builds an error envelope carrying msg and no data.
func ErrorEnvelope[T any](msg string) Envelope[T] {
	return Envelope[T]{Status: StatusError, Message: msg}
}

// errorBody is the shape Bridgecard uses for non-2xx responses.
type errorBody struct {
	Message string `json:"message"`
}

// Config is the read-only service configuration, parsed once at startup and
// passed by value everywhere else.
type Config struct {
	SandboxURL      string `json:"sandbox_url"`
	RelaySandboxURL string `json:"relay_sandbox_url"`
	CardsURL        string `json:"cards_url"`
	RelayCardsURL   string `json:"relay_cards_url"`
	BearerToken     string `json:"bearer_token"`
	PinKey          string `json:"pin_key"`
	RedisHost       string `json:"redis_host"`
	Port            string `json:"port"`
}

// Defaults populates any unset host with Bridgecard's published bases. The
// bearer token is deliberately not required here: Bridgecard rejects
// unauthenticated calls itself.
func (c *Config) Defaults() {
	if c.SandboxURL == "" {
		c.SandboxURL = "https://issuecards.api.bridgecard.co/v1/issuing/sandbox"
	}
	if c.RelaySandboxURL == "" {
		c.RelaySandboxURL = "https://issuecards-api-bridgecard-co.relay.evervault.com/v1/issuing/sandbox"
	}
	if c.CardsURL == "" {
		c.CardsURL = "https://issuecards.api.bridgecard.co/v1/issuing/cards"
	}
	if c.RelayCardsURL == "" {
		c.RelayCardsURL = "https://issuecards-api-bridgecard-co.relay.evervault.com/v1/issuing/cards"
	}
	if c.RedisHost == "" {
		c.RedisHost = "localhost:6379"
	}
	if c.Port == "" {
		c.Port = ":8080"
	}
}

// RegisterCardholderRequest registers a new cardholder with Bridgecard. The
// identity block drives KYC; which of its fields are required depends on
// IDType (see ValidateCardholder).
type RegisterCardholderRequest struct {
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Address      *CardholderAddress  `json:"address"`
	Phone        string              `json:"phone"`
	EmailAddress string              `json:"email_address"`
	Identity     *CardholderIdentity `json:"identity"`
	MetaData     map[string]any      `json:"meta_data,omitempty"`
}

type CardholderAddress struct {
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	HouseNo    string `json:"house_no"`
}

type CardholderIdentity struct {
	IDType      string `json:"id_type"`
	BVN         string `json:"bvn,omitempty"`
	IDNo        string `json:"id_no,omitempty"`
	SelfieImage string `json:"selfie_image,omitempty"`
	IDImage     string `json:"id_image,omitempty"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	MiddleName  string `json:"middle_name,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Gender      string `json:"gender,omitempty"`
}

type RegisterCardholderResponse struct {
	CardholderID string `json:"cardholder_id"`
}

type CardholderDetailsResponse struct {
	Address         CardholderAddress        `json:"address"`
	CardholderID    string                   `json:"cardholder_id"`
	CreatedAt       int64                    `json:"created_at"`
	EmailAddress    string                   `json:"email_address"`
	FirstName       string                   `json:"first_name"`
	LastName        string                   `json:"last_name"`
	Phone           string                   `json:"phone"`
	IsActive        bool                     `json:"is_active"`
	IsIDVerified    bool                     `json:"is_id_verified"`
	IssuingAppID    string                   `json:"issuing_app_id"`
	IdentityDetails CardholderIdentityDetail `json:"identity_details"`
	MetaData        map[string]any           `json:"meta_data,omitempty"`
}

type CardholderIdentityDetail struct {
	Blacklisted bool   `json:"blacklisted"`
	DateOfBirth string `json:"date_of_birth"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Gender      string `json:"gender"`
	IDNo        string `json:"id_no"`
	IDType      string `json:"id_type"`
	Phone       string `json:"phone"`
}

// CreateCardRequest issues a new USD card for a verified cardholder. Amounts
// are numeric strings in cents, the pin is an AES-256 encrypted 4 digit pin.
type CreateCardRequest struct {
	CardholderID         string         `json:"cardholder_id"`
	CardType             string         `json:"card_type"`
	CardBrand            string         `json:"card_brand"`
	CardCurrency         string         `json:"card_currency"`
	CardLimit            string         `json:"card_limit"`
	TransactionReference string         `json:"transaction_reference,omitempty"`
	FundingAmount        string         `json:"funding_amount"`
	Pin                  string         `json:"pin"`
	MetaData             map[string]any `json:"meta_data,omitempty"`
}

// ActivatePhysicalCardRequest activates a mailed physical card using the 13
// digit token printed inside the card envelope.
type ActivatePhysicalCardRequest struct {
	CardholderID    string         `json:"cardholder_id"`
	CardType        string         `json:"card_type"`
	CardBrand       string         `json:"card_brand"`
	CardCurrency    string         `json:"card_currency"`
	CardTokenNumber string         `json:"card_token_number"`
	MetaData        map[string]any `json:"meta_data,omitempty"`
}

type FundCardRequest struct {
	CardID               string `json:"card_id"`
	Amount               string `json:"amount"`
	TransactionReference string `json:"transaction_reference"`
	Currency             string `json:"currency"`
}

type UnloadCardRequest struct {
	CardID               string `json:"card_id"`
	Amount               string `json:"amount"`
	TransactionReference string `json:"transaction_reference"`
	Currency             string `json:"currency"`
}

type MockDebitTransactionRequest struct {
	CardID string `json:"card_id"`
}

type UpdateCardPinRequest struct {
	CardID  string `json:"card_id"`
	CardPin string `json:"card_pin"`
}

type FundIssuingWalletRequest struct {
	Amount string `json:"amount"`
}

type CreateCardResponse struct {
	CardID   string `json:"card_id"`
	Currency string `json:"currency"`
}

type BillingAddress struct {
	BillingAddress1 string `json:"billing_address1"`
	BillingCity     string `json:"billing_city"`
	BillingCountry  string `json:"billing_country"`
	BillingZipCode  string `json:"billing_zip_code"`
	CountryCode     string `json:"country_code"`
	State           string `json:"state"`
	StateCode       string `json:"state_code"`
}

// CardDetailsResponse carries a card as Bridgecard returns it. The number,
// cvv and expiry fields stay encrypted unless the call went through the
// relay host.
type CardDetailsResponse struct {
	BillingAddress    BillingAddress `json:"billing_address"`
	Brand             string         `json:"brand"`
	CardCurrency      string         `json:"card_currency"`
	CardID            string         `json:"card_id"`
	CardName          string         `json:"card_name"`
	CardNumber        string         `json:"card_number"`
	CardType          string         `json:"card_type"`
	CardholderID      string         `json:"cardholder_id"`
	CreatedAt         int64          `json:"created_at"`
	CVV               string         `json:"cvv"`
	ExpiryMonth       string         `json:"expiry_month"`
	ExpiryYear        string         `json:"expiry_year"`
	IsActive          bool           `json:"is_active"`
	IsDeleted         bool           `json:"is_deleted"`
	IssuingAppID      string         `json:"issuing_app_id"`
	Last4             string         `json:"last_4"`
	Livemode          bool           `json:"livemode"`
	MetaData          map[string]any `json:"meta_data,omitempty"`
	Balance           string         `json:"balance"`
	AvailableBalance  string         `json:"available_balance"`
	BookBalance       string         `json:"book_balance"`
	BlockedDueToFraud bool           `json:"blocked_due_to_fraud"`
	Pin3DSActivated   bool           `json:"pin_3ds_activated"`
}

type CardBalanceResponse struct {
	CardID                  string `json:"card_id"`
	Balance                 string `json:"balance"`
	SettledAvailableBalance string `json:"settled_available_balance"`
	SettledBookBalance      string `json:"settled_book_balance"`
}

type FundCardResponse struct {
	CardID               string `json:"card_id"`
	TransactionReference string `json:"transaction_reference"`
}

// CardTransaction is an immutable record as Bridgecard reports it; we never
// construct one locally except as a decode target.
type CardTransaction struct {
	Amount                         string        `json:"amount"`
	BridgecardTransactionReference string        `json:"bridgecard_transaction_reference"`
	CardID                         string        `json:"card_id"`
	CardTransactionType            string        `json:"card_transaction_type"`
	CardholderID                   string        `json:"cardholder_id"`
	ClientTransactionReference     string        `json:"client_transaction_reference"`
	Currency                       string        `json:"currency"`
	Description                    string        `json:"description"`
	IssuingAppID                   string        `json:"issuing_app_id"`
	Livemode                       bool          `json:"livemode"`
	TransactionDate                string        `json:"transaction_date"`
	TransactionTimestamp           int64         `json:"transaction_timestamp"`
	MerchantCategoryCode           string        `json:"merchant_category_code,omitempty"`
	EnrichedData                   *EnrichedData `json:"enriched_data,omitempty"`
	PartnerInterchangeFee          string        `json:"partner_interchange_fee,omitempty"`
	InterchangeRevenue             string        `json:"interchange_revenue,omitempty"`
	PartnerInterchangeFeeRefund    string        `json:"partner_interchange_fee_refund,omitempty"`
	InterchangeRevenueRefund       string        `json:"interchange_revenue_refund,omitempty"`
}

type EnrichedData struct {
	IsRecurring         bool   `json:"is_recurring"`
	MerchantCity        string `json:"merchant_city,omitempty"`
	MerchantCode        string `json:"merchant_code,omitempty"`
	MerchantLogo        string `json:"merchant_logo,omitempty"`
	MerchantName        string `json:"merchant_name,omitempty"`
	MerchantWebsite     string `json:"merchant_website,omitempty"`
	TransactionCategory string `json:"transaction_category,omitempty"`
	TransactionGroup    string `json:"transaction_group,omitempty"`
}

type PaginationMeta struct {
	Total    int    `json:"total"`
	Pages    int    `json:"pages"`
	Previous string `json:"previous,omitempty"`
	Next     string `json:"next,omitempty"`
}

type CardTransactionsResponse struct {
	Transactions []CardTransaction `json:"transactions"`
	Meta         PaginationMeta    `json:"meta"`
}

type TransactionStatusResponse struct {
	TransactionStatus string `json:"transaction_status"`
}

type CardActionResponse struct {
	CardID string `json:"card_id"`
}

type AllCardholderCardsResponse struct {
	Cards []CardDetailsResponse `json:"cards"`
	Total int                   `json:"total"`
}

type AllCardholdersResponse struct {
	Cardholders []CardholderDetailsResponse `json:"cardholders"`
	Meta        PaginationMeta              `json:"meta"`
}

type AllCardsResponse struct {
	Cards []CardDetailsResponse `json:"cards"`
	Meta  PaginationMeta        `json:"meta"`
}

type IssuingWalletBalanceResponse struct {
	IssuingBalanceUSD string `json:"issuing_balance_USD"`
	IssuingBalanceNGN string `json:"issuing_balance_NGN,omitempty"`
}

// FxRatesResponse is assembled locally: Bridgecard returns an open-ended map
// of currency code to rate string and we keep only the entries that parse.
type FxRatesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

type StatesResponse struct {
	States []string `json:"states"`
}

type CardTokenResponse struct {
	Token string `json:"token"`
}

// Card types, brands, currencies and limit tiers Bridgecard supports for
// USD issuing. Limits are cents; the minimum funding depends on the tier.
const (
	CardTypeVirtual  = "virtual"
	CardTypePhysical = "physical"

	CardBrandMastercard = "Mastercard"

	CardCurrencyUSD = "USD"

	CardLimit5K  = "500000"  // $5,000
	CardLimit10K = "1000000" // $10,000

	MinFunding5K  = 300 // $3 in cents
	MinFunding10K = 400 // $4 in cents
)

const (
	TransactionDebit  = "DEBIT"
	TransactionCredit = "CREDIT"

	TransactionPending    = "PENDING"
	TransactionSuccessful = "SUCCESSFUL"
	TransactionFailed     = "FAILED"
)

// Identity types accepted at registration, keyed by issuing country.
const (
	NigerianBVNVerification       = "NIGERIAN_BVN_VERIFICATION"
	NigerianNIN                   = "NIGERIAN_NIN"
	NigerianInternationalPassport = "NIGERIAN_INTERNATIONAL_PASSPORT"
	NigerianPVC                   = "NIGERIAN_PVC"
	NigerianDriversLicense        = "NIGERIAN_DRIVERS_LICENSE"

	GhanianSSNIT                 = "GHANIAN_SSNIT"
	GhanianVotersID              = "GHANIAN_VOTERS_ID"
	GhanianDriversLicense        = "GHANIAN_DRIVERS_LICENSE"
	GhanianInternationalPassport = "GHANIAN_INTERNATIONAL_PASSPORT"
	GhanianGhanaCard             = "GHANIAN_GHANA_CARD"

	UgandaVotersID       = "UGANDA_VOTERS_ID"
	UgandaPassport       = "UGANDA_PASSPORT"
	UgandaNationalID     = "UGANDA_NATIONAL_ID"
	UgandaDriversLicense = "UGANDA_DRIVERS_LICENSE"

	KenyanVotersID = "KENYAN_VOTERS_ID"
)

var IdentityTypesByCountry = map[string][]string{
	"Nigeria": {NigerianBVNVerification, NigerianNIN, NigerianInternationalPassport, NigerianPVC, NigerianDriversLicense},
	"Ghana":   {GhanianSSNIT, GhanianVotersID, GhanianDriversLicense, GhanianInternationalPassport, GhanianGhanaCard},
	"Uganda":  {UgandaVotersID, UgandaPassport, UgandaNationalID, UgandaDriversLicense},
	"Kenya":   {KenyanVotersID},
}

var SupportedCountries = []string{"Nigeria", "Ghana", "Uganda", "Kenya"}

// CountriesWithStates is the whitelist for the get_all_states passthrough.
var CountriesWithStates = []string{"Nigeria", "Ghana", "Uganda", "Kenya", "Egypt"}

// Currencies the issuing wallet can be funded with (sandbox).
const (
	WalletCurrencyUSD = "USD"
	WalletCurrencyNGN = "NGN"
)
