package bridge_fields

import (
	"fmt"
	"strconv"
	"strings"
)

// The validators below run before any network call is made. Each returns the
// first failing rule's message, or "" when the request is clean. A validation
// failure is a business rejection, not a fault, so nothing here ever returns
// an error. Checks run in a fixed order and short circuit.

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// ValidateCardholder enforces the registration rules Bridgecard applies
// inconsistently on its side: minimum name lengths, a complete address block
// and the id_type/bvn/id_no dependency.
func ValidateCardholder(req *RegisterCardholderRequest) string {
	if isBlank(req.FirstName) || len(req.FirstName) < 3 {
		return "Invalid firstname, a valid name should have a minimum of 3 letters"
	}
	if isBlank(req.LastName) || len(req.LastName) < 3 {
		return "Invalid lastname, a valid name should have a minimum of 3 letters"
	}
	if isBlank(req.Phone) {
		return "Phone number is required"
	}
	if isBlank(req.EmailAddress) || !strings.Contains(req.EmailAddress, "@") {
		return "Valid email address is required"
	}
	if req.Address == nil {
		return "Address is required"
	}
	if isBlank(req.Address.Address) || len(req.Address.Address) < 3 {
		return "Invalid address, a valid address should have a minimum of 3 letters"
	}
	if isBlank(req.Address.HouseNo) {
		return "House number is required"
	}
	if isBlank(req.Address.City) {
		return "City is required"
	}
	if isBlank(req.Address.State) {
		return "State is required"
	}
	if isBlank(req.Address.Country) {
		return "Country is required"
	}
	if isBlank(req.Address.PostalCode) {
		return "Postal code is required"
	}
	if req.Identity == nil {
		return "Identity information is required"
	}
	if isBlank(req.Identity.IDType) {
		return "Identity type is required"
	}
	// BVN verification carries its own number; every other identity type
	// needs an id_no instead.
	if req.Identity.IDType == NigerianBVNVerification {
		if isBlank(req.Identity.BVN) || len(req.Identity.BVN) != 11 {
			return "Invalid BVN, a valid BVN is 11 digits long"
		}
	} else if isBlank(req.Identity.IDNo) {
		return "ID number is required for this identity type"
	}
	return ""
}

// ValidateCreateCard checks the card parameters against the issuing options
// Bridgecard actually supports, including the per-limit-tier minimum funding.
func ValidateCreateCard(req *CreateCardRequest) string {
	if isBlank(req.CardholderID) {
		return "Cardholder ID is required"
	}
	if req.CardType != CardTypeVirtual && req.CardType != CardTypePhysical {
		return "Card type must be 'virtual' or 'physical'"
	}
	if req.CardBrand != CardBrandMastercard {
		return "Card brand must be 'Mastercard'"
	}
	if req.CardCurrency != CardCurrencyUSD {
		return "Card currency must be 'USD'"
	}
	if req.CardLimit != CardLimit5K && req.CardLimit != CardLimit10K {
		return "Card limit must be '500000' ($5,000) or '1000000' ($10,000)"
	}
	if isBlank(req.FundingAmount) {
		return "Funding amount is required"
	}
	fundingAmount, err := strconv.Atoi(req.FundingAmount)
	if err != nil {
		return "Funding amount must be a valid number"
	}
	minFunding := MinFunding10K
	if req.CardLimit == CardLimit5K {
		minFunding = MinFunding5K
	}
	if fundingAmount < minFunding {
		return fmt.Sprintf("Minimum funding amount is $%.2f for this card limit", float64(minFunding)/100.0)
	}
	if isBlank(req.Pin) {
		return "Encrypted PIN is required"
	}
	return ""
}

// ValidateFundCard requires a strictly positive amount; see
// ValidateUnloadCard for the zero-permitting variant.
func ValidateFundCard(req *FundCardRequest) string {
	if isBlank(req.CardID) {
		return "Card ID is required"
	}
	if isBlank(req.Amount) {
		return "Amount is required"
	}
	if amount, err := strconv.Atoi(req.Amount); err != nil || amount <= 0 {
		return "Amount must be a valid positive number"
	}
	if isBlank(req.TransactionReference) {
		return "Transaction reference is required"
	}
	if req.Currency != CardCurrencyUSD {
		return "Currency must be 'USD'"
	}
	return ""
}

// ValidateUnloadCard permits a zero amount (a no-op unload is legal on
// Bridgecard's side); everything else matches ValidateFundCard.
func ValidateUnloadCard(req *UnloadCardRequest) string {
	if isBlank(req.CardID) {
		return "Card ID is required"
	}
	if isBlank(req.Amount) {
		return "Amount is required"
	}
	if amount, err := strconv.Atoi(req.Amount); err != nil || amount < 0 {
		return "Amount must be a valid non-negative number"
	}
	if isBlank(req.TransactionReference) {
		return "Transaction reference is required"
	}
	if req.Currency != CardCurrencyUSD {
		return "Currency must be 'USD'"
	}
	return ""
}

// ValidateFundIssuingWallet guards the sandbox wallet top-up. The amount is
// a decimal string here, not cents.
func ValidateFundIssuingWallet(req *FundIssuingWalletRequest, currency string) string {
	if currency != WalletCurrencyUSD && currency != WalletCurrencyNGN {
		return "Currency must be either 'USD' or 'NGN'"
	}
	if isBlank(req.Amount) {
		return "Amount is required"
	}
	if amount, err := strconv.ParseFloat(req.Amount, 64); err != nil || amount < 0 {
		return "Amount must be a valid non-negative number"
	}
	return ""
}

// ValidateStatesCountry whitelists the countries Bridgecard can list states
// for; matching is case insensitive, the canonical name is forwarded.
func ValidateStatesCountry(country string) (string, string) {
	if isBlank(country) {
		return "", "Country parameter is required"
	}
	for _, c := range CountriesWithStates {
		if strings.EqualFold(c, country) {
			return c, ""
		}
	}
	return "", fmt.Sprintf("Country must be one of: %s", strings.Join(CountriesWithStates, ", "))
}
