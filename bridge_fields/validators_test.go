package bridge_fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCardholder() RegisterCardholderRequest {
	return RegisterCardholderRequest{
		FirstName:    "Amina",
		LastName:     "Bello",
		Phone:        "+2348012345678",
		EmailAddress: "amina@example.com",
		Address: &CardholderAddress{
			Address:    "12 Marina Road",
			HouseNo:    "12",
			City:       "Lagos",
			State:      "Lagos",
			Country:    "Nigeria",
			PostalCode: "101241",
		},
		Identity: &CardholderIdentity{
			IDType: NigerianBVNVerification,
			BVN:    "12345678901",
		},
	}
}

func TestValidateCardholder(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterCardholderRequest)
		want   string
	}{
		{"valid", func(r *RegisterCardholderRequest) {}, ""},
		{"short first name", func(r *RegisterCardholderRequest) { r.FirstName = "Al" }, "Invalid firstname, a valid name should have a minimum of 3 letters"},
		{"blank first name", func(r *RegisterCardholderRequest) { r.FirstName = "   " }, "Invalid firstname, a valid name should have a minimum of 3 letters"},
		{"short last name", func(r *RegisterCardholderRequest) { r.LastName = "Ng" }, "Invalid lastname, a valid name should have a minimum of 3 letters"},
		{"missing phone", func(r *RegisterCardholderRequest) { r.Phone = "" }, "Phone number is required"},
		{"email without at sign", func(r *RegisterCardholderRequest) { r.EmailAddress = "amina.example.com" }, "Valid email address is required"},
		{"missing email", func(r *RegisterCardholderRequest) { r.EmailAddress = "" }, "Valid email address is required"},
		{"nil address", func(r *RegisterCardholderRequest) { r.Address = nil }, "Address is required"},
		{"short street address", func(r *RegisterCardholderRequest) { r.Address.Address = "12" }, "Invalid address, a valid address should have a minimum of 3 letters"},
		{"missing house number", func(r *RegisterCardholderRequest) { r.Address.HouseNo = "" }, "House number is required"},
		{"missing city", func(r *RegisterCardholderRequest) { r.Address.City = "" }, "City is required"},
		{"missing state", func(r *RegisterCardholderRequest) { r.Address.State = "" }, "State is required"},
		{"missing country", func(r *RegisterCardholderRequest) { r.Address.Country = "" }, "Country is required"},
		{"missing postal code", func(r *RegisterCardholderRequest) { r.Address.PostalCode = "" }, "Postal code is required"},
		{"nil identity", func(r *RegisterCardholderRequest) { r.Identity = nil }, "Identity information is required"},
		{"missing id type", func(r *RegisterCardholderRequest) { r.Identity.IDType = "" }, "Identity type is required"},
		{"bvn too short", func(r *RegisterCardholderRequest) { r.Identity.BVN = "1234567890" }, "Invalid BVN, a valid BVN is 11 digits long"},
		{"bvn too long", func(r *RegisterCardholderRequest) { r.Identity.BVN = "123456789012" }, "Invalid BVN, a valid BVN is 11 digits long"},
		{"bvn missing", func(r *RegisterCardholderRequest) { r.Identity.BVN = "" }, "Invalid BVN, a valid BVN is 11 digits long"},
		{"nin without id number", func(r *RegisterCardholderRequest) {
			r.Identity.IDType = NigerianNIN
			r.Identity.BVN = ""
			r.Identity.IDNo = ""
		}, "ID number is required for this identity type"},
		{"nin with id number", func(r *RegisterCardholderRequest) {
			r.Identity.IDType = NigerianNIN
			r.Identity.BVN = ""
			r.Identity.IDNo = "A12345678"
		}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCardholder()
			tt.mutate(&req)
			assert.Equal(t, tt.want, ValidateCardholder(&req))
		})
	}
}

func TestValidateCardholderFirstFailureWins(t *testing.T) {
	// Everything is wrong; only the first rule's message comes back.
	req := RegisterCardholderRequest{}
	assert.Equal(t, "Invalid firstname, a valid name should have a minimum of 3 letters", ValidateCardholder(&req))
}

func validCreateCard() CreateCardRequest {
	return CreateCardRequest{
		CardholderID:  "ch_123",
		CardType:      CardTypeVirtual,
		CardBrand:     CardBrandMastercard,
		CardCurrency:  CardCurrencyUSD,
		CardLimit:     CardLimit5K,
		FundingAmount: "300",
		Pin:           "encrypted-pin",
	}
}

func TestValidateCreateCard(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateCardRequest)
		want   string
	}{
		{"valid", func(r *CreateCardRequest) {}, ""},
		{"missing cardholder", func(r *CreateCardRequest) { r.CardholderID = "" }, "Cardholder ID is required"},
		{"bad card type", func(r *CreateCardRequest) { r.CardType = "plastic" }, "Card type must be 'virtual' or 'physical'"},
		{"bad brand", func(r *CreateCardRequest) { r.CardBrand = "Visa" }, "Card brand must be 'Mastercard'"},
		{"bad currency", func(r *CreateCardRequest) { r.CardCurrency = "NGN" }, "Card currency must be 'USD'"},
		{"bad limit", func(r *CreateCardRequest) { r.CardLimit = "250000" }, "Card limit must be '500000' ($5,000) or '1000000' ($10,000)"},
		{"missing funding", func(r *CreateCardRequest) { r.FundingAmount = "" }, "Funding amount is required"},
		{"non numeric funding", func(r *CreateCardRequest) { r.FundingAmount = "three hundred" }, "Funding amount must be a valid number"},
		{"one cent below 5k minimum", func(r *CreateCardRequest) { r.FundingAmount = "299" }, "Minimum funding amount is $3.00 for this card limit"},
		{"exactly 5k minimum", func(r *CreateCardRequest) { r.FundingAmount = "300" }, ""},
		{"one cent below 10k minimum", func(r *CreateCardRequest) {
			r.CardLimit = CardLimit10K
			r.FundingAmount = "399"
		}, "Minimum funding amount is $4.00 for this card limit"},
		{"exactly 10k minimum", func(r *CreateCardRequest) {
			r.CardLimit = CardLimit10K
			r.FundingAmount = "400"
		}, ""},
		{"missing pin", func(r *CreateCardRequest) { r.Pin = "" }, "Encrypted PIN is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateCard()
			tt.mutate(&req)
			assert.Equal(t, tt.want, ValidateCreateCard(&req))
		})
	}
}

func TestValidateFundAndUnloadCard(t *testing.T) {
	fund := FundCardRequest{CardID: "card_1", Amount: "100", TransactionReference: "ref_1", Currency: CardCurrencyUSD}
	assert.Equal(t, "", ValidateFundCard(&fund))

	// Zero is a rejection on funding but a legal no-op on unloading.
	fund.Amount = "0"
	assert.Equal(t, "Amount must be a valid positive number", ValidateFundCard(&fund))

	unload := UnloadCardRequest{CardID: "card_1", Amount: "0", TransactionReference: "ref_1", Currency: CardCurrencyUSD}
	assert.Equal(t, "", ValidateUnloadCard(&unload))

	unload.Amount = "-5"
	assert.Equal(t, "Amount must be a valid non-negative number", ValidateUnloadCard(&unload))

	unload.Amount = "abc"
	assert.Equal(t, "Amount must be a valid non-negative number", ValidateUnloadCard(&unload))

	fund.Amount = "100"
	fund.Currency = "NGN"
	assert.Equal(t, "Currency must be 'USD'", ValidateFundCard(&fund))

	fund.Currency = CardCurrencyUSD
	fund.TransactionReference = ""
	assert.Equal(t, "Transaction reference is required", ValidateFundCard(&fund))

	fund.TransactionReference = "ref_1"
	fund.CardID = ""
	assert.Equal(t, "Card ID is required", ValidateFundCard(&fund))
}

func TestValidateFundIssuingWallet(t *testing.T) {
	req := FundIssuingWalletRequest{Amount: "150.50"}
	assert.Equal(t, "", ValidateFundIssuingWallet(&req, WalletCurrencyUSD))
	assert.Equal(t, "", ValidateFundIssuingWallet(&req, WalletCurrencyNGN))
	assert.Equal(t, "Currency must be either 'USD' or 'NGN'", ValidateFundIssuingWallet(&req, "EUR"))

	req.Amount = "-1"
	assert.Equal(t, "Amount must be a valid non-negative number", ValidateFundIssuingWallet(&req, WalletCurrencyUSD))

	req.Amount = ""
	assert.Equal(t, "Amount is required", ValidateFundIssuingWallet(&req, WalletCurrencyUSD))
}

func TestValidateStatesCountry(t *testing.T) {
	country, msg := ValidateStatesCountry("nigeria")
	assert.Equal(t, "Nigeria", country)
	assert.Equal(t, "", msg)

	country, msg = ValidateStatesCountry("EGYPT")
	assert.Equal(t, "Egypt", country)
	assert.Equal(t, "", msg)

	_, msg = ValidateStatesCountry("")
	assert.Equal(t, "Country parameter is required", msg)

	_, msg = ValidateStatesCountry("France")
	assert.Contains(t, msg, "Country must be one of:")
}
