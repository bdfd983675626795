package domain

import (
	"fmt"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
)

// supportedCurrencyCodes is the fixed allow-list of currencies accounts can hold.
var supportedCurrencyCodes = map[string]struct{}{
	"USD": {},
	"EUR": {},
	"PLN": {},
}

// Currency is an immutable currency value identified by its ISO code.
// A Currency can only be obtained through NewCurrency, so a held value is
// always one of the supported codes.
type Currency struct {
	code string
}

// NewCurrency validates the code against the supported set and returns the
// currency value. Fails with apperrors.ErrInvalidCurrencyCode otherwise.
func NewCurrency(code string) (Currency, error) {
	if _, ok := supportedCurrencyCodes[code]; !ok {
		return Currency{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidCurrencyCode, code)
	}
	return Currency{code: code}, nil
}

// Code returns the ISO currency code, e.g. "USD".
func (c Currency) Code() string {
	return c.code
}

// Equals reports whether both currencies carry the same code.
func (c Currency) Equals(other Currency) bool {
	return c.code == other.code
}

// IsSupportedCurrencyCode reports whether the code is in the allow-list
// without constructing a Currency. Used by request validation.
func IsSupportedCurrencyCode(code string) bool {
	_, ok := supportedCurrencyCodes[code]
	return ok
}
