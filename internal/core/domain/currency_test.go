package domain_test

import (
	"testing"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCurrency(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr error
	}{
		{name: "USD is supported", code: "USD"},
		{name: "EUR is supported", code: "EUR"},
		{name: "PLN is supported", code: "PLN"},
		{name: "GBP is not supported", code: "GBP", wantErr: apperrors.ErrInvalidCurrencyCode},
		{name: "lowercase usd is not supported", code: "usd", wantErr: apperrors.ErrInvalidCurrencyCode},
		{name: "empty code is not supported", code: "", wantErr: apperrors.ErrInvalidCurrencyCode},
		{name: "garbage is not supported", code: "DOLLARS", wantErr: apperrors.ErrInvalidCurrencyCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			currency, err := domain.NewCurrency(tt.code)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.code, currency.Code())
		})
	}
}

func TestCurrency_Equals(t *testing.T) {
	usd, err := domain.NewCurrency("USD")
	require.NoError(t, err)
	otherUSD, err := domain.NewCurrency("USD")
	require.NoError(t, err)
	eur, err := domain.NewCurrency("EUR")
	require.NoError(t, err)

	assert.True(t, usd.Equals(otherUSD), "separately constructed USD values should be equal")
	assert.True(t, usd.Equals(usd))
	assert.False(t, usd.Equals(eur))
}

func TestIsSupportedCurrencyCode(t *testing.T) {
	assert.True(t, domain.IsSupportedCurrencyCode("USD"))
	assert.True(t, domain.IsSupportedCurrencyCode("EUR"))
	assert.True(t, domain.IsSupportedCurrencyCode("PLN"))
	assert.False(t, domain.IsSupportedCurrencyCode("JPY"))
	assert.False(t, domain.IsSupportedCurrencyCode(""))
}
