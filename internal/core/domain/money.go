package domain

import (
	"fmt"
	"math"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
)

// Money is an immutable monetary value: a non-negative amount in minor units
// (e.g. cents) tagged with a Currency. Arithmetic never mutates; every
// operation returns a fresh value.
type Money struct {
	amount   int64
	currency Currency
}

// NewMoney constructs a Money value. Fails with apperrors.ErrNegativeAmount
// when amount is below zero.
func NewMoney(amount int64, currency Currency) (Money, error) {
	if amount < 0 {
		return Money{}, fmt.Errorf("%w: %d", apperrors.ErrNegativeAmount, amount)
	}
	return Money{amount: amount, currency: currency}, nil
}

// Amount returns the amount in minor units.
func (m Money) Amount() int64 {
	return m.amount
}

// Currency returns the currency the amount is denominated in.
func (m Money) Currency() Currency {
	return m.currency
}

// Add returns the sum of both values. Fails with apperrors.ErrCurrencyMismatch
// when currencies differ and with apperrors.ErrAmountOverflow when the sum
// would exceed the int64 range; amounts never wrap silently.
func (m Money) Add(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount > math.MaxInt64-other.amount {
		return Money{}, fmt.Errorf("%w: %d + %d exceeds the representable amount", apperrors.ErrAmountOverflow, m.amount, other.amount)
	}
	return Money{amount: m.amount + other.amount, currency: m.currency}, nil
}

// Subtract returns the difference m - other. Fails with
// apperrors.ErrCurrencyMismatch when currencies differ and with
// apperrors.ErrInsufficientFunds when other exceeds m.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.assertSameCurrency(other); err != nil {
		return Money{}, err
	}
	if m.amount < other.amount {
		return Money{}, fmt.Errorf("%w: %d is less than %d", apperrors.ErrInsufficientFunds, m.amount, other.amount)
	}
	return Money{amount: m.amount - other.amount, currency: m.currency}, nil
}

func (m Money) assertSameCurrency(other Money) error {
	if !m.currency.Equals(other.currency) {
		return fmt.Errorf("%w: %s vs %s", apperrors.ErrCurrencyMismatch, m.currency.Code(), other.currency.Code())
	}
	return nil
}
