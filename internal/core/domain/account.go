package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

const (
	// maxDailyDebits is the maximum count of successful debit operations
	// permitted per account per calendar day.
	maxDailyDebits = 3

	// dayKeyFormat buckets debits by calendar day; time-of-day is ignored.
	dayKeyFormat = "2006-01-02"
)

// transactionFeeRate is the 0.5% surcharge applied to every debit.
var transactionFeeRate = decimal.NewFromFloat(0.005)

// Account is the aggregate owning a Money balance and the per-day debit
// counters. All mutation goes through Credit and Debit; every operation
// either fully succeeds or leaves the account untouched.
type Account struct {
	AccountID string
	AuditFields

	currency    Currency
	balance     Money
	dailyDebits map[string]int
}

// NewAccount creates an account with a zero balance in the given currency.
func NewAccount(accountID string, currency Currency) *Account {
	return &Account{
		AccountID:   accountID,
		currency:    currency,
		balance:     Money{amount: 0, currency: currency},
		dailyDebits: make(map[string]int),
	}
}

// RestoreAccount rehydrates an account from persisted state. The balance must
// carry the account currency; dailyDebits maps "2006-01-02" day keys to the
// count of debits performed that day.
func RestoreAccount(accountID string, currency Currency, balance Money, dailyDebits map[string]int, audit AuditFields) (*Account, error) {
	if !balance.Currency().Equals(currency) {
		return nil, fmt.Errorf("%w: balance is %s but account is %s", apperrors.ErrCurrencyMismatch, balance.Currency().Code(), currency.Code())
	}
	counts := make(map[string]int, len(dailyDebits))
	for day, count := range dailyDebits {
		if count < 0 {
			return nil, fmt.Errorf("%w: negative debit count %d for %s", apperrors.ErrValidation, count, day)
		}
		counts[day] = count
	}
	return &Account{
		AccountID:   accountID,
		AuditFields: audit,
		currency:    currency,
		balance:     balance,
		dailyDebits: counts,
	}, nil
}

// Currency returns the fixed currency the account is denominated in.
func (a *Account) Currency() Currency {
	return a.currency
}

// Balance returns the current balance without side effects.
func (a *Account) Balance() Money {
	return a.balance
}

// Credit adds money to the balance. The money must carry the account
// currency; no fee, limit or date tracking applies to credits.
func (a *Account) Credit(money Money) error {
	if !a.currency.Equals(money.Currency()) {
		return fmt.Errorf("%w: cannot credit %s to a %s account", apperrors.ErrCurrencyMismatch, money.Currency().Code(), a.currency.Code())
	}
	newBalance, err := a.balance.Add(money)
	if err != nil {
		return err
	}
	a.balance = newBalance
	return nil
}

// Debit withdraws money plus the transaction fee, counting the debit against
// the calendar day of date. It returns the total Money actually deducted
// (requested amount + fee). Checks run in order: currency match, daily limit,
// sufficient funds including the fee; failure leaves balance and counters
// unchanged.
func (a *Account) Debit(money Money, date time.Time) (Money, error) {
	if !a.currency.Equals(money.Currency()) {
		return Money{}, fmt.Errorf("%w: cannot debit %s from a %s account", apperrors.ErrCurrencyMismatch, money.Currency().Code(), a.currency.Code())
	}

	fee := transactionFee(money.Amount())
	feeMoney := Money{amount: fee, currency: money.Currency()}
	total, err := money.Add(feeMoney)
	if err != nil {
		return Money{}, err
	}

	dayKey := date.Format(dayKeyFormat)
	if a.dailyDebits[dayKey] >= maxDailyDebits {
		return Money{}, fmt.Errorf("%w: %d debits already performed on %s", apperrors.ErrDailyDebitLimitReached, a.dailyDebits[dayKey], dayKey)
	}

	newBalance, err := a.balance.Subtract(total)
	if err != nil {
		return Money{}, err
	}

	a.balance = newBalance
	a.dailyDebits[dayKey]++
	return total, nil
}

// DailyDebitCount returns how many debits succeeded on the calendar day of date.
func (a *Account) DailyDebitCount(date time.Time) int {
	return a.dailyDebits[date.Format(dayKeyFormat)]
}

// DailyDebitCounts returns a copy of the per-day debit counters, keyed by
// "2006-01-02" day keys. Used by repositories to persist the aggregate.
func (a *Account) DailyDebitCounts() map[string]int {
	counts := make(map[string]int, len(a.dailyDebits))
	for day, count := range a.dailyDebits {
		counts[day] = count
	}
	return counts
}

// Clone returns a deep copy of the account. Repositories storing accounts
// in memory clone on save and load so callers always see a consistent
// snapshot.
func (a *Account) Clone() *Account {
	clone := *a
	clone.dailyDebits = a.DailyDebitCounts()
	return &clone
}

// transactionFee computes the debit fee in minor units: amount x 0.005,
// rounded to the nearest integer with ties going away from zero.
func transactionFee(amount int64) int64 {
	return decimal.NewFromInt(amount).Mul(transactionFeeRate).Round(0).IntPart()
}
