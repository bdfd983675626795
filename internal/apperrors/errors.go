package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInvalidCurrencyCode indicates a currency code outside the supported set.
var ErrInvalidCurrencyCode = errors.New("unsupported currency code")

// ErrCurrencyMismatch indicates an operation between values of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrNegativeAmount indicates an attempt to construct a monetary amount below zero.
var ErrNegativeAmount = errors.New("amount must not be negative")

// ErrInsufficientFunds indicates the balance cannot cover the requested debit plus its fee.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrDailyDebitLimitReached indicates the account already performed the maximum
// number of debits for the given calendar day.
var ErrDailyDebitLimitReached = errors.New("daily debit limit reached")

// ErrAmountOverflow indicates an arithmetic result that would exceed the range
// of the underlying integer amount.
var ErrAmountOverflow = errors.New("amount overflow")
