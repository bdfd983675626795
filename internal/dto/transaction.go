package dto

// TransactionRequest defines the input for credit and debit operations.
// Amount is in minor units (e.g. cents). Date carries the transaction date,
// either "2006-01-02" or RFC3339; only the calendar-date portion is
// significant for the daily debit limit. An empty Date means "now".
type TransactionRequest struct {
	Amount       int64  `json:"amount" binding:"gte=0"`
	CurrencyCode string `json:"currencyCode" binding:"required,supported_currency"`
	Date         string `json:"date"`
}

// DebitResponse defines the output of a debit: the requested amount, the fee
// actually charged on top of it, and the balance left afterwards.
type DebitResponse struct {
	Amount           int64  `json:"amount"`
	CurrencyCode     string `json:"currencyCode"`
	Fee              int64  `json:"fee"`
	RemainingBalance int64  `json:"remainingBalance"`
}
