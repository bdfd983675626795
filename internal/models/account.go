package models

// Account represents an account row in the accounts table. The balance is
// stored in minor units.
type Account struct {
	AccountID    string `db:"account_id"`
	CurrencyCode string `db:"currency_code"`
	Balance      int64  `db:"balance"`
	AuditFields
}

// DailyDebit represents one row of the account_daily_debits table: the count
// of successful debits an account performed on one calendar day.
type DailyDebit struct {
	AccountID  string `db:"account_id"`
	DebitDate  string `db:"debit_date"`
	DebitCount int    `db:"debit_count"`
}
