package mapping

import (
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	"github.com/SscSPs/bank_account_app/internal/models"
)

// ToModelAccount converts a domain.Account to its persistence models: the
// account row plus one daily-debit row per calendar day with debits.
func ToModelAccount(account *domain.Account) (models.Account, []models.DailyDebit) {
	row := models.Account{
		AccountID:    account.AccountID,
		CurrencyCode: account.Currency().Code(),
		Balance:      account.Balance().Amount(),
		AuditFields: models.AuditFields{
			CreatedAt:     account.CreatedAt,
			LastUpdatedAt: account.LastUpdatedAt,
		},
	}

	counts := account.DailyDebitCounts()
	debits := make([]models.DailyDebit, 0, len(counts))
	for day, count := range counts {
		debits = append(debits, models.DailyDebit{
			AccountID:  account.AccountID,
			DebitDate:  day,
			DebitCount: count,
		})
	}
	return row, debits
}

// ToDomainAccount rehydrates a domain.Account from its persistence models.
// Stored rows already satisfied the domain invariants when saved, so a
// failure here indicates corrupted data and is returned as-is.
func ToDomainAccount(row models.Account, debits []models.DailyDebit) (*domain.Account, error) {
	currency, err := domain.NewCurrency(row.CurrencyCode)
	if err != nil {
		return nil, err
	}
	balance, err := domain.NewMoney(row.Balance, currency)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(debits))
	for _, debit := range debits {
		counts[debit.DebitDate] = debit.DebitCount
	}

	audit := domain.AuditFields{
		CreatedAt:     row.CreatedAt,
		LastUpdatedAt: row.LastUpdatedAt,
	}
	return domain.RestoreAccount(row.AccountID, currency, balance, counts, audit)
}
