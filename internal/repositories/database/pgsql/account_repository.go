package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/bank_account_app/internal/apperrors"
	"github.com/SscSPs/bank_account_app/internal/core/domain"
	portsrepo "github.com/SscSPs/bank_account_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_account_app/internal/models"
	"github.com/SscSPs/bank_account_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAccountRepository persists accounts in PostgreSQL: one row in accounts
// plus one row per calendar day with debits in account_daily_debits.
type PgxAccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new repository for account data.
func NewAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{pool: pool}
}

// Ensure PgxAccountRepository implements the repository facade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// FindAccountByID retrieves an account with its daily debit counters.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	accountQuery := `
		SELECT account_id, currency_code, balance, created_at, last_updated_at
		FROM accounts
		WHERE account_id = $1;
	`
	var row models.Account
	err := r.pool.QueryRow(ctx, accountQuery, accountID).Scan(
		&row.AccountID,
		&row.CurrencyCode,
		&row.Balance,
		&row.CreatedAt,
		&row.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}

	debits, err := r.findDailyDebits(ctx, accountID)
	if err != nil {
		return nil, err
	}

	account, err := mapping.ToDomainAccount(row, debits)
	if err != nil {
		return nil, fmt.Errorf("failed to rehydrate account %s: %w", accountID, err)
	}
	return account, nil
}

func (r *PgxAccountRepository) findDailyDebits(ctx context.Context, accountID string) ([]models.DailyDebit, error) {
	query := `
		SELECT account_id, to_char(debit_date, 'YYYY-MM-DD'), debit_count
		FROM account_daily_debits
		WHERE account_id = $1;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily debits for account %s: %w", accountID, err)
	}
	defer rows.Close()

	debits := []models.DailyDebit{}
	for rows.Next() {
		var debit models.DailyDebit
		if err := rows.Scan(&debit.AccountID, &debit.DebitDate, &debit.DebitCount); err != nil {
			return nil, fmt.Errorf("failed to scan daily debit row for account %s: %w", accountID, err)
		}
		debits = append(debits, debit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating daily debit rows for account %s: %w", accountID, err)
	}
	return debits, nil
}

// SaveAccount upserts the account row and its daily debit counters in a
// single transaction, so a saved snapshot is never partially visible.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	row, debits := mapping.ToModelAccount(account)

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction for account %s: %w", row.AccountID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	accountQuery := `
		INSERT INTO accounts (account_id, currency_code, balance, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (account_id) DO UPDATE
		SET balance = EXCLUDED.balance, last_updated_at = EXCLUDED.last_updated_at;
	`
	_, err = tx.Exec(ctx, accountQuery,
		row.AccountID,
		row.CurrencyCode,
		row.Balance,
		row.CreatedAt,
		row.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: account %s", apperrors.ErrDuplicate, row.AccountID)
		}
		return fmt.Errorf("failed to save account %s: %w", row.AccountID, err)
	}

	if err := r.saveDailyDebits(ctx, tx, debits); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit account save for %s: %w", row.AccountID, err)
	}
	return nil
}

// saveDailyDebits upserts the counter rows. Counters only ever grow, so
// stale rows never need deleting.
func (r *PgxAccountRepository) saveDailyDebits(ctx context.Context, tx pgx.Tx, debits []models.DailyDebit) error {
	if len(debits) == 0 {
		return nil
	}

	query := `
		INSERT INTO account_daily_debits (account_id, debit_date, debit_count)
		VALUES ($1, $2, $3)
		ON CONFLICT (account_id, debit_date) DO UPDATE
		SET debit_count = EXCLUDED.debit_count;
	`

	batch := &pgx.Batch{}
	for _, debit := range debits {
		batch.Queue(query, debit.AccountID, debit.DebitDate, debit.DebitCount)
	}

	br := tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = fmt.Errorf("failed to upsert daily debit for account %s on %s: %w", debits[i].AccountID, debits[i].DebitDate, err)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close daily debit batch: %w", err)
	}
	return batchErr
}
