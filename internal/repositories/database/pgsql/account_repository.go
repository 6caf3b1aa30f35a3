package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/amzplat/assetsvc/internal/apperrors"
	"github.com/amzplat/assetsvc/internal/core/domain"
	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	"github.com/amzplat/assetsvc/internal/models"
	"github.com/amzplat/assetsvc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account and audit log data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const accountColumns = `
	id, user_id, asset_type_id,
	available_balance, frozen_balance, total_income, total_expense,
	is_active, created_at, updated_at`

func scanAccount(row pgx.Row) (models.Account, error) {
	var acc models.Account
	err := row.Scan(
		&acc.ID,
		&acc.UserID,
		&acc.AssetTypeID,
		&acc.AvailableBalance,
		&acc.FrozenBalance,
		&acc.TotalIncome,
		&acc.TotalExpense,
		&acc.IsActive,
		&acc.CreatedAt,
		&acc.UpdatedAt,
	)
	return acc, err
}

// AccountExists reports whether an account row exists for the pair.
func (r *PgxAccountRepository) AccountExists(ctx context.Context, userID, assetTypeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE user_id = $1 AND asset_type_id = $2);`
	return r.existsQuery(ctx, query, userID, assetTypeID)
}

// AccountIsActive reports whether an account exists and is active.
func (r *PgxAccountRepository) AccountIsActive(ctx context.Context, userID, assetTypeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM accounts WHERE user_id = $1 AND asset_type_id = $2 AND is_active = true);`
	return r.existsQuery(ctx, query, userID, assetTypeID)
}

// FindAccount retrieves the single account for (userID, assetTypeID).
func (r *PgxAccountRepository) FindAccount(ctx context.Context, userID, assetTypeID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND asset_type_id = $2;`

	modelAcc, err := scanAccount(r.Pool.QueryRow(ctx, query, userID, assetTypeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account for user %d asset type %d: %w", userID, assetTypeID, err)
	}

	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// FindAccountsByAssetTypeIDs retrieves the user's accounts for the given asset types.
func (r *PgxAccountRepository) FindAccountsByAssetTypeIDs(ctx context.Context, userID int64, assetTypeIDs []int64) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE user_id = $1 AND asset_type_id = ANY($2) ORDER BY asset_type_id;`

	rows, err := r.Pool.Query(ctx, query, userID, assetTypeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %d: %w", userID, err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts for user %d: %w", userID, err)
	}

	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

// SaveAccount inserts a new account with all balances at zero.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, userID, assetTypeID int64) error {
	query := `INSERT INTO accounts (user_id, asset_type_id, is_active) VALUES ($1, $2, true);`

	_, err := r.Pool.Exec(ctx, query, userID, assetTypeID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to insert account for user %d asset type %d: %w", userID, assetTypeID, err)
	}
	return nil
}

// ApplyMutations applies an ordered batch of balance mutations inside one
// database transaction. Each mutation is a single UPDATE of all four balance
// fields reading back the post-mutation row, followed by the negative-balance
// guard for decremented fields and one audit log insert. The first failure
// aborts and rolls back the entire batch.
func (r *PgxAccountRepository) ApplyMutations(ctx context.Context, mutations []domain.Mutation) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		for _, mut := range mutations {
			if err := r.applyMutationTx(ctx, tx, mut); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PgxAccountRepository) applyMutationTx(ctx context.Context, tx pgx.Tx, mut domain.Mutation) error {
	updateQuery := `
		UPDATE accounts
		SET available_balance = available_balance + $3,
			frozen_balance = frozen_balance + $4,
			total_income = total_income + $5,
			total_expense = total_expense + $6,
			updated_at = now()
		WHERE user_id = $1 AND asset_type_id = $2
		RETURNING ` + accountColumns + `;
	`
	modelAcc, err := scanAccount(tx.QueryRow(ctx, updateQuery,
		mut.UserID,
		mut.AssetTypeID,
		mut.DeltaAvailable,
		mut.DeltaFrozen,
		mut.DeltaIncome,
		mut.DeltaExpense,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to update balances for user %d asset type %d: %w", mut.UserID, mut.AssetTypeID, err)
	}

	// Decrements must never drive the balance negative. Increments may: the
	// account can start negative after an out-of-band administrative
	// correction, and corrections entered through this API must still apply.
	if (mut.GuardAvailable && modelAcc.AvailableBalance.IsNegative()) ||
		(mut.GuardFrozen && modelAcc.FrozenBalance.IsNegative()) {
		return apperrors.ErrInsufficientBalance
	}

	logQuery := `
		INSERT INTO account_logs (
			account_id, action_type_id,
			amount_available_balance, amount_frozen_balance,
			amount_total_income, amount_total_expense,
			available_balance_after, frozen_balance_after,
			total_income_after, total_expense_after,
			order_number, description
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err = tx.Exec(ctx, logQuery,
		modelAcc.ID,
		mut.ActionTypeID,
		mut.DeltaAvailable,
		mut.DeltaFrozen,
		mut.DeltaIncome,
		mut.DeltaExpense,
		modelAcc.AvailableBalance,
		modelAcc.FrozenBalance,
		modelAcc.TotalIncome,
		modelAcc.TotalExpense,
		mut.OrderNumber,
		mut.Description,
	)
	if err != nil {
		return fmt.Errorf("failed to insert account log for account %d: %w", modelAcc.ID, err)
	}
	return nil
}
