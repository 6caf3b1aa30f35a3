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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxActionTypeRepository struct {
	BaseRepository
}

// newPgxActionTypeRepository creates a new repository for action type catalog data.
func newPgxActionTypeRepository(pool *pgxpool.Pool) portsrepo.ActionTypeRepository {
	return &PgxActionTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ActionTypeRepository = (*PgxActionTypeRepository)(nil)

const actionTypeColumns = `
	id, name, description,
	available_balance_change, frozen_balance_change,
	total_income_change, total_expense_change,
	is_active, created_at, updated_at`

func scanActionType(row pgx.Row) (models.ActionType, error) {
	var at models.ActionType
	err := row.Scan(
		&at.ID,
		&at.Name,
		&at.Description,
		&at.AvailableBalanceChange,
		&at.FrozenBalanceChange,
		&at.TotalIncomeChange,
		&at.TotalExpenseChange,
		&at.IsActive,
		&at.CreatedAt,
		&at.UpdatedAt,
	)
	return at, err
}

// ListActiveActionTypes retrieves every active action type.
func (r *PgxActionTypeRepository) ListActiveActionTypes(ctx context.Context) ([]domain.ActionType, error) {
	query := `SELECT ` + actionTypeColumns + ` FROM action_types WHERE is_active = true ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query action types: %w", err)
	}
	defer rows.Close()

	modelTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ActionType, error) {
		return scanActionType(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan action types: %w", err)
	}

	return mapping.ToDomainActionTypeSlice(modelTypes), nil
}

// ActionTypeIsActive reports whether an action type exists and is active.
func (r *PgxActionTypeRepository) ActionTypeIsActive(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM action_types WHERE id = $1 AND is_active = true);`
	return r.existsQuery(ctx, query, id)
}

// FindActiveActionTypeByID retrieves one active action type with its rules.
func (r *PgxActionTypeRepository) FindActiveActionTypeByID(ctx context.Context, id int64) (*domain.ActionType, error) {
	query := `SELECT ` + actionTypeColumns + ` FROM action_types WHERE id = $1 AND is_active = true;`

	modelType, err := scanActionType(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find action type %d: %w", id, err)
	}

	domainType := mapping.ToDomainActionType(modelType)
	return &domainType, nil
}
