package pgsql

import (
	"context"
	"fmt"

	"github.com/amzplat/assetsvc/internal/core/domain"
	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	"github.com/amzplat/assetsvc/internal/models"
	"github.com/amzplat/assetsvc/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAssetTypeRepository struct {
	BaseRepository
}

// newPgxAssetTypeRepository creates a new repository for asset type catalog data.
func newPgxAssetTypeRepository(pool *pgxpool.Pool) portsrepo.AssetTypeRepository {
	return &PgxAssetTypeRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.AssetTypeRepository = (*PgxAssetTypeRepository)(nil)

// ListActiveAssetTypes retrieves every active asset type.
func (r *PgxAssetTypeRepository) ListActiveAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM asset_types
		WHERE is_active = true
		ORDER BY id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset types: %w", err)
	}
	defer rows.Close()

	modelTypes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.AssetType, error) {
		var at models.AssetType
		err := row.Scan(
			&at.ID,
			&at.Name,
			&at.Description,
			&at.IsActive,
			&at.CreatedAt,
			&at.UpdatedAt,
		)
		return at, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan asset types: %w", err)
	}

	return mapping.ToDomainAssetTypeSlice(modelTypes), nil
}

// ActiveAssetTypeIDs retrieves the IDs of every active asset type.
func (r *PgxAssetTypeRepository) ActiveAssetTypeIDs(ctx context.Context) ([]int64, error) {
	query := `SELECT id FROM asset_types WHERE is_active = true ORDER BY id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query active asset type ids: %w", err)
	}
	defer rows.Close()

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("failed to scan active asset type ids: %w", err)
	}
	return ids, nil
}

// AssetTypeIsActive reports whether an asset type exists and is active.
func (r *PgxAssetTypeRepository) AssetTypeIsActive(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM asset_types WHERE id = $1 AND is_active = true);`
	return r.existsQuery(ctx, query, id)
}
