package repositories

import (
	"context"

	"github.com/amzplat/assetsvc/internal/core/domain"
)

// AssetTypeRepository defines read operations over the asset type catalog.
type AssetTypeRepository interface {
	// ListActiveAssetTypes retrieves every active asset type.
	ListActiveAssetTypes(ctx context.Context) ([]domain.AssetType, error)

	// ActiveAssetTypeIDs retrieves the IDs of every active asset type.
	ActiveAssetTypeIDs(ctx context.Context) ([]int64, error)

	// AssetTypeIsActive reports whether an asset type exists and is active.
	// Always answered by the durable store, never the cache: the mutation
	// path must see the latest activation state.
	AssetTypeIsActive(ctx context.Context, id int64) (bool, error)
}

// ActionTypeRepository defines read operations over the action type catalog.
type ActionTypeRepository interface {
	// ListActiveActionTypes retrieves every active action type.
	ListActiveActionTypes(ctx context.Context) ([]domain.ActionType, error)

	// ActionTypeIsActive reports whether an action type exists and is active.
	ActionTypeIsActive(ctx context.Context, id int64) (bool, error)

	// FindActiveActionTypeByID retrieves one active action type with its four
	// directional rules. Returns apperrors.ErrNotFound when absent or inactive.
	FindActiveActionTypeByID(ctx context.Context, id int64) (*domain.ActionType, error)
}
