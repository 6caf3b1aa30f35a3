package services

import (
	"context"

	"github.com/amzplat/assetsvc/internal/core/domain"
)

// CatalogSvcFacade exposes the two reference catalogs. List reads prefer a
// short-lived cached snapshot; activity checks always consult the durable
// store so mutation-path correctness sees the latest activation state.
type CatalogSvcFacade interface {
	ListAssetTypes(ctx context.Context) ([]domain.AssetType, error)
	ListActionTypes(ctx context.Context) ([]domain.ActionType, error)

	AssetTypeIsActive(ctx context.Context, id int64) (bool, error)
	ActionTypeIsActive(ctx context.Context, id int64) (bool, error)

	ActiveAssetTypeIDs(ctx context.Context) ([]int64, error)
	GetActionType(ctx context.Context, id int64) (*domain.ActionType, error)
}
