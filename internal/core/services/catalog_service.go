package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amzplat/assetsvc/internal/core/domain"
	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	"github.com/amzplat/assetsvc/internal/platform/cache"
)

// Cache keys for the two catalog snapshots.
const (
	assetTypeCacheKey  = "asset_type"
	actionTypeCacheKey = "action_type"
)

// CatalogService serves the two reference catalogs. List reads go through a
// short-lived cached snapshot; activity checks always hit the durable store.
type CatalogService struct {
	assetTypeRepo  portsrepo.AssetTypeRepository
	actionTypeRepo portsrepo.ActionTypeRepository
	cache          cache.SnapshotCache
	cacheTTL       time.Duration
	logger         *slog.Logger
}

func NewCatalogService(
	assetTypeRepo portsrepo.AssetTypeRepository,
	actionTypeRepo portsrepo.ActionTypeRepository,
	snapshotCache cache.SnapshotCache,
	cacheTTL time.Duration,
	logger *slog.Logger,
) *CatalogService {
	return &CatalogService{
		assetTypeRepo:  assetTypeRepo,
		actionTypeRepo: actionTypeRepo,
		cache:          snapshotCache,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// ListAssetTypes returns the active asset types, preferring the cached
// snapshot over the durable store.
func (s *CatalogService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	var cached []domain.AssetType
	if s.readSnapshot(ctx, assetTypeCacheKey, &cached) {
		return cached, nil
	}

	assetTypes, err := s.assetTypeRepo.ListActiveAssetTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list asset types: %w", err)
	}
	s.writeSnapshot(ctx, assetTypeCacheKey, assetTypes)
	return assetTypes, nil
}

// ListActionTypes returns the active action types, preferring the cached
// snapshot over the durable store.
func (s *CatalogService) ListActionTypes(ctx context.Context) ([]domain.ActionType, error) {
	var cached []domain.ActionType
	if s.readSnapshot(ctx, actionTypeCacheKey, &cached) {
		return cached, nil
	}

	actionTypes, err := s.actionTypeRepo.ListActiveActionTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list action types: %w", err)
	}
	s.writeSnapshot(ctx, actionTypeCacheKey, actionTypes)
	return actionTypes, nil
}

// AssetTypeIsActive checks the durable store directly, bypassing the cache,
// so a deactivation takes effect on the next mutation attempt.
func (s *CatalogService) AssetTypeIsActive(ctx context.Context, id int64) (bool, error) {
	return s.assetTypeRepo.AssetTypeIsActive(ctx, id)
}

// ActionTypeIsActive checks the durable store directly, bypassing the cache.
func (s *CatalogService) ActionTypeIsActive(ctx context.Context, id int64) (bool, error) {
	return s.actionTypeRepo.ActionTypeIsActive(ctx, id)
}

// ActiveAssetTypeIDs returns the IDs of every active asset type.
func (s *CatalogService) ActiveAssetTypeIDs(ctx context.Context) ([]int64, error) {
	return s.assetTypeRepo.ActiveAssetTypeIDs(ctx)
}

// GetActionType retrieves one active action type with its directional rules.
func (s *CatalogService) GetActionType(ctx context.Context, id int64) (*domain.ActionType, error) {
	return s.actionTypeRepo.FindActiveActionTypeByID(ctx, id)
}

// readSnapshot reports whether a usable snapshot was found under key. Cache
// errors and malformed payloads count as a miss, never as a failure.
func (s *CatalogService) readSnapshot(ctx context.Context, key string, dest any) bool {
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Catalog cache read failed, falling through to store",
				slog.String("key", key), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		s.logger.Warn("Catalog cache snapshot malformed, falling through to store",
			slog.String("key", key), slog.String("error", err.Error()))
		return false
	}
	return true
}

// writeSnapshot refreshes the cache best-effort; a failure only logs.
func (s *CatalogService) writeSnapshot(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("Failed to serialize catalog snapshot",
			slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to refresh catalog cache",
			slog.String("key", key), slog.String("error", err.Error()))
	}
}
