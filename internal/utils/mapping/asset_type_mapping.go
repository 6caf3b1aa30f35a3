package mapping

import (
	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/amzplat/assetsvc/internal/models"
)

// ToDomainAssetType converts a model AssetType to a domain AssetType
func ToDomainAssetType(m models.AssetType) domain.AssetType {
	return domain.AssetType{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		IsActive:    m.IsActive,
	}
}

// ToDomainAssetTypeSlice converts a slice of model AssetTypes to domain AssetTypes
func ToDomainAssetTypeSlice(ms []models.AssetType) []domain.AssetType {
	ds := make([]domain.AssetType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAssetType(m)
	}
	return ds
}
