package dto

import "github.com/amzplat/assetsvc/internal/core/domain"

// AssetTypeResponse defines the data returned for an asset type listing.
type AssetTypeResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ActionTypeResponse defines the data returned for an action type listing,
// including the four directional rules.
type ActionTypeResponse struct {
	ID                     int64         `json:"id"`
	Name                   string        `json:"name"`
	Description            string        `json:"description"`
	AvailableBalanceChange domain.Change `json:"available_balance_change"`
	FrozenBalanceChange    domain.Change `json:"frozen_balance_change"`
	TotalIncomeChange      domain.Change `json:"total_income_change"`
	TotalExpenseChange     domain.Change `json:"total_expense_change"`
}

// ToAssetTypeResponse converts a domain.AssetType to its response DTO
func ToAssetTypeResponse(at domain.AssetType) AssetTypeResponse {
	return AssetTypeResponse{
		ID:          at.ID,
		Name:        at.Name,
		Description: at.Description,
	}
}

// ToListAssetTypeResponse converts a slice of domain.AssetType to response DTOs
func ToListAssetTypeResponse(ats []domain.AssetType) []AssetTypeResponse {
	res := make([]AssetTypeResponse, len(ats))
	for i, at := range ats {
		res[i] = ToAssetTypeResponse(at)
	}
	return res
}

// ToActionTypeResponse converts a domain.ActionType to its response DTO
func ToActionTypeResponse(at domain.ActionType) ActionTypeResponse {
	return ActionTypeResponse{
		ID:                     at.ID,
		Name:                   at.Name,
		Description:            at.Description,
		AvailableBalanceChange: at.AvailableBalanceChange,
		FrozenBalanceChange:    at.FrozenBalanceChange,
		TotalIncomeChange:      at.TotalIncomeChange,
		TotalExpenseChange:     at.TotalExpenseChange,
	}
}

// ToListActionTypeResponse converts a slice of domain.ActionType to response DTOs
func ToListActionTypeResponse(ats []domain.ActionType) []ActionTypeResponse {
	res := make([]ActionTypeResponse, len(ats))
	for i, at := range ats {
		res[i] = ToActionTypeResponse(at)
	}
	return res
}
