package mapping

import (
	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/amzplat/assetsvc/internal/models"
)

// ToDomainActionType converts a model ActionType to a domain ActionType
func ToDomainActionType(m models.ActionType) domain.ActionType {
	return domain.ActionType{
		ID:                     m.ID,
		Name:                   m.Name,
		Description:            m.Description,
		AvailableBalanceChange: domain.Change(m.AvailableBalanceChange),
		FrozenBalanceChange:    domain.Change(m.FrozenBalanceChange),
		TotalIncomeChange:      domain.Change(m.TotalIncomeChange),
		TotalExpenseChange:     domain.Change(m.TotalExpenseChange),
		IsActive:               m.IsActive,
	}
}

// ToDomainActionTypeSlice converts a slice of model ActionTypes to domain ActionTypes
func ToDomainActionTypeSlice(ms []models.ActionType) []domain.ActionType {
	ds := make([]domain.ActionType, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainActionType(m)
	}
	return ds
}
