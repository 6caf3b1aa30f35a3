package mapping

import (
	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/amzplat/assetsvc/internal/models"
)

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		ID:               m.ID,
		UserID:           m.UserID,
		AssetTypeID:      m.AssetTypeID,
		AvailableBalance: m.AvailableBalance,
		FrozenBalance:    m.FrozenBalance,
		TotalIncome:      m.TotalIncome,
		TotalExpense:     m.TotalExpense,
		IsActive:         m.IsActive,
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}

// ToDomainAccountLog converts a model AccountLog to a domain AccountLog
func ToDomainAccountLog(m models.AccountLog) domain.AccountLog {
	return domain.AccountLog{
		ID:                    m.ID,
		AccountID:             m.AccountID,
		ActionTypeID:          m.ActionTypeID,
		AmountAvailable:       m.AmountAvailable,
		AmountFrozen:          m.AmountFrozen,
		AmountTotalIncome:     m.AmountTotalIncome,
		AmountTotalExpense:    m.AmountTotalExpense,
		AvailableBalanceAfter: m.AvailableBalanceAfter,
		FrozenBalanceAfter:    m.FrozenBalanceAfter,
		TotalIncomeAfter:      m.TotalIncomeAfter,
		TotalExpenseAfter:     m.TotalExpenseAfter,
		OrderNumber:           m.OrderNumber,
		Description:           m.Description,
		CreatedAt:             m.CreatedAt,
	}
}
