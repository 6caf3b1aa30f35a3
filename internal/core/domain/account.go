package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is one balance row per (user, asset type) pair. Balances are
// fixed-point decimals with 6 fractional digits and are mutated exclusively
// through the balance mutation engine. Accounts are never deleted, only
// deactivated.
type Account struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"userID"`
	AssetTypeID      int64           `json:"assetTypeID"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	FrozenBalance    decimal.Decimal `json:"frozenBalance"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpense     decimal.Decimal `json:"totalExpense"`
	IsActive         bool            `json:"isActive"`
}

// AccountLog is the append-only audit record of one applied mutation: the
// signed delta applied to each balance field and the resulting post-mutation
// balances. Immutable after creation.
type AccountLog struct {
	ID                    int64           `json:"id"`
	AccountID             int64           `json:"accountID"`
	ActionTypeID          int64           `json:"actionTypeID"`
	AmountAvailable       decimal.Decimal `json:"amountAvailableBalance"`
	AmountFrozen          decimal.Decimal `json:"amountFrozenBalance"`
	AmountTotalIncome     decimal.Decimal `json:"amountTotalIncome"`
	AmountTotalExpense    decimal.Decimal `json:"amountTotalExpense"`
	AvailableBalanceAfter decimal.Decimal `json:"availableBalanceAfter"`
	FrozenBalanceAfter    decimal.Decimal `json:"frozenBalanceAfter"`
	TotalIncomeAfter      decimal.Decimal `json:"totalIncomeAfter"`
	TotalExpenseAfter     decimal.Decimal `json:"totalExpenseAfter"`
	OrderNumber           string          `json:"orderNumber"`
	Description           string          `json:"description"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// Mutation is one fully resolved balance change, ready to be applied inside a
// transaction. The service computes the four signed deltas from the action
// type's rules; GuardAvailable/GuardFrozen mark which fields were decremented
// and therefore must not end up negative.
type Mutation struct {
	UserID         int64
	AssetTypeID    int64
	ActionTypeID   int64
	DeltaAvailable decimal.Decimal
	DeltaFrozen    decimal.Decimal
	DeltaIncome    decimal.Decimal
	DeltaExpense   decimal.Decimal
	GuardAvailable bool
	GuardFrozen    bool
	OrderNumber    string
	Description    string
}
