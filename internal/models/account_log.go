package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountLog mirrors the account_logs table. Rows are append-only: one per
// successfully applied mutation, recording both the signed deltas and the
// post-mutation balances.
type AccountLog struct {
	ID                    int64           `db:"id"`
	AccountID             int64           `db:"account_id"`
	ActionTypeID          int64           `db:"action_type_id"`
	AmountAvailable       decimal.Decimal `db:"amount_available_balance"`
	AmountFrozen          decimal.Decimal `db:"amount_frozen_balance"`
	AmountTotalIncome     decimal.Decimal `db:"amount_total_income"`
	AmountTotalExpense    decimal.Decimal `db:"amount_total_expense"`
	AvailableBalanceAfter decimal.Decimal `db:"available_balance_after"`
	FrozenBalanceAfter    decimal.Decimal `db:"frozen_balance_after"`
	TotalIncomeAfter      decimal.Decimal `db:"total_income_after"`
	TotalExpenseAfter     decimal.Decimal `db:"total_expense_after"`
	OrderNumber           string          `db:"order_number"`
	Description           string          `db:"description"`
	CreatedAt             time.Time       `db:"created_at"`
}
