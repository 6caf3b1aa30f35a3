package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account mirrors the accounts table. Balance columns are NUMERIC(18,6);
// (user_id, asset_type_id) carries a UNIQUE constraint.
type Account struct {
	ID               int64           `db:"id"`
	UserID           int64           `db:"user_id"`
	AssetTypeID      int64           `db:"asset_type_id"`
	AvailableBalance decimal.Decimal `db:"available_balance"`
	FrozenBalance    decimal.Decimal `db:"frozen_balance"`
	TotalIncome      decimal.Decimal `db:"total_income"`
	TotalExpense     decimal.Decimal `db:"total_expense"`
	IsActive         bool            `db:"is_active"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
