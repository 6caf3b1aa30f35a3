package models

import "time"

// ActionType mirrors the action_types table. The four change columns hold
// 'INC', 'DEC' or 'NONE' (enforced by a CHECK constraint).
type ActionType struct {
	ID                     int64     `db:"id"`
	Name                   string    `db:"name"`
	Description            string    `db:"description"`
	AvailableBalanceChange string    `db:"available_balance_change"`
	FrozenBalanceChange    string    `db:"frozen_balance_change"`
	TotalIncomeChange      string    `db:"total_income_change"`
	TotalExpenseChange     string    `db:"total_expense_change"`
	IsActive               bool      `db:"is_active"`
	CreatedAt              time.Time `db:"created_at"`
	UpdatedAt              time.Time `db:"updated_at"`
}
