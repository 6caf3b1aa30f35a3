package domain

import "github.com/shopspring/decimal"

// Change is the directional rule an action type applies to one balance field.
type Change string

const (
	ChangeInc  Change = "INC"
	ChangeDec  Change = "DEC"
	ChangeNone Change = "NONE"
)

// balanceScale is the fractional precision of all stored balances.
// Amount columns are NUMERIC(18,6); finer input is rejected upstream.
const balanceScale = 6

// Delta converts an amount into the signed delta this rule applies.
// The magnitude is |amount| truncated to the storage scale; the sign follows
// the rule, with NONE always yielding zero. Pure function, no store access.
func (c Change) Delta(amount decimal.Decimal) decimal.Decimal {
	magnitude := amount.Abs().Truncate(balanceScale)
	switch c {
	case ChangeInc:
		return magnitude
	case ChangeDec:
		return magnitude.Neg()
	default:
		return decimal.Zero
	}
}

// ActionType is a named business operation with fixed directional effects on
// the four balance fields of an account. Immutable business metadata, read
// far more often than written.
type ActionType struct {
	ID                     int64  `json:"id"`
	Name                   string `json:"name"`
	Description            string `json:"description"`
	AvailableBalanceChange Change `json:"availableBalanceChange"`
	FrozenBalanceChange    Change `json:"frozenBalanceChange"`
	TotalIncomeChange      Change `json:"totalIncomeChange"`
	TotalExpenseChange     Change `json:"totalExpenseChange"`
	IsActive               bool   `json:"isActive"`
}
