package dto

import (
	"fmt"

	"github.com/amzplat/assetsvc/internal/apperrors"
	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/shopspring/decimal"
)

// amountScale is the fractional precision accepted for amounts. The storage
// columns are NUMERIC(18,6); finer input is rejected rather than truncated to
// avoid silent precision loss.
const amountScale = 6

// CreateAccountRequest defines the data needed to open a new account.
type CreateAccountRequest struct {
	UserID      int64 `json:"user_id" binding:"required,min=1"`
	AssetTypeID int64 `json:"asset_type_id" binding:"required,min=1"`
}

// AccountInfoRequest defines the data for an account info query.
// AssetTypeID is optional; when absent, one row per active asset type is returned.
type AccountInfoRequest struct {
	UserID      int64  `json:"user_id" binding:"required,min=1"`
	AssetTypeID *int64 `json:"asset_type_id" binding:"omitempty,min=1"`
}

// AccountActionRequest is one balance mutation request within a batch.
// Amount is bound as a decimal so the fractional precision of the input is
// preserved exactly for validation.
type AccountActionRequest struct {
	UserID       int64            `json:"user_id" binding:"required,min=1"`
	AssetTypeID  int64            `json:"asset_type_id" binding:"required,min=1"`
	ActionTypeID int64            `json:"action_type_id" binding:"required,min=1"`
	Amount       *decimal.Decimal `json:"amount"`
	OrderNumber  *string          `json:"order_number" binding:"omitempty,min=32"`
	Description  *string          `json:"description" binding:"omitempty,min=1"`
}

// Validate applies the shape rules the binding layer cannot express. It is a
// pure check with no catalog access; the service composes it with the
// catalog-lookup validation.
func (r AccountActionRequest) Validate() error {
	if r.Amount == nil {
		return fmt.Errorf("%w: amount is required", apperrors.ErrValidation)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
	}
	if !r.Amount.Equal(r.Amount.Truncate(amountScale)) {
		return fmt.Errorf("%w: amount allows at most %d decimal places", apperrors.ErrValidation, amountScale)
	}
	return nil
}

// OrderNumberValue returns the order number or the empty string when absent.
func (r AccountActionRequest) OrderNumberValue() string {
	if r.OrderNumber == nil {
		return ""
	}
	return *r.OrderNumber
}

// DescriptionValue returns the description or the empty string when absent.
func (r AccountActionRequest) DescriptionValue() string {
	if r.Description == nil {
		return ""
	}
	return *r.Description
}

// AccountResponse defines the data returned for an account.
// Mirrors domain.Account.
type AccountResponse struct {
	ID               int64           `json:"id"`
	UserID           int64           `json:"user_id"`
	AssetTypeID      int64           `json:"asset_type_id"`
	AvailableBalance decimal.Decimal `json:"available_balance"`
	FrozenBalance    decimal.Decimal `json:"frozen_balance"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpense     decimal.Decimal `json:"total_expense"`
	IsActive         bool            `json:"is_active"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc domain.Account) AccountResponse {
	return AccountResponse{
		ID:               acc.ID,
		UserID:           acc.UserID,
		AssetTypeID:      acc.AssetTypeID,
		AvailableBalance: acc.AvailableBalance,
		FrozenBalance:    acc.FrozenBalance,
		TotalIncome:      acc.TotalIncome,
		TotalExpense:     acc.TotalExpense,
		IsActive:         acc.IsActive,
	}
}

// ToListAccountResponse converts a slice of domain.Account to AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(acc)
	}
	return res
}
