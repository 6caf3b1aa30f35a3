package services

import (
	"context"

	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/amzplat/assetsvc/internal/dto"
)

// AccountSvcFacade exposes account creation, queries, and the balance
// mutation engine.
type AccountSvcFacade interface {
	// CreateAccount opens a zero-balance account for (user, asset type).
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest) error

	// AccountInfo returns the user's account for one asset type, or one row
	// per active asset type when no asset type is given.
	AccountInfo(ctx context.Context, req dto.AccountInfoRequest) ([]domain.Account, error)

	// ApplyActions validates and applies a batch of mutation requests as one
	// all-or-nothing unit, in the given order.
	ApplyActions(ctx context.Context, reqs []dto.AccountActionRequest) error
}
