package repositories

import (
	"context"

	"github.com/amzplat/assetsvc/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// AccountExists reports whether an account row exists for the pair.
	AccountExists(ctx context.Context, userID, assetTypeID int64) (bool, error)

	// AccountIsActive reports whether an account exists and is active.
	AccountIsActive(ctx context.Context, userID, assetTypeID int64) (bool, error)

	// FindAccount retrieves the single account for (userID, assetTypeID).
	FindAccount(ctx context.Context, userID, assetTypeID int64) (*domain.Account, error)

	// FindAccountsByAssetTypeIDs retrieves the user's accounts for the given
	// asset types. Missing pairs are simply absent from the result.
	FindAccountsByAssetTypeIDs(ctx context.Context, userID int64, assetTypeIDs []int64) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount inserts a new account with all balances at zero.
	// Returns apperrors.ErrDuplicate when the (userID, assetTypeID) pair exists.
	SaveAccount(ctx context.Context, userID, assetTypeID int64) error

	// ApplyMutations applies an ordered batch of balance mutations inside one
	// database transaction: per mutation a single UPDATE of all four balance
	// fields, the DEC-rule negative-balance guard, and one account_logs row.
	// The first failure rolls the whole batch back; nothing is committed.
	ApplyMutations(ctx context.Context, mutations []domain.Mutation) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
