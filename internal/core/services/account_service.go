package services

import (
	"context"
	"fmt"

	"github.com/amzplat/assetsvc/internal/apperrors"
	"github.com/amzplat/assetsvc/internal/core/domain"
	portsrepo "github.com/amzplat/assetsvc/internal/core/ports/repositories"
	portssvc "github.com/amzplat/assetsvc/internal/core/ports/services"
	"github.com/amzplat/assetsvc/internal/dto"
)

// AccountService owns account creation, queries, and the balance mutation
// engine. All balance changes flow through ApplyActions.
type AccountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	catalog     portssvc.CatalogSvcFacade
}

func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, catalog portssvc.CatalogSvcFacade) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		catalog:     catalog,
	}
}

// CreateAccount opens a zero-balance account for (user, asset type).
func (s *AccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest) error {
	if err := s.requireActiveAssetType(ctx, req.AssetTypeID); err != nil {
		return err
	}

	exists, err := s.accountRepo.AccountExists(ctx, req.UserID, req.AssetTypeID)
	if err != nil {
		return fmt.Errorf("failed to check account existence: %w", err)
	}
	if exists {
		return apperrors.ErrDuplicate
	}

	return s.accountRepo.SaveAccount(ctx, req.UserID, req.AssetTypeID)
}

// AccountInfo returns the user's account for one asset type, or one row per
// active asset type when no asset type is given. An empty result is ErrNotFound.
func (s *AccountService) AccountInfo(ctx context.Context, req dto.AccountInfoRequest) ([]domain.Account, error) {
	if req.AssetTypeID != nil {
		if err := s.requireActiveAssetType(ctx, *req.AssetTypeID); err != nil {
			return nil, err
		}
		account, err := s.accountRepo.FindAccount(ctx, req.UserID, *req.AssetTypeID)
		if err != nil {
			return nil, err
		}
		return []domain.Account{*account}, nil
	}

	assetTypeIDs, err := s.catalog.ActiveAssetTypeIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve active asset types: %w", err)
	}
	if len(assetTypeIDs) == 0 {
		return nil, apperrors.ErrNotFound
	}

	accounts, err := s.accountRepo.FindAccountsByAssetTypeIDs(ctx, req.UserID, assetTypeIDs)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, apperrors.ErrNotFound
	}
	return accounts, nil
}

// ApplyActions is the balance mutation engine. Requests are validated and
// resolved in order, then the whole batch is applied inside one database
// transaction: the first validation failure, inactive account, or tripped
// balance guard aborts everything and nothing is committed.
func (s *AccountService) ApplyActions(ctx context.Context, reqs []dto.AccountActionRequest) error {
	if len(reqs) == 0 {
		return nil
	}

	mutations := make([]domain.Mutation, 0, len(reqs))
	for i, req := range reqs {
		mutation, err := s.resolveMutation(ctx, req)
		if err != nil {
			return fmt.Errorf("request %d: %w", i, err)
		}
		mutations = append(mutations, *mutation)
	}

	return s.accountRepo.ApplyMutations(ctx, mutations)
}

// resolveMutation runs the per-request validation chain and turns an action
// type's rules plus an amount into four signed deltas.
func (s *AccountService) resolveMutation(ctx context.Context, req dto.AccountActionRequest) (*domain.Mutation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requireActiveAssetType(ctx, req.AssetTypeID); err != nil {
		return nil, err
	}

	active, err := s.catalog.ActionTypeIsActive(ctx, req.ActionTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check action type %d: %w", req.ActionTypeID, err)
	}
	if !active {
		return nil, fmt.Errorf("%w: invalid action_type_id", apperrors.ErrValidation)
	}

	accountActive, err := s.accountRepo.AccountIsActive(ctx, req.UserID, req.AssetTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to check account activity: %w", err)
	}
	if !accountActive {
		return nil, apperrors.ErrForbidden
	}

	actionType, err := s.catalog.GetActionType(ctx, req.ActionTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve action type %d: %w", req.ActionTypeID, err)
	}

	amount := *req.Amount
	return &domain.Mutation{
		UserID:         req.UserID,
		AssetTypeID:    req.AssetTypeID,
		ActionTypeID:   actionType.ID,
		DeltaAvailable: actionType.AvailableBalanceChange.Delta(amount),
		DeltaFrozen:    actionType.FrozenBalanceChange.Delta(amount),
		DeltaIncome:    actionType.TotalIncomeChange.Delta(amount),
		DeltaExpense:   actionType.TotalExpenseChange.Delta(amount),
		GuardAvailable: actionType.AvailableBalanceChange == domain.ChangeDec,
		GuardFrozen:    actionType.FrozenBalanceChange == domain.ChangeDec,
		OrderNumber:    req.OrderNumberValue(),
		Description:    req.DescriptionValue(),
	}, nil
}

func (s *AccountService) requireActiveAssetType(ctx context.Context, assetTypeID int64) error {
	active, err := s.catalog.AssetTypeIsActive(ctx, assetTypeID)
	if err != nil {
		return fmt.Errorf("failed to check asset type %d: %w", assetTypeID, err)
	}
	if !active {
		return fmt.Errorf("%w: invalid asset_type_id", apperrors.ErrValidation)
	}
	return nil
}
