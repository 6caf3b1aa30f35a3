package services_test

import (
	"context"
	"testing"

	"github.com/amzplat/assetsvc/internal/apperrors"
	"github.com/amzplat/assetsvc/internal/core/domain"
	"github.com/amzplat/assetsvc/internal/core/services"
	"github.com/amzplat/assetsvc/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) AccountExists(ctx context.Context, userID, assetTypeID int64) (bool, error) {
	args := m.Called(ctx, userID, assetTypeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) AccountIsActive(ctx context.Context, userID, assetTypeID int64) (bool, error) {
	args := m.Called(ctx, userID, assetTypeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAccountRepository) FindAccount(ctx context.Context, userID, assetTypeID int64) (*domain.Account, error) {
	args := m.Called(ctx, userID, assetTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountsByAssetTypeIDs(ctx context.Context, userID int64, assetTypeIDs []int64) ([]domain.Account, error) {
	args := m.Called(ctx, userID, assetTypeIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, userID, assetTypeID int64) error {
	args := m.Called(ctx, userID, assetTypeID)
	return args.Error(0)
}

func (m *MockAccountRepository) ApplyMutations(ctx context.Context, mutations []domain.Mutation) error {
	args := m.Called(ctx, mutations)
	return args.Error(0)
}

// MockCatalogService is a mock type for the CatalogSvcFacade interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListAssetTypes(ctx context.Context) ([]domain.AssetType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AssetType), args.Error(1)
}

func (m *MockCatalogService) ListActionTypes(ctx context.Context) ([]domain.ActionType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActionType), args.Error(1)
}

func (m *MockCatalogService) AssetTypeIsActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) ActionTypeIsActive(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockCatalogService) ActiveAssetTypeIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCatalogService) GetActionType(ctx context.Context, id int64) (*domain.ActionType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ActionType), args.Error(1)
}

// --- Test Suite Setup ---

type AccountServiceTestSuite struct {
	suite.Suite
	mockRepo    *MockAccountRepository
	mockCatalog *MockCatalogService
	service     *services.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockAccountRepository)
	suite.mockCatalog = new(MockCatalogService)
	suite.service = services.NewAccountService(suite.mockRepo, suite.mockCatalog)
}

func amountPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// withdraw decrements the available balance and counts it as expense.
func withdrawActionType() *domain.ActionType {
	return &domain.ActionType{
		ID:                     7,
		Name:                   "withdraw",
		AvailableBalanceChange: domain.ChangeDec,
		FrozenBalanceChange:    domain.ChangeNone,
		TotalIncomeChange:      domain.ChangeNone,
		TotalExpenseChange:     domain.ChangeInc,
		IsActive:               true,
	}
}

func (suite *AccountServiceTestSuite) expectValidMutationChecks(userID, assetTypeID, actionTypeID int64) {
	ctx := mock.Anything
	suite.mockCatalog.On("AssetTypeIsActive", ctx, assetTypeID).Return(true, nil)
	suite.mockCatalog.On("ActionTypeIsActive", ctx, actionTypeID).Return(true, nil)
	suite.mockRepo.On("AccountIsActive", ctx, userID, assetTypeID).Return(true, nil)
	suite.mockCatalog.On("GetActionType", ctx, actionTypeID).Return(withdrawActionType(), nil)
}

// --- CreateAccount ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{UserID: 1, AssetTypeID: 2}

	suite.mockCatalog.On("AssetTypeIsActive", ctx, int64(2)).Return(true, nil).Once()
	suite.mockRepo.On("AccountExists", ctx, int64(1), int64(2)).Return(false, nil).Once()
	suite.mockRepo.On("SaveAccount", ctx, int64(1), int64(2)).Return(nil).Once()

	err := suite.service.CreateAccount(ctx, req)

	suite.Require().NoError(err)
	suite.mockRepo.AssertExpectations(suite.T())
	suite.mockCatalog.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_InactiveAssetType() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{UserID: 1, AssetTypeID: 99}

	suite.mockCatalog.On("AssetTypeIsActive", ctx, int64(99)).Return(false, nil).Once()

	err := suite.service.CreateAccount(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestCreateAccount_Duplicate() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{UserID: 1, AssetTypeID: 2}

	suite.mockCatalog.On("AssetTypeIsActive", ctx, int64(2)).Return(true, nil).Once()
	suite.mockRepo.On("AccountExists", ctx, int64(1), int64(2)).Return(true, nil).Once()

	err := suite.service.CreateAccount(ctx, req)

	suite.Require().ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything, mock.Anything)
}

// --- AccountInfo ---

func (suite *AccountServiceTestSuite) TestAccountInfo_SingleAssetType() {
	ctx := context.Background()
	assetTypeID := int64(2)
	account := domain.Account{ID: 10, UserID: 1, AssetTypeID: 2, IsActive: true}

	suite.mockCatalog.On("AssetTypeIsActive", ctx, assetTypeID).Return(true, nil).Once()
	suite.mockRepo.On("FindAccount", ctx, int64(1), assetTypeID).Return(&account, nil).Once()

	accounts, err := suite.service.AccountInfo(ctx, dto.AccountInfoRequest{UserID: 1, AssetTypeID: &assetTypeID})

	suite.Require().NoError(err)
	suite.Require().Len(accounts, 1)
	suite.Equal(account, accounts[0])
}

func (suite *AccountServiceTestSuite) TestAccountInfo_SingleAssetType_NotFound() {
	ctx := context.Background()
	assetTypeID := int64(2)

	suite.mockCatalog.On("AssetTypeIsActive", ctx, assetTypeID).Return(true, nil).Once()
	suite.mockRepo.On("FindAccount", ctx, int64(1), assetTypeID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.AccountInfo(ctx, dto.AccountInfoRequest{UserID: 1, AssetTypeID: &assetTypeID})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *AccountServiceTestSuite) TestAccountInfo_AllActiveAssetTypes() {
	ctx := context.Background()
	accounts := []domain.Account{
		{ID: 10, UserID: 1, AssetTypeID: 1},
		{ID: 11, UserID: 1, AssetTypeID: 2},
	}

	suite.mockCatalog.On("ActiveAssetTypeIDs", ctx).Return([]int64{1, 2}, nil).Once()
	suite.mockRepo.On("FindAccountsByAssetTypeIDs", ctx, int64(1), []int64{1, 2}).Return(accounts, nil).Once()

	got, err := suite.service.AccountInfo(ctx, dto.AccountInfoRequest{UserID: 1})

	suite.Require().NoError(err)
	suite.Equal(accounts, got)
}

func (suite *AccountServiceTestSuite) TestAccountInfo_NoAccounts() {
	ctx := context.Background()

	suite.mockCatalog.On("ActiveAssetTypeIDs", ctx).Return([]int64{1, 2}, nil).Once()
	suite.mockRepo.On("FindAccountsByAssetTypeIDs", ctx, int64(1), []int64{1, 2}).Return([]domain.Account{}, nil).Once()

	_, err := suite.service.AccountInfo(ctx, dto.AccountInfoRequest{UserID: 1})

	suite.Require().ErrorIs(err, apperrors.ErrNotFound)
}

// --- ApplyActions ---

func (suite *AccountServiceTestSuite) TestApplyActions_ComputesSignedDeltas() {
	ctx := context.Background()
	suite.expectValidMutationChecks(1, 2, 7)

	var applied []domain.Mutation
	suite.mockRepo.On("ApplyMutations", mock.Anything, mock.AnythingOfType("[]domain.Mutation")).
		Run(func(args mock.Arguments) {
			applied = args.Get(1).([]domain.Mutation)
		}).Return(nil).Once()

	req := dto.AccountActionRequest{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("5")}
	err := suite.service.ApplyActions(ctx, []dto.AccountActionRequest{req})

	suite.Require().NoError(err)
	suite.Require().Len(applied, 1)
	mut := applied[0]
	suite.True(mut.DeltaAvailable.Equal(decimal.RequireFromString("-5")), "got %s", mut.DeltaAvailable)
	suite.True(mut.DeltaFrozen.IsZero())
	suite.True(mut.DeltaIncome.IsZero())
	suite.True(mut.DeltaExpense.Equal(decimal.RequireFromString("5")), "got %s", mut.DeltaExpense)
	suite.True(mut.GuardAvailable)
	suite.False(mut.GuardFrozen)
	suite.Equal(int64(7), mut.ActionTypeID)
}

func (suite *AccountServiceTestSuite) TestApplyActions_PreservesAmountPrecision() {
	ctx := context.Background()
	suite.expectValidMutationChecks(1, 2, 7)

	var applied []domain.Mutation
	suite.mockRepo.On("ApplyMutations", mock.Anything, mock.AnythingOfType("[]domain.Mutation")).
		Run(func(args mock.Arguments) {
			applied = args.Get(1).([]domain.Mutation)
		}).Return(nil).Once()

	req := dto.AccountActionRequest{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("1.123456")}
	err := suite.service.ApplyActions(ctx, []dto.AccountActionRequest{req})

	suite.Require().NoError(err)
	suite.Require().Len(applied, 1)
	suite.Equal("-1.123456", applied[0].DeltaAvailable.String())
}

func (suite *AccountServiceTestSuite) TestApplyActions_InvalidRequestAbortsBeforeStore() {
	ctx := context.Background()
	suite.expectValidMutationChecks(1, 2, 7)

	// Second request carries 7 fractional digits; the batch must never reach
	// the repository.
	reqs := []dto.AccountActionRequest{
		{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("5")},
		{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("1.1234567")},
	}

	err := suite.service.ApplyActions(ctx, reqs)

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "request 1")
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyMutations", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestApplyActions_InactiveAccount() {
	ctx := context.Background()
	suite.mockCatalog.On("AssetTypeIsActive", mock.Anything, int64(2)).Return(true, nil)
	suite.mockCatalog.On("ActionTypeIsActive", mock.Anything, int64(7)).Return(true, nil)
	suite.mockRepo.On("AccountIsActive", mock.Anything, int64(1), int64(2)).Return(false, nil).Once()

	req := dto.AccountActionRequest{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("5")}
	err := suite.service.ApplyActions(ctx, []dto.AccountActionRequest{req})

	suite.Require().ErrorIs(err, apperrors.ErrForbidden)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyMutations", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestApplyActions_InactiveActionType() {
	ctx := context.Background()
	suite.mockCatalog.On("AssetTypeIsActive", mock.Anything, int64(2)).Return(true, nil)
	suite.mockCatalog.On("ActionTypeIsActive", mock.Anything, int64(7)).Return(false, nil).Once()

	req := dto.AccountActionRequest{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("5")}
	err := suite.service.ApplyActions(ctx, []dto.AccountActionRequest{req})

	suite.Require().ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "action_type_id")
}

func (suite *AccountServiceTestSuite) TestApplyActions_InsufficientBalancePropagates() {
	ctx := context.Background()
	suite.expectValidMutationChecks(1, 2, 7)
	suite.mockRepo.On("ApplyMutations", mock.Anything, mock.AnythingOfType("[]domain.Mutation")).
		Return(apperrors.ErrInsufficientBalance).Once()

	req := dto.AccountActionRequest{UserID: 1, AssetTypeID: 2, ActionTypeID: 7, Amount: amountPtr("15")}
	err := suite.service.ApplyActions(ctx, []dto.AccountActionRequest{req})

	suite.Require().ErrorIs(err, apperrors.ErrInsufficientBalance)
}

func (suite *AccountServiceTestSuite) TestApplyActions_EmptyBatch() {
	err := suite.service.ApplyActions(context.Background(), nil)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "ApplyMutations", mock.Anything, mock.Anything)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
