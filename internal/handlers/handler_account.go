package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/amzplat/assetsvc/internal/apperrors"
	portssvc "github.com/amzplat/assetsvc/internal/core/ports/services"
	"github.com/amzplat/assetsvc/internal/dto"
	"github.com/amzplat/assetsvc/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{
		accountService: as,
	}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(r *gin.Engine, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	r.POST("/add-account", h.addAccount)
	r.POST("/account-info", h.accountInfo)
	r.POST("/account-action", h.accountAction)
}

// bindingErrorStatus distinguishes failed field validation (unprocessable)
// from a malformed request body. Batch bodies report per-element failures as
// a SliceValidationError, which does not unwrap to ValidationErrors.
func bindingErrorStatus(err error) int {
	var verrs validator.ValidationErrors
	var serrs binding.SliceValidationError
	if errors.As(err, &verrs) || errors.As(err, &serrs) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusBadRequest
}

// addAccount opens a new zero-balance account for a (user, asset type) pair.
func (h *accountHandler) addAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddAccount", slog.String("error", err.Error()))
		c.JSON(bindingErrorStatus(err), gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("user_id", req.UserID), slog.Int64("asset_type_id", req.AssetTypeID))
	logger.Info("Received request to add account")

	if err := h.accountService.CreateAccount(c.Request.Context(), req); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error adding account", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Account already exists")
			c.JSON(http.StatusConflict, gin.H{"error": "Account already exists"})
		default:
			logger.Error("Failed to add account in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add account"})
		}
		return
	}

	logger.Info("Account added successfully")
	c.Status(http.StatusCreated)
}

// accountInfo returns the user's account(s): one for the given asset type,
// or one per active asset type when no asset type is given.
func (h *accountHandler) accountInfo(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AccountInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AccountInfo", slog.String("error", err.Error()))
		c.JSON(bindingErrorStatus(err), gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int64("user_id", req.UserID))
	logger.Info("Received request for account info")

	accounts, err := h.accountService.AccountInfo(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error on account info", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("No accounts found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		default:
			logger.Error("Failed to get account info from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve account info"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}

// accountAction applies a batch of balance mutations as one all-or-nothing
// unit. Only available balance, frozen balance, total income and total
// expense are affected.
func (h *accountHandler) accountAction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var reqs []dto.AccountActionRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		logger.Warn("Failed to bind JSON for AccountAction", slog.String("error", err.Error()))
		c.JSON(bindingErrorStatus(err), gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	logger = logger.With(slog.Int("batch_size", len(reqs)))
	logger.Info("Received account action batch")

	if err := h.accountService.ApplyActions(c.Request.Context(), reqs); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error in action batch", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrForbidden):
			logger.Warn("Action on inactive account", slog.String("error", err.Error()))
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is not active"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			logger.Warn("Insufficient balance, batch rolled back", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Insufficient account balance"})
		default:
			logger.Error("Failed to apply action batch", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to apply account actions"})
		}
		return
	}

	logger.Info("Account action batch committed")
	c.Status(http.StatusOK)
}
