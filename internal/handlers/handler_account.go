package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/jayamurli1954/GharMitra-sub002/internal/middleware"
	"github.com/jayamurli1954/GharMitra-sub002/internal/utils/accounting"
)

// accountHandler handles HTTP requests related to the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(as portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: as}
}

func RegisterAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := rg.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
		accounts.POST("/default-chart", h.initializeDefaultChart)
		accounts.GET("/:account_id", h.getAccount)
		accounts.PUT("/:account_id", h.updateAccount)
		accounts.DELETE("/:account_id", h.deactivateAccount)
		accounts.PUT("/:account_id/opening-balance", h.setOpeningBalance)
		accounts.GET("/:account_id/balance", h.getAccountBalance)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Adds an account to the society's chart of accounts
// @Tags accounts
// @Accept json
// @Produce json
// @Param society_id path string true "Society ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Duplicate account code"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), societyID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(account))
}

// listAccounts godoc
// @Summary List accounts
// @Description Lists the society's chart of accounts, optionally filtered by type
// @Tags accounts
// @Produce json
// @Param society_id path string true "Society ID"
// @Param accountType query string false "Filter by account type" Enums(ASSET, LIABILITY, EQUITY, INCOME, EXPENSE)
// @Param includeInactive query bool false "Include deactivated accounts"
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), societyID, params, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountsResponse(accounts))
}

// initializeDefaultChart godoc
// @Summary Seed the default chart of accounts
// @Description Creates the standard set of housing-society accounts; fails if any default code already exists
// @Tags accounts
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 201 {object} dto.ListAccountsResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Chart already initialized"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/default-chart [post]
func (h *accountHandler) initializeDefaultChart(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	accounts, err := h.accountService.InitializeDefaultChart(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to initialize default chart")
		return
	}

	c.JSON(http.StatusCreated, dto.ToListAccountsResponse(accounts))
}

// getAccount godoc
// @Summary Get account details
// @Tags accounts
// @Produce json
// @Param society_id path string true "Society ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/{account_id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	accountID := c.Param("account_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), societyID, accountID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// updateAccount godoc
// @Summary Update account metadata
// @Description Updates name and description; code and type are immutable
// @Tags accounts
// @Accept json
// @Produce json
// @Param society_id path string true "Society ID"
// @Param account_id path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/{account_id} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	accountID := c.Param("account_id")

	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), societyID, accountID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to update account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// deactivateAccount godoc
// @Summary Deactivate an account
// @Description Marks the account inactive so new postings to it are rejected
// @Tags accounts
// @Param society_id path string true "Society ID"
// @Param account_id path string true "Account ID"
// @Success 204 "No Content"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/{account_id} [delete]
func (h *accountHandler) deactivateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	accountID := c.Param("account_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.accountService.DeactivateAccount(c.Request.Context(), societyID, accountID, userID); err != nil {
		respondWithError(c, logger, err, "Failed to deactivate account")
		return
	}

	c.Status(http.StatusNoContent)
}

// setOpeningBalance godoc
// @Summary Override an account's opening balance
// @Description Sets the opening balance; once the account has posted lines the override requires force. The response includes a fresh balance sheet validation.
// @Tags accounts
// @Accept json
// @Produce json
// @Param society_id path string true "Society ID"
// @Param account_id path string true "Account ID"
// @Param balance body dto.SetOpeningBalanceRequest true "New opening balance"
// @Success 200 {object} dto.SetOpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Account has posted lines and force not set"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/{account_id}/opening-balance [put]
func (h *accountHandler) setOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	accountID := c.Param("account_id")

	var req dto.SetOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, validation, err := h.accountService.SetOpeningBalance(c.Request.Context(), societyID, accountID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to set opening balance")
		return
	}

	resp := dto.SetOpeningBalanceResponse{Account: dto.ToAccountResponse(account)}
	if validation != nil {
		v := dto.ToBalanceSheetValidationResponse(validation)
		resp.Validation = &v
	}
	c.JSON(http.StatusOK, resp)
}

// getAccountBalance godoc
// @Summary Verify an account's balance
// @Description Recomputes the balance from posted lines and reports whether the stored balance matches
// @Tags accounts
// @Produce json
// @Param society_id path string true "Society ID"
// @Param account_id path string true "Account ID"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/accounts/{account_id}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	accountID := c.Param("account_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), societyID, accountID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get account")
		return
	}

	stored, derived, err := h.accountService.CalculateAccountBalance(c.Request.Context(), societyID, accountID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to calculate account balance")
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:      account.AccountID,
		Code:           account.Code,
		StoredBalance:  stored,
		DerivedBalance: derived,
		InSync:         stored.Sub(derived).Abs().LessThanOrEqual(accounting.BalanceTolerance),
	})
}
