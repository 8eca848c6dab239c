package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/jayamurli1954/GharMitra-sub002/internal/middleware"
)

// journalHandler handles HTTP requests related to journal postings.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: js}
}

func RegisterJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journal_id", h.getJournal)
		journals.POST("/:journal_id/reverse", h.reverseJournal)
	}

	// account statement lives beside journals rather than under a single
	// journal, it spans many of them
	rg.GET("/transactions", h.listTransactionsByAccount)
}

// createJournal godoc
// @Summary Post a journal
// @Description Validates, numbers and atomically posts a balanced multi-line journal
// @Tags journals
// @Accept json
// @Produce json
// @Param society_id path string true "Society ID"
// @Param journal body dto.CreateJournalRequest true "Journal details"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Invalid or unbalanced journal"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateJournal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), societyID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create journal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(journal))
}

// listJournals godoc
// @Summary List journals
// @Description Lists the society's journals newest first with keyset pagination
// @Tags journals
// @Produce json
// @Param society_id path string true "Society ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Param includeReversals query bool false "Include reversed and reversal journals"
// @Param includeTransactions query bool false "Embed journal lines in each entry"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /societies/{society_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journals, nextToken, err := h.journalService.ListJournals(c.Request.Context(), societyID, params, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list journals")
		return
	}

	c.JSON(http.StatusOK, dto.ToListJournalsResponse(journals, nextToken))
}

// getJournal godoc
// @Summary Get a journal with its lines
// @Tags journals
// @Produce json
// @Param society_id path string true "Society ID"
// @Param journal_id path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Journal not found"
// @Security BearerAuth
// @Router /societies/{society_id}/journals/{journal_id} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	journalID := c.Param("journal_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), societyID, journalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get journal")
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalResponse(journal))
}

// reverseJournal godoc
// @Summary Reverse a posted journal
// @Description Posts a mirror-image journal that undoes the original and links the two
// @Tags journals
// @Produce json
// @Param society_id path string true "Society ID"
// @Param journal_id path string true "Journal ID to reverse"
// @Success 201 {object} dto.JournalResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Journal not found"
// @Failure 409 {object} map[string]string "Journal already reversed"
// @Security BearerAuth
// @Router /societies/{society_id}/journals/{journal_id}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")
	journalID := c.Param("journal_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	reversal, err := h.journalService.ReverseJournal(c.Request.Context(), societyID, journalID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reverse journal")
		return
	}

	c.JSON(http.StatusCreated, dto.ToJournalResponse(reversal))
}

// listTransactionsByAccount godoc
// @Summary Account statement
// @Description Lists an account's journal lines newest first with running balances
// @Tags journals
// @Produce json
// @Param society_id path string true "Society ID"
// @Param accountId query string true "Account ID"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Account not found"
// @Security BearerAuth
// @Router /societies/{society_id}/transactions [get]
func (h *journalHandler) listTransactionsByAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, nextToken, err := h.journalService.ListTransactionsByAccount(c.Request.Context(), societyID, params, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, nextToken))
}
