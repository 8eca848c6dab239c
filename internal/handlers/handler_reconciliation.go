package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/jayamurli1954/GharMitra-sub002/internal/middleware"
)

// reconciliationHandler serves ledger integrity reports.
type reconciliationHandler struct {
	reconciliationService portssvc.ReconciliationSvcFacade
}

func newReconciliationHandler(rs portssvc.ReconciliationSvcFacade) *reconciliationHandler {
	return &reconciliationHandler{reconciliationService: rs}
}

func RegisterReconciliationRoutes(rg *gin.RouterGroup, reconciliationService portssvc.ReconciliationSvcFacade) {
	h := newReconciliationHandler(reconciliationService)

	reports := rg.Group("/reports")
	{
		reports.GET("/balance-sheet-validation", h.validateBalanceSheet)
		reports.GET("/member-dues", h.memberDues)
		reports.GET("/dues-reconciliation", h.duesReconciliation)
	}
}

// validateBalanceSheet godoc
// @Summary Validate the balance sheet
// @Description Checks the accounting equation across the ledger, treating net income as retained surplus
// @Tags reports
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 200 {object} dto.BalanceSheetValidationResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /societies/{society_id}/reports/balance-sheet-validation [get]
func (h *reconciliationHandler) validateBalanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	validation, err := h.reconciliationService.ValidateBalanceSheet(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to validate balance sheet")
		return
	}

	c.JSON(http.StatusOK, dto.ToBalanceSheetValidationResponse(validation))
}

// memberDues godoc
// @Summary Per-flat outstanding dues
// @Description Reports the outstanding dues of every flat on the receivable control account
// @Tags reports
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 200 {array} dto.FlatDuesResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Dues control account missing"
// @Security BearerAuth
// @Router /societies/{society_id}/reports/member-dues [get]
func (h *reconciliationHandler) memberDues(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dues, err := h.reconciliationService.MemberDuesReport(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to build member dues report")
		return
	}

	out := make([]dto.FlatDuesResponse, 0, len(dues))
	for _, d := range dues {
		out = append(out, dto.FlatDuesResponse{FlatID: d.FlatID, Outstanding: d.Outstanding})
	}
	c.JSON(http.StatusOK, out)
}

// duesReconciliation godoc
// @Summary Reconcile dues against the ledger
// @Description Compares the sum of per-flat dues with the receivable control account balance
// @Tags reports
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 200 {object} dto.DuesReconciliationResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Dues control account missing"
// @Security BearerAuth
// @Router /societies/{society_id}/reports/dues-reconciliation [get]
func (h *reconciliationHandler) duesReconciliation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	recon, err := h.reconciliationService.ReconcileDuesAgainstGL(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to reconcile dues")
		return
	}

	c.JSON(http.StatusOK, dto.ToDuesReconciliationResponse(recon))
}
