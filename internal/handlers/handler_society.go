package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/jayamurli1954/GharMitra-sub002/internal/core/ports/services"
	"github.com/jayamurli1954/GharMitra-sub002/internal/dto"
	"github.com/jayamurli1954/GharMitra-sub002/internal/middleware"
)

// societyHandler handles HTTP requests related to societies and membership.
type societyHandler struct {
	societyService portssvc.SocietySvcFacade
}

func newSocietyHandler(ss portssvc.SocietySvcFacade) *societyHandler {
	return &societyHandler{societyService: ss}
}

// RegisterSocietyRoutes registers society routes and nests the ledger routes
// under the society-specific group.
func RegisterSocietyRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newSocietyHandler(services.SocietySvc)

	societiesTopLevel := rg.Group("/societies")
	{
		societiesTopLevel.POST("", h.createSociety)
		societiesTopLevel.GET("", h.listMySocieties)
	}

	societySpecific := rg.Group("/societies/:society_id")
	{
		societySpecific.GET("", h.getSociety)

		members := societySpecific.Group("/members")
		{
			members.GET("", h.listMembers)
			members.POST("", h.addMember)
		}

		RegisterAccountRoutes(societySpecific, services.AccountSvc)
		RegisterJournalRoutes(societySpecific, services.JournalSvc)
		RegisterTransactionRoutes(societySpecific, services.TransactionSvc)
		RegisterReconciliationRoutes(societySpecific, services.ReconciliationSvc)
	}
}

// createSociety godoc
// @Summary Create a new society
// @Description Creates a housing society with the caller as its first admin
// @Tags societies
// @Accept json
// @Produce json
// @Param society body dto.CreateSocietyRequest true "Society details"
// @Success 201 {object} dto.SocietyResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /societies [post]
func (h *societyHandler) createSociety(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateSocietyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateSociety", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	society, err := h.societyService.CreateSociety(c.Request.Context(), req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create society")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSocietyResponse(society))
}

// listMySocieties godoc
// @Summary List the caller's societies
// @Tags societies
// @Produce json
// @Success 200 {array} dto.SocietyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /societies [get]
func (h *societyHandler) listMySocieties(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	societies, err := h.societyService.ListUserSocieties(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list societies")
		return
	}

	out := make([]dto.SocietyResponse, 0, len(societies))
	for i := range societies {
		out = append(out, dto.ToSocietyResponse(&societies[i]))
	}
	c.JSON(http.StatusOK, out)
}

// getSociety godoc
// @Summary Get society details
// @Tags societies
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 200 {object} dto.SocietyResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Society not found"
// @Security BearerAuth
// @Router /societies/{society_id} [get]
func (h *societyHandler) getSociety(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	society, err := h.societyService.GetSocietyByID(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to get society")
		return
	}

	c.JSON(http.StatusOK, dto.ToSocietyResponse(society))
}

// listMembers godoc
// @Summary List society members
// @Tags societies
// @Produce json
// @Param society_id path string true "Society ID"
// @Success 200 {array} dto.SocietyMemberResponse
// @Failure 403 {object} map[string]string "Forbidden"
// @Security BearerAuth
// @Router /societies/{society_id}/members [get]
func (h *societyHandler) listMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	members, err := h.societyService.ListMembers(c.Request.Context(), societyID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list members")
		return
	}

	out := make([]dto.SocietyMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, dto.ToSocietyMemberResponse(&members[i]))
	}
	c.JSON(http.StatusOK, out)
}

// addMember godoc
// @Summary Add a member to a society
// @Description Admin-only: enrolls a user into the society with a role and optional flat
// @Tags societies
// @Accept json
// @Produce json
// @Param society_id path string true "Society ID"
// @Param member body dto.AddSocietyMemberRequest true "Member details"
// @Success 201 {object} dto.SocietyMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 409 {object} map[string]string "Already a member"
// @Security BearerAuth
// @Router /societies/{society_id}/members [post]
func (h *societyHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	societyID := c.Param("society_id")

	var req dto.AddSocietyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	member, err := h.societyService.AddMember(c.Request.Context(), societyID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add member")
		return
	}

	c.JSON(http.StatusCreated, dto.ToSocietyMemberResponse(member))
}
