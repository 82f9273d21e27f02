package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

type historyHandler struct {
	historyService portssvc.HistorySvcFacade
}

func registerHistoryRoutes(rg *gin.RouterGroup, jwtSecret string, hs portssvc.HistorySvcFacade) {
	h := &historyHandler{historyService: hs}

	history := rg.Group("/history", middleware.OptionalAuthMiddleware(jwtSecret))
	{
		history.GET("", h.listHistory)
		history.DELETE("", h.clearHistory)
	}
}

// listHistory godoc
// @Summary Get conversion history
// @Description Newest first. Signed-in users see their own history; guests pass guestId or X-Guest-ID.
// @Tags history
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 5, max: 100)"
// @Param guestId query string false "Guest identifier"
// @Success 200 {object} dto.ListHistoryResponse
// @Failure 400 {object} ErrorResponse "Missing guest id for unauthenticated requests"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [get]
func (h *historyHandler) listHistory(c *gin.Context) {
	var params dto.ListHistoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	identity := middleware.GetIdentity(c)
	page, err := h.historyService.ListHistory(c.Request.Context(), identity, params.Page, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to load conversion history")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHistoryResponse(page, params.Page, params.Limit))
}

// clearHistory godoc
// @Summary Clear conversion history
// @Tags history
// @Produce json
// @Param guestId query string false "Guest identifier"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Missing guest id for unauthenticated requests"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /history [delete]
func (h *historyHandler) clearHistory(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	deleted, err := h.historyService.ClearHistory(c.Request.Context(), identity)
	if err != nil {
		respondError(c, err, "Failed to clear conversion history")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("History cleared", slog.Int64("deleted", deleted))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "History cleared"})
}
