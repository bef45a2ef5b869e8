package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type HistoryHandler struct {
	historyService services.HistoryService
}

func NewHistoryHandler(historyService services.HistoryService) *HistoryHandler {
	return &HistoryHandler{historyService: historyService}
}

func (hh *HistoryHandler) MarkSeen(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quote_id", err)
		return
	}
	hh.historyService.MarkSeen(c.Request.Context(), requestUserID(c), quoteID)
	response.RespondOK(c, gin.H{"ok": true})
}

func (hh *HistoryHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	history, err := hh.historyService.List(c.Request.Context(), requestUserID(c), limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"history": history})
}
