package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type StreakHandler struct {
	streakService    services.StreakService
	shareCardService services.ShareCardService
}

func NewStreakHandler(streakService services.StreakService, shareCardService services.ShareCardService) *StreakHandler {
	return &StreakHandler{
		streakService:    streakService,
		shareCardService: shareCardService,
	}
}

func (sh *StreakHandler) CheckIn(c *gin.Context) {
	result, err := sh.streakService.CheckIn(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, result)
}

func (sh *StreakHandler) Week(c *gin.Context) {
	week, err := sh.streakService.Week(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"week": week})
}

func (sh *StreakHandler) ShareCard(c *gin.Context) {
	if sh.shareCardService == nil {
		response.RespondError(c, http.StatusServiceUnavailable, "share_card_unavailable", nil)
		return
	}
	buf, err := sh.shareCardService.Render(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
