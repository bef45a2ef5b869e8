package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type ThemeHandler struct {
	themeService services.ThemeService
}

func NewThemeHandler(themeService services.ThemeService) *ThemeHandler {
	return &ThemeHandler{themeService: themeService}
}

func (th *ThemeHandler) List(c *gin.Context) {
	themes, err := th.themeService.List(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"themes": themes})
}

func (th *ThemeHandler) Active(c *gin.Context) {
	theme, err := th.themeService.Active(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, theme)
}

func (th *ThemeHandler) Select(c *gin.Context) {
	var req struct {
		ThemeID string `json:"theme_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	themeID, err := uuid.Parse(req.ThemeID)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_theme_id", err)
		return
	}
	if err := th.themeService.Select(c.Request.Context(), requestUserID(c), themeID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}
