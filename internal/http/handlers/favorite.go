package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type FavoriteHandler struct {
	favoriteService services.FavoriteService
}

func NewFavoriteHandler(favoriteService services.FavoriteService) *FavoriteHandler {
	return &FavoriteHandler{favoriteService: favoriteService}
}

func (fh *FavoriteHandler) Add(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quote_id", err)
		return
	}
	if err := fh.favoriteService.Add(c.Request.Context(), requestUserID(c), quoteID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"ok": true})
}

func (fh *FavoriteHandler) Remove(c *gin.Context) {
	quoteID, err := uuid.Parse(c.Param("quoteID"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_quote_id", err)
		return
	}
	removed, err := fh.favoriteService.Remove(c.Request.Context(), requestUserID(c), quoteID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"removed": removed})
}

func (fh *FavoriteHandler) List(c *gin.Context) {
	favorites, err := fh.favoriteService.List(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"favorites": favorites})
}
