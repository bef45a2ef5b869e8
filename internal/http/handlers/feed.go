package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type FeedHandler struct {
	feedService services.FeedService
}

func NewFeedHandler(feedService services.FeedService) *FeedHandler {
	return &FeedHandler{feedService: feedService}
}

func (fh *FeedHandler) GetFeed(c *gin.Context) {
	category := c.Query("category")
	limit, _ := strconv.Atoi(c.Query("limit"))
	quotes, err := fh.feedService.GetFeed(c.Request.Context(), requestUserID(c), category, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"quotes": quotes})
}
