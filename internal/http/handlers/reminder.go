package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type ReminderHandler struct {
	reminderService services.ReminderService
}

func NewReminderHandler(reminderService services.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

func (rh *ReminderHandler) ScheduleDaily(c *gin.Context) {
	var req struct {
		Count int    `json:"count"`
		Start string `json:"start"`
		End   string `json:"end"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := rh.reminderService.ScheduleDaily(c.Request.Context(), requestUserID(c), req.Count, req.Start, req.End)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"scheduled": rows})
}

func (rh *ReminderHandler) SetAlarm(c *gin.Context) {
	var req struct {
		Time     string `json:"time"`
		Weekdays []int  `json:"weekdays"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	rows, err := rh.reminderService.SetAlarm(c.Request.Context(), requestUserID(c), req.Time, req.Weekdays)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"scheduled": rows})
}

func (rh *ReminderHandler) Snooze(c *gin.Context) {
	row, err := rh.reminderService.Snooze(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, row)
}

func (rh *ReminderHandler) List(c *gin.Context) {
	rows, err := rh.reminderService.List(c.Request.Context(), requestUserID(c))
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"scheduled": rows})
}
