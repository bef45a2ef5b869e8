package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/clarity-backend/internal/http/response"
	"github.com/yungbote/clarity-backend/internal/services"
)

type DeviceHandler struct {
	deviceService services.DeviceService
}

func NewDeviceHandler(deviceService services.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceService: deviceService}
}

func (dh *DeviceHandler) Register(c *gin.Context) {
	var req struct {
		PushToken   string `json:"push_token"`
		Platform    string `json:"platform"`
		PushEnabled bool   `json:"push_enabled"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	device, err := dh.deviceService.Register(c.Request.Context(), requestUserID(c), req.PushToken, req.Platform, req.PushEnabled)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, device)
}
