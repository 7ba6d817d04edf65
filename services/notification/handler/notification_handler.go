package handler

import (
	"net/http"

	model "auctionhouse/internal/models"
	"auctionhouse/services/auction/helpers"
	"auctionhouse/utils"

	"github.com/gin-gonic/gin"
)

type NotificationServiceInterface interface {
	GetNotifications(userID string) ([]model.Notification, error)
	MarkAllRead(userID string) (int64, error)
}

type NotificationHandler struct {
	service NotificationServiceInterface
}

func NewNotificationHandler(service NotificationServiceInterface) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// GetNotificationsHandler handles GET /notifications
func (h *NotificationHandler) GetNotificationsHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	notifications, err := h.service.GetNotifications(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Warn("GetNotificationsHandler: failed to fetch notifications", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// MarkAllReadHandler handles POST /notifications/read
func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)

	updated, err := h.service.MarkAllRead(userID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, message)
		utils.Error("MarkAllReadHandler: failed to mark notifications read", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, helpers.MarkReadResponse{
		Message: "Notifications marked read",
		Updated: updated,
	})
}
