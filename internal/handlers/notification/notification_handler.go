package notification

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"shopadmin-service/internal/domain/notification"
	"shopadmin-service/internal/pkg/response"
	service "shopadmin-service/internal/service/notification"
)

type NotificationHandler struct {
	notificationService *service.Service
}

func NewNotificationHandler(notificationService *service.Service) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req notification.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.notificationService.CreateNotification(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, "failed to create notification", err)
		return
	}

	response.Success(c, http.StatusCreated, "notification created successfully", result)
}

func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	var filters notification.NotificationListFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid query parameters", err)
		return
	}

	result, err := h.notificationService.ListNotifications(c.Request.Context(), &filters)
	if err != nil {
		response.FromError(c, "failed to list notifications", err)
		return
	}

	response.Success(c, http.StatusOK, "notifications retrieved successfully", result)
}

func (h *NotificationHandler) LatestNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.notificationService.LatestNotifications(c.Request.Context(), limit)
	if err != nil {
		response.FromError(c, "failed to get latest notifications", err)
		return
	}

	response.Success(c, http.StatusOK, "notifications retrieved successfully", result)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.notificationService.UnreadCount(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to count unread notifications", err)
		return
	}

	response.Success(c, http.StatusOK, "unread count retrieved successfully", gin.H{
		"unread": count,
	})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid notification ID", err)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to mark notification read", err)
		return
	}

	response.Success(c, http.StatusOK, "notification marked read", nil)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	count, err := h.notificationService.MarkAllRead(c.Request.Context())
	if err != nil {
		response.FromError(c, "failed to mark notifications read", err)
		return
	}

	response.Success(c, http.StatusOK, "notifications marked read", gin.H{
		"updated": count,
	})
}

func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid notification ID", err)
		return
	}

	if err := h.notificationService.DeleteNotification(c.Request.Context(), id); err != nil {
		response.FromError(c, "failed to delete notification", err)
		return
	}

	response.Success(c, http.StatusOK, "notification deleted successfully", nil)
}
