package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	protected.GET("/notifications", handler.List)
	protected.PUT("/notifications/:id/read", handler.MarkRead)
	protected.POST("/notifications/mark-read", handler.MarkAllRead)
	protected.DELETE("/notifications", handler.Clear)
}

// List godoc
// @Summary      List Notifications
// @Description  Audit notifications, newest first. Entries expire after ten days.
// @Tags         admin-notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.ListResponse
// @Router       /admin/notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.notificationUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, "Notifications retrieved", notifications, len(notifications))
}

// MarkRead godoc
// @Summary      Mark Notification Read
// @Tags         admin-notifications
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notificationUC.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notification marked as read", nil)
}

// MarkAllRead godoc
// @Summary      Mark All Notifications Read
// @Tags         admin-notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/notifications/mark-read [post]
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationUC.MarkAllRead(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "All notifications marked as read", nil)
}

// Clear godoc
// @Summary      Clear Notifications
// @Description  Deletes every notification
// @Tags         admin-notifications
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/notifications [delete]
func (h *NotificationHandler) Clear(c *gin.Context) {
	if err := h.notificationUC.Clear(c.Request.Context()); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Notifications cleared", nil)
}
