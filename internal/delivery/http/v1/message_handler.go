package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	protected.GET("/messages", handler.List)
	protected.PUT("/messages/:id/read", handler.MarkRead)
	protected.DELETE("/messages/:id", handler.Delete)
}

// List godoc
// @Summary      List Contact Messages
// @Description  All visitor messages, newest first
// @Tags         admin-messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.ListResponse
// @Router       /admin/messages [get]
func (h *MessageHandler) List(c *gin.Context) {
	messages, err := h.messageUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, "Messages retrieved", messages, len(messages))
}

// MarkRead godoc
// @Summary      Mark Message Read
// @Tags         admin-messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/messages/{id}/read [put]
func (h *MessageHandler) MarkRead(c *gin.Context) {
	if err := h.messageUC.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message marked as read", nil)
}

// Delete godoc
// @Summary      Delete Message
// @Tags         admin-messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/messages/{id} [delete]
func (h *MessageHandler) Delete(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyMessage, "Message deletion")

	if err := h.messageUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Message deleted", nil)
}
