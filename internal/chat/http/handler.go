package http

import (
	"fmt"
	"net/http"

	"github.com/chatbridge/gemini-chat-backend/internal/chat/domain"
	"github.com/chatbridge/gemini-chat-backend/internal/chat/service"
	"github.com/gin-gonic/gin"
)

// Handler exposes the chat proxy over HTTP.
type Handler struct {
	chatService *service.ChatService
}

func New(chatService *service.ChatService) *Handler {
	return &Handler{chatService: chatService}
}

func (h *Handler) postChat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResp{Detail: "invalid body: message is required"})
		return
	}

	reply, err := h.chatService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		if de := domain.AsError(err); de != nil {
			c.JSON(de.Status, errorResp{Detail: de.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResp{
			Detail: fmt.Sprintf("Error processing your request: %v", err),
		})
		return
	}

	c.JSON(http.StatusOK, chatResp{Reply: reply})
}
