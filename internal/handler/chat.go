package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"farmsight/internal/chat"
)

type ChatHandler struct {
	Client *chat.Client
	Logger *zap.Logger
}

func (h *ChatHandler) Register(r gin.IRouter) {
	r.POST("/chat-support", h.chatSupport)
}

type chatRequest struct {
	Messages []chat.Message        `json:"messages" binding:"required,min=1"`
	Context  *chat.EstimateContext `json:"context"`
}

// @Summary Ask the farming assistant
// @Tags chat
// @Accept json
// @Param request body chatRequest true "conversation so far plus optional estimator context"
// @Success 200 {object} apiResponse
// @Router /api/chat-support [post]
func (h *ChatHandler) chatSupport(c *gin.Context) {
	if h.Client == nil {
		Error(c, http.StatusServiceUnavailable, "assistant disabled", nil)
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	reply, err := h.Client.Reply(c.Request.Context(), req.Messages, req.Context)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("chat support failed", zap.Error(err))
		}
		Error(c, http.StatusBadGateway, "assistant unavailable", nil)
		return
	}
	Ok(c, gin.H{"reply": reply}, nil)
}
