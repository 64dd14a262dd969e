package http

import "github.com/gin-gonic/gin"

// Register attaches chat routes to the given router.
func (h *Handler) Register(r gin.IRouter) {
	r.POST("/chat", h.postChat)
}
