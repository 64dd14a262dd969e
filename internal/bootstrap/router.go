package bootstrap

import (
	httpapi "github.com/chatbridge/gemini-chat-backend/internal/api/http"
	"github.com/chatbridge/gemini-chat-backend/internal/api/http/middleware"
	chathttp "github.com/chatbridge/gemini-chat-backend/internal/chat/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	FrontendOrigin string
	Chat           *chathttp.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{dep.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middleware.RequestIDMiddleware())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version)
	healthHandler.RegisterRoutes(r)

	dep.Chat.Register(r)

	return r
}
