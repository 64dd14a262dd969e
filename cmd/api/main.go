package main

import (
	"log"

	"github.com/chatbridge/gemini-chat-backend/config"
	"github.com/chatbridge/gemini-chat-backend/internal/bootstrap"
	"github.com/chatbridge/gemini-chat-backend/internal/chat/gemini"
	chathttp "github.com/chatbridge/gemini-chat-backend/internal/chat/http"
	"github.com/chatbridge/gemini-chat-backend/internal/chat/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	client := gemini.NewClient(cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.APIKey)
	chatService := service.NewChatService(client)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    "gemini-chat-backend",
		Version:        cfg.App.Version,
		FrontendOrigin: cfg.CORS.FrontendOrigin,
		Chat:           chathttp.New(chatService),
	})

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
