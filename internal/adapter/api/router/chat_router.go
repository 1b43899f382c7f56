package router

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/adapter/api/handler"
	"souqly/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/conversations")
	chats.Use(authMiddleware.Authenticate)
	chats.POST("", chatHandler.OpenConversation)
	chats.GET("", chatHandler.ListConversations)
	chats.GET("/:id/messages", chatHandler.ListMessages)
	chats.POST("/:id/messages", chatHandler.SendMessage)
	chats.POST("/:id/read", chatHandler.MarkRead)
	chats.POST("/:id/typing", chatHandler.SetTyping)
	chats.POST("/:id/archive", chatHandler.ArchiveConversation)
	chats.POST("/:id/block", chatHandler.BlockConversation)
}
