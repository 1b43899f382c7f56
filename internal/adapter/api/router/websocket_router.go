package router

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/adapter/api/handler"
)

func SetupWebSocketRouter(e *echo.Echo) {
	wsHandler := handler.GetWebSocketHandler()

	// Token arrives via query parameter, the handler verifies it itself.
	e.GET("/v1/ws", wsHandler.HandleWebSocket)
}
