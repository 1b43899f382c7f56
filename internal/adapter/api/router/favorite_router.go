package router

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/adapter/api/handler"
	"souqly/internal/adapter/api/middleware"
)

func SetupFavoriteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	favoriteHandler := handler.GetFavoriteHandler()

	favorites := e.Group("/v1/favorites")
	favorites.Use(authMiddleware.Authenticate)
	favorites.GET("", favoriteHandler.ListFavorites)
	favorites.PUT("/:id", favoriteHandler.AddFavorite)
	favorites.DELETE("/:id", favoriteHandler.RemoveFavorite)
	favorites.POST("/:id/toggle", favoriteHandler.ToggleFavorite)
}
