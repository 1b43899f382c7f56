package router

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/adapter/api/handler"
	"souqly/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	listingHandler := handler.GetListingHandler()

	// Public reads carry favorite flags when a valid token is present.
	listings := e.Group("/v1/listings")
	listings.Use(authMiddleware.OptionalAuthenticate)
	listings.GET("", listingHandler.Feed)
	listings.GET("/:id", listingHandler.GetListing)

	e.GET("/v1/categories", listingHandler.ListCategories)

	myListings := e.Group("/v1/my-listings")
	myListings.Use(authMiddleware.Authenticate)
	myListings.GET("", listingHandler.ListMyListings)
	myListings.POST("", listingHandler.CreateListing)
	myListings.PUT("/:id", listingHandler.UpdateListing)
	myListings.DELETE("/:id", listingHandler.DeleteListing)
	myListings.POST("/:id/sold", listingHandler.MarkSold)
	myListings.POST("/:id/archive", listingHandler.Archive)
}
