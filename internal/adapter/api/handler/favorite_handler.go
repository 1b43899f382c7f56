package handler

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/usecase"
	"souqly/pkg/response"
	"souqly/pkg/utils"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
	}
}

func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.AddFavorite(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"is_favorite": true})
}

func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.favoriteUseCase.RemoveFavorite(c.Request().Context(), uid, c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"is_favorite": false})
}

func (h *FavoriteHandler) ToggleFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	isFavorite, err := h.favoriteUseCase.ToggleFavorite(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]bool{"is_favorite": isFavorite})
}

func (h *FavoriteHandler) ListFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	favorites, total, err := h.favoriteUseCase.ListFavorites(c.Request().Context(), uid, pagination.PageSize, pagination.Offset)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, favorites, total, pagination.Page, pagination.PageSize)
}
