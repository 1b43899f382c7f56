package handler

import (
	"github.com/labstack/echo/v4"

	"souqly/internal/usecase"
	"souqly/pkg/response"
	"souqly/pkg/utils"
)

type ListingHandler struct {
	listingUseCase *usecase.ListingUseCase
}

func NewListingHandler(listingUseCase *usecase.ListingUseCase) *ListingHandler {
	return &ListingHandler{
		listingUseCase: listingUseCase,
	}
}

type listingRequest struct {
	Name                   string   `json:"name" validate:"required,min=3"`
	Description            string   `json:"description"`
	Price                  float64  `json:"price" validate:"gte=0"`
	Quantity               int      `json:"quantity" validate:"gte=0"`
	Category               string   `json:"category" validate:"required"`
	Condition              string   `json:"condition" validate:"required,oneof=new likeNew good fair poor"`
	Images                 []string `json:"images" validate:"omitempty,dive,url"`
	Location               string   `json:"location"`
	IsAvailableForExchange bool     `json:"is_available_for_exchange"`
	ExchangePreferences    string   `json:"exchange_preferences"`
}

func (r listingRequest) toInput() usecase.CreateListingInput {
	return usecase.CreateListingInput{
		Name:                   r.Name,
		Description:            r.Description,
		Price:                  r.Price,
		Quantity:               r.Quantity,
		Category:               r.Category,
		Condition:              r.Condition,
		Images:                 r.Images,
		Location:               r.Location,
		IsAvailableForExchange: r.IsAvailableForExchange,
		ExchangePreferences:    r.ExchangePreferences,
	}
}

// viewerID returns the uid when the optional auth middleware resolved one.
func viewerID(c echo.Context) string {
	if uid, ok := c.Get("uid").(string); ok {
		return uid
	}
	return ""
}

// Feed serves the home feed page by page. Query params: category, q
// (keyword), cursor.
func (h *ListingHandler) Feed(c echo.Context) error {
	result, err := h.listingUseCase.Feed(c.Request().Context(), viewerID(c), usecase.FeedInput{
		Category: c.QueryParam("category"),
		Keyword:  c.QueryParam("q"),
		Cursor:   c.QueryParam("cursor"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.CursorPage(c, result.Items, result.NextCursor, result.HasMore)
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	listing, err := h.listingUseCase.GetListing(c.Request().Context(), c.Param("id"), viewerID(c))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	listing, err := h.listingUseCase.CreateListing(c.Request().Context(), sellerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, listing)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	var req listingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sellerID := c.Get("uid").(string)

	listing, err := h.listingUseCase.UpdateListing(c.Request().Context(), c.Param("id"), sellerID, req.toInput())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, listing)
}

func (h *ListingHandler) ListMyListings(c echo.Context) error {
	sellerID := c.Get("uid").(string)
	pagination := utils.GetPaginationParams(c)

	listings, total, err := h.listingUseCase.ListMyListings(
		c.Request().Context(),
		sellerID,
		c.QueryParam("status"),
		pagination.PageSize,
		pagination.Offset,
	)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, listings, total, pagination.Page, pagination.PageSize)
}

func (h *ListingHandler) MarkSold(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	if err := h.listingUseCase.MarkSold(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "sold"})
}

func (h *ListingHandler) Archive(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	if err := h.listingUseCase.Archive(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "archived"})
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	sellerID := c.Get("uid").(string)

	if err := h.listingUseCase.DeleteListing(c.Request().Context(), c.Param("id"), sellerID); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{"status": "deleted"})
}

func (h *ListingHandler) ListCategories(c echo.Context) error {
	categories, err := h.listingUseCase.ListCategories(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, categories)
}
